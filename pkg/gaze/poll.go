package gaze

import "time"

// pollUntil reruns check until it returns nil or the matching timeout
// elapses, pausing one poll interval between attempts. The first check always
// runs, even with a non-positive timeout. Success returns immediately with no
// trailing delay.
//
// Only *MismatchError and *CountError are retried; any other error aborts the
// loop at once. On exhausting the deadline the last observed failure is
// returned.
func pollUntil(cfg settings, check func() error) error {
	deadline := time.Now().Add(cfg.matchingTimeout)
	for {
		err := check()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if !time.Now().Before(deadline) {
			return err
		}
		if cfg.log != nil {
			cfg.log.Debugf("not yet satisfied, retrying in %s: %v", cfg.pollInterval, err)
		}
		time.Sleep(cfg.pollInterval)
	}
}
