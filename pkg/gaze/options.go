package gaze

import (
	"time"

	"github.com/entrhq/gaze/pkg/config"
	"github.com/entrhq/gaze/pkg/logging"
)

// Default values for browser construction.
const (
	// DefaultMatchingTimeout bounds how long assertion methods keep polling.
	DefaultMatchingTimeout = 10 * time.Second

	// DefaultPollInterval is the pause between two assertion checks.
	DefaultPollInterval = 100 * time.Millisecond

	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// Browser engine names accepted by LaunchOptions.Browser.
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// LaunchOptions configures Launch and WrapBrowser.
type LaunchOptions struct {
	// MatchingTimeout bounds how long ShouldEqual, ShouldMatch and
	// ShouldHaveCount keep polling before surfacing the last failure.
	// Zero means DefaultMatchingTimeout. A negative value limits every
	// assertion to a single check.
	MatchingTimeout time.Duration

	// PollInterval is the pause between two checks. Zero or negative means
	// DefaultPollInterval.
	PollInterval time.Duration

	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// Browser selects the engine: "chromium" (default), "firefox" or "webkit".
	Browser string

	// Viewport sets the initial viewport size for new pages.
	Viewport *Viewport
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// OptionsFromFile loads LaunchOptions from a gaze.yaml settings file.
// A missing file yields the defaults.
func OptionsFromFile(path string) (LaunchOptions, error) {
	loaded, err := config.Load(path)
	if err != nil {
		return LaunchOptions{}, err
	}
	return LaunchOptions{
		MatchingTimeout: time.Duration(loaded.MatchingTimeoutMS) * time.Millisecond,
		PollInterval:    time.Duration(loaded.PollIntervalMS) * time.Millisecond,
		Headless:        loaded.Headless,
		Browser:         loaded.Browser,
	}, nil
}

// settings is the immutable per-browser configuration threaded through every
// wrapped page, element and collection. It is fixed at browser construction
// and never re-read afterwards.
type settings struct {
	matchingTimeout time.Duration
	pollInterval    time.Duration
	log             *logging.Logger
}

func (o LaunchOptions) normalized(log *logging.Logger) settings {
	s := settings{
		matchingTimeout: o.MatchingTimeout,
		pollInterval:    o.PollInterval,
		log:             log,
	}
	if s.matchingTimeout == 0 {
		s.matchingTimeout = DefaultMatchingTimeout
	}
	if s.pollInterval <= 0 {
		s.pollInterval = DefaultPollInterval
	}
	return s
}
