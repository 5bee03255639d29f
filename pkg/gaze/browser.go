package gaze

import (
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/gaze/pkg/logging"
)

// Browser decorates a Playwright browser with the matching configuration.
// Every capability of the underlying driver browser remains available through
// the embedded interface; pages created through NewPage come back wrapped.
type Browser struct {
	playwright.Browser

	// pw is set when Launch owns the driver process and must stop it on Close.
	pw       *playwright.Playwright
	cfg      settings
	viewport *Viewport
}

// Launch installs and starts the Playwright driver, launches a browser and
// wraps it. The zero value of opts launches a headed chromium with the
// default matching timeout of 10 s.
func Launch(opts LaunchOptions) (*Browser, error) {
	// Driver output is discarded so it cannot interleave with test output.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	engine, err := browserType(pw, opts.Browser)
	if err != nil {
		stopQuietly(pw)
		return nil, err
	}

	native, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
	})
	if err != nil {
		stopQuietly(pw)
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := WrapBrowser(native, opts)
	b.pw = pw
	b.cfg.log.Infof("launched %s (headless=%v, matching timeout=%s)",
		engineName(opts.Browser), opts.Headless, b.cfg.matchingTimeout)
	return b, nil
}

// WrapBrowser decorates an already-launched driver browser. This is the only
// entry point taking a raw driver value; everything reached through the
// returned Browser is wrapped automatically. The caller keeps ownership of
// the driver process.
func WrapBrowser(native playwright.Browser, opts LaunchOptions) *Browser {
	// NewLogger never returns nil: on failure it hands back a stderr logger
	// that has already reported the degradation, so the error carries no
	// extra information here.
	log, _ := logging.NewLogger("gaze")
	viewport := opts.Viewport
	if viewport == nil {
		viewport = &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	return &Browser{
		Browser:  native,
		cfg:      opts.normalized(log),
		viewport: viewport,
	}
}

// NewPage creates a page in the wrapped browser and wraps it, threading the
// matching configuration through. Driver failures propagate unchanged.
func (b *Browser) NewPage() (*Page, error) {
	native, err := b.Browser.NewPage()
	if err != nil {
		return nil, err
	}
	if b.viewport != nil {
		if err := native.SetViewportSize(b.viewport.Width, b.viewport.Height); err != nil {
			return nil, err
		}
	}
	return newPage(native, b.cfg), nil
}

// Close closes the browser and, when this Browser was created by Launch,
// stops the driver process as well.
func (b *Browser) Close() error {
	err := b.Browser.Close()
	if b.pw != nil {
		if stopErr := b.pw.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("failed to stop playwright: %w", stopErr)
		}
		b.pw = nil
	}
	if b.cfg.log != nil {
		b.cfg.log.Infof("browser closed")
		b.cfg.log.Close()
	}
	return err
}

// driverStopper is the slice of *playwright.Playwright stopQuietly needs.
type driverStopper interface {
	Stop() error
}

// stopQuietly stops the driver process after a failed launch. The launch
// error is what the caller reports; a stop failure is only logged.
func stopQuietly(pw driverStopper) {
	if err := pw.Stop(); err != nil {
		log, _ := logging.NewLogger("gaze")
		log.Warnf("failed to stop playwright after launch failure: %v", err)
		log.Close()
	}
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "", BrowserChromium:
		return pw.Chromium, nil
	case BrowserFirefox:
		return pw.Firefox, nil
	case BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser: %s", name)
	}
}

func engineName(name string) string {
	if name == "" {
		return BrowserChromium
	}
	return name
}
