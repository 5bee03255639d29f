// Package gaze adds eventually-consistent assertions on top of Playwright.
//
// Browser UI state settles asynchronously: network responses arrive, scripts
// run, animations finish. A single synchronous read of an element is therefore
// an unreliable basis for a test assertion. gaze wraps the Playwright browser,
// page and element handles and gives them assertion methods that poll the live
// DOM until the expected state is observed or a deadline passes.
//
// # Architecture
//
// The package is built around three cooperating pieces:
//
//  1. Matcher: reads exactly one observable attribute of an element (text
//     content, value, class, inline style, or an arbitrary attribute) and
//     checks it against an Expectation. A failed check is reported as a
//     *MismatchError value, never a panic.
//  2. Poller: a bounded wall-clock loop that reruns a check every poll
//     interval until it succeeds or the matching timeout elapses, then
//     surfaces the last observed failure.
//  3. Wrappers: Browser, Page and Element embed the corresponding Playwright
//     interface, so every driver capability is still available unmodified.
//     The query methods are overridden to return wrapped values, which makes
//     wrapping transitive: once a browser is wrapped, everything reached
//     through it is wrapped too.
//
// # Configuration
//
// The matching timeout (default 10 s) and poll interval (default 100 ms) are
// fixed when the browser is constructed and inherited unchanged by every
// page, element and collection created from it.
//
// # Error semantics
//
// A *MismatchError or *CountError produced by a check is treated as "not yet
// satisfied" and retried until the deadline. Any other error is a driver
// failure (detached element, closed page, protocol error) and aborts the poll
// immediately, propagating to the caller unchanged.
//
// # Example Usage
//
//	browser, err := gaze.Launch(gaze.LaunchOptions{Headless: true})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer browser.Close()
//
//	page, err := browser.NewPage()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := page.Goto("https://google.com/about"); err != nil {
//		log.Fatal(err)
//	}
//
//	heading, err := page.QuerySelector("h1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// Resolves as soon as the heading text settles, fails after the
//	// matching timeout otherwise.
//	if err := heading.ShouldEqual(gaze.Text, "About google"); err != nil {
//		log.Fatal(err)
//	}
//
//	items := page.Lazy("ul.nav li")
//	if err := items.ShouldHaveCount(5); err != nil {
//		log.Fatal(err)
//	}
package gaze
