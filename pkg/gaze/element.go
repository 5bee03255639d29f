package gaze

import (
	"regexp"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/gaze/pkg/htmltext"
)

// Element decorates a Playwright element handle with derived attribute
// readers and polling assertions. It shares identity and lifetime with the
// underlying handle; the driver owns both.
type Element struct {
	playwright.ElementHandle

	cfg settings
}

// newElement is the single constructor path for wrapped elements. Every
// method that yields new handles routes through it.
func newElement(native playwright.ElementHandle, cfg settings) *Element {
	return &Element{ElementHandle: native, cfg: cfg}
}

func wrapElements(natives []playwright.ElementHandle, cfg settings) []*Element {
	els := make([]*Element, len(natives))
	for i, native := range natives {
		els[i] = newElement(native, cfg)
	}
	return els
}

// QuerySelector returns the first descendant matching selector, wrapped, or
// nil when nothing matches.
func (e *Element) QuerySelector(selector string) (*Element, error) {
	native, err := e.ElementHandle.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if native == nil {
		return nil, nil
	}
	return newElement(native, e.cfg), nil
}

// QuerySelectorAll returns all descendants matching selector, wrapped.
func (e *Element) QuerySelectorAll(selector string) ([]*Element, error) {
	natives, err := e.ElementHandle.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(natives, e.cfg), nil
}

// Lazy returns a collection bound to this element as parent, re-resolved on
// every access.
func (e *Element) Lazy(selector string) *Collection {
	return &Collection{parent: e, selector: selector, cfg: e.cfg}
}

// Text returns the element's text content.
func (e *Element) Text() (string, error) {
	return e.TextContent()
}

// Value returns the element's value attribute.
func (e *Element) Value() (string, error) {
	return e.Attr("value")
}

// Class returns the element's class attribute.
func (e *Element) Class() (string, error) {
	return e.Attr("class")
}

// Style returns the element's inline style attribute.
func (e *Element) Style() (string, error) {
	return e.Attr("style")
}

// Attr returns the named attribute's value.
func (e *Element) Attr(name string) (string, error) {
	return e.GetAttribute(name)
}

// CleanText returns the element's text with markup stripped and whitespace
// collapsed, derived from its inner HTML.
func (e *Element) CleanText() (string, error) {
	raw, err := e.InnerHTML()
	if err != nil {
		return "", err
	}
	return htmltext.Flatten(raw)
}

// Should polls matcher against the element until the expectation is
// satisfied or the matching timeout elapses, then returns the last observed
// mismatch. Driver failures abort the poll immediately.
func (e *Element) Should(m Matcher, want Expectation) error {
	return pollUntil(e.cfg, func() error {
		return m(e, want)
	})
}

// ShouldEqual asserts that the matcher's attribute eventually equals the
// literal exactly.
func (e *Element) ShouldEqual(m Matcher, literal string) error {
	return e.Should(m, Exactly(literal))
}

// ShouldMatch asserts that the matcher's attribute eventually matches the
// regular expression.
func (e *Element) ShouldMatch(m Matcher, pattern *regexp.Regexp) error {
	return e.Should(m, Pattern(pattern))
}

// ShouldSatisfy asserts a predicate matcher built with NewMatcher, which
// carries its own check and needs no expectation.
func (e *Element) ShouldSatisfy(m Matcher) error {
	return e.Should(m, Expectation{})
}
