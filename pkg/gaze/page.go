package gaze

import "github.com/playwright-community/playwright-go"

// Page decorates a Playwright page. Navigation, typing, clicking, evaluation
// and every other driver capability promote unchanged from the embedded
// interface; the query methods are overridden so results come back wrapped.
type Page struct {
	playwright.Page

	cfg settings
}

// newPage is the single constructor path for wrapped pages.
func newPage(native playwright.Page, cfg settings) *Page {
	return &Page{Page: native, cfg: cfg}
}

// QuerySelector returns the first element matching selector, wrapped, or nil
// when nothing matches. Driver failures propagate unchanged.
func (p *Page) QuerySelector(selector string) (*Element, error) {
	native, err := p.Page.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if native == nil {
		return nil, nil
	}
	return newElement(native, p.cfg), nil
}

// QuerySelectorAll returns all elements matching selector, wrapped.
func (p *Page) QuerySelectorAll(selector string) ([]*Element, error) {
	natives, err := p.Page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrapElements(natives, p.cfg), nil
}

// Lazy returns a collection bound to this page as parent. The selector is
// resolved against the live DOM on every access, never cached.
func (p *Page) Lazy(selector string) *Collection {
	return &Collection{parent: p, selector: selector, cfg: p.cfg}
}
