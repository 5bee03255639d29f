package gaze

import (
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// fakeHandle implements the slice of playwright.ElementHandle the tests
// exercise. Calls to unstubbed driver methods panic through the embedded nil
// interface, which is fine: the wrapper under test never makes them.
type fakeHandle struct {
	playwright.ElementHandle

	mu       sync.Mutex
	text     string
	html     string
	attrs    map[string]string
	children map[string][]playwright.ElementHandle
	readErr  error
}

func newFakeHandle(text string) *fakeHandle {
	return &fakeHandle{
		text:     text,
		attrs:    map[string]string{},
		children: map[string][]playwright.ElementHandle{},
	}
}

func (f *fakeHandle) setText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
}

func (f *fakeHandle) setAttr(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attrs[name] = value
}

func (f *fakeHandle) setChildren(selector string, handles ...playwright.ElementHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.children[selector] = handles
}

func (f *fakeHandle) TextContent() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.text, nil
}

func (f *fakeHandle) GetAttribute(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.attrs[name], nil
}

func (f *fakeHandle) InnerHTML() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.html, nil
}

func (f *fakeHandle) QuerySelector(selector string) (playwright.ElementHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	handles := f.children[selector]
	if len(handles) == 0 {
		return nil, nil
	}
	return handles[0], nil
}

func (f *fakeHandle) QuerySelectorAll(selector string) ([]playwright.ElementHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.children[selector], nil
}

// fakePage implements the slice of playwright.Page the wrappers touch, the
// same way fakeHandle does for elements.
type fakePage struct {
	playwright.Page

	mu       sync.Mutex
	children map[string][]playwright.ElementHandle
	width    int
	height   int
}

func newFakePage() *fakePage {
	return &fakePage{children: map[string][]playwright.ElementHandle{}}
}

func (f *fakePage) setChildren(selector string, handles ...playwright.ElementHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.children[selector] = handles
}

func (f *fakePage) QuerySelector(selector string, _ ...playwright.PageQuerySelectorOptions) (playwright.ElementHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	handles := f.children[selector]
	if len(handles) == 0 {
		return nil, nil
	}
	return handles[0], nil
}

func (f *fakePage) QuerySelectorAll(selector string) ([]playwright.ElementHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.children[selector], nil
}

func (f *fakePage) SetViewportSize(width, height int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width = width
	f.height = height
	return nil
}

// fakeBrowser hands out a prepared fake page from NewPage.
type fakeBrowser struct {
	playwright.Browser

	page *fakePage
}

func (f *fakeBrowser) NewPage(_ ...playwright.BrowserNewPageOptions) (playwright.Page, error) {
	return f.page, nil
}

// testSettings returns a fast polling configuration for unit tests.
func testSettings(timeout, interval time.Duration) settings {
	return settings{matchingTimeout: timeout, pollInterval: interval}
}
