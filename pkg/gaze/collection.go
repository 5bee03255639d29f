package gaze

import "sync"

// queryable is the parent of a lazy collection: a wrapped page or element.
type queryable interface {
	QuerySelectorAll(selector string) ([]*Element, error)
}

// Collection represents a selector scoped to a parent, not a materialized
// list. Every access re-queries the live DOM through the parent, so repeated
// assertions observe document mutations without constructing a new
// collection. Nothing is ever cached.
type Collection struct {
	parent   queryable
	selector string
	cfg      settings
}

func (c *Collection) resolve() ([]*Element, error) {
	return c.parent.QuerySelectorAll(c.selector)
}

// Get resolves the live set and returns the wrapped element at index, or nil
// when index is out of range. Range validation is the caller's concern;
// out-of-range access is not an error here.
func (c *Collection) Get(index int) (*Element, error) {
	els, err := c.resolve()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(els) {
		return nil, nil
	}
	return els[index], nil
}

// Count returns the current live count of matching elements.
func (c *Collection) Count() (int, error) {
	els, err := c.resolve()
	if err != nil {
		return 0, err
	}
	return len(els), nil
}

// ShouldHaveCount polls until exactly want elements match the selector or
// the matching timeout elapses, then returns the last observed count
// mismatch. Driver failures abort the poll immediately.
func (c *Collection) ShouldHaveCount(want int) error {
	return pollUntil(c.cfg, func() error {
		els, err := c.resolve()
		if err != nil {
			return err
		}
		if len(els) == want {
			return nil
		}
		return &CountError{Selector: c.selector, Expected: want, Actual: len(els)}
	})
}

// Map resolves the live set once and applies fn to every element
// concurrently. Results keep the input order regardless of completion order;
// the first error encountered in input order wins.
func (c *Collection) Map(fn func(el *Element) (any, error)) ([]any, error) {
	els, err := c.resolve()
	if err != nil {
		return nil, err
	}

	results := make([]any, len(els))
	errs := make([]error, len(els))

	var wg sync.WaitGroup
	for i, el := range els {
		wg.Add(1)
		go func(i int, el *Element) {
			defer wg.Done()
			results[i], errs[i] = fn(el)
		}(i, el)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ForEach resolves the live set once and invokes fn for each wrapped element
// and its index, in document order.
func (c *Collection) ForEach(fn func(index int, el *Element)) error {
	els, err := c.resolve()
	if err != nil {
		return err
	}
	for i, el := range els {
		fn(i, el)
	}
	return nil
}
