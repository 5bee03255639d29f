package gaze

// Matcher checks one observed attribute of an element against an expectation.
// A nil return means the element satisfies it. A *MismatchError reports an
// observed value that does not; the polling layer retries those. Any other
// error is a driver failure and propagates unchanged, aborting the poll.
//
// Matchers are stateless and freely reusable across elements.
type Matcher func(el *Element, want Expectation) error

// Matchers for the commonly asserted attributes. Each performs exactly one
// attribute read per application.
var (
	// Text compares the element's text content.
	Text = attributeMatcher("text", (*Element).Text)

	// Value compares the element's value attribute.
	Value = attributeMatcher("value", (*Element).Value)

	// Class compares the element's class attribute.
	Class = attributeMatcher("class", (*Element).Class)

	// Style compares the element's inline style attribute.
	Style = attributeMatcher("style", (*Element).Style)

	// CleanText compares the element's markup-stripped, whitespace-normalized
	// text, so assertions survive formatting tags and indentation churn.
	CleanText = attributeMatcher("clean text", (*Element).CleanText)
)

func attributeMatcher(kind string, read func(*Element) (string, error)) Matcher {
	return func(el *Element, want Expectation) error {
		actual, err := read(el)
		if err != nil {
			return err
		}
		if want.matches(actual) {
			return nil
		}
		return &MismatchError{
			Attribute: kind,
			Expected:  want.source,
			Actual:    actual,
			Pattern:   want.pattern(),
		}
	}
}

// Attr builds a matcher over the named attribute, compared against the
// expectation like the built-in matchers.
func Attr(name string) Matcher {
	return attributeMatcher(name, func(el *Element) (string, error) {
		return el.Attr(name)
	})
}

// NewMatcher builds a matcher over an arbitrary attribute: it reads the named
// attribute and applies pred to its value. The expectation passed at
// application time is ignored; the predicate is the whole check. Use it with
// Element.ShouldSatisfy.
func NewMatcher(attribute string, pred func(value string) bool) Matcher {
	return func(el *Element, _ Expectation) error {
		actual, err := el.Attr(attribute)
		if err != nil {
			return err
		}
		if pred(actual) {
			return nil
		}
		return &MismatchError{Attribute: attribute, Actual: actual}
	}
}
