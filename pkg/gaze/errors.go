package gaze

import (
	"errors"
	"fmt"
)

// MismatchError reports that an observed element attribute did not satisfy an
// expectation. It is constructed fresh for every failed check and treated as
// retryable by the polling layer.
type MismatchError struct {
	// Attribute names the compared attribute kind ("text", "value", ...).
	Attribute string

	// Expected is the expected literal or the pattern source. Empty for
	// predicate matchers built with NewMatcher, which carry no expected
	// value of their own.
	Expected string

	// Actual is the observed attribute value.
	Actual string

	// Pattern is true when Expected is a pattern rather than a literal.
	Pattern bool
}

func (e *MismatchError) Error() string {
	switch {
	case e.Expected == "":
		return fmt.Sprintf("unmatched %s: actual %q", e.Attribute, e.Actual)
	case e.Pattern:
		return fmt.Sprintf("unmatched %s: matcher %q, actual %q", e.Attribute, e.Expected, e.Actual)
	default:
		return fmt.Sprintf("unmatched %s: expected %q, actual %q", e.Attribute, e.Expected, e.Actual)
	}
}

// CountError reports that a collection's live element count did not equal the
// expected count. Retryable, like MismatchError.
type CountError struct {
	Selector string
	Expected int
	Actual   int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("unexpected count for %q: expected %d, actual %d", e.Selector, e.Expected, e.Actual)
}

// retryable reports whether err is a failed check the polling loop may rerun.
// Driver errors are never retried.
func retryable(err error) bool {
	var mismatch *MismatchError
	var count *CountError
	return errors.As(err, &mismatch) || errors.As(err, &count)
}
