package gaze

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
)

type expectKind int

const (
	expectAny expectKind = iota
	expectLiteral
	expectRegexp
	expectGlob
)

// Expectation is the expected side of a matcher application: an exact
// literal, a regular expression, or a glob pattern. The zero value matches
// anything, which is what predicate matchers built with NewMatcher receive.
type Expectation struct {
	kind    expectKind
	literal string
	re      *regexp.Regexp
	g       glob.Glob
	source  string
}

// Exactly expects the attribute value to equal s.
func Exactly(s string) Expectation {
	return Expectation{kind: expectLiteral, literal: s, source: s}
}

// Pattern expects the attribute value to match re.
func Pattern(re *regexp.Regexp) Expectation {
	return Expectation{kind: expectRegexp, re: re, source: re.String()}
}

// GlobPattern expects the attribute value to match a glob pattern such as
// "nav-*". Returns an error when the pattern does not compile.
func GlobPattern(pattern string) (Expectation, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return Expectation{}, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return Expectation{kind: expectGlob, g: g, source: pattern}, nil
}

// matches reports whether actual satisfies the expectation.
func (x Expectation) matches(actual string) bool {
	switch x.kind {
	case expectLiteral:
		return x.literal == actual
	case expectRegexp:
		return x.re.MatchString(actual)
	case expectGlob:
		return x.g.Match(actual)
	default:
		return true
	}
}

// pattern reports whether the expected side is a pattern rather than a
// literal, which changes how mismatch messages label it.
func (x Expectation) pattern() bool {
	return x.kind == expectRegexp || x.kind == expectGlob
}
