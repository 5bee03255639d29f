package gaze

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextMatcherLiteral(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		wantErr  bool
	}{
		{
			name:     "equal text matches",
			text:     "About google",
			expected: "About google",
			wantErr:  false,
		},
		{
			name:     "different text mismatches",
			text:     "Loading...",
			expected: "About google",
			wantErr:  true,
		},
		{
			name:     "empty text against empty literal matches",
			text:     "",
			expected: "",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := newElement(newFakeHandle(tt.text), testSettings(0, 0))

			err := Text(el, Exactly(tt.expected))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var mismatch *MismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, "text", mismatch.Attribute)
			assert.Contains(t, err.Error(), tt.expected)
			assert.Contains(t, err.Error(), tt.text)
		})
	}
}

func TestAttributeMatchers(t *testing.T) {
	fake := newFakeHandle("hello")
	fake.setAttr("value", "secret")
	fake.setAttr("class", "btn primary")
	fake.setAttr("style", "display: none")
	el := newElement(fake, testSettings(0, 0))

	tests := []struct {
		name    string
		matcher Matcher
		good    string
		kind    string
	}{
		{name: "value", matcher: Value, good: "secret", kind: "value"},
		{name: "class", matcher: Class, good: "btn primary", kind: "class"},
		{name: "style", matcher: Style, good: "display: none", kind: "style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.matcher(el, Exactly(tt.good)))

			err := tt.matcher(el, Exactly("something else"))
			var mismatch *MismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.kind, mismatch.Attribute)
			assert.Equal(t, tt.good, mismatch.Actual)
		})
	}
}

func TestTextMatcherPattern(t *testing.T) {
	el := newElement(newFakeHandle("About google"), testSettings(0, 0))

	assert.NoError(t, Text(el, Pattern(regexp.MustCompile(`^About`))))

	err := Text(el, Pattern(regexp.MustCompile(`^Contact`)))
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, mismatch.Pattern)
	// Pattern mismatches label the expected side as a matcher.
	assert.Contains(t, err.Error(), `matcher "^Contact"`)
	assert.Contains(t, err.Error(), "About google")
}

func TestClassMatcherGlob(t *testing.T) {
	fake := newFakeHandle("")
	fake.setAttr("class", "nav-item-active")
	el := newElement(fake, testSettings(0, 0))

	want, err := GlobPattern("nav-*-active")
	require.NoError(t, err)
	assert.NoError(t, Class(el, want))

	miss, err := GlobPattern("sidebar-*")
	require.NoError(t, err)
	assert.Error(t, Class(el, miss))
}

func TestGlobPatternInvalid(t *testing.T) {
	_, err := GlobPattern("[unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")
}

func TestAttrMatcher(t *testing.T) {
	fake := newFakeHandle("")
	fake.setAttr("data-state", "ready")
	el := newElement(fake, testSettings(0, 0))

	assert.NoError(t, Attr("data-state")(el, Exactly("ready")))

	err := Attr("data-state")(el, Exactly("pending"))
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "data-state", mismatch.Attribute)
}

func TestNewMatcherPredicate(t *testing.T) {
	fake := newFakeHandle("")
	fake.setAttr("href", "https://example.com/about")
	el := newElement(fake, testSettings(0, 0))

	isHTTPS := NewMatcher("href", func(value string) bool {
		return strings.HasPrefix(value, "https://")
	})
	assert.NoError(t, isHTTPS(el, Expectation{}))

	isRelative := NewMatcher("href", func(value string) bool {
		return strings.HasPrefix(value, "/")
	})
	err := isRelative(el, Expectation{})
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "href", mismatch.Attribute)
	assert.Contains(t, err.Error(), "https://example.com/about")
}

func TestMatcherDriverErrorPassthrough(t *testing.T) {
	driverErr := errors.New("element is detached from the DOM")
	fake := newFakeHandle("ignored")
	fake.readErr = driverErr
	el := newElement(fake, testSettings(0, 0))

	err := Text(el, Exactly("anything"))
	require.ErrorIs(t, err, driverErr)

	var mismatch *MismatchError
	assert.False(t, errors.As(err, &mismatch))
}

func TestCleanTextMatcher(t *testing.T) {
	fake := newFakeHandle("")
	fake.html = `<p>About   <b>google</b></p><script>track()</script>`
	el := newElement(fake, testSettings(0, 0))

	assert.NoError(t, CleanText(el, Exactly("About google")))
}
