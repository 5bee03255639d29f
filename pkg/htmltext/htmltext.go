// Package htmltext flattens HTML fragments to their visible text. It backs
// the clean-text element reader, letting assertions compare what a user sees
// rather than the raw markup.
package htmltext

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Flatten parses an HTML fragment and returns its visible text: scripts,
// styles and comments are dropped, tags are removed, and runs of whitespace
// collapse to single spaces.
func Flatten(fragment string) (string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var builder strings.Builder
	flattenNode(doc, &builder)
	return strings.Join(strings.Fields(builder.String()), " "), nil
}

func flattenNode(n *html.Node, builder *strings.Builder) {
	if n.Type == html.CommentNode {
		return
	}
	if n.Type == html.ElementNode && isSkippedElement(strings.ToLower(n.Data)) {
		return
	}
	if n.Type == html.TextNode {
		builder.WriteString(n.Data)
		// Keep adjacent text nodes from running together.
		builder.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flattenNode(c, builder)
	}
}

// isSkippedElement returns true for elements whose content is never visible text.
func isSkippedElement(tagName string) bool {
	skipped := map[string]bool{
		"script":   true,
		"style":    true,
		"noscript": true,
		"iframe":   true,
		"embed":    true,
		"object":   true,
		"template": true,
	}
	return skipped[tagName]
}
