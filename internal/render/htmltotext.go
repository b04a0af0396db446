// internal/render/htmltotext.go
package render

import (
	"html"
	"regexp"
	"strings"
)

var (
	brTag     = regexp.MustCompile(`(?i)<br\s*/?>`)
	anchorTag = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	blockEnd  = regexp.MustCompile(`(?i)</(p|div|li|ul|ol|h[1-6])>`)
	anyTag    = regexp.MustCompile(`(?s)<[^>]*>`)
)

// HTMLToText derives the plain-text body from the rendered HTML. Both
// bodies go out on every message; the text part is what screen readers and
// text-only clients see, so links keep their targets in parentheses.
func HTMLToText(htmlBody string) string {
	text := brTag.ReplaceAllString(htmlBody, "\n")
	text = anchorTag.ReplaceAllString(text, "$2 ($1)")
	text = blockEnd.ReplaceAllString(text, "\n")
	text = anyTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
