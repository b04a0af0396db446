// internal/render/htmltotext_test.go
package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "paragraphs become lines",
			input:    "<p>first</p><p>second</p>",
			expected: "first\nsecond",
		},
		{
			name:     "br becomes newline",
			input:    "first<br>second<br/>third",
			expected: "first\nsecond\nthird",
		},
		{
			name:     "links keep their targets",
			input:    `<p>Go <a href="https://x/submissions/1">view it</a> now</p>`,
			expected: "Go view it (https://x/submissions/1) now",
		},
		{
			name:     "entities are unescaped",
			input:    "<p>MSC&#43; &amp; MSHO</p>",
			expected: "MSC+ & MSHO",
		},
		{
			name:     "nested markup is stripped",
			input:    "<div><p>Round: <b>3</b></p></div>",
			expected: "Round: 3",
		},
		{
			name:     "blank lines are dropped",
			input:    "<p>one</p>\n\n\n<p>two</p>",
			expected: "one\ntwo",
		},
		{
			name:     "plain text passes through",
			input:    "no markup here",
			expected: "no markup here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTMLToText(tt.input))
		})
	}
}

func TestHTMLToText_RenderedQuestionBody(t *testing.T) {
	r := New(logger.NewTestLogger(t))

	html, err := r.Render("newQuestionState", map[string]interface{}{
		"packageName":  "MCR-MN-0005-SNBC",
		"round":        3,
		"questionDate": "03/10/2025",
		"qaURL":        "https://x/submissions/sub-1/question-and-answers",
	})
	require.NoError(t, err)

	text := HTMLToText(html)
	assert.Contains(t, text, "Round: 3")
	assert.Contains(t, text, "https://x/submissions/sub-1/question-and-answers")
	assert.NotContains(t, text, "<")
}
