// internal/render/renderer_test.go
package render

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestRenderer(t *testing.T) *Renderer {
	return New(logger.NewTestLogger(t))
}

func createQuestionData() map[string]interface{} {
	return map[string]interface{}{
		"packageName":  "MCR-MN-0005-SNBC",
		"round":        3,
		"questionDate": "03/10/2025",
		"qaURL":        "https://mc-review.example.com/submissions/sub-1/question-and-answers",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestRenderer_Render(t *testing.T) {
	r := createTestRenderer(t)

	html, err := r.Render("newQuestionState", createQuestionData())
	require.NoError(t, err)

	assert.Contains(t, html, "MCR-MN-0005-SNBC")
	assert.Contains(t, html, "Round: 3")
	assert.Contains(t, html, "question-and-answers")
}

func TestRenderer_Render_EscapesHTMLInData(t *testing.T) {
	r := createTestRenderer(t)

	data := createQuestionData()
	data["packageName"] = "MCR-MN-0005-<script>"

	html, err := r.Render("newQuestionState", data)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderer_Render_AllTemplatesCompile(t *testing.T) {
	r := createTestRenderer(t)

	full := map[string]interface{}{
		"packageName":        "MCR-MN-0005-SNBC",
		"stateName":          "Minnesota",
		"submissionType":     "CONTRACT_AND_RATES",
		"submissionDate":     "03/10/2025",
		"submissionURL":      "https://x/submissions/sub-1",
		"reviewAndSubmitURL": "https://x/submissions/sub-1/edit/review-and-submit",
		"qaURL":              "https://x/submissions/sub-1/question-and-answers",
		"rateURL":            "https://x/submissions/sub-1/rates/rate-1",
		"cmsReviewHelpEmail": "mcog@example.com",
		"helpDeskEmail":      "helpdesk@example.com",
		"updatedBy":          "jane@mn.gov",
		"updatedOn":          "03/11/2025",
		"changesMade":        "Corrected rate tables",
		"unlockedBy":         "reviewer@cms.hhs.gov",
		"unlockedOn":         "03/11/2025",
		"reason":             "Rate tables need correction",
		"division":           "DMCO",
		"round":              1,
		"askedBy":            "reviewer@cms.hhs.gov",
		"questionDate":       "03/12/2025",
		"respondedBy":        "jane@mn.gov",
		"responseDate":       "03/13/2025",
		"rateName":           "rate-cert-2025",
		"rateNames":          []string{"rate-cert-2025"},
	}

	for name := range templateSchemas {
		t.Run(name, func(t *testing.T) {
			html, err := r.Render(name, full)
			require.NoError(t, err)
			assert.NotEmpty(t, html)
		})
	}
}

func TestRenderer_Render_ConcurrentFirstUse(t *testing.T) {
	r := createTestRenderer(t)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Render("newQuestionState", createQuestionData())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

// ==========================
// Error Handling Tests
// ==========================

func TestRenderer_Render_Errors(t *testing.T) {
	r := createTestRenderer(t)

	tests := []struct {
		name         string
		templateName string
		data         map[string]interface{}
		expectedCode apperrors.ErrorCode
	}{
		{
			name:         "template name with slash",
			templateName: "../../etc/passwd",
			data:         map[string]interface{}{},
			expectedCode: apperrors.ErrCodeInvalidTemplateName,
		},
		{
			name:         "template name with dash",
			templateName: "new-question",
			data:         map[string]interface{}{},
			expectedCode: apperrors.ErrCodeInvalidTemplateName,
		},
		{
			name:         "empty template name",
			templateName: "",
			data:         map[string]interface{}{},
			expectedCode: apperrors.ErrCodeInvalidTemplateName,
		},
		{
			name:         "unknown template",
			templateName: "doesNotExist",
			data:         map[string]interface{}{},
			expectedCode: apperrors.ErrCodeTemplateNotFound,
		},
		{
			name:         "missing required data field",
			templateName: "newQuestionState",
			data:         map[string]interface{}{"packageName": "MCR-MN-0005-SNBC"},
			expectedCode: apperrors.ErrCodeTemplateDataInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Render(tt.templateName, tt.data)

			var rErr *apperrors.RenderError
			assert.ErrorAs(t, err, &rErr)
			assert.Equal(t, tt.expectedCode, rErr.Code)
		})
	}
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkRenderer_Render(b *testing.B) {
	r := New(logger.NewNoOpLogger())
	data := createQuestionData()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render("newQuestionState", data); err != nil {
			b.Fatal(fmt.Errorf("render: %w", err))
		}
	}
}
