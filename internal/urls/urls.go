// Package urls builds deep links into the review web application. Every
// path parameter is URL-encoded before interpolation.
package urls

import (
	"fmt"
	"net/url"
	"strings"
)

// RouteKind names a page in the review web application.
type RouteKind string

const (
	RouteReviewAndSubmit   RouteKind = "REVIEW_AND_SUBMIT"
	RouteSubmissionSummary RouteKind = "SUBMISSION_SUMMARY"
	RouteSubmissionQA      RouteKind = "SUBMISSION_QA"
	RouteRateSummary       RouteKind = "RATE_SUMMARY"
	RouteRateQA            RouteKind = "RATE_QA"
)

// Builder produces absolute URLs rooted at the configured application base.
type Builder struct {
	baseURL string
}

// NewBuilder trims any trailing slash so joined paths never double up.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// ReviewAndSubmitURL links to the state-side edit page of a draft.
func (b *Builder) ReviewAndSubmitURL(submissionID string) string {
	return fmt.Sprintf("%s/submissions/%s/edit/review-and-submit", b.baseURL, url.PathEscape(submissionID))
}

// SubmissionSummaryURL links to the read-only package summary.
func (b *Builder) SubmissionSummaryURL(submissionID string) string {
	return fmt.Sprintf("%s/submissions/%s", b.baseURL, url.PathEscape(submissionID))
}

// SubmissionQAURL links to the contract-level question and answer page.
func (b *Builder) SubmissionQAURL(submissionID string) string {
	return fmt.Sprintf("%s/submissions/%s/question-and-answers", b.baseURL, url.PathEscape(submissionID))
}

// RateSummaryURL links to one rate certification inside a package.
func (b *Builder) RateSummaryURL(submissionID, rateID string) string {
	return fmt.Sprintf("%s/submissions/%s/rates/%s", b.baseURL, url.PathEscape(submissionID), url.PathEscape(rateID))
}

// RateQAURL links to the rate-level question and answer page.
func (b *Builder) RateQAURL(submissionID, rateID string) string {
	return fmt.Sprintf("%s/submissions/%s/rates/%s/question-and-answers", b.baseURL, url.PathEscape(submissionID), url.PathEscape(rateID))
}

// URL dispatches on kind. secondaryID is the rate id for rate routes and
// ignored elsewhere. Unknown kinds fall back to the submission summary, the
// safest page to land a reader on.
func (b *Builder) URL(kind RouteKind, entityID, secondaryID string) string {
	switch kind {
	case RouteReviewAndSubmit:
		return b.ReviewAndSubmitURL(entityID)
	case RouteSubmissionQA:
		return b.SubmissionQAURL(entityID)
	case RouteRateSummary:
		return b.RateSummaryURL(entityID, secondaryID)
	case RouteRateQA:
		return b.RateQAURL(entityID, secondaryID)
	default:
		return b.SubmissionSummaryURL(entityID)
	}
}
