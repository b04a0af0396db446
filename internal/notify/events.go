// Package notify assembles outbound notification emails for submission
// lifecycle events. One Build call produces one ready-to-send message; the
// mail transport is out of scope.
package notify

import (
	"time"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// EventKind names a submission lifecycle event.
type EventKind string

const (
	EventNewSubmission     EventKind = "NEW_SUBMISSION"
	EventResubmission      EventKind = "RESUBMISSION"
	EventUnlock            EventKind = "UNLOCK"
	EventNewQuestion       EventKind = "NEW_QUESTION"
	EventNewResponse       EventKind = "NEW_RESPONSE"
	EventRateWithdrawn     EventKind = "RATE_WITHDRAWN"
	EventUndoRateWithdrawn EventKind = "UNDO_RATE_WITHDRAWN"
)

// Audience selects which side of the review gets the message. Most events
// produce one notification per audience, built independently.
type Audience string

const (
	AudienceCMS   Audience = "CMS"
	AudienceState Audience = "STATE"
)

// Event carries everything one notification build needs. Question and
// response fields are only set for the question and response kinds; RateID
// is only set for rate-scoped events.
type Event struct {
	Kind     EventKind
	Audience Audience

	Submission         models.SubmissionLike
	StateAnalystEmails []string

	Questions       []models.Question
	CurrentQuestion *models.Question
	CurrentResponse *models.Response

	RateID     string
	RateName   string
	UpdatedBy  string
	Reason     string
	OccurredAt time.Time
}
