// internal/models/question.go
package models

import "time"

// Division is a CMS reviewer sub-team.
type Division string

const (
	DivisionDMCO Division = "DMCO"
	DivisionDMCP Division = "DMCP"
	DivisionOACT Division = "OACT"
)

// Actor identifies the CMS or state user who added a question or response.
type Actor struct {
	Email      string   `json:"email"`
	GivenName  string   `json:"givenName"`
	FamilyName string   `json:"familyName"`
	Division   Division `json:"divisionAssignment,omitempty"`
}

// Response belongs to exactly one Question.
type Response struct {
	ID        string    `json:"id"`
	AddedBy   Actor     `json:"addedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// Question is one Q&A exchange opened by a reviewer division.
type Question struct {
	ID        string     `json:"id"`
	Division  Division   `json:"division"`
	CreatedAt time.Time  `json:"createdAt"`
	AddedBy   Actor      `json:"addedBy"`
	Responses []Response `json:"responses,omitempty"`
}

// QuestionThread scopes questions to one submission. Contract-level threads
// leave RateID empty; rate-level threads carry the rate revision id.
// Membership grows only by insertion of new questions.
type QuestionThread struct {
	SubmissionID string     `json:"submissionID"`
	RateID       string     `json:"rateID,omitempty"`
	Questions    []Question `json:"questions"`
}
