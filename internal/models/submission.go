// internal/models/submission.go
package models

import "time"

// SubmissionType identifies the shape of a contract package.
type SubmissionType string

const (
	SubmissionTypeContractOnly     SubmissionType = "CONTRACT_ONLY"
	SubmissionTypeContractAndRates SubmissionType = "CONTRACT_AND_RATES"
)

// PopulationCovered identifies the population a package covers. The zero
// value means the submitting state never answered the population question
// (packages submitted before the question existed).
type PopulationCovered string

const (
	PopulationMedicaid        PopulationCovered = "MEDICAID"
	PopulationCHIP            PopulationCovered = "CHIP"
	PopulationMedicaidAndCHIP PopulationCovered = "MEDICAID_AND_CHIP"
)

// ContractType distinguishes a base contract from an amendment.
type ContractType string

const (
	ContractTypeBase      ContractType = "BASE"
	ContractTypeAmendment ContractType = "AMENDMENT"
)

// SubmissionKind distinguishes the standard health-plan contract package
// from the EQRO variant, which carries its own review-subjection rule.
type SubmissionKind string

const (
	KindHealthPlan SubmissionKind = "HEALTH_PLAN"
	KindEQRO       SubmissionKind = "EQRO"
)

// Program is one entry of a state's program catalog.
type Program struct {
	ID            string `json:"id"`
	ShortName     string `json:"shortName"`
	FullName      string `json:"fullName"`
	IsRateProgram bool   `json:"isRateProgram"`
}

// RateRevision is a rate certification attached to a contract-and-rates
// package. Only the fields the notification engine reads are modeled.
type RateRevision struct {
	ID                    string    `json:"id"`
	RateCertificationName string    `json:"rateCertificationName"`
	CreatedAt             time.Time `json:"createdAt"`
}

// SubmissionLike is the accessor contract the routing engine depends on.
// Both lifecycle snapshots (submitted and unlocked) satisfy it identically,
// so reviewer policy and catalog validation are written once.
type SubmissionLike interface {
	ID() string
	Kind() SubmissionKind
	StateCode() string
	StateNumber() int
	SubmissionType() SubmissionType
	RiskBasedContract() bool
	PopulationCovered() PopulationCovered
	ProgramIDs() []string
	ContractType() ContractType
	RateRevisions() []RateRevision
	StateContactEmails() []string
	SubmitterEmails() []string
}

// SubmissionForm holds the form data shared by both lifecycle snapshots.
type SubmissionForm struct {
	SubmissionKind    SubmissionKind    `json:"submissionKind"`
	StateCode         string            `json:"stateCode"`
	StateNumber       int               `json:"stateNumber"`
	SubmissionType    SubmissionType    `json:"submissionType"`
	RiskBasedContract bool              `json:"riskBasedContract"`
	PopulationCovered PopulationCovered `json:"populationCovered,omitempty"`
	ProgramIDs        []string          `json:"programIDs"`
	ContractType      ContractType      `json:"contractType"`
	RateRevisions     []RateRevision    `json:"rateRevisions,omitempty"`
}

// SubmittedSubmission is the immutable, already-sent lifecycle snapshot.
type SubmittedSubmission struct {
	SubmissionID  string         `json:"id"`
	Form          SubmissionForm `json:"form"`
	SubmittedAt   time.Time      `json:"submittedAt"`
	Submitters    []string       `json:"submitterEmails"`
	StateContacts []string       `json:"stateContactEmails"`
}

func (s *SubmittedSubmission) ID() string                          { return s.SubmissionID }
func (s *SubmittedSubmission) Kind() SubmissionKind                { return s.Form.SubmissionKind }
func (s *SubmittedSubmission) StateCode() string                   { return s.Form.StateCode }
func (s *SubmittedSubmission) StateNumber() int                    { return s.Form.StateNumber }
func (s *SubmittedSubmission) SubmissionType() SubmissionType      { return s.Form.SubmissionType }
func (s *SubmittedSubmission) RiskBasedContract() bool             { return s.Form.RiskBasedContract }
func (s *SubmittedSubmission) PopulationCovered() PopulationCovered {
	return s.Form.PopulationCovered
}
func (s *SubmittedSubmission) ProgramIDs() []string          { return s.Form.ProgramIDs }
func (s *SubmittedSubmission) ContractType() ContractType    { return s.Form.ContractType }
func (s *SubmittedSubmission) RateRevisions() []RateRevision { return s.Form.RateRevisions }
func (s *SubmittedSubmission) StateContactEmails() []string  { return s.StateContacts }
func (s *SubmittedSubmission) SubmitterEmails() []string     { return s.Submitters }

// UnlockedSubmission is the mutable draft snapshot created when a CMS
// reviewer unlocks a previously submitted package.
type UnlockedSubmission struct {
	SubmissionID  string         `json:"id"`
	Form          SubmissionForm `json:"form"`
	UnlockedAt    time.Time      `json:"unlockedAt"`
	UnlockedBy    string         `json:"unlockedBy"`
	Submitters    []string       `json:"submitterEmails"`
	StateContacts []string       `json:"stateContactEmails"`
}

func (u *UnlockedSubmission) ID() string                     { return u.SubmissionID }
func (u *UnlockedSubmission) Kind() SubmissionKind           { return u.Form.SubmissionKind }
func (u *UnlockedSubmission) StateCode() string              { return u.Form.StateCode }
func (u *UnlockedSubmission) StateNumber() int               { return u.Form.StateNumber }
func (u *UnlockedSubmission) SubmissionType() SubmissionType { return u.Form.SubmissionType }
func (u *UnlockedSubmission) RiskBasedContract() bool        { return u.Form.RiskBasedContract }
func (u *UnlockedSubmission) PopulationCovered() PopulationCovered {
	return u.Form.PopulationCovered
}
func (u *UnlockedSubmission) ProgramIDs() []string          { return u.Form.ProgramIDs }
func (u *UnlockedSubmission) ContractType() ContractType    { return u.Form.ContractType }
func (u *UnlockedSubmission) RateRevisions() []RateRevision { return u.Form.RateRevisions }
func (u *UnlockedSubmission) StateContactEmails() []string  { return u.StateContacts }
func (u *UnlockedSubmission) SubmitterEmails() []string     { return u.Submitters }

// EQROSubjectToReview is the EQRO-specific review-subjection rule. EQRO
// packages are never subject to actuarial review; instead a base contract
// pulls in the policy review team while amendments are exempt.
func EQROSubjectToReview(sub SubmissionLike) bool {
	return sub.Kind() == KindEQRO && sub.ContractType() == ContractTypeBase
}
