// internal/routing/reviewers.go
package routing

import (
	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/config"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// ReviewerEmails resolves the CMS-side reviewer audience for a submission.
//
// Health plan submissions always reach the dev review team, the state's
// analysts, the DMCP submission group and DMCO. OACT joins only for
// risk-based contract-and-rates packages. EQRO submissions route to the
// dev review team, the state's analysts and DMCO, with the DMCP review
// group added when the submission is subject to EQRO review. CHIP-only and
// Puerto Rico submissions then have the OACT and DMCP submission addresses
// stripped back out.
func ReviewerEmails(sub models.SubmissionLike, cfg *config.NotificationConfig, stateAnalystEmails []string) ([]string, error) {
	var emails []string

	switch sub.Kind() {
	case models.KindEQRO:
		emails = append(emails, cfg.DevReviewTeamEmails...)
		emails = append(emails, stateAnalystEmails...)
		emails = append(emails, cfg.DMCOEmails...)
		if models.EQROSubjectToReview(sub) {
			emails = append(emails, cfg.DMCPReviewEmails...)
		}

	case models.KindHealthPlan:
		switch sub.SubmissionType() {
		case models.SubmissionTypeContractOnly, models.SubmissionTypeContractAndRates:
		default:
			return nil, apperrors.NewUnsupportedSubmissionTypeError(string(sub.SubmissionType()))
		}

		emails = append(emails, cfg.DevReviewTeamEmails...)
		emails = append(emails, stateAnalystEmails...)
		emails = append(emails, cfg.DMCPSubmissionEmails...)
		emails = append(emails, cfg.DMCOEmails...)
		if sub.SubmissionType() == models.SubmissionTypeContractAndRates && sub.RiskBasedContract() {
			emails = append(emails, cfg.OACTEmails...)
		}

	default:
		return nil, apperrors.NewUnsupportedSubmissionTypeError(string(sub.Kind()))
	}

	if IsChipOrPRSubmission(sub) {
		emails = FilterChipAndPRReviewers(emails, cfg.OACTEmails, cfg.DMCPSubmissionEmails)
	}

	return DedupeAddresses(emails), nil
}

// QuestionRecipients resolves the CMS-side audience for question and
// response notifications. The asking division's specialist group is added
// on top of the analysts and the dev review team: DMCP questions pull in
// the DMCP review group, OACT questions pull in OACT when the contract is
// risk based. DMCO questions add no extra group.
func QuestionRecipients(division models.Division, cfg *config.NotificationConfig, stateAnalystEmails []string, riskBasedContract bool) []string {
	emails := make([]string, 0, len(stateAnalystEmails)+len(cfg.DevReviewTeamEmails))
	emails = append(emails, stateAnalystEmails...)
	emails = append(emails, cfg.DevReviewTeamEmails...)

	switch division {
	case models.DivisionDMCP:
		emails = append(emails, cfg.DMCPReviewEmails...)
	case models.DivisionOACT:
		if riskBasedContract {
			emails = append(emails, cfg.OACTEmails...)
		}
	}

	return DedupeAddresses(emails)
}

// StateRecipients resolves the state-side audience: everyone listed as a
// state contact on the submission plus the users who submitted it.
func StateRecipients(sub models.SubmissionLike) []string {
	emails := make([]string, 0, len(sub.StateContactEmails())+len(sub.SubmitterEmails()))
	emails = append(emails, sub.StateContactEmails()...)
	emails = append(emails, sub.SubmitterEmails()...)
	return DedupeAddresses(emails)
}
