// internal/routing/chippr.go
package routing

import (
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// legacyCHIPProgramID is the Mississippi CHIP program as it existed before
// the population-covered field was introduced. Older submissions carry no
// population marker, so this id is the only signal that they are CHIP.
const legacyCHIPProgramID = "36c54daf-7611-4a15-8c3b-cdeb3fd7e25a"

// IsChipOrPRSubmission reports whether the submission is CHIP-only or was
// submitted by Puerto Rico. Both classes are outside the review scope of
// OACT and the DMCP submission group.
func IsChipOrPRSubmission(sub models.SubmissionLike) bool {
	if sub.PopulationCovered() == models.PopulationCHIP {
		return true
	}
	// Legacy CHIP detection: submissions that predate the population field
	// have no value set and are identified by the known MS CHIP program.
	if sub.PopulationCovered() == "" && sub.StateCode() == "MS" {
		for _, id := range sub.ProgramIDs() {
			if id == legacyCHIPProgramID {
				return true
			}
		}
	}
	return sub.StateCode() == "PR"
}

// FilterChipAndPRReviewers removes the OACT and DMCP submission group
// addresses from emails, preserving the order of the survivors.
func FilterChipAndPRReviewers(emails []string, oactEmails, dmcpSubmissionEmails []string) []string {
	excluded := make(map[string]struct{}, len(oactEmails)+len(dmcpSubmissionEmails))
	for _, addr := range oactEmails {
		excluded[addr] = struct{}{}
	}
	for _, addr := range dmcpSubmissionEmails {
		excluded[addr] = struct{}{}
	}

	out := make([]string, 0, len(emails))
	for _, addr := range emails {
		if _, ok := excluded[addr]; ok {
			continue
		}
		out = append(out, addr)
	}
	return out
}
