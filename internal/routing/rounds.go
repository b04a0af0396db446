// internal/routing/rounds.go
package routing

import (
	"sort"

	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// QuestionRound computes the 1-based sequential round number of current
// within its division. A round only advances when a new question is
// created in that division, never on a response.
//
// Questions with identical timestamps keep their input order (stable
// sort). That tie-break is an artifact of list construction rather than a
// business rule; it is preserved as-is pending product clarification.
func QuestionRound(allQuestions []models.Question, current models.Question) (int, error) {
	divisionQuestions := make([]models.Question, 0, len(allQuestions))
	for _, q := range allQuestions {
		if q.Division == current.Division {
			divisionQuestions = append(divisionQuestions, q)
		}
	}

	if len(divisionQuestions) == 0 {
		return 0, apperrors.NewEmptyDivisionError(string(current.Division))
	}

	sort.SliceStable(divisionQuestions, func(i, j int) bool {
		return divisionQuestions[i].CreatedAt.Before(divisionQuestions[j].CreatedAt)
	})

	for i, q := range divisionQuestions {
		if q.ID == current.ID {
			return i + 1, nil
		}
	}

	return 0, apperrors.NewQuestionNotFoundError(current.ID)
}
