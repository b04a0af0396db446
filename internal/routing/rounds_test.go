// internal/routing/rounds_test.go
package routing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createQuestion(id string, division models.Division, createdAt time.Time) models.Question {
	return models.Question{
		ID:        id,
		Division:  division,
		CreatedAt: createdAt,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestQuestionRound(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	q1 := createQuestion("q1", models.DivisionDMCO, base)
	q2 := createQuestion("q2", models.DivisionDMCO, base.Add(1*time.Hour))
	q3 := createQuestion("q3", models.DivisionDMCO, base.Add(2*time.Hour))
	q4 := createQuestion("q4", models.DivisionDMCO, base.Add(3*time.Hour))
	oact1 := createQuestion("oact1", models.DivisionOACT, base.Add(30*time.Minute))

	tests := []struct {
		name          string
		all           []models.Question
		current       models.Question
		expectedRound int
	}{
		{
			name:          "first question is round one",
			all:           []models.Question{q1},
			current:       q1,
			expectedRound: 1,
		},
		{
			name:          "third of four by creation time",
			all:           []models.Question{q1, q2, q3, q4},
			current:       q3,
			expectedRound: 3,
		},
		{
			name:          "input order does not matter",
			all:           []models.Question{q4, q2, q3, q1},
			current:       q3,
			expectedRound: 3,
		},
		{
			name:          "other divisions do not advance the round",
			all:           []models.Question{q1, oact1, q2},
			current:       q2,
			expectedRound: 2,
		},
		{
			name:          "division question counted from its own timeline",
			all:           []models.Question{q1, oact1, q2},
			current:       oact1,
			expectedRound: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round, err := QuestionRound(tt.all, tt.current)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRound, round)
		})
	}
}

func TestQuestionRound_Monotonicity(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	all := []models.Question{
		createQuestion("q1", models.DivisionDMCP, base),
		createQuestion("q2", models.DivisionDMCP, base.Add(time.Hour)),
		createQuestion("q3", models.DivisionDMCP, base.Add(2*time.Hour)),
	}

	for i, q := range all {
		round, err := QuestionRound(all, q)
		assert.NoError(t, err)
		assert.Equal(t, i+1, round)
	}

	// Appending a later question must not renumber earlier rounds.
	extended := append([]models.Question{}, all...)
	extended = append(extended, createQuestion("q4", models.DivisionDMCP, base.Add(3*time.Hour)))

	for i, q := range all {
		round, err := QuestionRound(extended, q)
		assert.NoError(t, err)
		assert.Equal(t, i+1, round)
	}
}

func TestQuestionRound_IdenticalTimestampsKeepInputOrder(t *testing.T) {
	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	qa := createQuestion("qa", models.DivisionDMCO, ts)
	qb := createQuestion("qb", models.DivisionDMCO, ts)

	roundA, err := QuestionRound([]models.Question{qa, qb}, qa)
	assert.NoError(t, err)
	assert.Equal(t, 1, roundA)

	roundB, err := QuestionRound([]models.Question{qa, qb}, qb)
	assert.NoError(t, err)
	assert.Equal(t, 2, roundB)
}

// ==========================
// Error Handling Tests
// ==========================

func TestQuestionRound_Errors(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	q1 := createQuestion("q1", models.DivisionDMCO, base)

	t.Run("no questions in division", func(t *testing.T) {
		orphan := createQuestion("orphan", models.DivisionOACT, base)
		_, err := QuestionRound([]models.Question{q1}, orphan)

		var rErr *apperrors.RoutingError
		assert.ErrorAs(t, err, &rErr)
		assert.Equal(t, apperrors.ErrCodeEmptyQuestionDivision, rErr.Code)
	})

	t.Run("current question missing from list", func(t *testing.T) {
		ghost := createQuestion("ghost", models.DivisionDMCO, base.Add(time.Hour))
		_, err := QuestionRound([]models.Question{q1}, ghost)

		var rErr *apperrors.RoutingError
		assert.ErrorAs(t, err, &rErr)
		assert.Equal(t, apperrors.ErrCodeQuestionNotFound, rErr.Code)
	})

	t.Run("empty question list", func(t *testing.T) {
		_, err := QuestionRound(nil, q1)

		var rErr *apperrors.RoutingError
		assert.ErrorAs(t, err, &rErr)
		assert.Equal(t, apperrors.ErrCodeEmptyQuestionDivision, rErr.Code)
	})
}
