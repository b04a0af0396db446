// internal/routing/programs.go
package routing

import (
	"fmt"
	"strings"

	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// ValidatePrograms checks program-ID referential integrity against the
// issuing state's catalog. It filters the catalog to the programs whose id
// appears in requestedIDs and fails when the counts differ: a missing id
// and a duplicate requested id both surface as a structural error, never a
// silently partial result. On success the matched programs come back in
// catalog order, which downstream package-name generation relies on.
func ValidatePrograms(stateCode string, requestedIDs []string, catalog []models.Program) ([]models.Program, error) {
	requested := make(map[string]struct{}, len(requestedIDs))
	for _, id := range requestedIDs {
		requested[id] = struct{}{}
	}

	matched := make([]models.Program, 0, len(requestedIDs))
	for _, program := range catalog {
		if _, ok := requested[program.ID]; ok {
			matched = append(matched, program)
		}
	}

	// Duplicates in requestedIDs are intentionally not deduplicated before
	// this check, so a duplicated id fails even when the catalog has it.
	if len(matched) != len(requestedIDs) {
		return nil, apperrors.NewProgramCatalogError(stateCode, requestedIDs)
	}

	return matched, nil
}

// PackageName builds the human-readable package label used in subjects and
// template bodies, e.g. "MCR-MN-0005-SNBC-PMAP". Program short names are
// appended in catalog order.
func PackageName(stateCode string, stateNumber int, programs []models.Program) string {
	parts := []string{"MCR", strings.ToUpper(stateCode), fmt.Sprintf("%04d", stateNumber)}
	for _, program := range programs {
		parts = append(parts, strings.ToUpper(program.ShortName))
	}
	return strings.Join(parts, "-")
}
