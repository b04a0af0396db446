// Package catalog loads the per-state program catalogs that program-ID
// validation runs against. The data ships inside the binary; states and
// programs change rarely and always via a release.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

//go:embed statePrograms.json
var stateProgramsJSON []byte

type stateEntry struct {
	Code     string           `json:"code"`
	Name     string           `json:"name"`
	Programs []models.Program `json:"programs"`
}

type programFile struct {
	States []stateEntry `json:"states"`
}

// Catalog holds every known state's program list, keyed by state code.
type Catalog struct {
	states map[string]stateEntry
}

// Load parses the embedded program data. Called once at process start.
func Load() (*Catalog, error) {
	var file programFile
	if err := json.Unmarshal(stateProgramsJSON, &file); err != nil {
		return nil, fmt.Errorf("parsing embedded state programs: %w", err)
	}

	states := make(map[string]stateEntry, len(file.States))
	for _, s := range file.States {
		states[strings.ToUpper(s.Code)] = s
	}
	return &Catalog{states: states}, nil
}

// ForState returns the program list for a state code in catalog order. An
// unknown state returns ok=false; callers treat that as a catalog mismatch
// rather than panicking on a nil slice.
func (c *Catalog) ForState(code string) ([]models.Program, bool) {
	entry, ok := c.states[strings.ToUpper(code)]
	if !ok {
		return nil, false
	}
	return entry.Programs, true
}

// StateName returns the display name for a state code, falling back to the
// code itself.
func (c *Catalog) StateName(code string) string {
	if entry, ok := c.states[strings.ToUpper(code)]; ok {
		return entry.Name
	}
	return strings.ToUpper(code)
}
