package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SnapshotSchema is the top-level JSON structure for a planning
// snapshot import.
type SnapshotSchema struct {
	Teams             []TeamImport            `json:"teams"`
	Cycles            []CycleImport           `json:"cycles"`
	Epics             []EpicImport            `json:"epics,omitempty"`
	RunWorkCategories []RunWorkImport         `json:"run_work_categories,omitempty"`
	Allocations       []AllocationImport      `json:"allocations"`
}

// TeamImport defines a team in the import file.
type TeamImport struct {
	Ref          string   `json:"ref"`
	Name         string   `json:"name"`
	Capacity     *float64 `json:"capacity,omitempty"`
	Division     string   `json:"division,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	TargetSkills []string `json:"target_skills,omitempty"`
}

// CycleImport defines a planning cycle with its ordered iterations.
type CycleImport struct {
	Ref        string            `json:"ref"`
	Name       string            `json:"name"`
	StartDate  string            `json:"start_date"`
	EndDate    string            `json:"end_date"`
	Iterations []IterationImport `json:"iterations"`
}

// IterationImport defines one time slice within a cycle.
type IterationImport struct {
	Number    int    `json:"number"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// EpicImport defines a unit of project work.
type EpicImport struct {
	Ref            string   `json:"ref"`
	Name           string   `json:"name"`
	Status         string   `json:"status,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	EffortPoints   *float64 `json:"effort_points,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	Complexity     string   `json:"complexity,omitempty"`
	DependsOn      []string `json:"depends_on,omitempty"`
	TargetDate     *string  `json:"target_date,omitempty"`
}

// RunWorkImport defines an ongoing-work category.
type RunWorkImport struct {
	Ref  string `json:"ref"`
	Name string `json:"name"`
}

// AllocationImport commits a team percentage to one work item within
// one iteration. Exactly one of epic_ref and run_work_ref must be set.
type AllocationImport struct {
	TeamRef    string  `json:"team_ref"`
	CycleRef   string  `json:"cycle_ref"`
	Iteration  int     `json:"iteration"`
	Percentage float64 `json:"percentage"`
	EpicRef    string  `json:"epic_ref,omitempty"`
	RunWorkRef string  `json:"run_work_ref,omitempty"`
}

// LoadSnapshotSchema reads and parses a snapshot import JSON file.
func LoadSnapshotSchema(path string) (*SnapshotSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SnapshotSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}
	return &schema, nil
}
