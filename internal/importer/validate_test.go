package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func validSchema() *SnapshotSchema {
	return &SnapshotSchema{
		Teams: []TeamImport{
			{Ref: "t-alpha", Name: "Alpha", Capacity: floatPtr(40), Skills: []string{"go"}},
		},
		Cycles: []CycleImport{
			{
				Ref: "q1", Name: "Q1 2025", StartDate: "2025-01-06", EndDate: "2025-03-31",
				Iterations: []IterationImport{
					{Number: 1, StartDate: "2025-01-06", EndDate: "2025-01-20"},
					{Number: 2, StartDate: "2025-01-20", EndDate: "2025-02-03"},
				},
			},
		},
		Epics: []EpicImport{
			{Ref: "e1", Name: "Billing revamp", Status: "in_progress", RequiredSkills: []string{"go"}},
		},
		RunWorkCategories: []RunWorkImport{
			{Ref: "support", Name: "Support"},
		},
		Allocations: []AllocationImport{
			{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 1, Percentage: 70, EpicRef: "e1"},
			{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 2, Percentage: 20, RunWorkRef: "support"},
		},
	}
}

func errorStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

func TestValidateSnapshotSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateSnapshotSchema(validSchema()))
}

func TestValidateSnapshotSchema_TeamErrors(t *testing.T) {
	schema := validSchema()
	schema.Teams = append(schema.Teams,
		TeamImport{Ref: "t-alpha", Name: "Dup"},
		TeamImport{Name: "No ref", Capacity: floatPtr(-5)},
	)

	errs := errorStrings(ValidateSnapshotSchema(schema))
	assert.Contains(t, errs, `teams[1].ref: duplicate ref "t-alpha"`)
	assert.Contains(t, errs, "teams[2].ref is required")
	assert.Contains(t, errs, "teams[2].capacity must be non-negative, got -5")
}

func TestValidateSnapshotSchema_IterationOrdering(t *testing.T) {
	schema := validSchema()
	schema.Cycles[0].Iterations = []IterationImport{
		{Number: 1, StartDate: "2025-01-06", EndDate: "2025-01-20"},
		{Number: 2, StartDate: "2025-01-13", EndDate: "2025-01-27"}, // overlaps
	}

	errs := errorStrings(ValidateSnapshotSchema(schema))
	assert.Contains(t, errs, `cycles[0].iterations[1]: start_date "2025-01-13" overlaps previous iteration`)
}

func TestValidateSnapshotSchema_InvertedIteration(t *testing.T) {
	schema := validSchema()
	schema.Cycles[0].Iterations = []IterationImport{
		{Number: 1, StartDate: "2025-01-20", EndDate: "2025-01-06"},
	}

	errs := errorStrings(ValidateSnapshotSchema(schema))
	assert.Contains(t, errs, `cycles[0].iterations[0]: end_date "2025-01-06" must be after start_date "2025-01-20"`)
}

func TestValidateSnapshotSchema_AllocationTargets(t *testing.T) {
	schema := validSchema()
	schema.Allocations = []AllocationImport{
		{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 1, Percentage: 50},
		{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 1, Percentage: 50, EpicRef: "e1", RunWorkRef: "support"},
		{TeamRef: "t-alpha", CycleRef: "q1", Iteration: 1, Percentage: 50, EpicRef: "ghost"},
	}

	errs := errorStrings(ValidateSnapshotSchema(schema))
	assert.Contains(t, errs, "allocations[0]: one of epic_ref or run_work_ref is required")
	assert.Contains(t, errs, "allocations[1]: epic_ref and run_work_ref are mutually exclusive")
	assert.Contains(t, errs, `allocations[2].epic_ref: ref "ghost" not found in epics`)
}

func TestValidateSnapshotSchema_PercentageRange(t *testing.T) {
	schema := validSchema()
	schema.Allocations[0].Percentage = 101

	errs := errorStrings(ValidateSnapshotSchema(schema))
	assert.Contains(t, errs, "allocations[0].percentage must be within [0, 100], got 101")
}

func TestValidateSnapshotSchema_UnknownIteration(t *testing.T) {
	schema := validSchema()
	schema.Allocations[0].Iteration = 9

	errs := errorStrings(ValidateSnapshotSchema(schema))
	assert.Contains(t, errs, `allocations[0].iteration: cycle "q1" has no iteration 9`)
}

func TestValidateSnapshotSchema_EpicDependencies(t *testing.T) {
	schema := validSchema()
	schema.Epics = append(schema.Epics,
		EpicImport{Ref: "e2", Name: "Depends forward", DependsOn: []string{"e3", "missing"}},
		EpicImport{Ref: "e3", Name: "Forward target", DependsOn: []string{"e3"}},
	)

	errs := errorStrings(ValidateSnapshotSchema(schema))
	// Forward references are fine; missing and self references are not.
	assert.Contains(t, errs, `epics[1].depends_on: ref "missing" not found in epics`)
	assert.Contains(t, errs, `epics[2]: self-dependency on "e3"`)
	assert.NotContains(t, errs, `epics[1].depends_on: ref "e3" not found in epics`)
}

func TestValidateSnapshotSchema_EpicStatus(t *testing.T) {
	schema := validSchema()
	schema.Epics[0].Status = "paused"

	errs := errorStrings(ValidateSnapshotSchema(schema))
	assert.Contains(t, errs, `epics[0].status: invalid value "paused"`)
}
