package domain

import "time"

// Allocation commits a percentage of one team's capacity to one work
// item (an epic or a run work category, never both) within one
// iteration of a cycle. Allocations are immutable inputs to analysis.
type Allocation struct {
	ID              string
	TeamID          string
	CycleID         string
	IterationNumber int

	// Percentage is a commitment in [0, 100]. Values outside the range
	// are invalid input and reported, never silently clamped.
	Percentage float64

	EpicID            string
	RunWorkCategoryID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TargetsEpic reports whether the allocation references project work.
func (a Allocation) TargetsEpic() bool {
	return a.EpicID != ""
}

// TargetsRunWork reports whether the allocation references ongoing work.
func (a Allocation) TargetsRunWork() bool {
	return a.RunWorkCategoryID != ""
}

// HasValidTarget reports whether exactly one of epic or run work
// category is referenced.
func (a Allocation) HasValidTarget() bool {
	return a.TargetsEpic() != a.TargetsRunWork()
}

// PercentageInRange reports whether the percentage is within [0, 100].
func (a Allocation) PercentageInRange() bool {
	return a.Percentage >= 0 && a.Percentage <= 100
}
