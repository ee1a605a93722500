package domain

import "time"

type Epic struct {
	ID     string
	Name   string
	Status EpicStatus

	RequiredSkills []string

	// EffortPoints sizes the epic for impact scoring; the unit is
	// whatever the organization estimates in (points, weeks).
	EffortPoints float64

	Priority   string
	Complexity string

	// DependsOn lists epic IDs that must reach completed status before
	// this epic may be concurrently staffed.
	DependsOn []string

	TargetDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RunWorkCategory labels ongoing non-project work. It carries no
// dependency or skill constraints.
type RunWorkCategory struct {
	ID   string
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}
