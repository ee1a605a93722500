package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// Team options
type TeamOption func(*domain.Team)

func WithCapacity(c float64) TeamOption {
	return func(t *domain.Team) {
		t.Capacity = c
	}
}

func WithSkills(skills ...string) TeamOption {
	return func(t *domain.Team) {
		t.Skills = skills
	}
}

func WithTargetSkills(skills ...string) TeamOption {
	return func(t *domain.Team) {
		t.TargetSkills = skills
	}
}

func WithDivision(id string) TeamOption {
	return func(t *domain.Team) {
		t.DivisionID = id
	}
}

func NewTestTeam(name string, opts ...TeamOption) *domain.Team {
	now := time.Now().UTC()
	t := &domain.Team{
		ID:           uuid.NewString(),
		Name:         name,
		Capacity:     40,
		Skills:       []string{},
		TargetSkills: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Cycle options
type CycleOption func(*domain.Cycle)

func WithIterationWeeks(count int, weeks int) CycleOption {
	return func(c *domain.Cycle) {
		c.Iterations = nil
		start := c.StartDate
		for i := 1; i <= count; i++ {
			end := start.AddDate(0, 0, 7*weeks)
			c.Iterations = append(c.Iterations, domain.Iteration{
				Number:    i,
				StartDate: start,
				EndDate:   end,
			})
			start = end
		}
		c.EndDate = start
	}
}

// NewTestCycle creates a cycle starting 2025-01-06 with three
// two-week iterations unless overridden.
func NewTestCycle(name string, opts ...CycleOption) *domain.Cycle {
	now := time.Now().UTC()
	c := &domain.Cycle{
		ID:        uuid.NewString(),
		Name:      name,
		StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	WithIterationWeeks(3, 2)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Epic options
type EpicOption func(*domain.Epic)

func WithEpicStatus(s domain.EpicStatus) EpicOption {
	return func(e *domain.Epic) {
		e.Status = s
	}
}

func WithRequiredSkills(skills ...string) EpicOption {
	return func(e *domain.Epic) {
		e.RequiredSkills = skills
	}
}

func WithDependsOn(ids ...string) EpicOption {
	return func(e *domain.Epic) {
		e.DependsOn = ids
	}
}

func WithEffortPoints(p float64) EpicOption {
	return func(e *domain.Epic) {
		e.EffortPoints = p
	}
}

func NewTestEpic(name string, opts ...EpicOption) *domain.Epic {
	now := time.Now().UTC()
	e := &domain.Epic{
		ID:             uuid.NewString(),
		Name:           name,
		Status:         domain.EpicInProgress,
		RequiredSkills: []string{},
		DependsOn:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestRunWorkCategory(name string) *domain.RunWorkCategory {
	now := time.Now().UTC()
	return &domain.RunWorkCategory{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Allocation options
type AllocationOption func(*domain.Allocation)

func WithRunWorkTarget(categoryID string) AllocationOption {
	return func(a *domain.Allocation) {
		a.EpicID = ""
		a.RunWorkCategoryID = categoryID
	}
}

func NewTestAllocation(teamID, cycleID string, iteration int, percentage float64, epicID string, opts ...AllocationOption) *domain.Allocation {
	now := time.Now().UTC()
	a := &domain.Allocation{
		ID:              uuid.NewString(),
		TeamID:          teamID,
		CycleID:         cycleID,
		IterationNumber: iteration,
		Percentage:      percentage,
		EpicID:          epicID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
