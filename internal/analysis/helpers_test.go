package analysis

import (
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// quarterCycle builds a cycle with n consecutive 2-week iterations.
func quarterCycle(id string, n int) domain.Cycle {
	start := date(2025, 1, 6)
	c := domain.Cycle{ID: id, Name: "Q1", StartDate: start}
	for i := 0; i < n; i++ {
		c.Iterations = append(c.Iterations, domain.Iteration{
			Number:    i + 1,
			StartDate: start.AddDate(0, 0, 14*i),
			EndDate:   start.AddDate(0, 0, 14*(i+1)),
		})
	}
	c.EndDate = start.AddDate(0, 0, 14*n)
	return c
}

func team(id string, capacity float64, skills ...string) domain.Team {
	return domain.Team{ID: id, Name: "Team " + id, Capacity: capacity, Skills: skills}
}

func epic(id string, skills ...string) domain.Epic {
	return domain.Epic{ID: id, Name: "Epic " + id, Status: domain.EpicInProgress, RequiredSkills: skills}
}

func alloc(teamID, cycleID string, iteration int, pct float64, epicID string) domain.Allocation {
	return domain.Allocation{
		ID:              teamID + "-" + cycleID + "-" + epicID,
		TeamID:          teamID,
		CycleID:         cycleID,
		IterationNumber: iteration,
		Percentage:      pct,
		EpicID:          epicID,
	}
}

func runAlloc(teamID, cycleID string, iteration int, pct float64, categoryID string) domain.Allocation {
	a := alloc(teamID, cycleID, iteration, pct, "")
	a.ID = teamID + "-" + cycleID + "-" + categoryID
	a.RunWorkCategoryID = categoryID
	return a
}
