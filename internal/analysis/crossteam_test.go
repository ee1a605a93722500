package analysis

import (
	"testing"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCrossTeamDependencies_SharedEpicTiers(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	teams := []domain.Team{team("a", 40), team("b", 40), team("c", 40), team("d", 40)}
	shared := epic("eS")
	shared.EffortPoints = 8

	tests := []struct {
		name     string
		staffing []string
		risk     domain.RiskLevel
		cadence  MeetingCadence
	}{
		{"two teams", []string{"a", "b"}, domain.RiskLow, CadenceWeekly},
		{"three teams", []string{"a", "b", "c"}, domain.RiskMedium, CadenceWeekly},
		{"four teams", []string{"a", "b", "c", "d"}, domain.RiskHigh, CadenceDaily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var allocations []domain.Allocation
			for i, id := range tt.staffing {
				// Spread staffing across iterations: the grouping
				// ignores iteration boundaries.
				allocations = append(allocations, alloc(id, "q1", 1+i%2, 30, "eS"))
			}

			result := AnalyzeCrossTeamDependencies(cycle, allocations, teams, []domain.Epic{shared}, DefaultPolicy())

			require.Len(t, result.SharedEpics, 1)
			se := result.SharedEpics[0]
			assert.Equal(t, tt.staffing, se.TeamIDs)
			assert.Equal(t, tt.risk, se.CoordinationRisk)
			assert.Equal(t, tt.cadence, se.MeetingCadence)
			assert.InDelta(t, 8*float64(len(tt.staffing)), se.ImpactScore, 1e-9)
		})
	}
}

func TestAnalyzeCrossTeamDependencies_SingleTeamEpicNotShared(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	teams := []domain.Team{team("a", 40)}
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 50, "e1"),
		alloc("a", "q1", 2, 50, "e1"),
	}

	result := AnalyzeCrossTeamDependencies(cycle, allocations, teams, []domain.Epic{epic("e1")}, DefaultPolicy())
	assert.Empty(t, result.SharedEpics)
}

func TestAnalyzeCrossTeamDependencies_Bottlenecks(t *testing.T) {
	cycle := quarterCycle("q1", 3)
	teams := []domain.Team{team("a", 40), team("b", 40)}
	epics := []domain.Epic{epic("e1"), epic("e2")}

	// Team a sums to 240% across all allocations, past the 200 threshold.
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 90, "e1"),
		alloc("a", "q1", 2, 80, "e2"),
		alloc("a", "q1", 3, 70, "e1"),
		alloc("b", "q1", 1, 60, "e1"),
	}

	result := AnalyzeCrossTeamDependencies(cycle, allocations, teams, epics, DefaultPolicy())

	require.Len(t, result.Bottlenecks, 1)
	b := result.Bottlenecks[0]
	assert.Equal(t, "a", b.TeamID)
	assert.InDelta(t, 240, b.TotalWorkloadPct, 1e-9)
	assert.Equal(t, []string{"e1", "e2"}, b.EpicIDs)
}
