package analysis

import (
	"testing"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTrends_VelocityChange(t *testing.T) {
	cycle := quarterCycle("q1", 3)
	teams := []domain.Team{team("a", 40)}
	epics := []domain.Epic{epic("e1")}
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 50, "e1"),
		alloc("a", "q1", 2, 70, "e1"),
		alloc("a", "q1", 3, 90, "e1"),
	}

	trends := AnalyzeTrends(cycle, allocations, teams, epics, DefaultPolicy())

	require.Len(t, trends.Teams, 1)
	tr := trends.Teams[0]
	assert.InDelta(t, 40, tr.VelocityChangePct, 1e-9) // 90 - 50
	assert.Equal(t, domain.TrendIncreasing, tr.Direction)
	assert.Equal(t, domain.RiskNone, tr.BurnoutRisk)
}

func TestAnalyzeTrends_BurnoutRiskEscalation(t *testing.T) {
	cycle := quarterCycle("q1", 4)
	teams := []domain.Team{team("a", 40)}
	epics := []domain.Epic{epic("e1")}

	two := []domain.Allocation{
		alloc("a", "q1", 1, 110, "e1"),
		alloc("a", "q1", 2, 105, "e1"),
	}
	trends := AnalyzeTrends(cycle, two, teams, epics, DefaultPolicy())
	require.Len(t, trends.Teams, 1)
	assert.Equal(t, domain.RiskMedium, trends.Teams[0].BurnoutRisk)
	assert.Equal(t, 2, trends.Teams[0].OverloadedIterations)

	three := append(two, alloc("a", "q1", 3, 120, "e1"))
	trends = AnalyzeTrends(cycle, three, teams, epics, DefaultPolicy())
	assert.Equal(t, domain.RiskHigh, trends.Teams[0].BurnoutRisk)
}

func TestAnalyzeTrends_SingleIterationIsStable(t *testing.T) {
	cycle := quarterCycle("q1", 3)
	teams := []domain.Team{team("a", 40)}
	epics := []domain.Epic{epic("e1")}

	trends := AnalyzeTrends(cycle, []domain.Allocation{alloc("a", "q1", 2, 90, "e1")}, teams, epics, DefaultPolicy())

	require.Len(t, trends.Teams, 1)
	assert.Equal(t, domain.TrendStable, trends.Teams[0].Direction)
	assert.Equal(t, 0.0, trends.Teams[0].VelocityChangePct)
}

func TestAnalyzeTrends_TeamsSortedAndScopedToCycle(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	teams := []domain.Team{team("b", 40), team("a", 40)}
	epics := []domain.Epic{epic("e1")}
	allocations := []domain.Allocation{
		alloc("b", "q1", 1, 50, "e1"),
		alloc("a", "q1", 1, 50, "e1"),
		alloc("a", "q2", 1, 150, "e1"), // other cycle, ignored
	}

	trends := AnalyzeTrends(cycle, allocations, teams, epics, DefaultPolicy())

	require.Len(t, trends.Teams, 2)
	assert.Equal(t, "a", trends.Teams[0].TeamID)
	assert.Equal(t, "b", trends.Teams[1].TeamID)
	assert.Equal(t, 0, trends.Teams[0].OverloadedIterations)
}
