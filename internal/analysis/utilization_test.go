package analysis

import (
	"testing"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTeamCapacity_TotalCapacityHours(t *testing.T) {
	// 3 iterations x 2 weeks x 40 h/week.
	cycle := quarterCycle("q1", 3)
	result := CalculateTeamCapacity(team("a", 40), nil, cycle, nil, nil, DefaultPolicy())
	assert.InDelta(t, 240.0, result.TotalCapacityHours, 1e-9)
}

func TestCalculateTeamCapacity_IterationFlags(t *testing.T) {
	cycle := quarterCycle("q1", 3)
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 70, "e1"),
		alloc("a", "q1", 1, 40, "e2"),
		alloc("a", "q1", 2, 50, "e1"),
	}
	epics := []domain.Epic{epic("e1"), epic("e2")}

	result := CalculateTeamCapacity(team("a", 40), allocations, cycle, epics, nil, DefaultPolicy())

	assert.Len(t, result.Iterations, 3)
	assert.InDelta(t, 110, result.Iterations[0].AllocatedPct, 1e-9)
	assert.True(t, result.Iterations[0].IsOverAllocated)
	assert.False(t, result.Iterations[0].IsUnderAllocated)
	assert.InDelta(t, 50, result.Iterations[1].AllocatedPct, 1e-9)
	assert.True(t, result.Iterations[1].IsUnderAllocated)
	assert.Equal(t, 0.0, result.Iterations[2].AllocatedPct)
	assert.False(t, result.Iterations[2].IsUnderAllocated)
}

func TestCalculateTeamCapacity_AveragesExcludeEmptyIterations(t *testing.T) {
	cycle := quarterCycle("q1", 4)
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 90, "e1"),
		alloc("a", "q1", 3, 60, "e1"),
	}
	result := CalculateTeamCapacity(team("a", 40), allocations, cycle, []domain.Epic{epic("e1")}, nil, DefaultPolicy())

	// Iterations 2 and 4 are empty and excluded, not counted as zero.
	assert.InDelta(t, 75, result.AverageUtilizationPct, 1e-9)
	assert.InDelta(t, 90, result.PeakUtilizationPct, 1e-9)
	assert.InDelta(t, 60, result.MinUtilizationPct, 1e-9)
}

func TestCalculateTeamCapacity_NoAllocations(t *testing.T) {
	cycle := quarterCycle("q1", 3)
	result := CalculateTeamCapacity(team("a", 40), nil, cycle, nil, nil, DefaultPolicy())

	assert.Equal(t, 0.0, result.AverageUtilizationPct)
	assert.Equal(t, 0.0, result.PeakUtilizationPct)
	assert.Equal(t, 0.0, result.MinUtilizationPct)
	assert.Equal(t, domain.TrendStable, result.Trend)
	if assert.NotEmpty(t, result.Recommendations) {
		assert.Contains(t, result.Recommendations[0], "no work allocated")
	}
}

func TestCalculateTeamCapacity_ZeroCapacityRecommendationFirst(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	result := CalculateTeamCapacity(team("a", 0), nil, cycle, nil, nil, DefaultPolicy())

	assert.Equal(t, 0.0, result.TotalCapacityHours)
	if assert.GreaterOrEqual(t, len(result.Recommendations), 2) {
		assert.Contains(t, result.Recommendations[0], "zero capacity")
		assert.Contains(t, result.Recommendations[1], "no work allocated")
	}
}

func TestCalculateTeamCapacity_NegativeCapacityClamped(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	result := CalculateTeamCapacity(team("a", -40), nil, cycle, nil, nil, DefaultPolicy())
	assert.Equal(t, 0.0, result.TotalCapacityHours)
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		want domain.TrendDirection
	}{
		{"fewer than three points", []float64{50, 120}, domain.TrendStable},
		{"increasing", []float64{50, 60, 90}, domain.TrendIncreasing},
		{"strictly monotonic fall", []float64{90, 60, 50}, domain.TrendDecreasing},
		{"declining with bump", []float64{90, 95, 80}, domain.TrendDeclining},
		{"flat", []float64{80, 80, 80}, domain.TrendStable},
		{"last equals first", []float64{80, 90, 80}, domain.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTrend(tt.vals))
		})
	}
}

func TestCalculateTeamCapacity_SkillGapsDeduplicated(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 40, "e1"),
		alloc("a", "q1", 2, 40, "e2"),
	}
	epics := []domain.Epic{
		epic("e1", "go", "ml"),
		epic("e2", "ml", "sql"),
	}
	result := CalculateTeamCapacity(team("a", 40, "go", "sql"), allocations, cycle, epics, nil, DefaultPolicy())
	assert.Equal(t, []string{"ml"}, result.SkillGaps)
}

func TestCalculateTeamCapacity_RedistributionRecommendation(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 120, "e1"),
		alloc("a", "q1", 2, 50, "e1"),
	}
	result := CalculateTeamCapacity(team("a", 40), allocations, cycle, []domain.Epic{epic("e1")}, nil, DefaultPolicy())

	if assert.NotEmpty(t, result.Recommendations) {
		last := result.Recommendations[len(result.Recommendations)-1]
		assert.Contains(t, last, "moving 20.0%")
		assert.Contains(t, last, "iteration 1")
		assert.Contains(t, last, "iteration 2")
	}
}

func TestCalculateTeamCapacity_IgnoresOtherTeamsAndCycles(t *testing.T) {
	cycle := quarterCycle("q1", 2)
	allocations := []domain.Allocation{
		alloc("a", "q1", 1, 50, "e1"),
		alloc("b", "q1", 1, 90, "e1"),
		alloc("a", "q2", 1, 90, "e1"),
	}
	result := CalculateTeamCapacity(team("a", 40), allocations, cycle, []domain.Epic{epic("e1")}, nil, DefaultPolicy())
	assert.InDelta(t, 50, result.Iterations[0].AllocatedPct, 1e-9)
}
