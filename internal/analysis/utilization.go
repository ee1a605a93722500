package analysis

import (
	"fmt"
	"strings"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// CalculateTeamCapacity derives utilization metrics for one team over
// one cycle. The full allocation set may be passed; allocations for
// other teams or cycles, and allocations with unresolvable epic
// references, are ignored.
func CalculateTeamCapacity(
	team domain.Team,
	allocations []domain.Allocation,
	cycle domain.Cycle,
	epics []domain.Epic,
	runWork []domain.RunWorkCategory,
	p Policy,
) TeamCapacityUtilization {
	l := buildLookups([]domain.Team{team}, epics, []domain.Cycle{cycle}, runWork)
	team = l.teams[team.ID]

	sums := sumByTeamIteration(allocations, l)
	counts := countByIteration(allocations, team.ID, cycle.ID, l)

	result := TeamCapacityUtilization{
		TeamID:             team.ID,
		TeamName:           team.Name,
		CycleID:            cycle.ID,
		TotalCapacityHours: team.Capacity * cycle.TotalWeeks(),
	}

	// Per-iteration metrics follow the cycle's iteration order.
	var nonEmpty []float64
	for _, it := range cycle.Iterations {
		pct := sums[slotKey{TeamID: team.ID, CycleID: cycle.ID, IterationNumber: it.Number}]
		count := counts[it.Number]
		result.Iterations = append(result.Iterations, IterationUtilization{
			IterationNumber:  it.Number,
			AllocatedPct:     pct,
			CapacityHours:    team.Capacity * it.Weeks(),
			AllocationCount:  count,
			IsOverAllocated:  pct > 100,
			IsUnderAllocated: pct > 0 && pct < p.HealthyMinPct,
		})
		if count > 0 {
			nonEmpty = append(nonEmpty, pct)
		}
	}

	// Average, peak and min exclude iterations with no allocations.
	if len(nonEmpty) > 0 {
		var sum float64
		peak, min := nonEmpty[0], nonEmpty[0]
		for _, v := range nonEmpty {
			sum += v
			if v > peak {
				peak = v
			}
			if v < min {
				min = v
			}
		}
		result.AverageUtilizationPct = sum / float64(len(nonEmpty))
		result.PeakUtilizationPct = peak
		result.MinUtilizationPct = min
	}

	result.Trend = classifyTrend(nonEmpty)
	result.SkillGaps = collectSkillGaps(team, allocations, cycle.ID, l)
	result.Recommendations = utilizationRecommendations(team, result, len(nonEmpty) == 0)

	return result
}

// countByIteration counts resolvable allocations per iteration for one
// team and cycle.
func countByIteration(allocations []domain.Allocation, teamID, cycleID string, l lookups) map[int]int {
	counts := make(map[int]int)
	for _, a := range allocations {
		if a.TeamID != teamID || a.CycleID != cycleID {
			continue
		}
		if l.orphanReason(a) != "" {
			continue
		}
		counts[a.IterationNumber]++
	}
	return counts
}

// classifyTrend compares the first, middle and last non-empty
// iteration percentages. Fewer than three data points is always
// stable. The strict monotonic check runs before the looser declining
// check, which would otherwise subsume it.
func classifyTrend(vals []float64) domain.TrendDirection {
	if len(vals) < 3 {
		return domain.TrendStable
	}
	first := vals[0]
	middle := vals[len(vals)/2]
	last := vals[len(vals)-1]

	switch {
	case last > first && last > middle:
		return domain.TrendIncreasing
	case first > middle && middle > last:
		return domain.TrendDecreasing
	case last < first && last < middle:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// collectSkillGaps returns the de-duplicated set of required skills,
// across all epics the team is allocated to within the cycle, that the
// team's skill set does not cover.
func collectSkillGaps(team domain.Team, allocations []domain.Allocation, cycleID string, l lookups) []string {
	var gaps []string
	for _, a := range allocations {
		if a.TeamID != team.ID || a.CycleID != cycleID || !a.TargetsEpic() {
			continue
		}
		epic, ok := l.epics[a.EpicID]
		if !ok {
			continue
		}
		gaps = append(gaps, team.MissingSkills(epic.RequiredSkills)...)
	}
	return dedupe(gaps)
}

// utilizationRecommendations builds the advisory strings in fixed
// order: capacity degeneracy, no allocated work, skill gaps, then
// redistribution between an over- and an under-allocated iteration.
func utilizationRecommendations(team domain.Team, u TeamCapacityUtilization, empty bool) []string {
	var recs []string

	if team.Capacity == 0 {
		recs = append(recs, fmt.Sprintf("Team %s has zero capacity; utilization cannot be meaningful until capacity is set", team.Name))
	}
	if empty {
		recs = append(recs, fmt.Sprintf("Team %s has no work allocated in this cycle", team.Name))
	}
	if len(u.SkillGaps) > 0 {
		recs = append(recs, fmt.Sprintf("Team %s lacks skills required by its allocated epics: %s", team.Name, strings.Join(u.SkillGaps, ", ")))
	}

	if over, under, ok := redistributionPair(u.Iterations); ok {
		move := minFloat(over.AllocatedPct-100, 100-under.AllocatedPct)
		recs = append(recs, fmt.Sprintf(
			"Consider moving %.1f%% from iteration %d (%.1f%%) to iteration %d (%.1f%%)",
			move, over.IterationNumber, over.AllocatedPct, under.IterationNumber, under.AllocatedPct))
	}

	return recs
}

// redistributionPair finds the most over-allocated and the most
// under-allocated iterations, if both exist.
func redistributionPair(iterations []IterationUtilization) (over, under IterationUtilization, ok bool) {
	var haveOver, haveUnder bool
	for _, it := range iterations {
		if it.IsOverAllocated && (!haveOver || it.AllocatedPct > over.AllocatedPct) {
			over = it
			haveOver = true
		}
		if it.IsUnderAllocated && (!haveUnder || it.AllocatedPct < under.AllocatedPct) {
			under = it
			haveUnder = true
		}
	}
	return over, under, haveOver && haveUnder
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
