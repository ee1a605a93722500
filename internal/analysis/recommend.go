package analysis

import (
	"fmt"
	"sort"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// GenerateRecommendations proposes redistributions, skill-based team
// matches, capacity-balancing deltas and a run-work ratio advisory for
// one cycle.
func GenerateRecommendations(
	cycle domain.Cycle,
	allocations []domain.Allocation,
	teams []domain.Team,
	epics []domain.Epic,
	runWork []domain.RunWorkCategory,
	p Policy,
) AllocationRecommendations {
	l := buildLookups(teams, epics, []domain.Cycle{cycle}, runWork)
	scoped := scopeToCycle(allocations, cycle.ID, l)

	return AllocationRecommendations{
		CycleID:           cycle.ID,
		Redistributions:   redistributionPlan(scoped, l, p),
		TeamEpicMatches:   teamEpicMatches(l),
		CapacityBalancing: balancingDeltas(scoped, l, p.TargetUtilizationPct),
		RunWork:           runWorkRatio(scoped, l, p),
	}
}

// OptimizeAllocations balances per-team utilization against a single
// target. A non-positive target falls back to the policy default.
func OptimizeAllocations(
	cycle domain.Cycle,
	allocations []domain.Allocation,
	teams []domain.Team,
	epics []domain.Epic,
	target float64,
	p Policy,
) OptimizationResult {
	if target <= 0 {
		target = p.TargetUtilizationPct
	}
	l := buildLookups(teams, epics, []domain.Cycle{cycle}, nil)
	scoped := scopeToCycle(allocations, cycle.ID, l)

	deltas := balancingDeltas(scoped, l, target)

	// Applying every delta puts each allocated team exactly at the
	// target, so the projected average is the target itself unless
	// nothing is allocated at all.
	projected := 0.0
	if len(deltas) > 0 {
		projected = target
	}

	return OptimizationResult{
		CycleID:              cycle.ID,
		TargetUtilizationPct: target,
		Deltas:               deltas,
		ProjectedAveragePct:  projected,
	}
}

// AnalyzeTrends computes per-team velocity change and burnout risk
// across the cycle's iterations.
func AnalyzeTrends(
	cycle domain.Cycle,
	allocations []domain.Allocation,
	teams []domain.Team,
	epics []domain.Epic,
	p Policy,
) AllocationTrends {
	l := buildLookups(teams, epics, []domain.Cycle{cycle}, nil)
	scoped := scopeToCycle(allocations, cycle.ID, l)
	series := perTeamSeries(scoped, cycle, l)

	teamIDs := make([]string, 0, len(series))
	for id := range series {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)

	result := AllocationTrends{CycleID: cycle.ID}
	for _, id := range teamIDs {
		vals := series[id]
		trend := TeamTrend{
			TeamID:      id,
			Direction:   classifyTrend(vals),
			BurnoutRisk: domain.RiskNone,
		}
		if len(vals) >= 2 {
			trend.VelocityChangePct = vals[len(vals)-1] - vals[0]
		}
		for _, v := range vals {
			if v > 100 {
				trend.OverloadedIterations++
			}
		}
		switch {
		case trend.OverloadedIterations >= p.HighBurnoutIterations:
			trend.BurnoutRisk = domain.RiskHigh
		case trend.OverloadedIterations >= p.BurnoutIterations:
			trend.BurnoutRisk = domain.RiskMedium
		}
		result.Teams = append(result.Teams, trend)
	}
	return result
}

// scopeToCycle filters to resolvable allocations of one cycle.
func scopeToCycle(allocations []domain.Allocation, cycleID string, l lookups) []domain.Allocation {
	scoped := make([]domain.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if a.CycleID != cycleID || l.orphanReason(a) != "" {
			continue
		}
		scoped = append(scoped, a)
	}
	return scoped
}

// perTeamSeries returns each team's non-empty iteration sums in
// iteration order.
func perTeamSeries(scoped []domain.Allocation, cycle domain.Cycle, l lookups) map[string][]float64 {
	sums := sumByTeamIteration(scoped, l)

	series := make(map[string][]float64)
	teamsSeen := make(map[string]bool)
	for k := range sums {
		teamsSeen[k.TeamID] = true
	}
	for teamID := range teamsSeen {
		for _, it := range cycle.Iterations {
			k := slotKey{TeamID: teamID, CycleID: cycle.ID, IterationNumber: it.Number}
			if v, ok := sums[k]; ok {
				series[teamID] = append(series[teamID], v)
			}
		}
	}
	return series
}

// redistributionPlan repeatedly pairs the most over-allocated slot
// with the most under-allocated one, moving min(excess, deficit) where
// the deficit is measured against 100%. Feeding a suggestion back as a
// literal reallocation therefore never over-allocates the target slot.
func redistributionPlan(scoped []domain.Allocation, l lookups, p Policy) []RedistributionSuggestion {
	sums := sumByTeamIteration(scoped, l)

	var suggestions []RedistributionSuggestion
	for range sums {
		over, under, ok := pickRedistributionSlots(sums, p)
		if !ok {
			break
		}
		move := minFloat(sums[over]-100, 100-sums[under])
		if move <= 0 {
			break
		}
		suggestions = append(suggestions, RedistributionSuggestion{
			FromTeamID:     over.TeamID,
			FromIteration:  over.IterationNumber,
			ToTeamID:       under.TeamID,
			ToIteration:    under.IterationNumber,
			MovePercentage: move,
			Reason: fmt.Sprintf("Iteration %d of team %s is at %.1f%% while iteration %d of team %s is at %.1f%%",
				over.IterationNumber, over.TeamID, sums[over],
				under.IterationNumber, under.TeamID, sums[under]),
		})
		sums[over] -= move
		sums[under] += move
	}
	return suggestions
}

func pickRedistributionSlots(sums map[slotKey]float64, p Policy) (over, under slotKey, ok bool) {
	var haveOver, haveUnder bool
	for _, k := range sortedSlots(sums) {
		total := sums[k]
		if total > 100 && (!haveOver || total > sums[over]) {
			over = k
			haveOver = true
		}
		if total > 0 && total < p.HealthyMinPct && (!haveUnder || total < sums[under]) {
			under = k
			haveUnder = true
		}
	}
	return over, under, haveOver && haveUnder
}

// teamEpicMatches suggests teams whose skill set fully covers an
// epic's requirements. Completed and cancelled epics are skipped.
func teamEpicMatches(l lookups) []TeamEpicMatch {
	teamIDs := make([]string, 0, len(l.teams))
	for id := range l.teams {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)
	epicIDs := make([]string, 0, len(l.epics))
	for id := range l.epics {
		epicIDs = append(epicIDs, id)
	}
	sort.Strings(epicIDs)

	var matches []TeamEpicMatch
	for _, tid := range teamIDs {
		team := l.teams[tid]
		for _, eid := range epicIDs {
			epic := l.epics[eid]
			if epic.Status == domain.EpicCompleted || epic.Status == domain.EpicCancelled {
				continue
			}
			if len(epic.RequiredSkills) == 0 {
				continue
			}
			if len(team.MissingSkills(epic.RequiredSkills)) > 0 {
				continue
			}
			matches = append(matches, TeamEpicMatch{
				TeamID:        team.ID,
				TeamName:      team.Name,
				EpicID:        epic.ID,
				EpicName:      epic.Name,
				MatchedSkills: dedupe(epic.RequiredSkills),
			})
		}
	}
	return matches
}

// balancingDeltas computes each allocated team's distance from the
// target utilization.
func balancingDeltas(scoped []domain.Allocation, l lookups, target float64) []CapacityBalanceDelta {
	sums := sumByTeamIteration(scoped, l)

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for k, v := range sums {
		totals[k.TeamID] += v
		counts[k.TeamID]++
	}

	teamIDs := make([]string, 0, len(totals))
	for id := range totals {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)

	var deltas []CapacityBalanceDelta
	for _, id := range teamIDs {
		avg := totals[id] / float64(counts[id])
		deltas = append(deltas, CapacityBalanceDelta{
			TeamID:                id,
			AverageUtilizationPct: avg,
			DeltaPct:              target - avg,
		})
	}
	return deltas
}

// runWorkRatio compares the share of run work against the policy
// target and phrases a single advisory.
func runWorkRatio(scoped []domain.Allocation, l lookups, p Policy) *RunWorkRatio {
	var total, run float64
	for _, a := range scoped {
		total += a.Percentage
		if a.TargetsRunWork() {
			run += a.Percentage
		}
	}
	if total == 0 {
		return nil
	}

	pct := run / total * 100
	ratio := &RunWorkRatio{RunWorkPct: pct, TargetPct: p.RunWorkTargetPct}
	switch {
	case pct > p.RunWorkTargetPct:
		ratio.Recommendation = fmt.Sprintf("Run work is %.1f%% of total allocation, above the %.0f%% target; consider shifting capacity to project work", pct, p.RunWorkTargetPct)
	case pct < p.RunWorkTargetPct:
		ratio.Recommendation = fmt.Sprintf("Run work is %.1f%% of total allocation, below the %.0f%% target; verify ongoing work is adequately staffed", pct, p.RunWorkTargetPct)
	default:
		ratio.Recommendation = fmt.Sprintf("Run work is at the %.0f%% target", p.RunWorkTargetPct)
	}
	return ratio
}
