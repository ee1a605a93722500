package analysis

import (
	"sort"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// AnalyzeCrossTeamDependencies finds epics staffed by more than one
// team within the cycle, regardless of iteration, and flags bottleneck
// teams whose summed workload makes them a critical path.
func AnalyzeCrossTeamDependencies(
	cycle domain.Cycle,
	allocations []domain.Allocation,
	teams []domain.Team,
	epics []domain.Epic,
	p Policy,
) CrossTeamDependencies {
	l := buildLookups(teams, epics, []domain.Cycle{cycle}, nil)
	scoped := scopeToCycle(allocations, cycle.ID, l)

	return CrossTeamDependencies{
		CycleID:     cycle.ID,
		SharedEpics: sharedEpics(scoped, l),
		Bottlenecks: bottleneckTeams(scoped, l, p),
	}
}

func sharedEpics(scoped []domain.Allocation, l lookups) []SharedEpic {
	teamsByEpic := make(map[string]map[string]bool)
	for _, a := range scoped {
		if !a.TargetsEpic() {
			continue
		}
		if teamsByEpic[a.EpicID] == nil {
			teamsByEpic[a.EpicID] = make(map[string]bool)
		}
		teamsByEpic[a.EpicID][a.TeamID] = true
	}

	epicIDs := make([]string, 0, len(teamsByEpic))
	for id := range teamsByEpic {
		epicIDs = append(epicIDs, id)
	}
	sort.Strings(epicIDs)

	var shared []SharedEpic
	for _, id := range epicIDs {
		teamIDs := make([]string, 0, len(teamsByEpic[id]))
		for tid := range teamsByEpic[id] {
			teamIDs = append(teamIDs, tid)
		}
		if len(teamIDs) < 2 {
			continue
		}
		sort.Strings(teamIDs)

		epic := l.epics[id]
		shared = append(shared, SharedEpic{
			EpicID:           id,
			EpicName:         epic.Name,
			TeamIDs:          teamIDs,
			CoordinationRisk: coordinationRisk(len(teamIDs)),
			ImpactScore:      epic.EffortPoints * float64(len(teamIDs)),
			MeetingCadence:   coordinationCadence(len(teamIDs)),
		})
	}
	return shared
}

// coordinationRisk tiers shared epics by team count.
func coordinationRisk(teamCount int) domain.RiskLevel {
	switch {
	case teamCount > 3:
		return domain.RiskHigh
	case teamCount > 2:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func coordinationCadence(teamCount int) MeetingCadence {
	if teamCount > 3 {
		return CadenceDaily
	}
	return CadenceWeekly
}

// bottleneckTeams flags teams whose percentage summed across all their
// allocations, ignoring iteration grouping, exceeds the high-workload
// threshold. The epics the team staffs are the ones depending on it.
func bottleneckTeams(scoped []domain.Allocation, l lookups, p Policy) []BottleneckTeam {
	workload := make(map[string]float64)
	epicsByTeam := make(map[string]map[string]bool)
	for _, a := range scoped {
		workload[a.TeamID] += a.Percentage
		if a.TargetsEpic() {
			if epicsByTeam[a.TeamID] == nil {
				epicsByTeam[a.TeamID] = make(map[string]bool)
			}
			epicsByTeam[a.TeamID][a.EpicID] = true
		}
	}

	teamIDs := make([]string, 0, len(workload))
	for id := range workload {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)

	var bottlenecks []BottleneckTeam
	for _, id := range teamIDs {
		if workload[id] <= p.BottleneckWorkloadPct {
			continue
		}
		epicIDs := make([]string, 0, len(epicsByTeam[id]))
		for eid := range epicsByTeam[id] {
			epicIDs = append(epicIDs, eid)
		}
		sort.Strings(epicIDs)
		bottlenecks = append(bottlenecks, BottleneckTeam{
			TeamID:           id,
			TotalWorkloadPct: workload[id],
			EpicIDs:          epicIDs,
		})
	}
	return bottlenecks
}
