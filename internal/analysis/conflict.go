package analysis

import (
	"fmt"
	"sort"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// DetectConflicts classifies scheduling conflicts within a single
// cycle. Allocations referencing other cycles are ignored entirely.
// An allocation can contribute to multiple conflict types.
func DetectConflicts(
	cycle domain.Cycle,
	allocations []domain.Allocation,
	teams []domain.Team,
	epics []domain.Epic,
	p Policy,
) ConflictDetectionResult {
	l := buildLookups(teams, epics, []domain.Cycle{cycle}, nil)

	scoped := make([]domain.Allocation, 0, len(allocations))
	for _, a := range allocations {
		if a.CycleID != cycle.ID || l.orphanReason(a) != "" {
			continue
		}
		scoped = append(scoped, a)
	}

	var conflicts []Conflict
	conflicts = append(conflicts, detectOverallocation(scoped, l, p)...)
	conflicts = append(conflicts, detectResourceContention(scoped, l)...)
	conflicts = append(conflicts, detectDependencyViolations(scoped, l)...)
	conflicts = append(conflicts, detectTimelineOverlap(scoped, l, p)...)
	conflicts = append(conflicts, detectSkillMismatch(scoped, l)...)
	conflicts = append(conflicts, detectCapacityExceeded(scoped, l)...)

	return ConflictDetectionResult{
		CycleID:            cycle.ID,
		Conflicts:          conflicts,
		Summary:            summarize(conflicts),
		AffectedTeamsCount: countAffectedTeams(conflicts),
		OverallRiskScore:   riskScore(conflicts, p.Weights),
	}
}

// overallocationSeverity tiers by the excess of the summed percentage
// over 100. The basis is always the slot sum, never the size of any
// single allocation, so 130% is medium no matter how it is composed.
func overallocationSeverity(total float64, p Policy) domain.Severity {
	if total-100 > p.OverAllocationCriticalExcessPct {
		return domain.SeverityCritical
	}
	return domain.SeverityMedium
}

func detectOverallocation(scoped []domain.Allocation, l lookups, p Policy) []Conflict {
	sums := sumByTeamIteration(scoped, l)

	var conflicts []Conflict
	for _, k := range sortedSlots(sums) {
		total := sums[k]
		if total <= 100 {
			continue
		}
		team := l.teams[k.TeamID]
		conflicts = append(conflicts, Conflict{
			Type:            ConflictOverallocation,
			Severity:        overallocationSeverity(total, p),
			Description:     fmt.Sprintf("Team %s is committed to %.1f%% in iteration %d", team.Name, total, k.IterationNumber),
			TeamIDs:         []string{k.TeamID},
			IterationNumber: k.IterationNumber,
			TotalPercentage: total,
		})
	}
	return conflicts
}

func detectResourceContention(scoped []domain.Allocation, l lookups) []Conflict {
	type epicSlot struct {
		EpicID          string
		IterationNumber int
	}
	teamsByEpic := make(map[epicSlot]map[string]bool)
	for _, a := range scoped {
		if !a.TargetsEpic() {
			continue
		}
		k := epicSlot{EpicID: a.EpicID, IterationNumber: a.IterationNumber}
		if teamsByEpic[k] == nil {
			teamsByEpic[k] = make(map[string]bool)
		}
		teamsByEpic[k][a.TeamID] = true
	}

	keys := make([]epicSlot, 0, len(teamsByEpic))
	for k := range teamsByEpic {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].EpicID != keys[j].EpicID {
			return keys[i].EpicID < keys[j].EpicID
		}
		return keys[i].IterationNumber < keys[j].IterationNumber
	})

	var conflicts []Conflict
	for _, k := range keys {
		if len(teamsByEpic[k]) < 2 {
			continue
		}
		teamIDs := make([]string, 0, len(teamsByEpic[k]))
		for id := range teamsByEpic[k] {
			teamIDs = append(teamIDs, id)
		}
		sort.Strings(teamIDs)
		epic := l.epics[k.EpicID]
		conflicts = append(conflicts, Conflict{
			Type:            ConflictResourceContention,
			Severity:        domain.SeverityHigh,
			Description:     fmt.Sprintf("Epic %s is staffed by %d teams in iteration %d", epic.Name, len(teamIDs), k.IterationNumber),
			TeamIDs:         teamIDs,
			EpicID:          k.EpicID,
			IterationNumber: k.IterationNumber,
		})
	}
	return conflicts
}

func detectDependencyViolations(scoped []domain.Allocation, l lookups) []Conflict {
	type depPair struct {
		EpicID    string
		DependsOn string
	}
	teamsByPair := make(map[depPair]map[string]bool)
	for _, a := range scoped {
		if !a.TargetsEpic() {
			continue
		}
		epic := l.epics[a.EpicID]
		for _, depID := range epic.DependsOn {
			dep, ok := l.epics[depID]
			if ok && dep.Status == domain.EpicCompleted {
				continue
			}
			k := depPair{EpicID: epic.ID, DependsOn: depID}
			if teamsByPair[k] == nil {
				teamsByPair[k] = make(map[string]bool)
			}
			teamsByPair[k][a.TeamID] = true
		}
	}

	keys := make([]depPair, 0, len(teamsByPair))
	for k := range teamsByPair {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].EpicID != keys[j].EpicID {
			return keys[i].EpicID < keys[j].EpicID
		}
		return keys[i].DependsOn < keys[j].DependsOn
	})

	var conflicts []Conflict
	for _, k := range keys {
		teamIDs := make([]string, 0, len(teamsByPair[k]))
		for id := range teamsByPair[k] {
			teamIDs = append(teamIDs, id)
		}
		sort.Strings(teamIDs)
		epic := l.epics[k.EpicID]
		conflicts = append(conflicts, Conflict{
			Type:            ConflictDependencyViolation,
			Severity:        domain.SeverityHigh,
			Description:     fmt.Sprintf("Epic %s is staffed before its dependency %s is completed", epic.Name, k.DependsOn),
			TeamIDs:         teamIDs,
			EpicID:          k.EpicID,
			DependsOnEpicID: k.DependsOn,
		})
	}
	return conflicts
}

func detectTimelineOverlap(scoped []domain.Allocation, l lookups, p Policy) []Conflict {
	epicsBySlot := make(map[slotKey]map[string]bool)
	for _, a := range scoped {
		if !a.TargetsEpic() {
			continue
		}
		k := slotKey{TeamID: a.TeamID, CycleID: a.CycleID, IterationNumber: a.IterationNumber}
		if epicsBySlot[k] == nil {
			epicsBySlot[k] = make(map[string]bool)
		}
		epicsBySlot[k][a.EpicID] = true
	}

	keys := make([]slotKey, 0, len(epicsBySlot))
	for k := range epicsBySlot {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TeamID != keys[j].TeamID {
			return keys[i].TeamID < keys[j].TeamID
		}
		return keys[i].IterationNumber < keys[j].IterationNumber
	})

	var conflicts []Conflict
	for _, k := range keys {
		n := len(epicsBySlot[k])
		if n <= p.TimelineEpicLimit {
			continue
		}
		team := l.teams[k.TeamID]
		conflicts = append(conflicts, Conflict{
			Type:            ConflictTimelineOverlap,
			Severity:        domain.SeverityMedium,
			Description:     fmt.Sprintf("Team %s is spread across %d epics in iteration %d", team.Name, n, k.IterationNumber),
			TeamIDs:         []string{k.TeamID},
			IterationNumber: k.IterationNumber,
		})
	}
	return conflicts
}

func detectSkillMismatch(scoped []domain.Allocation, l lookups) []Conflict {
	type matchKey struct {
		TeamID          string
		EpicID          string
		IterationNumber int
	}
	seen := make(map[matchKey]bool)

	var conflicts []Conflict
	for _, a := range scoped {
		if !a.TargetsEpic() {
			continue
		}
		k := matchKey{TeamID: a.TeamID, EpicID: a.EpicID, IterationNumber: a.IterationNumber}
		if seen[k] {
			continue
		}
		seen[k] = true

		team := l.teams[a.TeamID]
		epic := l.epics[a.EpicID]
		missing := team.MissingSkills(epic.RequiredSkills)
		if len(missing) == 0 {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type:            ConflictSkillMismatch,
			Severity:        domain.SeverityMedium,
			Description:     fmt.Sprintf("Team %s lacks skills for epic %s: %v", team.Name, epic.Name, missing),
			TeamIDs:         []string{a.TeamID},
			EpicID:          a.EpicID,
			IterationNumber: a.IterationNumber,
		})
	}
	return conflicts
}

// detectCapacityExceeded flags slots where a zero-capacity team
// carries a positive commitment: any percentage exceeds zero available
// hours.
func detectCapacityExceeded(scoped []domain.Allocation, l lookups) []Conflict {
	sums := sumByTeamIteration(scoped, l)

	var conflicts []Conflict
	for _, k := range sortedSlots(sums) {
		team := l.teams[k.TeamID]
		if team.Capacity > 0 || sums[k] <= 0 {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type:            ConflictCapacityExceeded,
			Severity:        domain.SeverityHigh,
			Description:     fmt.Sprintf("Team %s has zero capacity but %.1f%% allocated in iteration %d", team.Name, sums[k], k.IterationNumber),
			TeamIDs:         []string{k.TeamID},
			IterationNumber: k.IterationNumber,
			TotalPercentage: sums[k],
		})
	}
	return conflicts
}

func summarize(conflicts []Conflict) ConflictSummary {
	s := ConflictSummary{Total: len(conflicts)}
	for _, c := range conflicts {
		switch c.Severity {
		case domain.SeverityLow:
			s.Low++
		case domain.SeverityMedium:
			s.Medium++
		case domain.SeverityHigh:
			s.High++
		case domain.SeverityCritical:
			s.Critical++
		}
	}
	return s
}

func countAffectedTeams(conflicts []Conflict) int {
	teams := make(map[string]bool)
	for _, c := range conflicts {
		for _, id := range c.TeamIDs {
			teams[id] = true
		}
	}
	return len(teams)
}

func riskScore(conflicts []Conflict, w SeverityWeights) float64 {
	var score float64
	for _, c := range conflicts {
		score += w.ForSeverity(c.Severity)
	}
	return score
}
