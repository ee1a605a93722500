package analysis

import (
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// ValidateAllocations checks cross-entity consistency of the entire
// allocation set. The pass is total: malformed records are reported
// and skipped, the rest are still processed.
func ValidateAllocations(
	allocations []domain.Allocation,
	teams []domain.Team,
	epics []domain.Epic,
	cycles []domain.Cycle,
	runWork []domain.RunWorkCategory,
	p Policy,
) AllocationConsistencyValidation {
	l := buildLookups(teams, epics, cycles, runWork)

	result := AllocationConsistencyValidation{}

	for _, a := range allocations {
		if reason := l.orphanReason(a); reason != "" {
			result.OrphanedAllocations = append(result.OrphanedAllocations, OrphanedAllocation{
				AllocationID: a.ID,
				TeamID:       a.TeamID,
				EpicID:       a.EpicID,
				CycleID:      a.CycleID,
				Reason:       reason,
			})
		}
	}

	// Budget checks re-derive the per-(team, iteration) sums through
	// the same grouping pass utilization metrics use, so the two can
	// never disagree. Orphans are already excluded.
	sums := sumByTeamIteration(allocations, l)
	for _, k := range sortedSlots(sums) {
		total := sums[k]
		team := l.teams[k.TeamID]
		switch {
		case total > 100:
			result.Errors = append(result.Errors, BudgetIssue{
				Type:            IssueOverAllocation,
				TeamID:          k.TeamID,
				TeamName:        team.Name,
				CycleID:         k.CycleID,
				IterationNumber: k.IterationNumber,
				TotalPercentage: total,
				Message:         fmt.Sprintf("Team %s is allocated %.1f%% in iteration %d", team.Name, total, k.IterationNumber),
			})
		case total > 0 && total < p.HealthyMinPct:
			result.Warnings = append(result.Warnings, BudgetIssue{
				Type:            IssueCapacityWarning,
				TeamID:          k.TeamID,
				TeamName:        team.Name,
				CycleID:         k.CycleID,
				IterationNumber: k.IterationNumber,
				TotalPercentage: total,
				Message:         fmt.Sprintf("Team %s is only allocated %.1f%% in iteration %d", team.Name, total, k.IterationNumber),
			})
		}
	}

	for _, a := range allocations {
		if l.orphanReason(a) != "" || !a.TargetsEpic() {
			continue
		}
		team := l.teams[a.TeamID]
		epic := l.epics[a.EpicID]

		if missing := team.MissingSkills(epic.RequiredSkills); len(missing) > 0 {
			result.SkillMismatches = append(result.SkillMismatches, SkillMismatch{
				AllocationID:  a.ID,
				TeamID:        team.ID,
				TeamName:      team.Name,
				EpicID:        epic.ID,
				EpicName:      epic.Name,
				MissingSkills: missing,
			})
		}

		// Dependency checks are purely status-based, never time-based:
		// iteration ordering does not excuse an incomplete dependency.
		// Unknown dependency epics count as not completed.
		for _, depID := range epic.DependsOn {
			dep, ok := l.epics[depID]
			if ok && dep.Status == domain.EpicCompleted {
				continue
			}
			result.DependencyViolations = append(result.DependencyViolations, DependencyViolation{
				AllocationID:     a.ID,
				EpicID:           epic.ID,
				DependsOnEpicID:  depID,
				DependencyStatus: dep.Status,
			})
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
