package analysis

import (
	"sort"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// lookups holds normalized per-call reference maps. Each analysis call
// builds its own; nothing here is shared between calls.
type lookups struct {
	teams   map[string]domain.Team
	epics   map[string]domain.Epic
	cycles  map[string]domain.Cycle
	runWork map[string]domain.RunWorkCategory
}

func buildLookups(
	teams []domain.Team,
	epics []domain.Epic,
	cycles []domain.Cycle,
	runWork []domain.RunWorkCategory,
) lookups {
	l := lookups{
		teams:   make(map[string]domain.Team, len(teams)),
		epics:   make(map[string]domain.Epic, len(epics)),
		cycles:  make(map[string]domain.Cycle, len(cycles)),
		runWork: make(map[string]domain.RunWorkCategory, len(runWork)),
	}
	for _, t := range teams {
		l.teams[t.ID] = domain.NormalizeTeam(t)
	}
	for _, e := range epics {
		l.epics[e.ID] = domain.NormalizeEpic(e)
	}
	for _, c := range cycles {
		l.cycles[c.ID] = c
	}
	for _, r := range runWork {
		l.runWork[r.ID] = r
	}
	return l
}

// orphanReason classifies an unresolvable allocation reference, or
// returns "" when all references resolve. Checks run in team, epic,
// cycle precedence; the first failure wins.
func (l lookups) orphanReason(a domain.Allocation) string {
	if _, ok := l.teams[a.TeamID]; !ok {
		return ReasonTeamNotFound
	}
	if a.TargetsEpic() {
		if _, ok := l.epics[a.EpicID]; !ok {
			return ReasonEpicNotFound
		}
	}
	if _, ok := l.cycles[a.CycleID]; !ok {
		return ReasonCycleNotFound
	}
	return ""
}

// slotKey identifies one team's commitment within one iteration of one
// cycle.
type slotKey struct {
	TeamID          string
	CycleID         string
	IterationNumber int
}

// sumByTeamIteration groups resolvable allocations into per-slot
// percentage sums. Orphaned allocations never contribute; this is the
// single grouping pass behind both utilization metrics and budget
// checks, so the two always agree.
func sumByTeamIteration(allocations []domain.Allocation, l lookups) map[slotKey]float64 {
	sums := make(map[slotKey]float64)
	for _, a := range allocations {
		if l.orphanReason(a) != "" {
			continue
		}
		k := slotKey{TeamID: a.TeamID, CycleID: a.CycleID, IterationNumber: a.IterationNumber}
		sums[k] += a.Percentage
	}
	return sums
}

// sortedSlots returns the slot keys in deterministic order.
func sortedSlots(sums map[slotKey]float64) []slotKey {
	keys := make([]slotKey, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TeamID != keys[j].TeamID {
			return keys[i].TeamID < keys[j].TeamID
		}
		if keys[i].CycleID != keys[j].CycleID {
			return keys[i].CycleID < keys[j].CycleID
		}
		return keys[i].IterationNumber < keys[j].IterationNumber
	})
	return keys
}

// dedupe returns the unique strings of in, preserving first-seen order.
func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
