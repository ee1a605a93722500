package domain

// Snapshot is the immutable in-memory view of all planning data the
// analysis engine consumes. Loaded in one pass so every report within a
// run sees the same state.
type Snapshot struct {
	Teams             []Team
	Cycles            []Cycle
	Epics             []Epic
	RunWorkCategories []RunWorkCategory
	Allocations       []Allocation
}

// CycleByID returns the cycle with the given ID, or nil.
func (s *Snapshot) CycleByID(id string) *Cycle {
	for i := range s.Cycles {
		if s.Cycles[i].ID == id {
			return &s.Cycles[i]
		}
	}
	return nil
}

// TeamByID returns the team with the given ID, or nil.
func (s *Snapshot) TeamByID(id string) *Team {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

// NormalizeSnapshot applies entity normalization to every team and epic,
// returning a copy safe to hand to the analysis functions.
func NormalizeSnapshot(s Snapshot) Snapshot {
	out := Snapshot{
		Cycles:            s.Cycles,
		RunWorkCategories: s.RunWorkCategories,
		Allocations:       s.Allocations,
	}
	for _, t := range s.Teams {
		out.Teams = append(out.Teams, NormalizeTeam(t))
	}
	for _, e := range s.Epics {
		out.Epics = append(out.Epics, NormalizeEpic(e))
	}
	return out
}
