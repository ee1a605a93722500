package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// ConvertedSnapshot holds the domain entities produced from a
// validated schema, ready for persistence or direct analysis.
type ConvertedSnapshot struct {
	Teams             []domain.Team
	Cycles            []domain.Cycle
	Epics             []domain.Epic
	RunWorkCategories []domain.RunWorkCategory
	Allocations       []domain.Allocation
}

// Convert turns a validated snapshot schema into domain entities.
// Fresh UUIDs are assigned; import refs only exist inside the file.
// The schema must already have passed ValidateSnapshotSchema.
func Convert(schema *SnapshotSchema, now time.Time) (*ConvertedSnapshot, error) {
	snap := &ConvertedSnapshot{}

	teamIDs := make(map[string]string, len(schema.Teams))
	for _, t := range schema.Teams {
		id := uuid.NewString()
		teamIDs[t.Ref] = id
		capacity := 0.0
		if t.Capacity != nil {
			capacity = *t.Capacity
		}
		snap.Teams = append(snap.Teams, domain.NormalizeTeam(domain.Team{
			ID:           id,
			Name:         t.Name,
			DivisionID:   t.Division,
			Capacity:     capacity,
			Skills:       t.Skills,
			TargetSkills: t.TargetSkills,
			CreatedAt:    now,
			UpdatedAt:    now,
		}))
	}

	cycleIDs := make(map[string]string, len(schema.Cycles))
	for _, c := range schema.Cycles {
		id := uuid.NewString()
		cycleIDs[c.Ref] = id
		cycle := domain.Cycle{
			ID:        id,
			Name:      c.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		var err error
		if cycle.StartDate, err = time.Parse(dateLayout, c.StartDate); err != nil {
			return nil, fmt.Errorf("cycle %q start_date: %w", c.Ref, err)
		}
		if cycle.EndDate, err = time.Parse(dateLayout, c.EndDate); err != nil {
			return nil, fmt.Errorf("cycle %q end_date: %w", c.Ref, err)
		}
		for _, it := range c.Iterations {
			iteration := domain.Iteration{Number: it.Number}
			if iteration.StartDate, err = time.Parse(dateLayout, it.StartDate); err != nil {
				return nil, fmt.Errorf("cycle %q iteration %d start_date: %w", c.Ref, it.Number, err)
			}
			if iteration.EndDate, err = time.Parse(dateLayout, it.EndDate); err != nil {
				return nil, fmt.Errorf("cycle %q iteration %d end_date: %w", c.Ref, it.Number, err)
			}
			cycle.Iterations = append(cycle.Iterations, iteration)
		}
		snap.Cycles = append(snap.Cycles, cycle)
	}

	epicIDs := make(map[string]string, len(schema.Epics))
	for _, e := range schema.Epics {
		epicIDs[e.Ref] = uuid.NewString()
	}
	for _, e := range schema.Epics {
		status := domain.EpicStatus(e.Status)
		if e.Status == "" {
			status = domain.EpicTodo
		}
		effort := 0.0
		if e.EffortPoints != nil {
			effort = *e.EffortPoints
		}
		epic := domain.Epic{
			ID:             epicIDs[e.Ref],
			Name:           e.Name,
			Status:         status,
			RequiredSkills: e.RequiredSkills,
			EffortPoints:   effort,
			Priority:       e.Priority,
			Complexity:     e.Complexity,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		for _, dep := range e.DependsOn {
			epic.DependsOn = append(epic.DependsOn, epicIDs[dep])
		}
		if e.TargetDate != nil {
			target, err := time.Parse(dateLayout, *e.TargetDate)
			if err != nil {
				return nil, fmt.Errorf("epic %q target_date: %w", e.Ref, err)
			}
			epic.TargetDate = &target
		}
		snap.Epics = append(snap.Epics, domain.NormalizeEpic(epic))
	}

	runWorkIDs := make(map[string]string, len(schema.RunWorkCategories))
	for _, r := range schema.RunWorkCategories {
		id := uuid.NewString()
		runWorkIDs[r.Ref] = id
		snap.RunWorkCategories = append(snap.RunWorkCategories, domain.RunWorkCategory{
			ID:        id,
			Name:      r.Name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, a := range schema.Allocations {
		snap.Allocations = append(snap.Allocations, domain.Allocation{
			ID:                uuid.NewString(),
			TeamID:            teamIDs[a.TeamRef],
			CycleID:           cycleIDs[a.CycleRef],
			IterationNumber:   a.Iteration,
			Percentage:        a.Percentage,
			EpicID:            epicIDs[a.EpicRef],
			RunWorkCategoryID: runWorkIDs[a.RunWorkRef],
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	return snap, nil
}
