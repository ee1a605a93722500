package repository

import (
	"context"
	"fmt"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// SQLiteSnapshotRepo loads the full planning state by composing the
// entity repositories over a single connection.
type SQLiteSnapshotRepo struct {
	teams       TeamRepo
	cycles      CycleRepo
	epics       EpicRepo
	runWork     RunWorkRepo
	allocations AllocationRepo
}

func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{
		teams:       NewSQLiteTeamRepo(conn),
		cycles:      NewSQLiteCycleRepo(conn),
		epics:       NewSQLiteEpicRepo(conn),
		runWork:     NewSQLiteRunWorkRepo(conn),
		allocations: NewSQLiteAllocationRepo(conn),
	}
}

func (r *SQLiteSnapshotRepo) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	var err error

	if snap.Teams, err = r.teams.List(ctx); err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	if snap.Cycles, err = r.cycles.List(ctx); err != nil {
		return nil, fmt.Errorf("loading cycles: %w", err)
	}
	if snap.Epics, err = r.epics.List(ctx); err != nil {
		return nil, fmt.Errorf("loading epics: %w", err)
	}
	if snap.RunWorkCategories, err = r.runWork.List(ctx); err != nil {
		return nil, fmt.Errorf("loading run work categories: %w", err)
	}
	if snap.Allocations, err = r.allocations.List(ctx); err != nil {
		return nil, fmt.Errorf("loading allocations: %w", err)
	}

	normalized := domain.NormalizeSnapshot(snap)
	return &normalized, nil
}
