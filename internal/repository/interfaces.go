package repository

import (
	"context"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

type TeamRepo interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type CycleRepo interface {
	Create(ctx context.Context, c *domain.Cycle) error
	GetByID(ctx context.Context, id string) (*domain.Cycle, error)
	List(ctx context.Context) ([]domain.Cycle, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type EpicRepo interface {
	Create(ctx context.Context, e *domain.Epic) error
	GetByID(ctx context.Context, id string) (*domain.Epic, error)
	List(ctx context.Context) ([]domain.Epic, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type RunWorkRepo interface {
	Create(ctx context.Context, c *domain.RunWorkCategory) error
	List(ctx context.Context) ([]domain.RunWorkCategory, error)
	DeleteAll(ctx context.Context) error
}

type AllocationRepo interface {
	Create(ctx context.Context, a *domain.Allocation) error
	List(ctx context.Context) ([]domain.Allocation, error)
	ListByCycle(ctx context.Context, cycleID string) ([]domain.Allocation, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// SnapshotRepo materializes the full planning state in one read, the
// unit every analysis run consumes.
type SnapshotRepo interface {
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
}
