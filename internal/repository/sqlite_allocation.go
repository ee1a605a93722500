package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// SQLiteAllocationRepo implements AllocationRepo on SQLite.
type SQLiteAllocationRepo struct {
	db db.DBTX
}

func NewSQLiteAllocationRepo(conn db.DBTX) *SQLiteAllocationRepo {
	return &SQLiteAllocationRepo{db: conn}
}

const allocationColumns = `id, team_id, cycle_id, iteration_number, percentage,
	epic_id, run_work_category_id, created_at, updated_at`

func (r *SQLiteAllocationRepo) Create(ctx context.Context, a *domain.Allocation) error {
	query := `INSERT INTO allocations (` + allocationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.TeamID,
		a.CycleID,
		a.IterationNumber,
		a.Percentage,
		nullableString(a.EpicID),
		nullableString(a.RunWorkCategoryID),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting allocation: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) List(ctx context.Context) ([]domain.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocations
		ORDER BY created_at, id`
	return r.queryAllocations(ctx, query)
}

func (r *SQLiteAllocationRepo) ListByCycle(ctx context.Context, cycleID string) ([]domain.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocations
		WHERE cycle_id = ? ORDER BY created_at, id`
	return r.queryAllocations(ctx, query, cycleID)
}

func (r *SQLiteAllocationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM allocations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting allocation: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM allocations`); err != nil {
		return fmt.Errorf("clearing allocations: %w", err)
	}
	return nil
}

func (r *SQLiteAllocationRepo) queryAllocations(ctx context.Context, query string, args ...any) ([]domain.Allocation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}
	defer rows.Close()

	var allocations []domain.Allocation
	for rows.Next() {
		var a domain.Allocation
		var epicID, runWorkID sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&a.ID, &a.TeamID, &a.CycleID, &a.IterationNumber, &a.Percentage,
			&epicID, &runWorkID, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning allocation: %w", err)
		}

		a.EpicID = epicID.String
		a.RunWorkCategoryID = runWorkID.String
		if a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating allocations: %w", err)
	}
	return allocations, nil
}
