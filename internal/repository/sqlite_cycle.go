package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// SQLiteCycleRepo implements CycleRepo on SQLite. Iterations are stored
// in their own table and loaded ordered by number.
type SQLiteCycleRepo struct {
	db db.DBTX
}

func NewSQLiteCycleRepo(conn db.DBTX) *SQLiteCycleRepo {
	return &SQLiteCycleRepo{db: conn}
}

func (r *SQLiteCycleRepo) Create(ctx context.Context, c *domain.Cycle) error {
	query := `INSERT INTO cycles (id, name, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.StartDate.Format(dateLayout),
		c.EndDate.Format(dateLayout),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting cycle: %w", err)
	}
	for _, it := range c.Iterations {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO iterations (cycle_id, number, start_date, end_date) VALUES (?, ?, ?, ?)`,
			c.ID, it.Number, it.StartDate.Format(dateLayout), it.EndDate.Format(dateLayout))
		if err != nil {
			return fmt.Errorf("inserting iteration %d: %w", it.Number, err)
		}
	}
	return nil
}

func (r *SQLiteCycleRepo) GetByID(ctx context.Context, id string) (*domain.Cycle, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, start_date, end_date, created_at, updated_at FROM cycles WHERE id = ?`, id)
	c, err := scanCycle(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cycle %q not found", id)
		}
		return nil, err
	}
	if err := r.loadIterations(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCycleRepo) List(ctx context.Context) ([]domain.Cycle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, start_date, end_date, created_at, updated_at FROM cycles ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("listing cycles: %w", err)
	}
	defer rows.Close()

	var cycles []domain.Cycle
	for rows.Next() {
		c, err := scanCycle(rows.Scan)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cycles: %w", err)
	}
	for i := range cycles {
		if err := r.loadIterations(ctx, &cycles[i]); err != nil {
			return nil, err
		}
	}
	return cycles, nil
}

func (r *SQLiteCycleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cycles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting cycle: %w", err)
	}
	return nil
}

func (r *SQLiteCycleRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cycles`); err != nil {
		return fmt.Errorf("clearing cycles: %w", err)
	}
	return nil
}

func (r *SQLiteCycleRepo) loadIterations(ctx context.Context, c *domain.Cycle) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT number, start_date, end_date FROM iterations WHERE cycle_id = ? ORDER BY number`, c.ID)
	if err != nil {
		return fmt.Errorf("loading iterations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.Iteration
		var startStr, endStr string
		if err := rows.Scan(&it.Number, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning iteration: %w", err)
		}
		if it.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
			return fmt.Errorf("parsing iteration start_date: %w", err)
		}
		if it.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
			return fmt.Errorf("parsing iteration end_date: %w", err)
		}
		c.Iterations = append(c.Iterations, it)
	}
	return rows.Err()
}

func scanCycle(scan func(dest ...any) error) (*domain.Cycle, error) {
	var c domain.Cycle
	var startStr, endStr, createdAtStr, updatedAtStr string

	if err := scan(&c.ID, &c.Name, &startStr, &endStr, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning cycle: %w", err)
	}

	var parseErr error
	if c.StartDate, parseErr = time.Parse(dateLayout, startStr); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if c.EndDate, parseErr = time.Parse(dateLayout, endStr); parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	if c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
