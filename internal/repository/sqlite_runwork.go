package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// SQLiteRunWorkRepo implements RunWorkRepo on SQLite.
type SQLiteRunWorkRepo struct {
	db db.DBTX
}

func NewSQLiteRunWorkRepo(conn db.DBTX) *SQLiteRunWorkRepo {
	return &SQLiteRunWorkRepo{db: conn}
}

func (r *SQLiteRunWorkRepo) Create(ctx context.Context, c *domain.RunWorkCategory) error {
	query := `INSERT INTO run_work_categories (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting run work category: %w", err)
	}
	return nil
}

func (r *SQLiteRunWorkRepo) List(ctx context.Context) ([]domain.RunWorkCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM run_work_categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing run work categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.RunWorkCategory
	for rows.Next() {
		var c domain.RunWorkCategory
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&c.ID, &c.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning run work category: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run work categories: %w", err)
	}
	return categories, nil
}

func (r *SQLiteRunWorkRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM run_work_categories`); err != nil {
		return fmt.Errorf("clearing run work categories: %w", err)
	}
	return nil
}
