package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// SQLiteEpicRepo implements EpicRepo on SQLite. Required skills and
// dependency edges are stored in side tables.
type SQLiteEpicRepo struct {
	db db.DBTX
}

func NewSQLiteEpicRepo(conn db.DBTX) *SQLiteEpicRepo {
	return &SQLiteEpicRepo{db: conn}
}

func (r *SQLiteEpicRepo) Create(ctx context.Context, e *domain.Epic) error {
	query := `INSERT INTO epics (id, name, status, effort_points, priority, complexity, target_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		string(e.Status),
		e.EffortPoints,
		e.Priority,
		e.Complexity,
		nullableTimeToString(e.TargetDate, dateLayout),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting epic: %w", err)
	}
	for pos, skill := range e.RequiredSkills {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO epic_skills (epic_id, skill, pos) VALUES (?, ?, ?)`,
			e.ID, skill, pos)
		if err != nil {
			return fmt.Errorf("inserting epic skill %q: %w", skill, err)
		}
	}
	for _, dep := range e.DependsOn {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO epic_dependencies (epic_id, depends_on_epic_id) VALUES (?, ?)`,
			e.ID, dep)
		if err != nil {
			return fmt.Errorf("inserting epic dependency: %w", err)
		}
	}
	return nil
}

func (r *SQLiteEpicRepo) GetByID(ctx context.Context, id string) (*domain.Epic, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, status, effort_points, priority, complexity, target_date, created_at, updated_at
		FROM epics WHERE id = ?`, id)
	e, err := scanEpic(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("epic %q not found", id)
		}
		return nil, err
	}
	if err := r.loadDetails(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEpicRepo) List(ctx context.Context) ([]domain.Epic, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, status, effort_points, priority, complexity, target_date, created_at, updated_at
		FROM epics ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing epics: %w", err)
	}
	defer rows.Close()

	var epics []domain.Epic
	for rows.Next() {
		e, err := scanEpic(rows.Scan)
		if err != nil {
			return nil, err
		}
		epics = append(epics, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating epics: %w", err)
	}
	for i := range epics {
		if err := r.loadDetails(ctx, &epics[i]); err != nil {
			return nil, err
		}
	}
	return epics, nil
}

func (r *SQLiteEpicRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM epics WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting epic: %w", err)
	}
	return nil
}

func (r *SQLiteEpicRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM epics`); err != nil {
		return fmt.Errorf("clearing epics: %w", err)
	}
	return nil
}

func (r *SQLiteEpicRepo) loadDetails(ctx context.Context, e *domain.Epic) error {
	skillRows, err := r.db.QueryContext(ctx,
		`SELECT skill FROM epic_skills WHERE epic_id = ? ORDER BY pos`, e.ID)
	if err != nil {
		return fmt.Errorf("loading epic skills: %w", err)
	}
	defer skillRows.Close()

	e.RequiredSkills = []string{}
	for skillRows.Next() {
		var skill string
		if err := skillRows.Scan(&skill); err != nil {
			return fmt.Errorf("scanning epic skill: %w", err)
		}
		e.RequiredSkills = append(e.RequiredSkills, skill)
	}
	if err := skillRows.Err(); err != nil {
		return err
	}

	depRows, err := r.db.QueryContext(ctx,
		`SELECT depends_on_epic_id FROM epic_dependencies WHERE epic_id = ? ORDER BY depends_on_epic_id`, e.ID)
	if err != nil {
		return fmt.Errorf("loading epic dependencies: %w", err)
	}
	defer depRows.Close()

	e.DependsOn = []string{}
	for depRows.Next() {
		var dep string
		if err := depRows.Scan(&dep); err != nil {
			return fmt.Errorf("scanning epic dependency: %w", err)
		}
		e.DependsOn = append(e.DependsOn, dep)
	}
	return depRows.Err()
}

func scanEpic(scan func(dest ...any) error) (*domain.Epic, error) {
	var e domain.Epic
	var statusStr, createdAtStr, updatedAtStr string
	var targetDateStr sql.NullString

	err := scan(
		&e.ID, &e.Name, &statusStr, &e.EffortPoints,
		&e.Priority, &e.Complexity, &targetDateStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning epic: %w", err)
	}

	e.Status = domain.EpicStatus(statusStr)
	e.TargetDate = parseNullableTime(targetDateStr, dateLayout)

	var parseErr error
	if e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &e, nil
}
