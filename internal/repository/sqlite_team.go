package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/heymishy/plan-pulse-compass-sub005/internal/db"
	"github.com/heymishy/plan-pulse-compass-sub005/internal/domain"
)

// SQLiteTeamRepo implements TeamRepo on SQLite. Skills live in the
// team_skills side table, keyed by kind (current vs target).
type SQLiteTeamRepo struct {
	db db.DBTX
}

func NewSQLiteTeamRepo(conn db.DBTX) *SQLiteTeamRepo {
	return &SQLiteTeamRepo{db: conn}
}

func (r *SQLiteTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	query := `INSERT INTO teams (id, name, division_id, capacity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.DivisionID,
		t.EffectiveCapacity(),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	if err := r.insertSkills(ctx, t.ID, "current", t.Skills); err != nil {
		return err
	}
	return r.insertSkills(ctx, t.ID, "target", t.TargetSkills)
}

func (r *SQLiteTeamRepo) insertSkills(ctx context.Context, teamID, kind string, skills []string) error {
	for pos, skill := range skills {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO team_skills (team_id, skill, kind, pos) VALUES (?, ?, ?, ?)`,
			teamID, skill, kind, pos)
		if err != nil {
			return fmt.Errorf("inserting team skill %q: %w", skill, err)
		}
	}
	return nil
}

func (r *SQLiteTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, division_id, capacity, created_at, updated_at FROM teams WHERE id = ?`, id)
	t, err := scanTeam(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("team %q not found", id)
		}
		return nil, err
	}
	if err := r.loadSkills(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTeamRepo) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, division_id, capacity, created_at, updated_at FROM teams ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		t, err := scanTeam(rows.Scan)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}
	for i := range teams {
		if err := r.loadSkills(ctx, &teams[i]); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func (r *SQLiteTeamRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teams`); err != nil {
		return fmt.Errorf("clearing teams: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) loadSkills(ctx context.Context, t *domain.Team) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT skill, kind FROM team_skills WHERE team_id = ? ORDER BY kind, pos`, t.ID)
	if err != nil {
		return fmt.Errorf("loading team skills: %w", err)
	}
	defer rows.Close()

	t.Skills = []string{}
	t.TargetSkills = []string{}
	for rows.Next() {
		var skill, kind string
		if err := rows.Scan(&skill, &kind); err != nil {
			return fmt.Errorf("scanning team skill: %w", err)
		}
		if kind == "target" {
			t.TargetSkills = append(t.TargetSkills, skill)
		} else {
			t.Skills = append(t.Skills, skill)
		}
	}
	return rows.Err()
}

func scanTeam(scan func(dest ...any) error) (*domain.Team, error) {
	var t domain.Team
	var createdAtStr, updatedAtStr string

	if err := scan(&t.ID, &t.Name, &t.DivisionID, &t.Capacity, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning team: %w", err)
	}

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
