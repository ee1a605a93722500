package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// the full list re-runs safely on an existing database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		division_id TEXT NOT NULL DEFAULT '',
		capacity    REAL NOT NULL DEFAULT 0 CHECK(capacity >= 0),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS team_skills (
		team_id TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		skill   TEXT NOT NULL,
		kind    TEXT NOT NULL DEFAULT 'current'
		        CHECK(kind IN ('current','target')),
		pos     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (team_id, skill, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS cycles (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS iterations (
		cycle_id   TEXT NOT NULL REFERENCES cycles(id) ON DELETE CASCADE,
		number     INTEGER NOT NULL CHECK(number > 0),
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		PRIMARY KEY (cycle_id, number)
	)`,

	`CREATE TABLE IF NOT EXISTS epics (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'todo'
		              CHECK(status IN ('todo','in_progress','completed','cancelled')),
		effort_points REAL NOT NULL DEFAULT 0,
		priority      TEXT NOT NULL DEFAULT '',
		complexity    TEXT NOT NULL DEFAULT '',
		target_date   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS epic_skills (
		epic_id TEXT NOT NULL REFERENCES epics(id) ON DELETE CASCADE,
		skill   TEXT NOT NULL,
		pos     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (epic_id, skill)
	)`,

	// depends_on_epic_id carries no foreign key: imports may reference
	// epics persisted later in the same batch.
	`CREATE TABLE IF NOT EXISTS epic_dependencies (
		epic_id            TEXT NOT NULL REFERENCES epics(id) ON DELETE CASCADE,
		depends_on_epic_id TEXT NOT NULL,
		PRIMARY KEY (epic_id, depends_on_epic_id)
	)`,

	`CREATE TABLE IF NOT EXISTS run_work_categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// team_id, cycle_id, epic_id and run_work_category_id are plain TEXT
	// rather than foreign keys: dangling references are valid data the
	// validator reports as orphaned allocations.
	`CREATE TABLE IF NOT EXISTS allocations (
		id                   TEXT PRIMARY KEY,
		team_id              TEXT NOT NULL,
		cycle_id             TEXT NOT NULL,
		iteration_number     INTEGER NOT NULL,
		percentage           REAL NOT NULL CHECK(percentage >= 0 AND percentage <= 100),
		epic_id              TEXT,
		run_work_category_id TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL,
		CHECK((epic_id IS NULL) != (run_work_category_id IS NULL))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_allocations_team ON allocations(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_allocations_cycle ON allocations(cycle_id)`,
}
