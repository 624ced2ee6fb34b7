package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the whole
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS energy_checkins (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		level       INTEGER NOT NULL CHECK(level BETWEEN 1 AND 5),
		recorded_at TEXT NOT NULL,
		period      TEXT NOT NULL
		            CHECK(period IN ('early_morning','morning','midday','afternoon','evening','night')),
		day_of_week INTEGER NOT NULL CHECK(day_of_week BETWEEN 0 AND 6),
		tags        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checkins_user_recorded
		ON energy_checkins(user_id, recorded_at)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		title         TEXT NOT NULL,
		priority      TEXT NOT NULL CHECK(priority IN ('high','medium','low')),
		status        TEXT NOT NULL
		              CHECK(status IN ('pending','in_progress','completed','cancelled')),
		due_date      TEXT,
		estimated_min INTEGER,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status
		ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS scheduling_constraints (
		user_id   TEXT NOT NULL,
		type      TEXT NOT NULL
		          CHECK(type IN ('no_meetings_before','no_meetings_after','focus_block',
		                         'meeting_buffer','max_daily_meetings','task_preference')),
		value     TEXT NOT NULL,
		priority  INTEGER NOT NULL DEFAULT 1,
		active    INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (user_id, type)
	)`,
}
