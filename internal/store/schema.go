package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tablePreferences   = "preferences"
	tableSessionEvents = "session_events"
	tableAnswerEvents  = "answer_events"
)

// Times are unix milliseconds.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		timestamp      INTEGER NOT NULL,
		session_id     TEXT    NOT NULL,
		action         TEXT    NOT NULL,
		age            INTEGER NOT NULL DEFAULT 0,
		max_stage      INTEGER NOT NULL DEFAULT 0,
		operator       TEXT    NOT NULL DEFAULT '',
		score          INTEGER NOT NULL DEFAULT 0,
		correct_count  INTEGER NOT NULL DEFAULT 0,
		total_count    INTEGER NOT NULL DEFAULT 0,
		duration_secs  INTEGER NOT NULL DEFAULT 0,
		earned_minutes INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_events_session_id ON session_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		timestamp      INTEGER NOT NULL,
		session_id     TEXT    NOT NULL,
		stage          INTEGER NOT NULL,
		question_text  TEXT    NOT NULL,
		correct_answer INTEGER NOT NULL,
		given          INTEGER NOT NULL DEFAULT 0,
		correct        INTEGER NOT NULL DEFAULT 0,
		retry          INTEGER NOT NULL DEFAULT 0,
		points         INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_session_id ON answer_events (session_id)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
