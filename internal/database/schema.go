package database

import (
	"context"
	"database/sql"
	"fmt"
)

// ExecContexter is satisfied by *sql.DB and *sql.Tx.
type ExecContexter interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func idColumn(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "BIGSERIAL PRIMARY KEY", nil
	case DriverSQLite:
		return "INTEGER PRIMARY KEY AUTOINCREMENT", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
}

func schemaStatements(driver string) ([]string, error) {
	id, err := idColumn(driver)
	if err != nil {
		return nil, err
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS rounds (
    id       ` + id + `,
    hunt_id  INTEGER NOT NULL,
    number   INTEGER NOT NULL DEFAULT 1,
    name     VARCHAR(200) NOT NULL,
    hunt_url VARCHAR(1000) NOT NULL DEFAULT ''
)`,
		`CREATE TABLE IF NOT EXISTS puzzles (
    id               ` + id + `,
    round_id         BIGINT NOT NULL REFERENCES rounds (id),
    hunt_id          INTEGER NOT NULL,
    name             VARCHAR(200) NOT NULL,
    slug             VARCHAR(50) NOT NULL UNIQUE,
    number           INTEGER,
    answer           VARCHAR(200) NOT NULL DEFAULT '',
    note             VARCHAR(200) NOT NULL DEFAULT '',
    tags             VARCHAR(200) NOT NULL DEFAULT '',
    is_meta          BOOLEAN NOT NULL DEFAULT FALSE,
    hunt_url         VARCHAR(1000) NOT NULL DEFAULT '',
    sheet_id         VARCHAR(1000) UNIQUE,
    last_active      BIGINT NOT NULL DEFAULT 0,
    channel_count    INTEGER NOT NULL DEFAULT 0,
    activity_tracker BIGINT NOT NULL DEFAULT 0
)`,
		`CREATE INDEX IF NOT EXISTS puzzles_hunt_idx ON puzzles (hunt_id, round_id)`,
		`CREATE TABLE IF NOT EXISTS channel_participation (
    puzzle_slug  VARCHAR(50) NOT NULL REFERENCES puzzles (slug),
    user_id      VARCHAR(200) NOT NULL,
    display_name VARCHAR(200) NOT NULL DEFAULT '',
    is_member    BOOLEAN NOT NULL DEFAULT TRUE,
    last_active  BIGINT NOT NULL DEFAULT 0,
    PRIMARY KEY (puzzle_slug, user_id)
)`,
		`CREATE INDEX IF NOT EXISTS channel_participation_active_idx ON channel_participation (last_active)`,
	}, nil
}

// CreateSchema creates any missing table. Running it twice is a no-op.
func CreateSchema(ctx context.Context, db ExecContexter, driver string) error {
	stmts, err := schemaStatements(driver)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}
