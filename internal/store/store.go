package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Store is the record store behind the command surface. All access goes
// through a single connection (SetMaxOpenConns(1)), so operations are
// totally ordered without an application-level lock.
type Store struct {
	db *sqlx.DB
}

// New opens (or creates) the SQLite database at dbPath, runs migrations and
// seeds the pomodoro settings row. Safe to call on every startup.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.ensureSettings(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS calendar_events (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT,
		date        TEXT NOT NULL,
		start_time  TEXT,
		end_time    TEXT,
		event_type  TEXT NOT NULL,
		priority    TEXT NOT NULL,
		is_all_day  BOOLEAN NOT NULL,
		reminder    INTEGER,
		repeat_type TEXT,
		location    TEXT,
		attendees   TEXT,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS habits (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT,
		category    TEXT NOT NULL,
		color       TEXT NOT NULL,
		target      INTEGER NOT NULL,
		unit        TEXT NOT NULL,
		frequency   TEXT NOT NULL,
		is_active   BOOLEAN NOT NULL,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS habit_records (
		id         TEXT PRIMARY KEY,
		habit_id   TEXT NOT NULL,
		date       TEXT NOT NULL,
		completed  BOOLEAN NOT NULL,
		value      INTEGER,
		note       TEXT,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (habit_id) REFERENCES habits (id) ON DELETE CASCADE
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_habit_records_habit_date
		ON habit_records (habit_id, date);

	CREATE TABLE IF NOT EXISTS todos (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT,
		completed   BOOLEAN NOT NULL DEFAULT FALSE,
		priority    TEXT NOT NULL,
		tags        TEXT,
		due_date    TEXT,
		category    TEXT NOT NULL DEFAULT 'general',
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS subtasks (
		id         TEXT PRIMARY KEY,
		todo_id    TEXT NOT NULL,
		title      TEXT NOT NULL,
		completed  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (todo_id) REFERENCES todos (id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS pomodoro_sessions (
		id           TEXT PRIMARY KEY,
		session_type TEXT NOT NULL,
		duration     INTEGER NOT NULL,
		completed    BOOLEAN NOT NULL DEFAULT FALSE,
		task_title   TEXT,
		notes        TEXT,
		date         TEXT NOT NULL,
		started_at   DATETIME,
		ended_at     DATETIME,
		created_at   DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pomodoro_settings (
		id                   TEXT PRIMARY KEY,
		work_time            INTEGER NOT NULL DEFAULT 25,
		short_break          INTEGER NOT NULL DEFAULT 5,
		long_break           INTEGER NOT NULL DEFAULT 15,
		long_break_interval  INTEGER NOT NULL DEFAULT 4,
		auto_start_breaks    BOOLEAN NOT NULL DEFAULT FALSE,
		auto_start_work      BOOLEAN NOT NULL DEFAULT FALSE,
		notification_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		created_at           DATETIME NOT NULL,
		updated_at           DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notes (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		content     TEXT NOT NULL,
		tags        TEXT,
		category    TEXT NOT NULL DEFAULT 'general',
		color       TEXT NOT NULL DEFAULT '#fef3c7',
		is_pinned   BOOLEAN NOT NULL DEFAULT FALSE,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// ensureSettings inserts the default pomodoro settings row if the table is
// empty. Runs on every startup; never duplicates the row.
func (s *Store) ensureSettings() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pomodoro_settings`).Scan(&count); err != nil {
		return fmt.Errorf("count settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := Now()
	_, err := s.db.Exec(`
		INSERT INTO pomodoro_settings (
			id, work_time, short_break, long_break, long_break_interval,
			auto_start_breaks, auto_start_work, notification_enabled,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), 25, 5, 15, 4, false, false, true, now, now,
	)
	return err
}

// notFound maps sql.ErrNoRows onto ErrNotFound with entity context.
func notFound(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return fmt.Errorf("get %s %s: %w", entity, id, err)
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DefaultDBPath returns the data file location under the user config dir.
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "toolbox", "toolbox.db"), nil
}
