package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sessionColumns = `id, session_type, duration, completed, task_title, notes, date, started_at, ended_at, created_at`

const settingsColumns = `id, work_time, short_break, long_break, long_break_interval, auto_start_breaks, auto_start_work, notification_enabled, created_at, updated_at`

func (s *Store) CreateSession(ctx context.Context, req CreateSessionRequest) (*PomodoroSession, error) {
	id := uuid.NewString()
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pomodoro_sessions (id, session_type, duration, completed, task_title, notes, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.SessionType, req.Duration, false, req.TaskTitle, req.Notes, req.Date, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return s.GetSession(ctx, id)
}

func (s *Store) GetSession(ctx context.Context, id string) (*PomodoroSession, error) {
	var sess PomodoroSession
	err := s.db.GetContext(ctx, &sess,
		`SELECT `+sessionColumns+` FROM pomodoro_sessions WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "session", id)
	}
	return &sess, nil
}

func (s *Store) UpdateSession(ctx context.Context, req UpdateSessionRequest) (*PomodoroSession, error) {
	_, err := s.db.ExecContext(ctx, `
		UPDATE pomodoro_sessions SET completed = ?, task_title = ?, notes = ?, ended_at = ?
		WHERE id = ?`,
		req.Completed, req.TaskTitle, req.Notes, req.EndedAt, req.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return s.GetSession(ctx, req.ID)
}

func (s *Store) ListSessionsByDate(ctx context.Context, date string) ([]PomodoroSession, error) {
	var sessions []PomodoroSession
	err := s.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM pomodoro_sessions WHERE date = ? ORDER BY created_at`,
		date)
	if err != nil {
		return nil, fmt.Errorf("list sessions by date: %w", err)
	}
	return sessions, nil
}

func (s *Store) ListSessionsByDateRange(ctx context.Context, startDate, endDate string) ([]PomodoroSession, error) {
	var sessions []PomodoroSession
	err := s.db.SelectContext(ctx, &sessions,
		`SELECT `+sessionColumns+` FROM pomodoro_sessions WHERE date >= ? AND date <= ? ORDER BY date, created_at`,
		startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list sessions by date range: %w", err)
	}
	return sessions, nil
}

// SessionStats aggregates completed work sessions over an inclusive date range.
func (s *Store) SessionStats(ctx context.Context, startDate, endDate string) (completed int, focusSeconds int64, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(duration), 0)
		FROM pomodoro_sessions
		WHERE completed = 1 AND session_type = 'work'
		  AND date >= ? AND date <= ?`,
		startDate, endDate,
	).Scan(&completed, &focusSeconds)
	if err != nil {
		err = fmt.Errorf("session stats: %w", err)
	}
	return
}

// GetSettings returns the singleton settings row.
func (s *Store) GetSettings(ctx context.Context) (*PomodoroSettings, error) {
	var cfg PomodoroSettings
	err := s.db.GetContext(ctx, &cfg,
		`SELECT `+settingsColumns+` FROM pomodoro_settings LIMIT 1`)
	if err != nil {
		return nil, notFound(err, "settings", "singleton")
	}
	return &cfg, nil
}

func (s *Store) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*PomodoroSettings, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		UPDATE pomodoro_settings SET
			work_time = ?, short_break = ?, long_break = ?, long_break_interval = ?,
			auto_start_breaks = ?, auto_start_work = ?, notification_enabled = ?, updated_at = ?`,
		req.WorkTime, req.ShortBreak, req.LongBreak, req.LongBreakInterval,
		req.AutoStartBreaks, req.AutoStartWork, req.NotificationEnabled, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return s.GetSettings(ctx)
}
