package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const habitColumns = `id, name, description, category, color, target, unit, frequency, is_active, created_at, updated_at`

const habitRecordColumns = `id, habit_id, date, completed, value, note, created_at`

func (s *Store) CreateHabit(ctx context.Context, req CreateHabitRequest) (*Habit, error) {
	id := uuid.NewString()
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, req.Description, req.Category, req.Color,
		req.Target, req.Unit, req.Frequency, req.IsActive, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert habit: %w", err)
	}
	return s.GetHabit(ctx, id)
}

func (s *Store) GetHabit(ctx context.Context, id string) (*Habit, error) {
	var h Habit
	err := s.db.GetContext(ctx, &h,
		`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "habit", id)
	}
	return &h, nil
}

func (s *Store) ListHabits(ctx context.Context) ([]Habit, error) {
	var habits []Habit
	err := s.db.SelectContext(ctx, &habits,
		`SELECT `+habitColumns+` FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

func (s *Store) UpdateHabit(ctx context.Context, req UpdateHabitRequest) (*Habit, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		UPDATE habits SET
			name = ?, description = ?, category = ?, color = ?, target = ?,
			unit = ?, frequency = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		req.Name, req.Description, req.Category, req.Color, req.Target,
		req.Unit, req.Frequency, req.IsActive, now, req.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update habit: %w", err)
	}
	return s.GetHabit(ctx, req.ID)
}

// DeleteHabit removes the habit and, via the schema's cascade rule, all of
// its records.
func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "habit", id)
	}
	return nil
}

func (s *Store) CreateHabitRecord(ctx context.Context, req CreateHabitRecordRequest) (*HabitRecord, error) {
	id := uuid.NewString()
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habit_records (`+habitRecordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, req.HabitID, req.Date, req.Completed, req.Value, req.Note, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert habit record: %w", err)
	}
	return s.GetHabitRecord(ctx, id)
}

func (s *Store) GetHabitRecord(ctx context.Context, id string) (*HabitRecord, error) {
	var r HabitRecord
	err := s.db.GetContext(ctx, &r,
		`SELECT `+habitRecordColumns+` FROM habit_records WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "habit record", id)
	}
	return &r, nil
}

func (s *Store) ListHabitRecords(ctx context.Context, habitID string) ([]HabitRecord, error) {
	var records []HabitRecord
	err := s.db.SelectContext(ctx, &records,
		`SELECT `+habitRecordColumns+` FROM habit_records WHERE habit_id = ? ORDER BY date DESC`,
		habitID)
	if err != nil {
		return nil, fmt.Errorf("list habit records: %w", err)
	}
	return records, nil
}

func (s *Store) ListHabitRecordsByDateRange(ctx context.Context, habitID, startDate, endDate string) ([]HabitRecord, error) {
	var records []HabitRecord
	err := s.db.SelectContext(ctx, &records,
		`SELECT `+habitRecordColumns+` FROM habit_records
		 WHERE habit_id = ? AND date >= ? AND date <= ? ORDER BY date DESC`,
		habitID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list habit records by date range: %w", err)
	}
	return records, nil
}

// GetHabitRecordByDate returns the record for a (habit, date) pair, or nil
// when none exists. Absence is not an error here; the UI probes dates freely.
func (s *Store) GetHabitRecordByDate(ctx context.Context, habitID, date string) (*HabitRecord, error) {
	var r HabitRecord
	err := s.db.GetContext(ctx, &r,
		`SELECT `+habitRecordColumns+` FROM habit_records WHERE habit_id = ? AND date = ?`,
		habitID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get habit record by date: %w", err)
	}
	return &r, nil
}

func (s *Store) UpdateHabitRecord(ctx context.Context, req UpdateHabitRecordRequest) (*HabitRecord, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE habit_records SET completed = ?, value = ?, note = ? WHERE id = ?`,
		req.Completed, req.Value, req.Note, req.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update habit record: %w", err)
	}
	return s.GetHabitRecord(ctx, req.ID)
}

// GetOrCreateHabitRecord returns the unique record for (habitID, date),
// creating an empty one if absent. The lookup and insert run in one
// transaction, and habit_records carries a unique index on (habit_id, date),
// so concurrent identical calls cannot produce duplicates.
func (s *Store) GetOrCreateHabitRecord(ctx context.Context, habitID, date string) (*HabitRecord, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var r HabitRecord
	err = tx.GetContext(ctx, &r,
		`SELECT `+habitRecordColumns+` FROM habit_records WHERE habit_id = ? AND date = ?`,
		habitID, date)
	if err == nil {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return &r, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get habit record by date: %w", err)
	}

	id := uuid.NewString()
	now := Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO habit_records (`+habitRecordColumns+`)
		VALUES (?, ?, ?, ?, NULL, NULL, ?)`,
		id, habitID, date, false, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert habit record: %w", err)
	}
	err = tx.GetContext(ctx, &r,
		`SELECT `+habitRecordColumns+` FROM habit_records WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("read back habit record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &r, nil
}
