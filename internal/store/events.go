package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const eventColumns = `id, title, description, date, start_time, end_time, event_type, priority, is_all_day, reminder, repeat_type, location, attendees, created_at, updated_at`

func (s *Store) CreateEvent(ctx context.Context, req CreateEventRequest) (*CalendarEvent, error) {
	id := uuid.NewString()
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calendar_events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Title, req.Description, req.Date, req.StartTime, req.EndTime,
		req.EventType, req.Priority, req.IsAllDay, req.Reminder, req.RepeatType,
		req.Location, StringList(req.Attendees), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return s.GetEvent(ctx, id)
}

func (s *Store) GetEvent(ctx context.Context, id string) (*CalendarEvent, error) {
	var e CalendarEvent
	err := s.db.GetContext(ctx, &e,
		`SELECT `+eventColumns+` FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "event", id)
	}
	return &e, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]CalendarEvent, error) {
	var events []CalendarEvent
	err := s.db.SelectContext(ctx, &events,
		`SELECT `+eventColumns+` FROM calendar_events ORDER BY date, start_time`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Store) ListEventsByDateRange(ctx context.Context, startDate, endDate string) ([]CalendarEvent, error) {
	var events []CalendarEvent
	err := s.db.SelectContext(ctx, &events,
		`SELECT `+eventColumns+` FROM calendar_events WHERE date >= ? AND date <= ? ORDER BY date, start_time`,
		startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list events by date range: %w", err)
	}
	return events, nil
}

func (s *Store) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*CalendarEvent, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		UPDATE calendar_events SET
			title = ?, description = ?, date = ?, start_time = ?, end_time = ?,
			event_type = ?, priority = ?, is_all_day = ?, reminder = ?,
			repeat_type = ?, location = ?, attendees = ?, updated_at = ?
		WHERE id = ?`,
		req.Title, req.Description, req.Date, req.StartTime, req.EndTime,
		req.EventType, req.Priority, req.IsAllDay, req.Reminder, req.RepeatType,
		req.Location, StringList(req.Attendees), now, req.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return s.GetEvent(ctx, req.ID)
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "event", id)
	}
	return nil
}
