package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/toolbox/internal/store"
)

// Snapshot is a full dump of every record family, for backup or migration.
type Snapshot struct {
	ExportedAt string                  `json:"exported_at"`
	Events     []store.CalendarEvent   `json:"events"`
	Habits     []store.Habit           `json:"habits"`
	Records    []store.HabitRecord     `json:"habit_records"`
	Todos      []store.Todo            `json:"todos"`
	Subtasks   []store.Subtask         `json:"subtasks"`
	Settings   *store.PomodoroSettings `json:"pomodoro_settings"`
	Notes      []store.Note            `json:"notes"`
}

// SnapshotToJSON writes the whole store to path as indented JSON.
func SnapshotToJSON(ctx context.Context, s *store.Store, path string) error {
	snap := Snapshot{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var err error
	if snap.Events, err = s.ListEvents(ctx); err != nil {
		return err
	}
	if snap.Habits, err = s.ListHabits(ctx); err != nil {
		return err
	}
	for _, h := range snap.Habits {
		records, err := s.ListHabitRecords(ctx, h.ID)
		if err != nil {
			return err
		}
		snap.Records = append(snap.Records, records...)
	}
	if snap.Todos, err = s.ListTodos(ctx); err != nil {
		return err
	}
	for _, t := range snap.Todos {
		subtasks, err := s.ListSubtasks(ctx, t.ID)
		if err != nil {
			return err
		}
		snap.Subtasks = append(snap.Subtasks, subtasks...)
	}
	if snap.Settings, err = s.GetSettings(ctx); err != nil {
		return err
	}
	if snap.Notes, err = s.ListNotes(ctx); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
