package command

import (
	"context"

	"github.com/sadopc/toolbox/internal/export"
	"github.com/sadopc/toolbox/internal/store"
)

// Shared payload shapes for commands keyed by something other than a full
// request struct.

type idRequest struct {
	ID string `json:"id"`
}

type dateRequest struct {
	Date string `json:"date"`
}

type dateRangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type habitIDRequest struct {
	HabitID string `json:"habit_id"`
}

type habitDateRequest struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

type habitRangeRequest struct {
	HabitID   string `json:"habit_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type todoIDRequest struct {
	TodoID string `json:"todo_id"`
}

type exportRequest struct {
	Format string `json:"format"` // json or csv
	Path   string `json:"path"`
}

type sessionStats struct {
	Completed    int   `json:"completed"`
	FocusSeconds int64 `json:"focus_seconds"`
}

func (d *Dispatcher) registerAll(st *store.Store) {
	// Calendar events
	d.register("get_all_events", handleNoArg(func(ctx context.Context) (any, error) {
		return st.ListEvents(ctx)
	}))
	d.register("get_events_by_date_range", handle(func(ctx context.Context, r dateRangeRequest) (any, error) {
		return st.ListEventsByDateRange(ctx, r.StartDate, r.EndDate)
	}))
	d.register("create_event", handle(func(ctx context.Context, r store.CreateEventRequest) (any, error) {
		return st.CreateEvent(ctx, r)
	}))
	d.register("update_event", handle(func(ctx context.Context, r store.UpdateEventRequest) (any, error) {
		return st.UpdateEvent(ctx, r)
	}))
	d.register("delete_event", handle(func(ctx context.Context, r idRequest) (any, error) {
		return nil, st.DeleteEvent(ctx, r.ID)
	}))

	// Habits
	d.register("get_all_habits", handleNoArg(func(ctx context.Context) (any, error) {
		return st.ListHabits(ctx)
	}))
	d.register("create_habit", handle(func(ctx context.Context, r store.CreateHabitRequest) (any, error) {
		return st.CreateHabit(ctx, r)
	}))
	d.register("update_habit", handle(func(ctx context.Context, r store.UpdateHabitRequest) (any, error) {
		return st.UpdateHabit(ctx, r)
	}))
	d.register("delete_habit", handle(func(ctx context.Context, r idRequest) (any, error) {
		return nil, st.DeleteHabit(ctx, r.ID)
	}))

	// Habit records
	d.register("create_habit_record", handle(func(ctx context.Context, r store.CreateHabitRecordRequest) (any, error) {
		return st.CreateHabitRecord(ctx, r)
	}))
	d.register("update_habit_record", handle(func(ctx context.Context, r store.UpdateHabitRecordRequest) (any, error) {
		return st.UpdateHabitRecord(ctx, r)
	}))
	d.register("get_habit_records_by_habit", handle(func(ctx context.Context, r habitIDRequest) (any, error) {
		return st.ListHabitRecords(ctx, r.HabitID)
	}))
	d.register("get_habit_records_by_date_range", handle(func(ctx context.Context, r habitRangeRequest) (any, error) {
		return st.ListHabitRecordsByDateRange(ctx, r.HabitID, r.StartDate, r.EndDate)
	}))
	d.register("get_habit_record_by_date", handle(func(ctx context.Context, r habitDateRequest) (any, error) {
		return st.GetHabitRecordByDate(ctx, r.HabitID, r.Date)
	}))
	d.register("get_or_create_habit_record", handle(func(ctx context.Context, r habitDateRequest) (any, error) {
		return st.GetOrCreateHabitRecord(ctx, r.HabitID, r.Date)
	}))

	// Todos
	d.register("get_all_todos", handleNoArg(func(ctx context.Context) (any, error) {
		return st.ListTodos(ctx)
	}))
	d.register("create_todo", handle(func(ctx context.Context, r store.CreateTodoRequest) (any, error) {
		return st.CreateTodo(ctx, r)
	}))
	d.register("update_todo", handle(func(ctx context.Context, r store.UpdateTodoRequest) (any, error) {
		return st.UpdateTodo(ctx, r)
	}))
	d.register("delete_todo", handle(func(ctx context.Context, r idRequest) (any, error) {
		return nil, st.DeleteTodo(ctx, r.ID)
	}))
	d.register("toggle_todo_completion", handle(func(ctx context.Context, r idRequest) (any, error) {
		return st.ToggleTodo(ctx, r.ID)
	}))

	// Subtasks
	d.register("get_subtasks_by_todo", handle(func(ctx context.Context, r todoIDRequest) (any, error) {
		return st.ListSubtasks(ctx, r.TodoID)
	}))
	d.register("create_subtask", handle(func(ctx context.Context, r store.CreateSubtaskRequest) (any, error) {
		return st.CreateSubtask(ctx, r)
	}))
	d.register("toggle_subtask_completion", handle(func(ctx context.Context, r idRequest) (any, error) {
		return st.ToggleSubtask(ctx, r.ID)
	}))
	d.register("delete_subtask", handle(func(ctx context.Context, r idRequest) (any, error) {
		return nil, st.DeleteSubtask(ctx, r.ID)
	}))

	// Pomodoro
	d.register("create_pomodoro_session", handle(func(ctx context.Context, r store.CreateSessionRequest) (any, error) {
		return st.CreateSession(ctx, r)
	}))
	d.register("update_pomodoro_session", handle(func(ctx context.Context, r store.UpdateSessionRequest) (any, error) {
		return st.UpdateSession(ctx, r)
	}))
	d.register("get_pomodoro_sessions_by_date", handle(func(ctx context.Context, r dateRequest) (any, error) {
		return st.ListSessionsByDate(ctx, r.Date)
	}))
	d.register("get_pomodoro_sessions_by_date_range", handle(func(ctx context.Context, r dateRangeRequest) (any, error) {
		return st.ListSessionsByDateRange(ctx, r.StartDate, r.EndDate)
	}))
	d.register("get_pomodoro_stats", handle(func(ctx context.Context, r dateRangeRequest) (any, error) {
		completed, focus, err := st.SessionStats(ctx, r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		return sessionStats{Completed: completed, FocusSeconds: focus}, nil
	}))
	d.register("get_pomodoro_settings", handleNoArg(func(ctx context.Context) (any, error) {
		return st.GetSettings(ctx)
	}))
	d.register("update_pomodoro_settings", handle(func(ctx context.Context, r store.UpdateSettingsRequest) (any, error) {
		return st.UpdateSettings(ctx, r)
	}))

	// Notes
	d.register("get_all_notes", handleNoArg(func(ctx context.Context) (any, error) {
		return st.ListNotes(ctx)
	}))
	d.register("create_note", handle(func(ctx context.Context, r store.CreateNoteRequest) (any, error) {
		return st.CreateNote(ctx, r)
	}))
	d.register("update_note", handle(func(ctx context.Context, r store.UpdateNoteRequest) (any, error) {
		return st.UpdateNote(ctx, r)
	}))
	d.register("delete_note", handle(func(ctx context.Context, r idRequest) (any, error) {
		return nil, st.DeleteNote(ctx, r.ID)
	}))
	d.register("toggle_note_pin", handle(func(ctx context.Context, r idRequest) (any, error) {
		return st.ToggleNotePin(ctx, r.ID)
	}))

	// Export
	d.register("export_data", handle(func(ctx context.Context, r exportRequest) (any, error) {
		switch r.Format {
		case "csv":
			return nil, export.TodosToCSV(ctx, st, r.Path)
		default:
			return nil, export.SnapshotToJSON(ctx, st, r.Path)
		}
	}))
}
