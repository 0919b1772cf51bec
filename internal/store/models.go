package store

type CalendarEvent struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Date        string     `db:"date" json:"date"`
	StartTime   *string    `db:"start_time" json:"start_time"`
	EndTime     *string    `db:"end_time" json:"end_time"`
	EventType   string     `db:"event_type" json:"event_type"`
	Priority    string     `db:"priority" json:"priority"`
	IsAllDay    bool       `db:"is_all_day" json:"is_all_day"`
	Reminder    *int       `db:"reminder" json:"reminder"`
	RepeatType  *string    `db:"repeat_type" json:"repeat_type"`
	Location    *string    `db:"location" json:"location"`
	Attendees   StringList `db:"attendees" json:"attendees"`
	CreatedAt   Timestamp  `db:"created_at" json:"created_at"`
	UpdatedAt   Timestamp  `db:"updated_at" json:"updated_at"`
}

type Habit struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Color       string    `db:"color" json:"color"`
	Target      int       `db:"target" json:"target"`
	Unit        string    `db:"unit" json:"unit"`
	Frequency   string    `db:"frequency" json:"frequency"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt   Timestamp `db:"updated_at" json:"updated_at"`
}

type HabitRecord struct {
	ID        string    `db:"id" json:"id"`
	HabitID   string    `db:"habit_id" json:"habit_id"`
	Date      string    `db:"date" json:"date"`
	Completed bool      `db:"completed" json:"completed"`
	Value     *int      `db:"value" json:"value"`
	Note      *string   `db:"note" json:"note"`
	CreatedAt Timestamp `db:"created_at" json:"created_at"`
}

type Todo struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Completed   bool       `db:"completed" json:"completed"`
	Priority    string     `db:"priority" json:"priority"` // low, medium, high
	Tags        StringList `db:"tags" json:"tags"`
	DueDate     *string    `db:"due_date" json:"due_date"`
	Category    string     `db:"category" json:"category"`
	CreatedAt   Timestamp  `db:"created_at" json:"created_at"`
	UpdatedAt   Timestamp  `db:"updated_at" json:"updated_at"`
}

type Subtask struct {
	ID        string    `db:"id" json:"id"`
	TodoID    string    `db:"todo_id" json:"todo_id"`
	Title     string    `db:"title" json:"title"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt Timestamp `db:"created_at" json:"created_at"`
}

type PomodoroSession struct {
	ID          string     `db:"id" json:"id"`
	SessionType string     `db:"session_type" json:"session_type"` // work, short_break, long_break
	Duration    int        `db:"duration" json:"duration"`         // seconds
	Completed   bool       `db:"completed" json:"completed"`
	TaskTitle   *string    `db:"task_title" json:"task_title"`
	Notes       *string    `db:"notes" json:"notes"`
	Date        string     `db:"date" json:"date"`
	StartedAt   *Timestamp `db:"started_at" json:"started_at"`
	EndedAt     *Timestamp `db:"ended_at" json:"ended_at"`
	CreatedAt   Timestamp  `db:"created_at" json:"created_at"`
}

// PomodoroSettings is a singleton; the store guarantees exactly one row.
type PomodoroSettings struct {
	ID                  string    `db:"id" json:"id"`
	WorkTime            int       `db:"work_time" json:"work_time"` // minutes
	ShortBreak          int       `db:"short_break" json:"short_break"`
	LongBreak           int       `db:"long_break" json:"long_break"`
	LongBreakInterval   int       `db:"long_break_interval" json:"long_break_interval"`
	AutoStartBreaks     bool      `db:"auto_start_breaks" json:"auto_start_breaks"`
	AutoStartWork       bool      `db:"auto_start_work" json:"auto_start_work"`
	NotificationEnabled bool      `db:"notification_enabled" json:"notification_enabled"`
	CreatedAt           Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt           Timestamp `db:"updated_at" json:"updated_at"`
}

type Note struct {
	ID         string     `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Content    string     `db:"content" json:"content"`
	Tags       StringList `db:"tags" json:"tags"`
	Category   string     `db:"category" json:"category"`
	Color      string     `db:"color" json:"color"`
	IsPinned   bool       `db:"is_pinned" json:"is_pinned"`
	IsArchived bool       `db:"is_archived" json:"is_archived"`
	CreatedAt  Timestamp  `db:"created_at" json:"created_at"`
	UpdatedAt  Timestamp  `db:"updated_at" json:"updated_at"`
}
