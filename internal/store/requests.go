package store

// Request payloads for the command surface. Field names match what the
// frontend sends; list fields arrive as native arrays and are serialized at
// the store boundary.

type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Date        string   `json:"date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	EventType   string   `json:"event_type"`
	Priority    string   `json:"priority"`
	IsAllDay    bool     `json:"is_all_day"`
	Reminder    *int     `json:"reminder"`
	RepeatType  *string  `json:"repeat_type"`
	Location    *string  `json:"location"`
	Attendees   []string `json:"attendees"`
}

type UpdateEventRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Date        string   `json:"date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	EventType   string   `json:"event_type"`
	Priority    string   `json:"priority"`
	IsAllDay    bool     `json:"is_all_day"`
	Reminder    *int     `json:"reminder"`
	RepeatType  *string  `json:"repeat_type"`
	Location    *string  `json:"location"`
	Attendees   []string `json:"attendees"`
}

type CreateHabitRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	Target      int     `json:"target"`
	Unit        string  `json:"unit"`
	Frequency   string  `json:"frequency"`
	IsActive    bool    `json:"is_active"`
}

type UpdateHabitRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Color       string  `json:"color"`
	Target      int     `json:"target"`
	Unit        string  `json:"unit"`
	Frequency   string  `json:"frequency"`
	IsActive    bool    `json:"is_active"`
}

type CreateHabitRecordRequest struct {
	HabitID   string  `json:"habit_id"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Value     *int    `json:"value"`
	Note      *string `json:"note"`
}

type UpdateHabitRecordRequest struct {
	ID        string  `json:"id"`
	Completed bool    `json:"completed"`
	Value     *int    `json:"value"`
	Note      *string `json:"note"`
}

type CreateTodoRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	DueDate     *string  `json:"due_date"`
	Category    string   `json:"category"`
}

type UpdateTodoRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	DueDate     *string  `json:"due_date"`
	Category    string   `json:"category"`
}

type CreateSubtaskRequest struct {
	TodoID string `json:"todo_id"`
	Title  string `json:"title"`
}

type CreateSessionRequest struct {
	SessionType string  `json:"session_type"`
	Duration    int     `json:"duration"`
	TaskTitle   *string `json:"task_title"`
	Notes       *string `json:"notes"`
	Date        string  `json:"date"`
}

type UpdateSessionRequest struct {
	ID        string     `json:"id"`
	Completed bool       `json:"completed"`
	TaskTitle *string    `json:"task_title"`
	Notes     *string    `json:"notes"`
	EndedAt   *Timestamp `json:"ended_at"`
}

type UpdateSettingsRequest struct {
	WorkTime            int  `json:"work_time"`
	ShortBreak          int  `json:"short_break"`
	LongBreak           int  `json:"long_break"`
	LongBreakInterval   int  `json:"long_break_interval"`
	AutoStartBreaks     bool `json:"auto_start_breaks"`
	AutoStartWork       bool `json:"auto_start_work"`
	NotificationEnabled bool `json:"notification_enabled"`
}

type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
}

type UpdateNoteRequest struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Category   string   `json:"category"`
	Color      string   `json:"color"`
	IsPinned   bool     `json:"is_pinned"`
	IsArchived bool     `json:"is_archived"`
}
