package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const todoColumns = `id, title, description, completed, priority, tags, due_date, category, created_at, updated_at`

const subtaskColumns = `id, todo_id, title, completed, created_at`

func (s *Store) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	id := uuid.NewString()
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (`+todoColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Title, req.Description, false, req.Priority,
		StringList(req.Tags), req.DueDate, req.Category, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return s.GetTodo(ctx, id)
}

func (s *Store) GetTodo(ctx context.Context, id string) (*Todo, error) {
	var t Todo
	err := s.db.GetContext(ctx, &t,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "todo", id)
	}
	return &t, nil
}

func (s *Store) ListTodos(ctx context.Context) ([]Todo, error) {
	var todos []Todo
	err := s.db.SelectContext(ctx, &todos,
		`SELECT `+todoColumns+` FROM todos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *Store) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*Todo, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		UPDATE todos SET
			title = ?, description = ?, completed = ?, priority = ?,
			tags = ?, due_date = ?, category = ?, updated_at = ?
		WHERE id = ?`,
		req.Title, req.Description, req.Completed, req.Priority,
		StringList(req.Tags), req.DueDate, req.Category, now, req.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return s.GetTodo(ctx, req.ID)
}

// DeleteTodo removes the todo and, via the schema's cascade rule, all of its
// subtasks.
func (s *Store) DeleteTodo(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "todo", id)
	}
	return nil
}

// ToggleTodo flips the completed flag in place and refreshes updated_at.
func (s *Store) ToggleTodo(ctx context.Context, id string) (*Todo, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx,
		`UPDATE todos SET completed = NOT completed, updated_at = ? WHERE id = ?`, now, id)
	if err != nil {
		return nil, fmt.Errorf("toggle todo: %w", err)
	}
	return s.GetTodo(ctx, id)
}

func (s *Store) CreateSubtask(ctx context.Context, req CreateSubtaskRequest) (*Subtask, error) {
	id := uuid.NewString()
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subtasks (`+subtaskColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
		id, req.TodoID, req.Title, false, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert subtask: %w", err)
	}
	return s.GetSubtask(ctx, id)
}

func (s *Store) GetSubtask(ctx context.Context, id string) (*Subtask, error) {
	var st Subtask
	err := s.db.GetContext(ctx, &st,
		`SELECT `+subtaskColumns+` FROM subtasks WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "subtask", id)
	}
	return &st, nil
}

func (s *Store) ListSubtasks(ctx context.Context, todoID string) ([]Subtask, error) {
	var subtasks []Subtask
	err := s.db.SelectContext(ctx, &subtasks,
		`SELECT `+subtaskColumns+` FROM subtasks WHERE todo_id = ? ORDER BY created_at`,
		todoID)
	if err != nil {
		return nil, fmt.Errorf("list subtasks: %w", err)
	}
	return subtasks, nil
}

func (s *Store) ToggleSubtask(ctx context.Context, id string) (*Subtask, error) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE subtasks SET completed = NOT completed WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("toggle subtask: %w", err)
	}
	return s.GetSubtask(ctx, id)
}

func (s *Store) DeleteSubtask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subtasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete subtask: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "subtask", id)
	}
	return nil
}
