package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTodo(t *testing.T, s *Store, title string) *Todo {
	t.Helper()
	todo, err := s.CreateTodo(context.Background(), CreateTodoRequest{
		Title: title, Priority: "medium", Category: "general",
	})
	require.NoError(t, err)
	return todo
}

func TestCreateAndGetTodo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	todo, err := s.CreateTodo(ctx, CreateTodoRequest{
		Title:    "Ship release",
		Priority: "high",
		Tags:     []string{"work", "urgent"},
		DueDate:  strPtr("2024-06-01"),
		Category: "work",
	})
	require.NoError(t, err)
	require.NotEmpty(t, todo.ID)
	require.False(t, todo.Completed)
	require.Equal(t, "high", todo.Priority)
	require.Equal(t, StringList{"work", "urgent"}, todo.Tags)
	require.Equal(t, "2024-06-01", *todo.DueDate)

	got, err := s.GetTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.Equal(t, todo, got)
}

func TestListTodosNewestFirst(t *testing.T) {
	s := newTestStore(t)

	older := newTestTodo(t, s, "older")
	newer := newTestTodo(t, s, "newer")
	setCreatedAt(t, s, "todos", older.ID, "2024-01-01T00:00:00Z")
	setCreatedAt(t, s, "todos", newer.ID, "2024-01-02T00:00:00Z")

	todos, err := s.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	require.Equal(t, "newer", todos[0].Title)
	require.Equal(t, "older", todos[1].Title)
}

func TestUpdateTodo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	todo := newTestTodo(t, s, "Draft")
	updated, err := s.UpdateTodo(ctx, UpdateTodoRequest{
		ID: todo.ID, Title: "Polished", Completed: true, Priority: "low",
		Tags: []string{"done"}, Category: "personal",
	})
	require.NoError(t, err)
	require.Equal(t, "Polished", updated.Title)
	require.True(t, updated.Completed)
	require.Equal(t, StringList{"done"}, updated.Tags)
	require.Equal(t, todo.CreatedAt, updated.CreatedAt)
	require.False(t, updated.UpdatedAt.Before(todo.UpdatedAt.Time))
}

func TestToggleTodoInvolution(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	todo := newTestTodo(t, s, "Flip me")
	require.False(t, todo.Completed)

	once, err := s.ToggleTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.True(t, once.Completed)

	twice, err := s.ToggleTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.False(t, twice.Completed)
	require.Equal(t, todo.CreatedAt, twice.CreatedAt)
}

func TestToggleTodoMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ToggleTodo(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubtaskLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	todo := newTestTodo(t, s, "Parent")
	st, err := s.CreateSubtask(ctx, CreateSubtaskRequest{TodoID: todo.ID, Title: "Step 1"})
	require.NoError(t, err)
	require.Equal(t, todo.ID, st.TodoID)
	require.False(t, st.Completed)

	toggled, err := s.ToggleSubtask(ctx, st.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	back, err := s.ToggleSubtask(ctx, st.ID)
	require.NoError(t, err)
	require.False(t, back.Completed)

	require.NoError(t, s.DeleteSubtask(ctx, st.ID))
	_, err = s.GetSubtask(ctx, st.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListSubtasksOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	todo := newTestTodo(t, s, "Parent")
	first, err := s.CreateSubtask(ctx, CreateSubtaskRequest{TodoID: todo.ID, Title: "first"})
	require.NoError(t, err)
	second, err := s.CreateSubtask(ctx, CreateSubtaskRequest{TodoID: todo.ID, Title: "second"})
	require.NoError(t, err)
	setCreatedAt(t, s, "subtasks", first.ID, "2024-01-01T00:00:00Z")
	setCreatedAt(t, s, "subtasks", second.ID, "2024-01-02T00:00:00Z")

	subtasks, err := s.ListSubtasks(ctx, todo.ID)
	require.NoError(t, err)
	require.Len(t, subtasks, 2)
	require.Equal(t, "first", subtasks[0].Title)
	require.Equal(t, "second", subtasks[1].Title)
}

func TestDeleteTodoCascadesSubtasks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	todo := newTestTodo(t, s, "Parent")
	for _, title := range []string{"a", "b"} {
		_, err := s.CreateSubtask(ctx, CreateSubtaskRequest{TodoID: todo.ID, Title: title})
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteTodo(ctx, todo.ID))

	subtasks, err := s.ListSubtasks(ctx, todo.ID)
	require.NoError(t, err)
	require.Empty(t, subtasks)
}

func TestCreateSubtaskRequiresTodo(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateSubtask(context.Background(), CreateSubtaskRequest{
		TodoID: "missing", Title: "orphan",
	})
	require.Error(t, err)
}
