package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sadopc/toolbox/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotToJSON(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	habit, err := s.CreateHabit(ctx, store.CreateHabitRequest{
		Name: "Read", Category: "growth", Color: "#333",
		Target: 1, Unit: "session", Frequency: "daily", IsActive: true,
	})
	require.NoError(t, err)
	_, err = s.GetOrCreateHabitRecord(ctx, habit.ID, "2024-01-01")
	require.NoError(t, err)

	todo, err := s.CreateTodo(ctx, store.CreateTodoRequest{
		Title: "Pack", Priority: "low", Category: "general",
	})
	require.NoError(t, err)
	_, err = s.CreateSubtask(ctx, store.CreateSubtaskRequest{TodoID: todo.ID, Title: "socks"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, SnapshotToJSON(ctx, s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	require.NotEmpty(t, snap.ExportedAt)
	require.Len(t, snap.Habits, 1)
	require.Len(t, snap.Records, 1)
	require.Len(t, snap.Todos, 1)
	require.Len(t, snap.Subtasks, 1)
	require.NotNil(t, snap.Settings)
	require.Equal(t, 25, snap.Settings.WorkTime)
}

func TestTodosToCSV(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateTodo(ctx, store.CreateTodoRequest{
		Title: "Buy milk", Priority: "medium",
		Tags: []string{"errand", "food"}, Category: "personal",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "todos.csv")
	require.NoError(t, TodosToCSV(ctx, s, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Title", rows[0][1])
	require.Equal(t, "Buy milk", rows[1][1])
	require.Equal(t, "errand;food", rows[1][4])
}
