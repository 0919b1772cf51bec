package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sadopc/toolbox/internal/store"
)

// TodosToCSV writes all todos to path, one row per todo.
func TodosToCSV(ctx context.Context, s *store.Store, path string) error {
	todos, err := s.ListTodos(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Title", "Completed", "Priority", "Tags", "Due Date", "Category", "Created"}); err != nil {
		return err
	}

	for _, t := range todos {
		dueDate := ""
		if t.DueDate != nil {
			dueDate = *t.DueDate
		}
		completed := "no"
		if t.Completed {
			completed = "yes"
		}

		row := []string{
			t.ID,
			t.Title,
			completed,
			t.Priority,
			strings.Join(t.Tags, ";"),
			dueDate,
			t.Category,
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
