package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const noteColumns = `id, title, content, tags, category, color, is_pinned, is_archived, created_at, updated_at`

func (s *Store) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	id := uuid.NewString()
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Title, req.Content, StringList(req.Tags), req.Category,
		req.Color, false, false, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return s.GetNote(ctx, id)
}

func (s *Store) GetNote(ctx context.Context, id string) (*Note, error) {
	var n Note
	err := s.db.GetContext(ctx, &n,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	if err != nil {
		return nil, notFound(err, "note", id)
	}
	return &n, nil
}

// ListNotes returns non-archived notes, pinned first, most recently updated
// first within each group.
func (s *Store) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	err := s.db.SelectContext(ctx, &notes,
		`SELECT `+noteColumns+` FROM notes WHERE is_archived = FALSE ORDER BY is_pinned DESC, updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (s *Store) UpdateNote(ctx context.Context, req UpdateNoteRequest) (*Note, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx, `
		UPDATE notes SET
			title = ?, content = ?, tags = ?, category = ?, color = ?,
			is_pinned = ?, is_archived = ?, updated_at = ?
		WHERE id = ?`,
		req.Title, req.Content, StringList(req.Tags), req.Category, req.Color,
		req.IsPinned, req.IsArchived, now, req.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return s.GetNote(ctx, req.ID)
}

func (s *Store) DeleteNote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(sql.ErrNoRows, "note", id)
	}
	return nil
}

// ToggleNotePin flips the pinned flag in place and refreshes updated_at.
func (s *Store) ToggleNotePin(ctx context.Context, id string) (*Note, error) {
	now := Now()
	_, err := s.db.ExecContext(ctx,
		`UPDATE notes SET is_pinned = NOT is_pinned, updated_at = ? WHERE id = ?`, now, id)
	if err != nil {
		return nil, fmt.Errorf("toggle note pin: %w", err)
	}
	return s.GetNote(ctx, id)
}
