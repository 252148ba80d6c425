package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/note"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.NoteRepository {
	return &noteRepositoryImpl{db: db}
}

const noteColumns = `id, user_id, title, body, color, created_at, updated_at`

func scanNote(row pgx.Row) (note.Note, error) {
	var n note.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Color, &n.CreatedAt, &n.UpdatedAt)
	return n, err
}

// GetByID implements note.NoteRepository.
func (r *noteRepositoryImpl) GetByID(ctx context.Context, userID, id string) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	return scanNote(q.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM sticky_notes WHERE user_id = $1 AND id = $2`,
		userID, id,
	))
}

// Create implements note.NoteRepository.
func (r *noteRepositoryImpl) Create(ctx context.Context, newNote note.Note) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	return scanNote(q.QueryRow(ctx,
		`INSERT INTO sticky_notes (id, user_id, title, body, color) VALUES ($1, $2, $3, $4, $5) RETURNING `+noteColumns,
		newNote.ID, newNote.UserID, newNote.Title, newNote.Body, newNote.Color,
	))
}

// ListByUserID implements note.NoteRepository.
func (r *noteRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]note.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+noteColumns+` FROM sticky_notes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]note.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update implements note.NoteRepository.
func (r *noteRepositoryImpl) Update(ctx context.Context, userID, id string, req note.UpdateNoteRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for note update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE sticky_notes SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE user_id = $%d AND id = $%d", i, i+1)
	args = append(args, userID, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update note with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}

// Delete implements note.NoteRepository.
func (r *noteRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sticky_notes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}
