package note

import "context"

type NoteRepository interface {
	GetByID(ctx context.Context, userID, id string) (Note, error)
	Create(ctx context.Context, newNote Note) (Note, error)
	ListByUserID(ctx context.Context, userID string) ([]Note, error)
	Update(ctx context.Context, userID, id string, req UpdateNoteRequest) error
	Delete(ctx context.Context, userID, id string) error
}
