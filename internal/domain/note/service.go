package note

import "context"

type NoteService interface {
	Create(ctx context.Context, userID string, req CreateNoteRequest) (NoteResponse, error)
	List(ctx context.Context, userID string) ([]NoteResponse, error)
	Get(ctx context.Context, userID, id string) (NoteResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateNoteRequest) (NoteResponse, error)
	Delete(ctx context.Context, userID, id string) error
}
