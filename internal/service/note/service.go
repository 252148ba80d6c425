package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/note"
)

type NoteServiceImpl struct {
	noteRepo note.NoteRepository
}

func NewNoteService(noteRepo note.NoteRepository) note.NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo}
}

// Create implements note.NoteService.
func (s *NoteServiceImpl) Create(ctx context.Context, userID string, req note.CreateNoteRequest) (note.NoteResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return note.NoteResponse{}, note.ErrTitleRequired
	}

	created, err := s.noteRepo.Create(ctx, note.Note{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
		Color:  req.Color,
	})
	if err != nil {
		return note.NoteResponse{}, fmt.Errorf("failed to create note: %w", err)
	}
	return note.ToResponse(created), nil
}

// List implements note.NoteService.
func (s *NoteServiceImpl) List(ctx context.Context, userID string) ([]note.NoteResponse, error) {
	notes, err := s.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	responses := make([]note.NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, note.ToResponse(n))
	}
	return responses, nil
}

// Get implements note.NoteService.
func (s *NoteServiceImpl) Get(ctx context.Context, userID, id string) (note.NoteResponse, error) {
	n, err := s.noteRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.NoteResponse{}, note.ErrNoteNotFound
		}
		return note.NoteResponse{}, fmt.Errorf("failed to get note: %w", err)
	}
	return note.ToResponse(n), nil
}

// Update implements note.NoteService.
func (s *NoteServiceImpl) Update(ctx context.Context, userID, id string, req note.UpdateNoteRequest) (note.NoteResponse, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return note.NoteResponse{}, note.ErrTitleRequired
	}

	if err := s.noteRepo.Update(ctx, userID, id, req); err != nil {
		return note.NoteResponse{}, err
	}
	return s.Get(ctx, userID, id)
}

// Delete implements note.NoteService.
func (s *NoteServiceImpl) Delete(ctx context.Context, userID, id string) error {
	return s.noteRepo.Delete(ctx, userID, id)
}
