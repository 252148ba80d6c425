package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/note"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/middleware"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type NoteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NoteHandlerImpl struct {
	noteService note.NoteService
}

func NewNoteHandler(noteService note.NoteService) NoteHandler {
	return &NoteHandlerImpl{noteService: noteService}
}

// Create implements NoteHandler.
func (h *NoteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req note.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.noteService.Create(r.Context(), principal.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Note created", result)
}

// List implements NoteHandler.
func (h *NoteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	notes, err := h.noteService.List(r.Context(), principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, notes)
}

// Get implements NoteHandler.
func (h *NoteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.noteService.Get(r.Context(), principal.UserID, chi.URLParam(r, "noteID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements NoteHandler.
func (h *NoteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req note.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.noteService.Update(r.Context(), principal.UserID, chi.URLParam(r, "noteID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements NoteHandler.
func (h *NoteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), principal.UserID, chi.URLParam(r, "noteID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Note deleted", nil)
}
