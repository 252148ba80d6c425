package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/todo"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/middleware"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type TodoHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TodoHandlerImpl struct {
	todoService todo.TodoService
}

func NewTodoHandler(todoService todo.TodoService) TodoHandler {
	return &TodoHandlerImpl{todoService: todoService}
}

// Create implements TodoHandler.
func (h *TodoHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req todo.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.todoService.Create(r.Context(), principal.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Todo created", result)
}

// List implements TodoHandler.
func (h *TodoHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	todos, err := h.todoService.List(r.Context(), principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, todos)
}

// Update implements TodoHandler.
func (h *TodoHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req todo.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.todoService.Update(r.Context(), principal.UserID, chi.URLParam(r, "todoID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Toggle implements TodoHandler.
func (h *TodoHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.todoService.Toggle(r.Context(), principal.UserID, chi.URLParam(r, "todoID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements TodoHandler.
func (h *TodoHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.todoService.Delete(r.Context(), principal.UserID, chi.URLParam(r, "todoID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Todo deleted", nil)
}
