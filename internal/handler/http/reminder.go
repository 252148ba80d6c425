package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/reminder"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/middleware"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type ReminderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
}

type ReminderHandlerImpl struct {
	reminderService reminder.ReminderService
}

func NewReminderHandler(reminderService reminder.ReminderService) ReminderHandler {
	return &ReminderHandlerImpl{reminderService: reminderService}
}

// Create implements ReminderHandler.
func (h *ReminderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req reminder.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reminderService.Create(r.Context(), principal.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Reminder created", result)
}

// List implements ReminderHandler.
func (h *ReminderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reminders, err := h.reminderService.List(r.Context(), principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reminders)
}

// Get implements ReminderHandler.
func (h *ReminderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reminderService.Get(r.Context(), principal.UserID, chi.URLParam(r, "reminderID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements ReminderHandler.
func (h *ReminderHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req reminder.UpdateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reminderService.Update(r.Context(), principal.UserID, chi.URLParam(r, "reminderID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements ReminderHandler.
func (h *ReminderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.reminderService.Delete(r.Context(), principal.UserID, chi.URLParam(r, "reminderID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Reminder deleted", nil)
}

// Calendar implements ReminderHandler. Requires ?start= and ?end= in
// YYYY-MM-DD form.
func (h *ReminderHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, err := time.Parse(time.DateOnly, r.URL.Query().Get("start"))
	if err != nil {
		response.BadRequest(w, "Invalid or missing 'start' date", nil)
		return
	}
	end, err := time.Parse(time.DateOnly, r.URL.Query().Get("end"))
	if err != nil {
		response.BadRequest(w, "Invalid or missing 'end' date", nil)
		return
	}

	occurrences, err := h.reminderService.Calendar(r.Context(), principal.UserID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, occurrences)
}

// Upcoming implements ReminderHandler.
func (h *ReminderHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	occurrences, err := h.reminderService.Upcoming(r.Context(), principal.UserID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, occurrences)
}
