package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/meeting"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type MeetingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddParticipant(w http.ResponseWriter, r *http.Request)
	RemoveEmployee(w http.ResponseWriter, r *http.Request)
	RemoveContact(w http.ResponseWriter, r *http.Request)
}

type MeetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &MeetingHandlerImpl{meetingService: meetingService}
}

// Create implements MeetingHandler.
func (h *MeetingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req meeting.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.Create(r.Context(), companyID, principal.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Meeting scheduled", result)
}

// List implements MeetingHandler. Requires ?from= and ?to= RFC 3339
// timestamps.
func (h *MeetingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	from, err := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, "Invalid or missing 'from' timestamp", nil)
		return
	}
	to, err := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, "Invalid or missing 'to' timestamp", nil)
		return
	}

	meetings, err := h.meetingService.ListByRange(r.Context(), companyID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, meetings)
}

// Get implements MeetingHandler.
func (h *MeetingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.Get(r.Context(), companyID, chi.URLParam(r, "meetingID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements MeetingHandler.
func (h *MeetingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req meeting.UpdateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.Update(r.Context(), companyID, chi.URLParam(r, "meetingID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements MeetingHandler.
func (h *MeetingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.meetingService.Delete(r.Context(), companyID, chi.URLParam(r, "meetingID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Meeting deleted", nil)
}

// AddParticipant implements MeetingHandler.
func (h *MeetingHandlerImpl) AddParticipant(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req meeting.AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.AddParticipant(r.Context(), companyID, chi.URLParam(r, "meetingID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// RemoveEmployee implements MeetingHandler.
func (h *MeetingHandlerImpl) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.RemoveEmployee(r.Context(), companyID, chi.URLParam(r, "meetingID"), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// RemoveContact implements MeetingHandler.
func (h *MeetingHandlerImpl) RemoveContact(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.meetingService.RemoveContact(r.Context(), companyID, chi.URLParam(r, "meetingID"), chi.URLParam(r, "contactID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
