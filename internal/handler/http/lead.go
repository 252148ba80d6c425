package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/lead"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type LeadHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	AddFollowUp(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeadHandlerImpl struct {
	leadService lead.LeadService
}

func NewLeadHandler(leadService lead.LeadService) LeadHandler {
	return &LeadHandlerImpl{leadService: leadService}
}

// Create implements LeadHandler.
func (h *LeadHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req lead.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leadService.Create(r.Context(), companyID, principal.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Lead created", result)
}

// List implements LeadHandler. Optional ?status= and ?assigned_to=
// query filters.
func (h *LeadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var filter lead.ListFilter
	if v := r.URL.Query().Get("status"); v != "" {
		if !lead.ValidStatus(v) {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		status := lead.Status(v)
		filter.Status = &status
	}
	if v := r.URL.Query().Get("assigned_to"); v != "" {
		filter.AssignedTo = &v
	}

	leads, err := h.leadService.List(r.Context(), companyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leads)
}

// Get implements LeadHandler.
func (h *LeadHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leadService.Get(r.Context(), companyID, chi.URLParam(r, "leadID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements LeadHandler.
func (h *LeadHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req lead.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leadService.Update(r.Context(), companyID, chi.URLParam(r, "leadID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SetStatus implements LeadHandler.
func (h *LeadHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req lead.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leadService.SetStatus(r.Context(), companyID, chi.URLParam(r, "leadID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// AddFollowUp implements LeadHandler.
func (h *LeadHandlerImpl) AddFollowUp(w http.ResponseWriter, r *http.Request) {
	principal, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req lead.AddFollowUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leadService.AddFollowUp(r.Context(), companyID, chi.URLParam(r, "leadID"), principal.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Follow-up added", result)
}

// Assign implements LeadHandler.
func (h *LeadHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req lead.AssignLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leadService.Assign(r.Context(), companyID, chi.URLParam(r, "leadID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements LeadHandler.
func (h *LeadHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.leadService.Delete(r.Context(), companyID, chi.URLParam(r, "leadID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Lead deleted", nil)
}
