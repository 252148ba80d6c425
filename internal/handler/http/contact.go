package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type ContactHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ContactHandlerImpl struct {
	contactService contact.ContactService
}

func NewContactHandler(contactService contact.ContactService) ContactHandler {
	return &ContactHandlerImpl{contactService: contactService}
}

// Create implements ContactHandler.
func (h *ContactHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req contact.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.contactService.Create(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Contact created", result)
}

// List implements ContactHandler.
func (h *ContactHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	contacts, err := h.contactService.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, contacts)
}

// Get implements ContactHandler.
func (h *ContactHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.contactService.Get(r.Context(), companyID, chi.URLParam(r, "contactID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements ContactHandler.
func (h *ContactHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req contact.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.contactService.Update(r.Context(), companyID, chi.URLParam(r, "contactID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements ContactHandler.
func (h *ContactHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.contactService.Delete(r.Context(), companyID, chi.URLParam(r, "contactID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contact deleted", nil)
}
