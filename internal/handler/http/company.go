package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/company"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetOwn(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetVerify(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler. Optional ?verify= and ?is_active=
// query filters.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter company.ListFilter
	if v := r.URL.Query().Get("verify"); v != "" {
		if !company.ValidVerifyState(v) {
			response.BadRequest(w, "Invalid verify filter", nil)
			return
		}
		state := company.VerifyState(v)
		filter.Verify = &state
	}
	if v := r.URL.Query().Get("is_active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}

	companies, err := c.companyService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, companies)
}

// Get implements CompanyHandler.
func (c *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := c.companyService.Get(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetOwn implements CompanyHandler. Returns the caller's own tenant.
func (c *CompanyHandlerImpl) GetOwn(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := c.companyService.Get(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := c.companyService.Update(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SetVerify implements CompanyHandler.
func (c *CompanyHandlerImpl) SetVerify(w http.ResponseWriter, r *http.Request) {
	var req company.SetVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := c.companyService.SetVerify(r.Context(), chi.URLParam(r, "companyID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company verification updated", result)
}

// SetActive implements CompanyHandler.
func (c *CompanyHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := c.companyService.SetActive(r.Context(), chi.URLParam(r, "companyID"), req.IsActive)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company activation updated", result)
}
