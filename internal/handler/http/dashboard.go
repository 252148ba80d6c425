package http

import (
	"net/http"

	"github.com/nexocrm/crm-backend-go/internal/domain/dashboard"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	principal, companyID, err := tenantFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Summary(r.Context(), companyID, principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
