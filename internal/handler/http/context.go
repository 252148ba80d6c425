package http

import (
	"net/http"

	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/middleware"
)

// tenantFromRequest returns the principal and its company id. Routes
// using it sit behind the tenant gate, so a missing company id means a
// broken token rather than a super admin.
func tenantFromRequest(r *http.Request) (user.Principal, string, error) {
	principal, err := middleware.PrincipalFromContext(r.Context())
	if err != nil {
		return user.Principal{}, "", err
	}
	if principal.CompanyID == nil {
		return user.Principal{}, "", user.ErrCompanyIDRequired
	}
	return principal, *principal.CompanyID, nil
}
