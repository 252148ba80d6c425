package middleware

import (
	"net/http"

	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

// SuperAdminOnly guards the platform operator routes. This coarse role
// check is the whole story for super admins; the permission evaluator
// never sees them.
func SuperAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !principal.IsSuperAdmin() {
			response.HandleError(w, user.ErrSuperAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CompanyAdminOnly guards the tenant management routes (employee
// verification, role management).
func CompanyAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !principal.IsCompanyAdmin() {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}
		next.ServeHTTP(w, r)
	})
}
