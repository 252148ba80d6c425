package middleware

import (
	"net/http"

	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
	"github.com/nexocrm/crm-backend-go/internal/service/access"
)

// TenantGate blocks requests whose company or employee record is
// inactive or unverified. It always runs before RequirePermission.
func TenantGate(gate *access.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := PrincipalFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if err := gate.Check(r.Context(), principal); err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission asks the evaluator whether the principal may
// perform action on module.
func RequirePermission(evaluator *access.Evaluator, module role.Module, action role.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := PrincipalFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if err := evaluator.Authorize(r.Context(), principal, module, action); err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
