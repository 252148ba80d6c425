package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/response"
)

type principalKey struct{}

// PrincipalFromContext returns the principal AuthRequired stored for
// this request.
func PrincipalFromContext(ctx context.Context) (user.Principal, error) {
	principal, ok := ctx.Value(principalKey{}).(user.Principal)
	if !ok {
		return user.Principal{}, user.ErrPrincipalMissingFromAuth
	}
	return principal, nil
}

// AuthRequired rejects requests without a valid access token and puts
// the decoded principal on the request context. It sits behind
// jwtauth.Verifier in the chain.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Token is not an access token")
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.Unauthorized(w, "Token is missing the user_id claim")
				return
			}
			roleStr, ok := claims["role"].(string)
			if !ok || !user.ValidRole(roleStr) {
				response.Unauthorized(w, "Token carries an unknown role")
				return
			}

			principal := user.Principal{
				UserID: userID,
				Role:   user.Role(roleStr),
			}
			if companyID, ok := claims["company_id"].(string); ok && companyID != "" {
				principal.CompanyID = &companyID
			}

			ctx := context.WithValue(r.Context(), principalKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
