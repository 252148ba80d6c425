package auth

import (
	"context"

	"github.com/nexocrm/crm-backend-go/internal/domain/user"
)

type AuthService interface {
	// RegisterCompany creates the pending company and its admin user in
	// one transaction. The company stays unusable until a super admin
	// verifies it.
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (TokenResponse, error)
	// RegisterEmployee creates the user and a pending employee record
	// under an existing company.
	RegisterEmployee(ctx context.Context, req RegisterEmployeeRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context, userID string) (user.UserResponse, error)
}
