package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByOAuthProviderID(ctx context.Context, provider, providerID string) (User, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	UpdateCompany(ctx context.Context, userID, companyID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
