package user

import "errors"

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUserEmailExists          = errors.New("email already registered")
	ErrInvalidEmailFormat       = errors.New("invalid email format")
	ErrInvalidPasswordLength    = errors.New("password must be at least 8 characters")
	ErrInvalidRole              = errors.New("invalid role")
	ErrSuperAdminRequired       = errors.New("super admin privilege required")
	ErrCompanyIDRequired        = errors.New("company ID is required")
	ErrOAuthProviderIDExists    = errors.New("oauth provider id already registered")
	ErrInsufficientPermissions  = errors.New("insufficient permissions")
	ErrPrincipalMissingFromAuth = errors.New("principal missing from request context")
)
