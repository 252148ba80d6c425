package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid or expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrOAuthExchangeFailed = errors.New("failed to exchange oauth authorization code")
	ErrOAuthNotLinked      = errors.New("no account linked to this google account")
)
