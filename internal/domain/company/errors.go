package company

import "errors"

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyEmailExists   = errors.New("company email already registered")
	ErrCompanyInactive      = errors.New("company is inactive")
	ErrCompanyNotVerified   = errors.New("company is not verified")
	ErrInvalidVerifyState   = errors.New("invalid verify state")
	ErrCompanyNameRequired  = errors.New("company name is required")
	ErrCompanyEmailRequired = errors.New("company email is required")
)
