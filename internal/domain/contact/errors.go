package contact

import "errors"

var (
	ErrContactNotFound        = errors.New("contact not found")
	ErrContactIdentityMissing = errors.New("contact requires an email or a phone number")
	ErrContactNameRequired    = errors.New("contact name is required")
)
