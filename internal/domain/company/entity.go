package company

import "time"

// VerifyState tracks the SuperAdmin review of a tenant. Only a verified
// and active company lets its members through the tenant gate.
type VerifyState string

const (
	VerifyPending  VerifyState = "pending"
	VerifyVerified VerifyState = "verified"
	VerifyRejected VerifyState = "rejected"
)

func ValidVerifyState(s string) bool {
	switch VerifyState(s) {
	case VerifyPending, VerifyVerified, VerifyRejected:
		return true
	}
	return false
}

type Company struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   *string
	OwnerID   string
	Verify    VerifyState
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
