package employee

import "time"

// VerifyState tracks the CompanyAdmin review of a self-registered employee.
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

// Employee wraps a user inside a tenant. RoleID stays nil until a
// CompanyAdmin verifies the employee; until then the employee has no
// effective permissions at all.
type Employee struct {
	ID          string
	UserID      string
	CompanyID   string
	Designation string
	RoleID      *string
	Verify      VerifyState
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	Name  string
	Email string
}
