package role

import "time"

// Role is a named permission matrix owned by one company and referenced
// by zero or more employees.
type Role struct {
	ID          string
	CompanyID   string
	Name        string
	Permissions Matrix
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
