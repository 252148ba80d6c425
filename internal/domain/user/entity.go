package user

import "time"

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"   // Platform operator - verifies companies
	RoleCompanyAdmin Role = "company_admin" // Company owner - full access within the tenant
	RoleEmployee     Role = "employee"      // Regular employee - gated by role permissions
)

// ValidRole reports whether s is one of the known roles. The role of a
// user record is immutable; promoting someone means creating a new record.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID              string
	CompanyID       *string
	Email           string
	PasswordHash    *string
	Name            string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Principal is the authenticated actor attached to every request after
// token verification. It deliberately carries only what the tenant gate
// and the permission evaluator need.
type Principal struct {
	UserID    string
	Role      Role
	CompanyID *string
}

// IsSuperAdmin checks if the principal is the platform operator
func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// IsCompanyAdmin checks if the principal owns a tenant
func (p Principal) IsCompanyAdmin() bool {
	return p.Role == RoleCompanyAdmin
}

// IsEmployee checks if the principal is a tenant employee
func (p Principal) IsEmployee() bool {
	return p.Role == RoleEmployee
}
