package employee

import (
	"time"

	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	CompanyID   string      `json:"company_id"`
	Name        string      `json:"name,omitempty"`
	Email       string      `json:"email,omitempty"`
	Designation string      `json:"designation"`
	RoleID      *string     `json:"role_id,omitempty"`
	Verify      VerifyState `json:"verify"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		CompanyID:   e.CompanyID,
		Name:        e.Name,
		Email:       e.Email,
		Designation: e.Designation,
		RoleID:      e.RoleID,
		Verify:      e.Verify,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

// VerifyEmployeeRequest promotes a pending employee. Exactly one of
// RoleID (attach an existing company role) or Role (create one inline
// from a permission matrix) must be provided.
type VerifyEmployeeRequest struct {
	RoleID *string            `json:"role_id,omitempty"`
	Role   *InlineRoleRequest `json:"role,omitempty"`
}

type InlineRoleRequest struct {
	Name        string      `json:"name"`
	Permissions role.Matrix `json:"permissions"`
}

func (r *VerifyEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RoleID == nil && r.Role == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "either role_id or an inline role is required",
		})
	}
	if r.RoleID != nil && r.Role != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id and inline role are mutually exclusive",
		})
	}
	if r.Role != nil {
		if validator.IsEmpty(r.Role.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "role.name",
				Message: "role name is required",
			})
		}
		if err := r.Role.Permissions.Validate(); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "role.permissions",
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDesignationRequest struct {
	Designation string `json:"designation"`
}

func (r *UpdateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
