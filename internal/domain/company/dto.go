package company

import (
	"time"

	"github.com/nexocrm/crm-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Address   *string     `json:"address,omitempty"`
	OwnerID   string      `json:"owner_id"`
	Verify    VerifyState `json:"verify"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		OwnerID:   c.OwnerID,
		Verify:    c.Verify,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type ListFilter struct {
	Verify   *VerifyState
	IsActive *bool
}

type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Name != nil && len(*r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetVerifyRequest struct {
	State string `json:"state"`
}

func (r *SetVerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidVerifyState(r.State) {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be one of pending, verified, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
