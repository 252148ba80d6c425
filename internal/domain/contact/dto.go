package contact

import (
	"time"

	"github.com/nexocrm/crm-backend-go/internal/pkg/validator"
)

type ContactResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(c Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ContactDetails carries the identity fields the dedup-or-create
// resolution keys on. Email wins over phone when both match.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (d *ContactDetails) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(d.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact.name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(d.Email) && validator.IsEmpty(d.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact",
			Message: "email or phone is required",
		})
	}
	if !validator.IsEmpty(d.Email) && !validator.IsValidEmail(d.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact.email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateContactRequest struct {
	ContactDetails
	Address *string `json:"address,omitempty"`
}

type UpdateContactRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (r *UpdateContactRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
