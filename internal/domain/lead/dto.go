package lead

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/pkg/validator"
)

type LeadResponse struct {
	ID         string             `json:"id"`
	CompanyID  string             `json:"company_id"`
	ContactID  string             `json:"contact_id"`
	Title      string             `json:"title"`
	Source     string             `json:"source,omitempty"`
	Status     Status             `json:"status"`
	Value      decimal.Decimal    `json:"value"`
	AssignedTo *string            `json:"assigned_to,omitempty"`
	CreatedBy  string             `json:"created_by"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	FollowUps  []FollowUpResponse `json:"follow_ups,omitempty"`
}

type FollowUpResponse struct {
	ID        string     `json:"id"`
	Sequence  int        `json:"sequence"`
	Note      string     `json:"note"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToResponse(l Lead) LeadResponse {
	resp := LeadResponse{
		ID:         l.ID,
		CompanyID:  l.CompanyID,
		ContactID:  l.ContactID,
		Title:      l.Title,
		Source:     l.Source,
		Status:     l.Status,
		Value:      l.Value,
		AssignedTo: l.AssignedTo,
		CreatedBy:  l.CreatedBy,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
	for _, fu := range l.FollowUps {
		resp.FollowUps = append(resp.FollowUps, FollowUpResponse{
			ID:        fu.ID,
			Sequence:  fu.Sequence,
			Note:      fu.Note,
			DueAt:     fu.DueAt,
			CreatedBy: fu.CreatedBy,
			CreatedAt: fu.CreatedAt,
		})
	}
	return resp
}

type ListFilter struct {
	Status     *Status
	AssignedTo *string
}

type CreateLeadRequest struct {
	Title      string                 `json:"title"`
	Source     string                 `json:"source,omitempty"`
	Value      *decimal.Decimal       `json:"value,omitempty"`
	AssignedTo *string                `json:"assigned_to,omitempty"`
	Contact    contact.ContactDetails `json:"contact"`
}

func (r *CreateLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if err := r.Contact.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeadRequest struct {
	Title      *string                 `json:"title,omitempty"`
	Source     *string                 `json:"source,omitempty"`
	Value      *decimal.Decimal        `json:"value,omitempty"`
	AssignedTo *string                 `json:"assigned_to,omitempty"`
	Contact    *contact.ContactDetails `json:"contact,omitempty"`

	// Resolved by the service before hitting the repository.
	ContactID *string `json:"-"`
}

func (r *UpdateLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}
	if r.Contact != nil {
		if err := r.Contact.Validate(); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, verrs...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of new, contacted, qualified, converted, closed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddFollowUpRequest struct {
	Note  string     `json:"note"`
	DueAt *time.Time `json:"due_at,omitempty"`
}

func (r *AddFollowUpRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignLeadRequest struct {
	AssignedTo *string `json:"assigned_to"`
}
