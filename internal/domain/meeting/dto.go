package meeting

import (
	"time"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/pkg/validator"
)

type MeetingResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Agenda      *string   `json:"agenda,omitempty"`
	Location    *string   `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedBy   string    `json:"created_by"`
	EmployeeIDs []string  `json:"employee_ids,omitempty"`
	ContactIDs  []string  `json:"contact_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToResponse(m Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		Title:       m.Title,
		Agenda:      m.Agenda,
		Location:    m.Location,
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
		CreatedBy:   m.CreatedBy,
		EmployeeIDs: m.EmployeeIDs,
		ContactIDs:  m.ContactIDs,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type CreateMeetingRequest struct {
	Title    string    `json:"title"`
	Agenda   *string   `json:"agenda,omitempty"`
	Location *string   `json:"location,omitempty"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`

	EmployeeIDs []string `json:"employee_ids,omitempty"`
	// Clients are resolved through the same dedup-or-create path leads use.
	Clients []contact.ContactDetails `json:"clients,omitempty"`
}

func (r *CreateMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if r.StartsAt.IsZero() || r.EndsAt.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "starts_at",
			Message: "starts_at and ends_at are required",
		})
	} else if !r.EndsAt.After(r.StartsAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be after starts_at",
		})
	}
	for _, c := range r.Clients {
		if err := c.Validate(); err != nil {
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

type UpdateMeetingRequest struct {
	Title    *string    `json:"title,omitempty"`
	Agenda   *string    `json:"agenda,omitempty"`
	Location *string    `json:"location,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

func (r *UpdateMeetingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}
	if r.StartsAt != nil && r.EndsAt != nil && !r.EndsAt.After(*r.StartsAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "ends_at",
			Message: "ends_at must be after starts_at",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddParticipantRequest struct {
	EmployeeID *string                 `json:"employee_id,omitempty"`
	Client     *contact.ContactDetails `json:"client,omitempty"`
}

func (r *AddParticipantRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == nil && r.Client == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "participant",
			Message: "either employee_id or client is required",
		})
	}
	if r.EmployeeID != nil && r.Client != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "participant",
			Message: "employee_id and client are mutually exclusive",
		})
	}
	if r.Client != nil {
		if err := r.Client.Validate(); err != nil {
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
