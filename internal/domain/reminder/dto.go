package reminder

import (
	"time"

	"github.com/nexocrm/crm-backend-go/internal/pkg/validator"
)

type ReminderResponse struct {
	ID        string     `json:"id"`
	Type      Type       `json:"type"`
	DateTime  *time.Time `json:"date_time,omitempty"`
	Days      []int      `json:"days,omitempty"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToResponse(r Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        r.ID,
		Type:      r.Type,
		DateTime:  r.DateTime,
		Days:      r.Days,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type CreateReminderRequest struct {
	Type     string     `json:"type"`
	DateTime *time.Time `json:"date_time,omitempty"`
	Days     []int      `json:"days,omitempty"`
	Message  string     `json:"message"`
}

func (r *CreateReminderRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of once, daily, weekly, monthly, yearly",
		})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	switch Type(r.Type) {
	case TypeOnce, TypeMonthly, TypeYearly:
		if r.DateTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "date_time",
				Message: "date_time is required for this type",
			})
		}
	case TypeWeekly:
		if len(r.Days) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days are required for weekly reminders",
			})
		}
		for _, d := range r.Days {
			if d < 0 || d > 6 {
				errs = append(errs, validator.ValidationError{
					Field:   "days",
					Message: "days must be between 0 (Sunday) and 6 (Saturday)",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReminderRequest struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Days     []int      `json:"days,omitempty"`
	Message  *string    `json:"message,omitempty"`
}

func (r *UpdateReminderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Message != nil && validator.IsEmpty(*r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message must not be empty",
		})
	}
	for _, d := range r.Days {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
