package meeting

import "time"

type Meeting struct {
	ID        string
	CompanyID string
	Title     string
	Agenda    *string
	Location  *string
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	EmployeeIDs []string
	ContactIDs  []string
}
