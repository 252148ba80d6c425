package contact

import "time"

type Contact struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
