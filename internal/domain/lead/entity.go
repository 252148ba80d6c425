package lead

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is a closed enum. Any member may transition directly to any
// other member; only membership is validated, never ordering.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusConverted Status = "converted"
	StatusClosed    Status = "closed"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusClosed:
		return true
	}
	return false
}

type Lead struct {
	ID         string
	CompanyID  string
	ContactID  string
	Title      string
	Source     string
	Status     Status
	Value      decimal.Decimal
	AssignedTo *string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	FollowUps []FollowUp
}

// FollowUp is append-only. Sequence is count+1 at append time: unique
// and increasing within one lead, not across the system.
type FollowUp struct {
	ID        string
	LeadID    string
	Sequence  int
	Note      string
	DueAt     *time.Time
	CreatedBy string
	CreatedAt time.Time
}
