package reminder

import "time"

type Type string

const (
	TypeOnce    Type = "once"
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
	TypeYearly  Type = "yearly"
)

func ValidType(s string) bool {
	switch Type(s) {
	case TypeOnce, TypeDaily, TypeWeekly, TypeMonthly, TypeYearly:
		return true
	}
	return false
}

// Reminder is an immutable template. Occurrences are derived from it on
// every read and never written back.
type Reminder struct {
	ID     string
	UserID string
	Type   Type
	// DateTime is the fire time for once reminders and the anchor for
	// monthly/yearly ones. Nil for daily and weekly.
	DateTime *time.Time
	// Days holds weekday numbers 0=Sunday..6=Saturday; weekly only.
	Days      []int
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occurrence is one concrete calendar firing. Generated is false only
// for once reminders returned verbatim.
type Occurrence struct {
	TemplateID string    `json:"template_id"`
	DateTime   time.Time `json:"date_time"`
	Message    string    `json:"message"`
	Generated  bool      `json:"generated"`
}
