package task

import "time"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string
	CompanyID   string
	Title       string
	Description *string
	AssignedTo  string
	Status      Status
	DueAt       *time.Time
	// RemindAt is consumed by the task-due cron job; ReminderSent stops
	// the job from mailing the same task twice.
	RemindAt     *time.Time
	ReminderSent bool
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
