package reminder

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrInvalidRange     = errors.New("start date must not be after end date")
	ErrInvalidType      = errors.New("invalid reminder type")
	ErrDateTimeRequired = errors.New("date_time is required for this reminder type")
	ErrDaysRequired     = errors.New("days are required for weekly reminders")
	ErrMessageRequired  = errors.New("message is required")
)
