package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrTitleRequired     = errors.New("lead title is required")
	ErrFollowUpNoteEmpty = errors.New("follow-up note is required")
	ErrAssigneeNotFound  = errors.New("assignee not found in this company")
)
