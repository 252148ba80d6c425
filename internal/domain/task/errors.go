package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrTitleRequired    = errors.New("task title is required")
	ErrAssigneeRequired = errors.New("task assignee is required")
	ErrAssigneeNotFound = errors.New("assignee not found in this company")
)
