package meeting

import "errors"

var (
	ErrMeetingNotFound       = errors.New("meeting not found")
	ErrTitleRequired         = errors.New("meeting title is required")
	ErrInvalidTimeRange      = errors.New("meeting must end after it starts")
	ErrParticipantNotFound   = errors.New("participant not found in this company")
	ErrParticipantDuplicated = errors.New("participant already added")
)
