package meeting

import (
	"context"
	"time"
)

type MeetingService interface {
	// Create resolves client participants through the contact
	// dedup-or-create path before inserting.
	Create(ctx context.Context, companyID, createdBy string, req CreateMeetingRequest) (MeetingResponse, error)
	ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]MeetingResponse, error)
	Get(ctx context.Context, companyID, id string) (MeetingResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateMeetingRequest) (MeetingResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	AddParticipant(ctx context.Context, companyID, meetingID string, req AddParticipantRequest) (MeetingResponse, error)
	RemoveEmployee(ctx context.Context, companyID, meetingID, employeeID string) (MeetingResponse, error)
	RemoveContact(ctx context.Context, companyID, meetingID, contactID string) (MeetingResponse, error)
}
