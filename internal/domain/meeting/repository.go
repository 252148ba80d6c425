package meeting

import (
	"context"
	"time"
)

type MeetingRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Meeting, error)
	Create(ctx context.Context, newMeeting Meeting) (Meeting, error)
	ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]Meeting, error)
	Update(ctx context.Context, companyID, id string, req UpdateMeetingRequest) error
	Delete(ctx context.Context, companyID, id string) error

	AddEmployee(ctx context.Context, meetingID, employeeID string) error
	AddContact(ctx context.Context, meetingID, contactID string) error
	RemoveEmployee(ctx context.Context, meetingID, employeeID string) error
	RemoveContact(ctx context.Context, meetingID, contactID string) error
	CountTodayByCompany(ctx context.Context, companyID string, dayStart, dayEnd time.Time) (int64, error)
}
