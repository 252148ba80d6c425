package reminder

import (
	"context"
	"time"
)

type ReminderService interface {
	Create(ctx context.Context, userID string, req CreateReminderRequest) (ReminderResponse, error)
	List(ctx context.Context, userID string) ([]ReminderResponse, error)
	Get(ctx context.Context, userID, id string) (ReminderResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateReminderRequest) (ReminderResponse, error)
	Delete(ctx context.Context, userID, id string) error

	// Calendar expands the caller's templates over [start, end]. The
	// service truncates start to midnight and end to the last instant
	// of its day before expanding.
	Calendar(ctx context.Context, userID string, start, end time.Time) ([]Occurrence, error)
	// Upcoming expands today's occurrences and keeps those at or after
	// now. The only now-relative read in the module.
	Upcoming(ctx context.Context, userID string, now time.Time) ([]Occurrence, error)
}
