package reminder

import "context"

type ReminderRepository interface {
	GetByID(ctx context.Context, userID, id string) (Reminder, error)
	Create(ctx context.Context, newReminder Reminder) (Reminder, error)
	ListByUserID(ctx context.Context, userID string) ([]Reminder, error)
	// ListByUserAndType backs the expander, which reads each recurrence
	// type independently (no snapshot across reads).
	ListByUserAndType(ctx context.Context, userID string, t Type) ([]Reminder, error)
	Update(ctx context.Context, userID, id string, req UpdateReminderRequest) error
	Delete(ctx context.Context, userID, id string) error
}
