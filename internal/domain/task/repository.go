package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]Task, error)
	Update(ctx context.Context, companyID, id string, req UpdateTaskRequest) error
	UpdateStatus(ctx context.Context, companyID, id string, status Status) error
	Delete(ctx context.Context, companyID, id string) error

	// ListDueUnnotified returns tasks whose remind_at has passed and that
	// have not been mailed yet; MarkReminderSent flips the flag.
	ListDueUnnotified(ctx context.Context, now time.Time) ([]Task, error)
	MarkReminderSent(ctx context.Context, id string) error
	CountOpenByCompany(ctx context.Context, companyID string) (int64, error)
}
