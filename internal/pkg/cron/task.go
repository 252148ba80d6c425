package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/nexocrm/crm-backend-go/internal/domain/task"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/pkg/email"
)

// TaskJobs contains task-related cron jobs
type TaskJobs struct {
	taskRepo     task.TaskRepository
	userRepo     user.UserRepository
	emailService email.EmailService
}

// NewTaskJobs creates task cron jobs
func NewTaskJobs(taskRepo task.TaskRepository, userRepo user.UserRepository, emailService email.EmailService) *TaskJobs {
	return &TaskJobs{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// RegisterJobs registers all task-related cron jobs
func (j *TaskJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(
		"notify_due_tasks",
		1*time.Minute,
		j.NotifyDueTasks,
	)
}

// NotifyDueTasks mails the assignee of every task whose reminder time
// has passed and that has not been mailed yet. The sent flag is only
// flipped after a successful send, so a failed mail is retried on the
// next tick.
func (j *TaskJobs) NotifyDueTasks(ctx context.Context) error {
	due, err := j.taskRepo.ListDueUnnotified(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, t := range due {
		assignee, err := j.userRepo.GetByID(ctx, t.AssignedTo)
		if err != nil {
			slog.Warn("Task reminder skipped, assignee lookup failed", "task_id", t.ID, "error", err)
			continue
		}

		if err := j.emailService.SendTaskDue(assignee.Email, assignee.Name, t.Title, t.DueAt); err != nil {
			slog.Warn("Task reminder mail failed", "task_id", t.ID, "error", err)
			continue
		}

		if err := j.taskRepo.MarkReminderSent(ctx, t.ID); err != nil {
			slog.Warn("Task reminder flag update failed", "task_id", t.ID, "error", err)
		}
	}
	return nil
}
