package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/reminder"
)

type ReminderServiceImpl struct {
	reminderRepo reminder.ReminderRepository
}

func NewReminderService(reminderRepo reminder.ReminderRepository) reminder.ReminderService {
	return &ReminderServiceImpl{reminderRepo: reminderRepo}
}

// Create implements reminder.ReminderService.
func (s *ReminderServiceImpl) Create(ctx context.Context, userID string, req reminder.CreateReminderRequest) (reminder.ReminderResponse, error) {
	if err := req.Validate(); err != nil {
		return reminder.ReminderResponse{}, err
	}

	created, err := s.reminderRepo.Create(ctx, reminder.Reminder{
		ID:       uuid.NewString(),
		UserID:   userID,
		Type:     reminder.Type(req.Type),
		DateTime: req.DateTime,
		Days:     req.Days,
		Message:  req.Message,
	})
	if err != nil {
		return reminder.ReminderResponse{}, fmt.Errorf("failed to create reminder: %w", err)
	}
	return reminder.ToResponse(created), nil
}

// List implements reminder.ReminderService.
func (s *ReminderServiceImpl) List(ctx context.Context, userID string) ([]reminder.ReminderResponse, error) {
	reminders, err := s.reminderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	responses := make([]reminder.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		responses = append(responses, reminder.ToResponse(r))
	}
	return responses, nil
}

// Get implements reminder.ReminderService.
func (s *ReminderServiceImpl) Get(ctx context.Context, userID, id string) (reminder.ReminderResponse, error) {
	r, err := s.reminderRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reminder.ReminderResponse{}, reminder.ErrReminderNotFound
		}
		return reminder.ReminderResponse{}, fmt.Errorf("failed to get reminder: %w", err)
	}
	return reminder.ToResponse(r), nil
}

// Update implements reminder.ReminderService.
func (s *ReminderServiceImpl) Update(ctx context.Context, userID, id string, req reminder.UpdateReminderRequest) (reminder.ReminderResponse, error) {
	if err := req.Validate(); err != nil {
		return reminder.ReminderResponse{}, err
	}

	if err := s.reminderRepo.Update(ctx, userID, id, req); err != nil {
		return reminder.ReminderResponse{}, err
	}
	return s.Get(ctx, userID, id)
}

// Delete implements reminder.ReminderService.
func (s *ReminderServiceImpl) Delete(ctx context.Context, userID, id string) error {
	return s.reminderRepo.Delete(ctx, userID, id)
}

// Calendar implements reminder.ReminderService. Templates of each type
// are read independently; a template created between two reads can show
// up in one type's batch and not another's. Accepted.
func (s *ReminderServiceImpl) Calendar(ctx context.Context, userID string, start, end time.Time) ([]reminder.Occurrence, error) {
	if start.After(end) {
		return nil, reminder.ErrInvalidRange
	}
	start, end = reminder.TruncateRange(start, end)

	templates := make([]reminder.Reminder, 0)
	for _, t := range []reminder.Type{
		reminder.TypeOnce, reminder.TypeDaily, reminder.TypeWeekly,
		reminder.TypeMonthly, reminder.TypeYearly,
	} {
		batch, err := s.reminderRepo.ListByUserAndType(ctx, userID, t)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s reminders: %w", t, err)
		}
		templates = append(templates, batch...)
	}

	return reminder.Expand(start, end, templates)
}

// Upcoming implements reminder.ReminderService.
func (s *ReminderServiceImpl) Upcoming(ctx context.Context, userID string, now time.Time) ([]reminder.Occurrence, error) {
	occurrences, err := s.Calendar(ctx, userID, now, now)
	if err != nil {
		return nil, err
	}
	return reminder.UpcomingFrom(occurrences, now), nil
}
