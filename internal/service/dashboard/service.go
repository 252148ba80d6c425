package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/nexocrm/crm-backend-go/internal/domain/dashboard"
	"github.com/nexocrm/crm-backend-go/internal/domain/lead"
	"github.com/nexocrm/crm-backend-go/internal/domain/meeting"
	"github.com/nexocrm/crm-backend-go/internal/domain/reminder"
	"github.com/nexocrm/crm-backend-go/internal/domain/task"
)

type DashboardServiceImpl struct {
	leadRepo        lead.LeadRepository
	taskRepo        task.TaskRepository
	meetingRepo     meeting.MeetingRepository
	reminderService reminder.ReminderService
	now             func() time.Time
}

func NewDashboardService(
	leadRepo lead.LeadRepository,
	taskRepo task.TaskRepository,
	meetingRepo meeting.MeetingRepository,
	reminderService reminder.ReminderService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		leadRepo:        leadRepo,
		taskRepo:        taskRepo,
		meetingRepo:     meetingRepo,
		reminderService: reminderService,
		now:             time.Now,
	}
}

// Summary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Summary(ctx context.Context, companyID, userID string) (dashboard.SummaryResponse, error) {
	var summary dashboard.SummaryResponse
	var err error

	summary.LeadsByStatus, err = s.leadRepo.CountByStatus(ctx, companyID)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count leads: %w", err)
	}

	summary.OpenTasks, err = s.taskRepo.CountOpenByCompany(ctx, companyID)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count open tasks: %w", err)
	}

	now := s.now()
	dayStart, dayEnd := reminder.TruncateRange(now, now)
	summary.MeetingsToday, err = s.meetingRepo.CountTodayByCompany(ctx, companyID, dayStart, dayEnd)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count meetings: %w", err)
	}

	summary.UpcomingReminders, err = s.reminderService.Upcoming(ctx, userID, now)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}
	return summary, nil
}
