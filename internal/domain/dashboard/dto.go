package dashboard

import (
	"github.com/nexocrm/crm-backend-go/internal/domain/lead"
	"github.com/nexocrm/crm-backend-go/internal/domain/reminder"
)

type SummaryResponse struct {
	LeadsByStatus     map[lead.Status]int64 `json:"leads_by_status"`
	OpenTasks         int64                 `json:"open_tasks"`
	MeetingsToday     int64                 `json:"meetings_today"`
	UpcomingReminders []reminder.Occurrence `json:"upcoming_reminders"`
}
