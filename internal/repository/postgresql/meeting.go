package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/meeting"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type meetingRepositoryImpl struct {
	db *database.DB
}

func NewMeetingRepository(db *database.DB) meeting.MeetingRepository {
	return &meetingRepositoryImpl{db: db}
}

const meetingColumns = `id, company_id, title, agenda, location, starts_at, ends_at, created_by, created_at, updated_at`

func scanMeeting(row pgx.Row) (meeting.Meeting, error) {
	var m meeting.Meeting
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.Title, &m.Agenda, &m.Location,
		&m.StartsAt, &m.EndsAt, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// GetByID implements meeting.MeetingRepository. Participants are loaded
// with the meeting.
func (r *meetingRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	m, err := scanMeeting(q.QueryRow(ctx,
		`SELECT `+meetingColumns+` FROM meetings WHERE company_id = $1 AND id = $2`,
		companyID, id,
	))
	if err != nil {
		return meeting.Meeting{}, err
	}

	if err := r.loadParticipants(ctx, &m); err != nil {
		return meeting.Meeting{}, err
	}
	return m, nil
}

func (r *meetingRepositoryImpl) loadParticipants(ctx context.Context, m *meeting.Meeting) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT employee_id FROM meeting_employees WHERE meeting_id = $1 ORDER BY employee_id`,
		m.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		m.EmployeeIDs = append(m.EmployeeIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx,
		`SELECT contact_id FROM meeting_contacts WHERE meeting_id = $1 ORDER BY contact_id`,
		m.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		m.ContactIDs = append(m.ContactIDs, id)
	}
	return rows.Err()
}

// Create implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) Create(ctx context.Context, newMeeting meeting.Meeting) (meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meetings (id, company_id, title, agenda, location, starts_at, ends_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + meetingColumns

	created, err := scanMeeting(q.QueryRow(ctx, query,
		newMeeting.ID, newMeeting.CompanyID, newMeeting.Title, newMeeting.Agenda,
		newMeeting.Location, newMeeting.StartsAt, newMeeting.EndsAt, newMeeting.CreatedBy,
	))
	if err != nil {
		return meeting.Meeting{}, err
	}

	for _, employeeID := range newMeeting.EmployeeIDs {
		if err := r.AddEmployee(ctx, created.ID, employeeID); err != nil {
			return meeting.Meeting{}, err
		}
	}
	for _, contactID := range newMeeting.ContactIDs {
		if err := r.AddContact(ctx, created.ID, contactID); err != nil {
			return meeting.Meeting{}, err
		}
	}
	created.EmployeeIDs = newMeeting.EmployeeIDs
	created.ContactIDs = newMeeting.ContactIDs
	return created, nil
}

// ListByRange implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]meeting.Meeting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+meetingColumns+` FROM meetings
		 WHERE company_id = $1 AND starts_at >= $2 AND starts_at <= $3
		 ORDER BY starts_at`,
		companyID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := make([]meeting.Meeting, 0)
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Update implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) Update(ctx context.Context, companyID, id string, req meeting.UpdateMeetingRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Agenda != nil {
		updates["agenda"] = *req.Agenda
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for meeting update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE meetings SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE company_id = $%d AND id = $%d", i, i+1)
	args = append(args, companyID, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update meeting with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrMeetingNotFound
	}
	return nil
}

// Delete implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM meetings WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrMeetingNotFound
	}
	return nil
}

// AddEmployee implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) AddEmployee(ctx context.Context, meetingID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`INSERT INTO meeting_employees (meeting_id, employee_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		meetingID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to add meeting employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrParticipantDuplicated
	}
	return nil
}

// AddContact implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) AddContact(ctx context.Context, meetingID, contactID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`INSERT INTO meeting_contacts (meeting_id, contact_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		meetingID, contactID,
	)
	if err != nil {
		return fmt.Errorf("failed to add meeting contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrParticipantDuplicated
	}
	return nil
}

// RemoveEmployee implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) RemoveEmployee(ctx context.Context, meetingID, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM meeting_employees WHERE meeting_id = $1 AND employee_id = $2`,
		meetingID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove meeting employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrParticipantNotFound
	}
	return nil
}

// RemoveContact implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) RemoveContact(ctx context.Context, meetingID, contactID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM meeting_contacts WHERE meeting_id = $1 AND contact_id = $2`,
		meetingID, contactID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove meeting contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return meeting.ErrParticipantNotFound
	}
	return nil
}

// CountTodayByCompany implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) CountTodayByCompany(ctx context.Context, companyID string, dayStart, dayEnd time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM meetings WHERE company_id = $1 AND starts_at >= $2 AND starts_at <= $3`,
		companyID, dayStart, dayEnd,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
