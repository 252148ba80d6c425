package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/reminder"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type reminderRepositoryImpl struct {
	db *database.DB
}

func NewReminderRepository(db *database.DB) reminder.ReminderRepository {
	return &reminderRepositoryImpl{db: db}
}

// days is an int[] column; pgx maps it to []int directly.
const reminderColumns = `id, user_id, type, date_time, days, message, created_at, updated_at`

func scanReminder(row pgx.Row) (reminder.Reminder, error) {
	var rem reminder.Reminder
	err := row.Scan(
		&rem.ID, &rem.UserID, &rem.Type, &rem.DateTime, &rem.Days,
		&rem.Message, &rem.CreatedAt, &rem.UpdatedAt,
	)
	return rem, err
}

// GetByID implements reminder.ReminderRepository.
func (r *reminderRepositoryImpl) GetByID(ctx context.Context, userID, id string) (reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	return scanReminder(q.QueryRow(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE user_id = $1 AND id = $2`,
		userID, id,
	))
}

// Create implements reminder.ReminderRepository.
func (r *reminderRepositoryImpl) Create(ctx context.Context, newReminder reminder.Reminder) (reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	return scanReminder(q.QueryRow(ctx,
		`INSERT INTO reminders (id, user_id, type, date_time, days, message)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+reminderColumns,
		newReminder.ID, newReminder.UserID, newReminder.Type,
		newReminder.DateTime, newReminder.Days, newReminder.Message,
	))
}

// ListByUserID implements reminder.ReminderRepository.
func (r *reminderRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReminders(rows)
}

// ListByUserAndType implements reminder.ReminderRepository.
func (r *reminderRepositoryImpl) ListByUserAndType(ctx context.Context, userID string, t reminder.Type) ([]reminder.Reminder, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE user_id = $1 AND type = $2 ORDER BY created_at`,
		userID, t,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReminders(rows)
}

func collectReminders(rows pgx.Rows) ([]reminder.Reminder, error) {
	reminders := make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

// Update implements reminder.ReminderRepository.
func (r *reminderRepositoryImpl) Update(ctx context.Context, userID, id string, req reminder.UpdateReminderRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.DateTime != nil {
		updates["date_time"] = *req.DateTime
	}
	if req.Days != nil {
		updates["days"] = req.Days
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for reminder update")
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

	sql := "UPDATE reminders SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE user_id = $%d AND id = $%d", i, i+1)
	args = append(args, userID, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update reminder with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderNotFound
	}
	return nil
}

// Delete implements reminder.ReminderRepository.
func (r *reminderRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM reminders WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return reminder.ErrReminderNotFound
	}
	return nil
}
