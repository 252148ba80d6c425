package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/task"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `id, company_id, title, description, assigned_to, status, due_at, remind_at, reminder_sent, created_by, created_at, updated_at`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.Title, &t.Description, &t.AssignedTo, &t.Status,
		&t.DueAt, &t.RemindAt, &t.ReminderSent, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	return scanTask(q.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE company_id = $1 AND id = $2`,
		companyID, id,
	))
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, company_id, title, description, assigned_to, status, due_at, remind_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + taskColumns

	return scanTask(q.QueryRow(ctx, query,
		newTask.ID, newTask.CompanyID, newTask.Title, newTask.Description,
		newTask.AssignedTo, newTask.Status, newTask.DueAt, newTask.RemindAt, newTask.CreatedBy,
	))
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context, companyID string, filter task.ListFilter) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		conditions = append(conditions, fmt.Sprintf("assigned_to = $%d", len(args)))
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, companyID, id string, req task.UpdateTaskRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}
	if req.DueAt != nil {
		updates["due_at"] = *req.DueAt
	}
	if req.RemindAt != nil {
		updates["remind_at"] = *req.RemindAt
		// A moved reminder has to fire again.
		updates["reminder_sent"] = false
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for task update")
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

	sql := "UPDATE tasks SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE company_id = $%d AND id = $%d", i, i+1)
	args = append(args, companyID, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update task with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, companyID, id string, status task.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE tasks SET status = $1, updated_at = $2 WHERE company_id = $3 AND id = $4`,
		status, time.Now(), companyID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// ListDueUnnotified implements task.TaskRepository.
func (r *taskRepositoryImpl) ListDueUnnotified(ctx context.Context, now time.Time) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE remind_at IS NOT NULL AND remind_at <= $1 AND reminder_sent = FALSE AND status != $2
		 ORDER BY remind_at`,
		now, task.StatusDone,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]task.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// MarkReminderSent implements task.TaskRepository.
func (r *taskRepositoryImpl) MarkReminderSent(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE tasks SET reminder_sent = TRUE, updated_at = $1 WHERE id = $2`,
		time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark task reminder sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// CountOpenByCompany implements task.TaskRepository.
func (r *taskRepositoryImpl) CountOpenByCompany(ctx context.Context, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE company_id = $1 AND status != $2`,
		companyID, task.StatusDone,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
