package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/todo"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type todoRepositoryImpl struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) todo.TodoRepository {
	return &todoRepositoryImpl{db: db}
}

const todoColumns = `id, user_id, text, done, created_at, updated_at`

func scanTodo(row pgx.Row) (todo.Todo, error) {
	var t todo.Todo
	err := row.Scan(&t.ID, &t.UserID, &t.Text, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// GetByID implements todo.TodoRepository.
func (r *todoRepositoryImpl) GetByID(ctx context.Context, userID, id string) (todo.Todo, error) {
	q := GetQuerier(ctx, r.db)

	return scanTodo(q.QueryRow(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = $1 AND id = $2`,
		userID, id,
	))
}

// Create implements todo.TodoRepository.
func (r *todoRepositoryImpl) Create(ctx context.Context, newTodo todo.Todo) (todo.Todo, error) {
	q := GetQuerier(ctx, r.db)

	return scanTodo(q.QueryRow(ctx,
		`INSERT INTO todos (id, user_id, text) VALUES ($1, $2, $3) RETURNING `+todoColumns,
		newTodo.ID, newTodo.UserID, newTodo.Text,
	))
}

// ListByUserID implements todo.TodoRepository.
func (r *todoRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]todo.Todo, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// Update implements todo.TodoRepository.
func (r *todoRepositoryImpl) Update(ctx context.Context, userID, id string, req todo.UpdateTodoRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Text != nil {
		updates["text"] = *req.Text
	}
	if req.Done != nil {
		updates["done"] = *req.Done
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for todo update")
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

	sql := "UPDATE todos SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE user_id = $%d AND id = $%d", i, i+1)
	args = append(args, userID, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update todo with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}

// Delete implements todo.TodoRepository.
func (r *todoRepositoryImpl) Delete(ctx context.Context, userID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM todos WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return todo.ErrTodoNotFound
	}
	return nil
}
