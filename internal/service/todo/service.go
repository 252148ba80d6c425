package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/todo"
)

type TodoServiceImpl struct {
	todoRepo todo.TodoRepository
}

func NewTodoService(todoRepo todo.TodoRepository) todo.TodoService {
	return &TodoServiceImpl{todoRepo: todoRepo}
}

// Create implements todo.TodoService.
func (s *TodoServiceImpl) Create(ctx context.Context, userID string, req todo.CreateTodoRequest) (todo.TodoResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return todo.TodoResponse{}, todo.ErrTextRequired
	}

	created, err := s.todoRepo.Create(ctx, todo.Todo{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   req.Text,
	})
	if err != nil {
		return todo.TodoResponse{}, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo.ToResponse(created), nil
}

// List implements todo.TodoService.
func (s *TodoServiceImpl) List(ctx context.Context, userID string) ([]todo.TodoResponse, error) {
	todos, err := s.todoRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	responses := make([]todo.TodoResponse, 0, len(todos))
	for _, t := range todos {
		responses = append(responses, todo.ToResponse(t))
	}
	return responses, nil
}

// Update implements todo.TodoService.
func (s *TodoServiceImpl) Update(ctx context.Context, userID, id string, req todo.UpdateTodoRequest) (todo.TodoResponse, error) {
	if req.Text != nil && strings.TrimSpace(*req.Text) == "" {
		return todo.TodoResponse{}, todo.ErrTextRequired
	}

	if err := s.todoRepo.Update(ctx, userID, id, req); err != nil {
		return todo.TodoResponse{}, err
	}
	return s.get(ctx, userID, id)
}

// Toggle implements todo.TodoService.
func (s *TodoServiceImpl) Toggle(ctx context.Context, userID, id string) (todo.TodoResponse, error) {
	current, err := s.get(ctx, userID, id)
	if err != nil {
		return todo.TodoResponse{}, err
	}

	flipped := !current.Done
	if err := s.todoRepo.Update(ctx, userID, id, todo.UpdateTodoRequest{Done: &flipped}); err != nil {
		return todo.TodoResponse{}, err
	}
	return s.get(ctx, userID, id)
}

// Delete implements todo.TodoService.
func (s *TodoServiceImpl) Delete(ctx context.Context, userID, id string) error {
	return s.todoRepo.Delete(ctx, userID, id)
}

func (s *TodoServiceImpl) get(ctx context.Context, userID, id string) (todo.TodoResponse, error) {
	t, err := s.todoRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return todo.TodoResponse{}, todo.ErrTodoNotFound
		}
		return todo.TodoResponse{}, fmt.Errorf("failed to get todo: %w", err)
	}
	return todo.ToResponse(t), nil
}
