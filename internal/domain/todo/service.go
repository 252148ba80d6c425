package todo

import "context"

type TodoService interface {
	Create(ctx context.Context, userID string, req CreateTodoRequest) (TodoResponse, error)
	List(ctx context.Context, userID string) ([]TodoResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateTodoRequest) (TodoResponse, error)
	Toggle(ctx context.Context, userID, id string) (TodoResponse, error)
	Delete(ctx context.Context, userID, id string) error
}
