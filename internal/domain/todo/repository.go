package todo

import "context"

type TodoRepository interface {
	GetByID(ctx context.Context, userID, id string) (Todo, error)
	Create(ctx context.Context, newTodo Todo) (Todo, error)
	ListByUserID(ctx context.Context, userID string) ([]Todo, error)
	Update(ctx context.Context, userID, id string, req UpdateTodoRequest) error
	Delete(ctx context.Context, userID, id string) error
}
