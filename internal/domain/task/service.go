package task

import "context"

type TaskService interface {
	Create(ctx context.Context, companyID, createdBy string, req CreateTaskRequest) (TaskResponse, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]TaskResponse, error)
	Get(ctx context.Context, companyID, id string) (TaskResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateTaskRequest) (TaskResponse, error)
	SetStatus(ctx context.Context, companyID, id string, req SetStatusRequest) (TaskResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}
