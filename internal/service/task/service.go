package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/task"
)

type TaskServiceImpl struct {
	taskRepo     task.TaskRepository
	employeeRepo employee.EmployeeRepository
}

func NewTaskService(taskRepo task.TaskRepository, employeeRepo employee.EmployeeRepository) task.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo, employeeRepo: employeeRepo}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, companyID, createdBy string, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.checkAssignee(ctx, companyID, req.AssignedTo); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      task.StatusOpen,
		DueAt:       req.DueAt,
		RemindAt:    req.RemindAt,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task.ToResponse(created), nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, companyID string, filter task.ListFilter) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToResponse(t))
	}
	return responses, nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, companyID, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskResponse{}, task.ErrTaskNotFound
		}
		return task.TaskResponse{}, fmt.Errorf("failed to get task: %w", err)
	}
	return task.ToResponse(t), nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, companyID, id string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if req.AssignedTo != nil {
		if err := s.checkAssignee(ctx, companyID, *req.AssignedTo); err != nil {
			return task.TaskResponse{}, err
		}
	}

	if err := s.taskRepo.Update(ctx, companyID, id, req); err != nil {
		return task.TaskResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// SetStatus implements task.TaskService.
func (s *TaskServiceImpl) SetStatus(ctx context.Context, companyID, id string, req task.SetStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.taskRepo.UpdateStatus(ctx, companyID, id, task.Status(req.Status)); err != nil {
		return task.TaskResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	return s.taskRepo.Delete(ctx, companyID, id)
}

func (s *TaskServiceImpl) checkAssignee(ctx context.Context, companyID, userID string) error {
	e, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to get assignee: %w", err)
	}
	if e.CompanyID != companyID {
		return task.ErrAssigneeNotFound
	}
	return nil
}
