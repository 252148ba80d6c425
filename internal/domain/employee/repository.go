package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByUserID(ctx context.Context, companyID, userID string) (bool, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	UpdateVerify(ctx context.Context, id string, state VerifyState, roleID *string) error
	UpdateActive(ctx context.Context, id string, isActive bool) error
	UpdateDesignation(ctx context.Context, id string, designation string) error
}
