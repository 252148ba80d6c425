package role

import "context"

type RoleRepository interface {
	GetByID(ctx context.Context, id string) (Role, error)
	Create(ctx context.Context, newRole Role) (Role, error)
	ExistsByName(ctx context.Context, companyID, name string) (bool, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Role, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) error
	Delete(ctx context.Context, id string) error
	CountAssignedEmployees(ctx context.Context, roleID string) (int64, error)
}
