package role

import "context"

type RoleService interface {
	Create(ctx context.Context, companyID string, req CreateRoleRequest) (RoleResponse, error)
	ListByCompany(ctx context.Context, companyID string) ([]RoleResponse, error)
	Get(ctx context.Context, companyID, id string) (RoleResponse, error)
	// Update replaces whole fields; a submitted matrix becomes a fresh
	// normalized snapshot, individual flags are never patched in place.
	Update(ctx context.Context, companyID, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}
