package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/role"
)

type RoleServiceImpl struct {
	roleRepo role.RoleRepository
}

func NewRoleService(roleRepo role.RoleRepository) role.RoleService {
	return &RoleServiceImpl{roleRepo: roleRepo}
}

// Create implements role.RoleService.
func (s *RoleServiceImpl) Create(ctx context.Context, companyID string, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	exists, err := s.roleRepo.ExistsByName(ctx, companyID, req.Name)
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to check role name: %w", err)
	}
	if exists {
		return role.RoleResponse{}, role.ErrRoleNameExists
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Permissions: role.Normalize(req.Permissions),
		IsActive:    true,
	})
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}
	return role.ToResponse(created), nil
}

// ListByCompany implements role.RoleService.
func (s *RoleServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.ToResponse(r))
	}
	return responses, nil
}

// Get implements role.RoleService.
func (s *RoleServiceImpl) Get(ctx context.Context, companyID, id string) (role.RoleResponse, error) {
	r, err := s.getScoped(ctx, companyID, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.ToResponse(r), nil
}

func (s *RoleServiceImpl) getScoped(ctx context.Context, companyID, id string) (role.Role, error) {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}
	if r.CompanyID != companyID {
		return role.Role{}, role.ErrRoleNotFound
	}
	return r, nil
}

// Update implements role.RoleService.
func (s *RoleServiceImpl) Update(ctx context.Context, companyID, id string, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	if _, err := s.getScoped(ctx, companyID, id); err != nil {
		return role.RoleResponse{}, err
	}

	if req.Name != nil {
		exists, err := s.roleRepo.ExistsByName(ctx, companyID, *req.Name)
		if err != nil {
			return role.RoleResponse{}, fmt.Errorf("failed to check role name: %w", err)
		}
		if exists {
			return role.RoleResponse{}, role.ErrRoleNameExists
		}
	}

	if req.Permissions != nil {
		normalized := role.Normalize(*req.Permissions)
		req.Permissions = &normalized
	}

	if err := s.roleRepo.Update(ctx, id, req); err != nil {
		return role.RoleResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// Delete implements role.RoleService.
func (s *RoleServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	if _, err := s.getScoped(ctx, companyID, id); err != nil {
		return err
	}

	assigned, err := s.roleRepo.CountAssignedEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count role assignments: %w", err)
	}
	if assigned > 0 {
		return role.ErrRoleInUse
	}

	return s.roleRepo.Delete(ctx, id)
}
