package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
)

// Evaluator answers module/action authorization questions for company
// admins and employees. SuperAdmin is out of band: routes needing the
// platform operator gate with the coarse role middleware and never hit
// this evaluator.
type RoleGetter interface {
	GetByID(ctx context.Context, id string) (role.Role, error)
}

type Evaluator struct {
	employeeRepo EmployeeGetter
	roleRepo     RoleGetter
}

func NewEvaluator(employeeRepo EmployeeGetter, roleRepo RoleGetter) *Evaluator {
	return &Evaluator{employeeRepo: employeeRepo, roleRepo: roleRepo}
}

// Authorize decides whether the principal may perform action on module.
// A nil return means allow; a *DeniedError carries the reason.
func (e *Evaluator) Authorize(ctx context.Context, principal user.Principal, module role.Module, action role.Action) error {
	// CompanyAdmin bypasses the matrix entirely; everyone else going
	// through here is validated against the known module set.
	if principal.Role != user.RoleCompanyAdmin && !role.KnownModule(module) {
		return denied(user.ErrInsufficientPermissions)
	}

	switch principal.Role {
	case user.RoleCompanyAdmin:
		return nil

	case user.RoleEmployee:
		emp, err := e.employeeRepo.GetByUserID(ctx, principal.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return denied(employee.ErrNoAssignedRole)
			}
			return fmt.Errorf("failed to get employee for authorization: %w", err)
		}
		if emp.RoleID == nil {
			return denied(employee.ErrNoAssignedRole)
		}

		assigned, err := e.roleRepo.GetByID(ctx, *emp.RoleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return denied(employee.ErrNoAssignedRole)
			}
			return fmt.Errorf("failed to get role for authorization: %w", err)
		}

		if !Decide(principal.Role, true, assigned.IsActive, assigned.Permissions.Allows(module, action)) {
			return denied(user.ErrInsufficientPermissions)
		}
		return nil
	}

	return denied(user.ErrInsufficientPermissions)
}

// Decide is the permission decision table, kept free of persistence so
// it can be exercised exhaustively: (role, hasRole, roleActive, flag) →
// allow/deny.
func Decide(r user.Role, hasRole, roleActive, permissionFlag bool) bool {
	switch r {
	case user.RoleCompanyAdmin:
		return true
	case user.RoleEmployee:
		return hasRole && roleActive && permissionFlag
	default:
		// SuperAdmin and anything unknown never pass module checks.
		return false
	}
}
