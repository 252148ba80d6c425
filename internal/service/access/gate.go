package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/company"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
)

// DeniedError carries the specific gate/evaluator denial reason so the
// client can render the right remediation screen. The verify state is
// included for "not verified" denials.
type DeniedError struct {
	Reason      error
	VerifyState string
}

func (e *DeniedError) Error() string {
	if e.VerifyState != "" {
		return fmt.Sprintf("%s (verify: %s)", e.Reason.Error(), e.VerifyState)
	}
	return e.Reason.Error()
}

func (e *DeniedError) Unwrap() error { return e.Reason }

func denied(reason error) *DeniedError {
	return &DeniedError{Reason: reason}
}

func deniedWithState(reason error, state string) *DeniedError {
	return &DeniedError{Reason: reason, VerifyState: state}
}

// Gate is the tenant status gate. It runs before any permission or
// business logic on every route that requires an active tenant, and it
// never writes anything.
// CompanyGetter and EmployeeGetter are the narrow read surfaces the
// gate needs; the postgresql repositories satisfy them.
type CompanyGetter interface {
	GetByID(ctx context.Context, id string) (company.Company, error)
}

type EmployeeGetter interface {
	GetByUserID(ctx context.Context, userID string) (employee.Employee, error)
}

type Gate struct {
	companyRepo  CompanyGetter
	employeeRepo EmployeeGetter
}

func NewGate(companyRepo CompanyGetter, employeeRepo EmployeeGetter) *Gate {
	return &Gate{companyRepo: companyRepo, employeeRepo: employeeRepo}
}

// Check verifies the principal's company (and, for employees, their
// employee record) is active and verified. SuperAdmins bypass entirely.
func (g *Gate) Check(ctx context.Context, principal user.Principal) error {
	switch principal.Role {
	case user.RoleSuperAdmin:
		return nil

	case user.RoleCompanyAdmin, user.RoleEmployee:
		if principal.CompanyID == nil {
			return denied(company.ErrCompanyInactive)
		}

		comp, err := g.companyRepo.GetByID(ctx, *principal.CompanyID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return denied(company.ErrCompanyInactive)
			}
			return fmt.Errorf("failed to get company for gate check: %w", err)
		}
		if !comp.IsActive {
			return denied(company.ErrCompanyInactive)
		}
		if comp.Verify != company.VerifyVerified {
			return deniedWithState(company.ErrCompanyNotVerified, string(comp.Verify))
		}

		if principal.Role == user.RoleEmployee {
			emp, err := g.employeeRepo.GetByUserID(ctx, principal.UserID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return denied(employee.ErrEmployeeInactive)
				}
				return fmt.Errorf("failed to get employee for gate check: %w", err)
			}
			if !emp.IsActive {
				return denied(employee.ErrEmployeeInactive)
			}
			if emp.Verify != employee.VerifyVerified {
				return deniedWithState(employee.ErrEmployeeNotVerified, string(emp.Verify))
			}
		}
		return nil
	}

	return denied(user.ErrInvalidRole)
}
