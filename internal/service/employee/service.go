package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/company"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
	"github.com/nexocrm/crm-backend-go/internal/pkg/email"
	"github.com/nexocrm/crm-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	roleRepo     role.RoleRepository
	companyRepo  company.CompanyRepository
	userRepo     user.UserRepository
	emailService email.EmailService
	loginLink    string
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	roleRepo role.RoleRepository,
	companyRepo company.CompanyRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	loginLink string,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		emailService: emailService,
		loginLink:    loginLink,
	}
}

// ListByCompany implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	e, err := s.getScoped(ctx, companyID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// getScoped loads the employee and refuses records from other tenants.
func (s *EmployeeServiceImpl) getScoped(ctx context.Context, companyID, id string) (employee.Employee, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// Verify implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Verify(ctx context.Context, companyID, id string, req employee.VerifyEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.getScoped(ctx, companyID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if e.Verify != employee.VerifyPending {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyDone
	}

	var roleID string
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		if req.RoleID != nil {
			assigned, err := s.roleRepo.GetByID(txCtx, *req.RoleID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return role.ErrRoleNotFound
				}
				return fmt.Errorf("failed to get role: %w", err)
			}
			if assigned.CompanyID != companyID {
				return employee.ErrRoleOutsideCompany
			}
			roleID = assigned.ID
		} else {
			created, err := s.roleRepo.Create(txCtx, role.Role{
				ID:          uuid.NewString(),
				CompanyID:   companyID,
				Name:        req.Role.Name,
				Permissions: role.Normalize(req.Role.Permissions),
				IsActive:    true,
			})
			if err != nil {
				return fmt.Errorf("failed to create inline role: %w", err)
			}
			roleID = created.ID
		}

		return s.employeeRepo.UpdateVerify(txCtx, id, employee.VerifyVerified, &roleID)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.Get(ctx, companyID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.notifyVerified(ctx, updated, roleID)
	return updated, nil
}

func (s *EmployeeServiceImpl) notifyVerified(ctx context.Context, e employee.EmployeeResponse, roleID string) {
	u, err := s.userRepo.GetByID(ctx, e.UserID)
	if err != nil {
		slog.Warn("Failed to load user for employee verification mail", "employee_id", e.ID, "error", err)
		return
	}
	c, err := s.companyRepo.GetByID(ctx, e.CompanyID)
	if err != nil {
		slog.Warn("Failed to load company for employee verification mail", "employee_id", e.ID, "error", err)
		return
	}

	roleName := ""
	if r, err := s.roleRepo.GetByID(ctx, roleID); err == nil {
		roleName = r.Name
	}

	if err := s.emailService.SendEmployeeVerified(u.Email, u.Name, c.Name, roleName, s.loginLink); err != nil {
		slog.Warn("Failed to send employee verification mail", "employee_id", e.ID, "error", err)
	}
}

// Reject implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Reject(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	e, err := s.getScoped(ctx, companyID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if e.Verify != employee.VerifyPending {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyDone
	}

	if err := s.employeeRepo.UpdateVerify(ctx, id, employee.VerifyRejected, nil); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// SetActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetActive(ctx context.Context, companyID, id string, isActive bool) (employee.EmployeeResponse, error) {
	if _, err := s.getScoped(ctx, companyID, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.UpdateActive(ctx, id, isActive); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// UpdateDesignation implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateDesignation(ctx context.Context, companyID, id string, req employee.UpdateDesignationRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.getScoped(ctx, companyID, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.UpdateDesignation(ctx, id, req.Designation); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}
