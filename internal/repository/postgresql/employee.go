package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Employee reads join users for name/email so list screens need no
// second round trip.
const employeeSelect = `
	SELECT e.id, e.user_id, e.company_id, e.designation, e.role_id, e.verify, e.is_active,
	       e.created_at, e.updated_at, u.name, u.email
	FROM employees e
	JOIN users u ON u.id = e.user_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.Designation, &e.RoleID, &e.Verify,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt, &e.Name, &e.Email,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	return scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	return scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, company_id, designation, role_id, verify, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id string
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.UserID, newEmployee.CompanyID, newEmployee.Designation,
		newEmployee.RoleID, newEmployee.Verify, newEmployee.IsActive,
	).Scan(&id)
	if err != nil {
		return employee.Employee{}, err
	}

	return r.GetByID(ctx, id)
}

// ExistsByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByUserID(ctx context.Context, companyID, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE company_id = $1 AND user_id = $2)`,
		companyID, userID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, employeeSelect+` WHERE e.company_id = $1 ORDER BY e.created_at`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// UpdateVerify implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateVerify(ctx context.Context, id string, state employee.VerifyState, roleID *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET verify = $1, role_id = $2, updated_at = NOW() WHERE id = $3`,
		state, roleID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee verify state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateActive(ctx context.Context, id string, isActive bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET is_active = $1, updated_at = NOW() WHERE id = $2`, isActive, id)
	if err != nil {
		return fmt.Errorf("failed to update employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateDesignation implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateDesignation(ctx context.Context, id string, designation string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET designation = $1, updated_at = NOW() WHERE id = $2`, designation, id)
	if err != nil {
		return fmt.Errorf("failed to update employee designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
