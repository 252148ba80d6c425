package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

const roleColumns = `id, company_id, name, permissions, is_active, created_at, updated_at`

// Permission matrices live in a jsonb column; the scan goes through a
// raw byte slice because the Matrix map needs explicit unmarshalling.
func scanRole(row pgx.Row) (role.Role, error) {
	var r role.Role
	var permissions []byte
	err := row.Scan(&r.ID, &r.CompanyID, &r.Name, &permissions, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return role.Role{}, err
	}
	if err := json.Unmarshal(permissions, &r.Permissions); err != nil {
		return role.Role{}, fmt.Errorf("failed to decode permission matrix: %w", err)
	}
	return r, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	return scanRole(q.QueryRow(ctx, query, id))
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	permissions, err := json.Marshal(newRole.Permissions)
	if err != nil {
		return role.Role{}, fmt.Errorf("failed to encode permission matrix: %w", err)
	}

	query := `
		INSERT INTO roles (id, company_id, name, permissions, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + roleColumns

	return scanRole(q.QueryRow(ctx, query,
		newRole.ID, newRole.CompanyID, newRole.Name, permissions, newRole.IsActive,
	))
}

// ExistsByName implements role.RoleRepository.
func (r *roleRepositoryImpl) ExistsByName(ctx context.Context, companyID, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM roles WHERE company_id = $1 AND name = $2)`,
		companyID, name,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListByCompanyID implements role.RoleRepository.
func (r *roleRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+roleColumns+` FROM roles WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]role.Role, 0)
	for rows.Next() {
		ro, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, ro)
	}
	return roles, rows.Err()
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, id string, req role.UpdateRoleRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Permissions != nil {
		permissions, err := json.Marshal(*req.Permissions)
		if err != nil {
			return fmt.Errorf("failed to encode permission matrix: %w", err)
		}
		updates["permissions"] = permissions
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for role update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE roles SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update role with id %s: %w", id, err)
	}
	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// CountAssignedEmployees implements role.RoleRepository.
func (r *roleRepositoryImpl) CountAssignedEmployees(ctx context.Context, roleID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE role_id = $1`, roleID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
