package access

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexocrm/crm-backend-go/internal/domain/company"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
)

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, pgx.ErrNoRows
	}
	return c, nil
}

type fakeEmployeeRepo struct {
	byUserID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	e, ok := f.byUserID[userID]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

type fakeRoleRepo struct {
	roles map[string]role.Role
}

func (f *fakeRoleRepo) GetByID(_ context.Context, id string) (role.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return role.Role{}, pgx.ErrNoRows
	}
	return r, nil
}

func strPtr(s string) *string { return &s }

func activeCompany(id string) company.Company {
	return company.Company{ID: id, Verify: company.VerifyVerified, IsActive: true}
}

func verifiedEmployee(userID, companyID string, roleID *string) employee.Employee {
	return employee.Employee{
		ID:        "emp-" + userID,
		UserID:    userID,
		CompanyID: companyID,
		RoleID:    roleID,
		Verify:    employee.VerifyVerified,
		IsActive:  true,
	}
}

// ===== TENANT STATUS GATE =====

func TestGate_SuperAdminBypassesEverything(t *testing.T) {
	t.Parallel()
	gate := NewGate(&fakeCompanyRepo{}, &fakeEmployeeRepo{})

	err := gate.Check(context.Background(), user.Principal{UserID: "u1", Role: user.RoleSuperAdmin})
	assert.NoError(t, err)
}

func TestGate_CompanyChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		comp       company.Company
		wantReason error
		wantState  string
	}{
		{
			name:       "inactive company denied",
			comp:       company.Company{ID: "c1", Verify: company.VerifyVerified, IsActive: false},
			wantReason: company.ErrCompanyInactive,
		},
		{
			name:       "pending company denied with state",
			comp:       company.Company{ID: "c1", Verify: company.VerifyPending, IsActive: true},
			wantReason: company.ErrCompanyNotVerified,
			wantState:  "pending",
		},
		{
			name:       "rejected company denied with state",
			comp:       company.Company{ID: "c1", Verify: company.VerifyRejected, IsActive: true},
			wantReason: company.ErrCompanyNotVerified,
			wantState:  "rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gate := NewGate(
				&fakeCompanyRepo{companies: map[string]company.Company{"c1": tt.comp}},
				&fakeEmployeeRepo{},
			)

			err := gate.Check(context.Background(), user.Principal{
				UserID: "u1", Role: user.RoleCompanyAdmin, CompanyID: strPtr("c1"),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantReason)

			var dErr *DeniedError
			require.ErrorAs(t, err, &dErr)
			assert.Equal(t, tt.wantState, dErr.VerifyState)
		})
	}
}

func TestGate_MissingCompanyDenied(t *testing.T) {
	t.Parallel()
	gate := NewGate(&fakeCompanyRepo{companies: map[string]company.Company{}}, &fakeEmployeeRepo{})

	err := gate.Check(context.Background(), user.Principal{
		UserID: "u1", Role: user.RoleCompanyAdmin, CompanyID: strPtr("ghost"),
	})
	assert.ErrorIs(t, err, company.ErrCompanyInactive)

	err = gate.Check(context.Background(), user.Principal{UserID: "u1", Role: user.RoleCompanyAdmin})
	assert.ErrorIs(t, err, company.ErrCompanyInactive)
}

func TestGate_EmployeeChecks(t *testing.T) {
	t.Parallel()

	companies := map[string]company.Company{"c1": activeCompany("c1")}

	tests := []struct {
		name       string
		emp        *employee.Employee
		wantReason error
		wantState  string
	}{
		{
			name:       "missing employee record denied",
			emp:        nil,
			wantReason: employee.ErrEmployeeInactive,
		},
		{
			name: "inactive employee denied",
			emp: &employee.Employee{
				UserID: "u1", CompanyID: "c1", Verify: employee.VerifyVerified, IsActive: false,
			},
			wantReason: employee.ErrEmployeeInactive,
		},
		{
			name: "pending employee denied with state",
			emp: &employee.Employee{
				UserID: "u1", CompanyID: "c1", Verify: employee.VerifyPending, IsActive: true,
			},
			wantReason: employee.ErrEmployeeNotVerified,
			wantState:  "pending",
		},
		{
			name: "verified active employee passes",
			emp: &employee.Employee{
				UserID: "u1", CompanyID: "c1", Verify: employee.VerifyVerified, IsActive: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			employees := map[string]employee.Employee{}
			if tt.emp != nil {
				employees["u1"] = *tt.emp
			}
			gate := NewGate(
				&fakeCompanyRepo{companies: companies},
				&fakeEmployeeRepo{byUserID: employees},
			)

			err := gate.Check(context.Background(), user.Principal{
				UserID: "u1", Role: user.RoleEmployee, CompanyID: strPtr("c1"),
			})
			if tt.wantReason == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantReason)
			var dErr *DeniedError
			require.ErrorAs(t, err, &dErr)
			assert.Equal(t, tt.wantState, dErr.VerifyState)
		})
	}
}

// The gate result is independent of permissions: an inactive company
// denies even an employee whose role would allow everything.
func TestGate_PrecedesEvaluator(t *testing.T) {
	t.Parallel()

	roleID := "r1"
	fullAccess := role.Role{
		ID: roleID, CompanyID: "c1", Name: "everything", IsActive: true,
		Permissions: role.Normalize(role.Matrix{
			role.ModuleLeads: {Create: true, Update: true, Delete: true},
		}),
	}
	empRepo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"u1": verifiedEmployee("u1", "c1", &roleID),
	}}

	inactive := company.Company{ID: "c1", Verify: company.VerifyVerified, IsActive: false}
	gate := NewGate(&fakeCompanyRepo{companies: map[string]company.Company{"c1": inactive}}, empRepo)
	evaluator := NewEvaluator(empRepo, &fakeRoleRepo{roles: map[string]role.Role{roleID: fullAccess}})

	principal := user.Principal{UserID: "u1", Role: user.RoleEmployee, CompanyID: strPtr("c1")}

	// Permission check alone would allow...
	assert.NoError(t, evaluator.Authorize(context.Background(), principal, role.ModuleLeads, role.ActionCreate))
	// ...but the gate, which runs first, denies.
	assert.ErrorIs(t, gate.Check(context.Background(), principal), company.ErrCompanyInactive)
}

// ===== PERMISSION EVALUATOR =====

func TestEvaluator_CompanyAdminBypass(t *testing.T) {
	t.Parallel()
	evaluator := NewEvaluator(&fakeEmployeeRepo{}, &fakeRoleRepo{})
	principal := user.Principal{UserID: "admin", Role: user.RoleCompanyAdmin, CompanyID: strPtr("c1")}

	for _, module := range role.KnownModules {
		for _, action := range []role.Action{role.ActionCreate, role.ActionRead, role.ActionUpdate, role.ActionDelete} {
			assert.NoError(t, evaluator.Authorize(context.Background(), principal, module, action))
		}
	}
	// Bypass holds even for module names outside the known set.
	assert.NoError(t, evaluator.Authorize(context.Background(), principal, role.Module("anything"), role.ActionDelete))
}

func TestEvaluator_EmployeeWithoutRoleDenied(t *testing.T) {
	t.Parallel()

	empRepo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"u1": verifiedEmployee("u1", "c1", nil),
	}}
	evaluator := NewEvaluator(empRepo, &fakeRoleRepo{})
	principal := user.Principal{UserID: "u1", Role: user.RoleEmployee, CompanyID: strPtr("c1")}

	for _, module := range role.KnownModules {
		err := evaluator.Authorize(context.Background(), principal, module, role.ActionRead)
		assert.ErrorIs(t, err, employee.ErrNoAssignedRole)
	}
}

func TestEvaluator_EmployeeWithoutRecordDenied(t *testing.T) {
	t.Parallel()
	evaluator := NewEvaluator(&fakeEmployeeRepo{}, &fakeRoleRepo{})
	principal := user.Principal{UserID: "ghost", Role: user.RoleEmployee}

	err := evaluator.Authorize(context.Background(), principal, role.ModuleLeads, role.ActionRead)
	assert.ErrorIs(t, err, employee.ErrNoAssignedRole)
}

func TestEvaluator_EmployeeMatrixFlags(t *testing.T) {
	t.Parallel()

	roleID := "r1"
	salesRole := role.Role{
		ID: roleID, CompanyID: "c1", Name: "sales", IsActive: true,
		Permissions: role.Normalize(role.Matrix{
			role.ModuleLeads: {Create: true},
			role.ModuleTodos: {Read: true},
		}),
	}
	empRepo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"u1": verifiedEmployee("u1", "c1", &roleID),
	}}
	evaluator := NewEvaluator(empRepo, &fakeRoleRepo{roles: map[string]role.Role{roleID: salesRole}})
	principal := user.Principal{UserID: "u1", Role: user.RoleEmployee, CompanyID: strPtr("c1")}
	ctx := context.Background()

	assert.NoError(t, evaluator.Authorize(ctx, principal, role.ModuleLeads, role.ActionCreate))
	// write-implies-read was applied at role creation
	assert.NoError(t, evaluator.Authorize(ctx, principal, role.ModuleLeads, role.ActionRead))
	assert.ErrorIs(t, evaluator.Authorize(ctx, principal, role.ModuleLeads, role.ActionDelete), user.ErrInsufficientPermissions)
	assert.ErrorIs(t, evaluator.Authorize(ctx, principal, role.ModuleTasks, role.ActionRead), user.ErrInsufficientPermissions)
	// unknown module denies non-admins outright
	assert.ErrorIs(t, evaluator.Authorize(ctx, principal, role.Module("payroll"), role.ActionRead), user.ErrInsufficientPermissions)
}

func TestEvaluator_InactiveRoleDenied(t *testing.T) {
	t.Parallel()

	roleID := "r1"
	dormant := role.Role{
		ID: roleID, CompanyID: "c1", Name: "dormant", IsActive: false,
		Permissions: role.Normalize(role.Matrix{role.ModuleLeads: {Create: true}}),
	}
	empRepo := &fakeEmployeeRepo{byUserID: map[string]employee.Employee{
		"u1": verifiedEmployee("u1", "c1", &roleID),
	}}
	evaluator := NewEvaluator(empRepo, &fakeRoleRepo{roles: map[string]role.Role{roleID: dormant}})

	err := evaluator.Authorize(context.Background(),
		user.Principal{UserID: "u1", Role: user.RoleEmployee}, role.ModuleLeads, role.ActionCreate)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestEvaluator_SuperAdminOutOfBand(t *testing.T) {
	t.Parallel()
	evaluator := NewEvaluator(&fakeEmployeeRepo{}, &fakeRoleRepo{})

	err := evaluator.Authorize(context.Background(),
		user.Principal{UserID: "root", Role: user.RoleSuperAdmin}, role.ModuleLeads, role.ActionRead)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

// ===== PURE DECISION TABLE =====

func TestDecide_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role       user.Role
		hasRole    bool
		roleActive bool
		flag       bool
		want       bool
	}{
		{user.RoleCompanyAdmin, false, false, false, true},
		{user.RoleCompanyAdmin, true, true, true, true},
		{user.RoleEmployee, false, false, false, false},
		{user.RoleEmployee, false, true, true, false},
		{user.RoleEmployee, true, false, true, false},
		{user.RoleEmployee, true, true, false, false},
		{user.RoleEmployee, true, true, true, true},
		{user.RoleSuperAdmin, true, true, true, false},
		{user.Role("mystery"), true, true, true, false},
	}

	for _, tt := range tests {
		got := Decide(tt.role, tt.hasRole, tt.roleActive, tt.flag)
		assert.Equal(t, tt.want, got,
			"Decide(%s, hasRole=%v, active=%v, flag=%v)", tt.role, tt.hasRole, tt.roleActive, tt.flag)
	}
}
