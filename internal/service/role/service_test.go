package role

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexocrm/crm-backend-go/internal/domain/role"
)

const testCompanyID = "11111111-1111-1111-1111-111111111111"

type fakeRoleRepo struct {
	roles    map[string]role.Role
	assigned map[string]int64
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: make(map[string]role.Role), assigned: make(map[string]int64)}
}

func (f *fakeRoleRepo) GetByID(ctx context.Context, id string) (role.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return role.Role{}, pgx.ErrNoRows
	}
	return r, nil
}

func (f *fakeRoleRepo) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	f.roles[newRole.ID] = newRole
	return newRole, nil
}

func (f *fakeRoleRepo) ExistsByName(ctx context.Context, companyID, name string) (bool, error) {
	for _, r := range f.roles {
		if r.CompanyID == companyID && r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoleRepo) ListByCompanyID(ctx context.Context, companyID string) ([]role.Role, error) {
	out := make([]role.Role, 0)
	for _, r := range f.roles {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(ctx context.Context, id string, req role.UpdateRoleRequest) error {
	r, ok := f.roles[id]
	if !ok {
		return role.ErrRoleNotFound
	}
	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Permissions != nil {
		r.Permissions = *req.Permissions
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	f.roles[id] = r
	return nil
}

func (f *fakeRoleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.roles[id]; !ok {
		return role.ErrRoleNotFound
	}
	delete(f.roles, id)
	return nil
}

func (f *fakeRoleRepo) CountAssignedEmployees(ctx context.Context, roleID string) (int64, error) {
	return f.assigned[roleID], nil
}

func TestCreate_NormalizesMatrix(t *testing.T) {
	t.Parallel()
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo)

	created, err := svc.Create(context.Background(), testCompanyID, role.CreateRoleRequest{
		Name: "Sales",
		Permissions: role.Matrix{
			role.ModuleLeads: {Create: true},
		},
	})
	require.NoError(t, err)

	leads := created.Permissions[role.ModuleLeads]
	assert.True(t, leads.Read, "write access must imply read access")
	assert.True(t, leads.Create)
}

func TestCreate_RejectsDuplicateName(t *testing.T) {
	t.Parallel()
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, testCompanyID, role.CreateRoleRequest{
		Name:        "Sales",
		Permissions: role.Matrix{role.ModuleLeads: {Read: true}},
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, testCompanyID, role.CreateRoleRequest{
		Name:        "Sales",
		Permissions: role.Matrix{role.ModuleLeads: {Read: true}},
	})
	assert.ErrorIs(t, err, role.ErrRoleNameExists)
}

func TestCreate_RejectsUnknownModule(t *testing.T) {
	t.Parallel()
	svc := NewRoleService(newFakeRoleRepo())

	_, err := svc.Create(context.Background(), testCompanyID, role.CreateRoleRequest{
		Name:        "Sales",
		Permissions: role.Matrix{role.Module("invoices"): {Read: true}},
	})
	assert.Error(t, err)
}

func TestUpdate_NormalizesSubmittedMatrix(t *testing.T) {
	t.Parallel()
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompanyID, role.CreateRoleRequest{
		Name:        "Sales",
		Permissions: role.Matrix{role.ModuleLeads: {Read: true}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, testCompanyID, created.ID, role.UpdateRoleRequest{
		Permissions: &role.Matrix{role.ModuleTasks: {Delete: true}},
	})
	require.NoError(t, err)

	tasks := updated.Permissions[role.ModuleTasks]
	assert.True(t, tasks.Read, "normalization applies on update too")
	assert.True(t, tasks.Delete)
	// The submitted matrix replaces the whole snapshot.
	assert.NotContains(t, updated.Permissions, role.ModuleLeads)
}

func TestDelete_BlockedWhileAssigned(t *testing.T) {
	t.Parallel()
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompanyID, role.CreateRoleRequest{
		Name:        "Sales",
		Permissions: role.Matrix{role.ModuleLeads: {Read: true}},
	})
	require.NoError(t, err)
	repo.assigned[created.ID] = 2

	err = svc.Delete(ctx, testCompanyID, created.ID)
	assert.ErrorIs(t, err, role.ErrRoleInUse)

	repo.assigned[created.ID] = 0
	assert.NoError(t, svc.Delete(ctx, testCompanyID, created.ID), "deletable once unassigned")
}

func TestGet_ScopedToCompany(t *testing.T) {
	t.Parallel()
	repo := newFakeRoleRepo()
	svc := NewRoleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompanyID, role.CreateRoleRequest{
		Name:        "Sales",
		Permissions: role.Matrix{role.ModuleLeads: {Read: true}},
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "22222222-2222-2222-2222-222222222222", created.ID)
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}
