package employee

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
)

const testCompanyID = "company-1"

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(seed ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range seed {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) ListByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) UpdateVerify(_ context.Context, id string, state employee.VerifyState, roleID *string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Verify = state
	e.RoleID = roleID
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateActive(_ context.Context, id string, isActive bool) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.IsActive = isActive
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateDesignation(_ context.Context, id string, designation string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Designation = designation
	f.employees[id] = e
	return nil
}

func pendingEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:          id,
		UserID:      "user-" + id,
		CompanyID:   testCompanyID,
		Designation: "Sales",
		Verify:      employee.VerifyPending,
		IsActive:    true,
	}
}

func newService(repo *fakeEmployeeRepo) employee.EmployeeService {
	return NewEmployeeService(nil, repo, nil, nil, nil, nil, "")
}

func TestReject_MovesPendingToRejected(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo(pendingEmployee("emp-1"))
	svc := newService(repo)

	rejected, err := svc.Reject(context.Background(), testCompanyID, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, employee.VerifyRejected, rejected.Verify)
	assert.Nil(t, rejected.RoleID)
}

func TestReject_OneShot(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo(pendingEmployee("emp-1"))
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.Reject(ctx, testCompanyID, "emp-1")
	require.NoError(t, err)

	_, err = svc.Reject(ctx, testCompanyID, "emp-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyDone)
}

func TestGet_ScopedToCompany(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo(pendingEmployee("emp-1"))
	svc := newService(repo)

	_, err := svc.Get(context.Background(), "company-other", "emp-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSetActive_Toggles(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo(pendingEmployee("emp-1"))
	svc := newService(repo)
	ctx := context.Background()

	deactivated, err := svc.SetActive(ctx, testCompanyID, "emp-1", false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	reactivated, err := svc.SetActive(ctx, testCompanyID, "emp-1", true)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}

func TestUpdateDesignation(t *testing.T) {
	t.Parallel()
	repo := newFakeEmployeeRepo(pendingEmployee("emp-1"))
	svc := newService(repo)

	updated, err := svc.UpdateDesignation(context.Background(), testCompanyID, "emp-1", employee.UpdateDesignationRequest{
		Designation: "Account Manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "Account Manager", updated.Designation)
}
