package employee

import "context"

type EmployeeService interface {
	ListByCompany(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	Get(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	// Verify promotes a pending employee with either an existing role or
	// an inline one built from a permission matrix. The inline matrix is
	// normalized before it is stored. The new-joiner mail is best-effort.
	Verify(ctx context.Context, companyID, id string, req VerifyEmployeeRequest) (EmployeeResponse, error)
	Reject(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	SetActive(ctx context.Context, companyID, id string, isActive bool) (EmployeeResponse, error)
	UpdateDesignation(ctx context.Context, companyID, id string, req UpdateDesignationRequest) (EmployeeResponse, error)
}
