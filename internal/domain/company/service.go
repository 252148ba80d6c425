package company

import "context"

// CompanyService is the SuperAdmin surface for tenant review plus the
// read used by tenant members themselves.
type CompanyService interface {
	List(ctx context.Context, filter ListFilter) ([]CompanyResponse, error)
	Get(ctx context.Context, id string) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) (CompanyResponse, error)
	// SetVerify moves the company between pending/verified/rejected and
	// mails the owner about the outcome. The mail is best-effort.
	SetVerify(ctx context.Context, id string, req SetVerifyRequest) (CompanyResponse, error)
	SetActive(ctx context.Context, id string, isActive bool) (CompanyResponse, error)
}
