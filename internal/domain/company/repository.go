package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetByOwnerID(ctx context.Context, ownerID string) (Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
	UpdateVerify(ctx context.Context, id string, state VerifyState) error
	UpdateActive(ctx context.Context, id string, isActive bool) error
}
