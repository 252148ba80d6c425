package contact

import "context"

type ContactRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Contact, error)
	GetByEmail(ctx context.Context, companyID, email string) (Contact, error)
	GetByPhone(ctx context.Context, companyID, phone string) (Contact, error)
	Create(ctx context.Context, newContact Contact) (Contact, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Contact, error)
	Update(ctx context.Context, companyID, id string, req UpdateContactRequest) error
	Delete(ctx context.Context, companyID, id string) error
}
