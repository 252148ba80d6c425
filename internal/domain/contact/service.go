package contact

import "context"

type ContactService interface {
	Create(ctx context.Context, companyID string, req CreateContactRequest) (ContactResponse, error)
	ListByCompany(ctx context.Context, companyID string) ([]ContactResponse, error)
	Get(ctx context.Context, companyID, id string) (ContactResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateContactRequest) (ContactResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	// Resolve finds the contact the details point at, or creates one.
	// Lookup order is email first, then phone, so an email match wins
	// when both fields match different rows. Lead creation, lead update
	// and meeting client participants all funnel through here.
	Resolve(ctx context.Context, companyID string, details ContactDetails) (string, error)
}
