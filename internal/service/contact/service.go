package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
)

type ContactServiceImpl struct {
	contactRepo contact.ContactRepository
}

func NewContactService(contactRepo contact.ContactRepository) contact.ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

// Create implements contact.ContactService.
func (s *ContactServiceImpl) Create(ctx context.Context, companyID string, req contact.CreateContactRequest) (contact.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return contact.ContactResponse{}, err
	}

	created, err := s.contactRepo.Create(ctx, contact.Contact{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return contact.ContactResponse{}, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact.ToResponse(created), nil
}

// ListByCompany implements contact.ContactService.
func (s *ContactServiceImpl) ListByCompany(ctx context.Context, companyID string) ([]contact.ContactResponse, error) {
	contacts, err := s.contactRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	responses := make([]contact.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, contact.ToResponse(c))
	}
	return responses, nil
}

// Get implements contact.ContactService.
func (s *ContactServiceImpl) Get(ctx context.Context, companyID, id string) (contact.ContactResponse, error) {
	c, err := s.contactRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contact.ContactResponse{}, contact.ErrContactNotFound
		}
		return contact.ContactResponse{}, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact.ToResponse(c), nil
}

// Update implements contact.ContactService.
func (s *ContactServiceImpl) Update(ctx context.Context, companyID, id string, req contact.UpdateContactRequest) (contact.ContactResponse, error) {
	if err := req.Validate(); err != nil {
		return contact.ContactResponse{}, err
	}

	if err := s.contactRepo.Update(ctx, companyID, id, req); err != nil {
		return contact.ContactResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// Delete implements contact.ContactService.
func (s *ContactServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	return s.contactRepo.Delete(ctx, companyID, id)
}

// Resolve implements contact.ContactService. The check-then-create is
// not atomic: two concurrent callers with the same new details can both
// miss the lookup and create twice. Accepted; a later resolve picks the
// oldest row.
func (s *ContactServiceImpl) Resolve(ctx context.Context, companyID string, details contact.ContactDetails) (string, error) {
	if err := details.Validate(); err != nil {
		return "", err
	}

	if details.Email != "" {
		c, err := s.contactRepo.GetByEmail(ctx, companyID, details.Email)
		if err == nil {
			return c.ID, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("failed to look up contact by email: %w", err)
		}
	}

	if details.Phone != "" {
		c, err := s.contactRepo.GetByPhone(ctx, companyID, details.Phone)
		if err == nil {
			return c.ID, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("failed to look up contact by phone: %w", err)
		}
	}

	created, err := s.contactRepo.Create(ctx, contact.Contact{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      details.Name,
		Email:     details.Email,
		Phone:     details.Phone,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create contact: %w", err)
	}
	return created.ID, nil
}
