package contact

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
)

type fakeContactRepo struct {
	contacts []contact.Contact
}

func (f *fakeContactRepo) GetByID(ctx context.Context, companyID, id string) (contact.Contact, error) {
	for _, c := range f.contacts {
		if c.CompanyID == companyID && c.ID == id {
			return c, nil
		}
	}
	return contact.Contact{}, pgx.ErrNoRows
}

func (f *fakeContactRepo) GetByEmail(ctx context.Context, companyID, email string) (contact.Contact, error) {
	var best *contact.Contact
	for i, c := range f.contacts {
		if c.CompanyID == companyID && c.Email == email && c.Email != "" {
			if best == nil || c.CreatedAt.Before(best.CreatedAt) {
				best = &f.contacts[i]
			}
		}
	}
	if best == nil {
		return contact.Contact{}, pgx.ErrNoRows
	}
	return *best, nil
}

func (f *fakeContactRepo) GetByPhone(ctx context.Context, companyID, phone string) (contact.Contact, error) {
	var best *contact.Contact
	for i, c := range f.contacts {
		if c.CompanyID == companyID && c.Phone == phone && c.Phone != "" {
			if best == nil || c.CreatedAt.Before(best.CreatedAt) {
				best = &f.contacts[i]
			}
		}
	}
	if best == nil {
		return contact.Contact{}, pgx.ErrNoRows
	}
	return *best, nil
}

func (f *fakeContactRepo) Create(ctx context.Context, newContact contact.Contact) (contact.Contact, error) {
	newContact.CreatedAt = time.Now().Add(time.Duration(len(f.contacts)) * time.Millisecond)
	f.contacts = append(f.contacts, newContact)
	return newContact, nil
}

func (f *fakeContactRepo) ListByCompanyID(ctx context.Context, companyID string) ([]contact.Contact, error) {
	out := make([]contact.Contact, 0)
	for _, c := range f.contacts {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) Update(ctx context.Context, companyID, id string, req contact.UpdateContactRequest) error {
	return nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, companyID, id string) error {
	return nil
}

const testCompanyID = "11111111-1111-1111-1111-111111111111"

func TestResolve_CreatesWhenNoMatch(t *testing.T) {
	t.Parallel()
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)

	id, err := svc.Resolve(context.Background(), testCompanyID, contact.ContactDetails{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, repo.contacts, 1)
}

func TestResolve_IsStable(t *testing.T) {
	t.Parallel()
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	details := contact.ContactDetails{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+628111111111"}

	first, err := svc.Resolve(context.Background(), testCompanyID, details)
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), testCompanyID, details)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.contacts, 1, "second resolve must reuse the first contact")
}

func TestResolve_EmailWinsOverPhone(t *testing.T) {
	t.Parallel()
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	ctx := context.Background()

	byEmail, err := svc.Resolve(ctx, testCompanyID, contact.ContactDetails{Name: "A", Email: "shared@example.com"})
	require.NoError(t, err)
	byPhone, err := svc.Resolve(ctx, testCompanyID, contact.ContactDetails{Name: "B", Phone: "+628999999999"})
	require.NoError(t, err)
	require.NotEqual(t, byEmail, byPhone)

	// Both fields match, each against a different row: email decides.
	resolved, err := svc.Resolve(ctx, testCompanyID, contact.ContactDetails{
		Name:  "C",
		Email: "shared@example.com",
		Phone: "+628999999999",
	})
	require.NoError(t, err)
	assert.Equal(t, byEmail, resolved)
}

func TestResolve_PhoneFallback(t *testing.T) {
	t.Parallel()
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	ctx := context.Background()

	created, err := svc.Resolve(ctx, testCompanyID, contact.ContactDetails{Name: "A", Phone: "+628123456789"})
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, testCompanyID, contact.ContactDetails{
		Name:  "A",
		Email: "new-address@example.com",
		Phone: "+628123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, created, resolved, "phone match applies when the email is unknown")
}

func TestResolve_ScopedByCompany(t *testing.T) {
	t.Parallel()
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	ctx := context.Background()
	details := contact.ContactDetails{Name: "Ada", Email: "ada@example.com"}

	first, err := svc.Resolve(ctx, testCompanyID, details)
	require.NoError(t, err)
	other, err := svc.Resolve(ctx, "22222222-2222-2222-2222-222222222222", details)
	require.NoError(t, err)

	assert.NotEqual(t, first, other, "tenants never share contacts")
}

func TestResolve_RejectsMissingIdentity(t *testing.T) {
	t.Parallel()
	svc := NewContactService(&fakeContactRepo{})

	_, err := svc.Resolve(context.Background(), testCompanyID, contact.ContactDetails{Name: "No Identity"})
	assert.Error(t, err)
}
