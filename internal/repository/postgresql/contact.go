package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type contactRepositoryImpl struct {
	db *database.DB
}

func NewContactRepository(db *database.DB) contact.ContactRepository {
	return &contactRepositoryImpl{db: db}
}

const contactColumns = `id, company_id, name, email, phone, address, created_at, updated_at`

func scanContact(row pgx.Row) (contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// GetByID implements contact.ContactRepository.
func (r *contactRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (contact.Contact, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE company_id = $1 AND id = $2`
	return scanContact(q.QueryRow(ctx, query, companyID, id))
}

// GetByEmail implements contact.ContactRepository. Lookups are always
// scoped by company so identical emails in different tenants never
// collide.
func (r *contactRepositoryImpl) GetByEmail(ctx context.Context, companyID, email string) (contact.Contact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contactColumns + ` FROM contacts
		WHERE company_id = $1 AND email = $2
		ORDER BY created_at
		LIMIT 1
	`
	return scanContact(q.QueryRow(ctx, query, companyID, email))
}

// GetByPhone implements contact.ContactRepository.
func (r *contactRepositoryImpl) GetByPhone(ctx context.Context, companyID, phone string) (contact.Contact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contactColumns + ` FROM contacts
		WHERE company_id = $1 AND phone = $2
		ORDER BY created_at
		LIMIT 1
	`
	return scanContact(q.QueryRow(ctx, query, companyID, phone))
}

// Create implements contact.ContactRepository.
func (r *contactRepositoryImpl) Create(ctx context.Context, newContact contact.Contact) (contact.Contact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contacts (id, company_id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + contactColumns

	return scanContact(q.QueryRow(ctx, query,
		newContact.ID, newContact.CompanyID, newContact.Name, newContact.Email,
		newContact.Phone, newContact.Address,
	))
}

// ListByCompanyID implements contact.ContactRepository.
func (r *contactRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]contact.Contact, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+contactColumns+` FROM contacts WHERE company_id = $1 ORDER BY name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]contact.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// Update implements contact.ContactRepository.
func (r *contactRepositoryImpl) Update(ctx context.Context, companyID, id string, req contact.UpdateContactRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for contact update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE contacts SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE company_id = $%d AND id = $%d", i, i+1)
	args = append(args, companyID, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update contact with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}

// Delete implements contact.ContactRepository.
func (r *contactRepositoryImpl) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM contacts WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrContactNotFound
	}
	return nil
}
