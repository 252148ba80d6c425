package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/lead"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
)

type leadRepositoryImpl struct {
	db *database.DB
}

func NewLeadRepository(db *database.DB) lead.LeadRepository {
	return &leadRepositoryImpl{db: db}
}

const leadColumns = `id, company_id, contact_id, title, source, status, value, assigned_to, created_by, created_at, updated_at`

func scanLead(row pgx.Row) (lead.Lead, error) {
	var l lead.Lead
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.ContactID, &l.Title, &l.Source, &l.Status,
		&l.Value, &l.AssignedTo, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetByID implements lead.LeadRepository.
func (r *leadRepositoryImpl) GetByID(ctx context.Context, companyID, id string) (lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leadColumns + ` FROM leads WHERE company_id = $1 AND id = $2`
	return scanLead(q.QueryRow(ctx, query, companyID, id))
}

// Create implements lead.LeadRepository.
func (r *leadRepositoryImpl) Create(ctx context.Context, newLead lead.Lead) (lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leads (id, company_id, contact_id, title, source, status, value, assigned_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + leadColumns

	return scanLead(q.QueryRow(ctx, query,
		newLead.ID, newLead.CompanyID, newLead.ContactID, newLead.Title, newLead.Source,
		newLead.Status, newLead.Value, newLead.AssignedTo, newLead.CreatedBy,
	))
}

// List implements lead.LeadRepository.
func (r *leadRepositoryImpl) List(ctx context.Context, companyID string, filter lead.ListFilter) ([]lead.Lead, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leadColumns + ` FROM leads WHERE company_id = $1`
	args := []interface{}{companyID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		query += fmt.Sprintf(" AND assigned_to = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]lead.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// Update implements lead.LeadRepository.
func (r *leadRepositoryImpl) Update(ctx context.Context, companyID, id string, req lead.UpdateLeadRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Source != nil {
		updates["source"] = *req.Source
	}
	if req.Value != nil {
		updates["value"] = *req.Value
	}
	if req.AssignedTo != nil {
		updates["assigned_to"] = *req.AssignedTo
	}
	if req.ContactID != nil {
		updates["contact_id"] = *req.ContactID
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for lead update")
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

	sql := "UPDATE leads SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE company_id = $%d AND id = $%d", i, i+1)
	args = append(args, companyID, id)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update lead with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return lead.ErrLeadNotFound
	}
	return nil
}

// UpdateStatus implements lead.LeadRepository.
func (r *leadRepositoryImpl) UpdateStatus(ctx context.Context, companyID, id string, status lead.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leads SET status = $1, updated_at = NOW() WHERE company_id = $2 AND id = $3`,
		status, companyID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lead.ErrLeadNotFound
	}
	return nil
}

// UpdateAssignee implements lead.LeadRepository.
func (r *leadRepositoryImpl) UpdateAssignee(ctx context.Context, companyID, id string, assignedTo *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leads SET assigned_to = $1, updated_at = NOW() WHERE company_id = $2 AND id = $3`,
		assignedTo, companyID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead assignee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lead.ErrLeadNotFound
	}
	return nil
}

// Delete implements lead.LeadRepository.
func (r *leadRepositoryImpl) Delete(ctx context.Context, companyID, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leads WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return lead.ErrLeadNotFound
	}
	return nil
}

// CountFollowUps implements lead.LeadRepository.
func (r *leadRepositoryImpl) CountFollowUps(ctx context.Context, leadID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM lead_follow_ups WHERE lead_id = $1`, leadID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AppendFollowUp implements lead.LeadRepository.
func (r *leadRepositoryImpl) AppendFollowUp(ctx context.Context, fu lead.FollowUp) (lead.FollowUp, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO lead_follow_ups (id, lead_id, sequence, note, due_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, lead_id, sequence, note, due_at, created_by, created_at
	`
	var created lead.FollowUp
	err := q.QueryRow(ctx, query, fu.ID, fu.LeadID, fu.Sequence, fu.Note, fu.DueAt, fu.CreatedBy).
		Scan(&created.ID, &created.LeadID, &created.Sequence, &created.Note, &created.DueAt, &created.CreatedBy, &created.CreatedAt)
	if err != nil {
		return lead.FollowUp{}, err
	}
	return created, nil
}

// ListFollowUps implements lead.LeadRepository.
func (r *leadRepositoryImpl) ListFollowUps(ctx context.Context, leadID string) ([]lead.FollowUp, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, lead_id, sequence, note, due_at, created_by, created_at
		 FROM lead_follow_ups WHERE lead_id = $1 ORDER BY sequence`,
		leadID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	followUps := make([]lead.FollowUp, 0)
	for rows.Next() {
		var fu lead.FollowUp
		if err := rows.Scan(&fu.ID, &fu.LeadID, &fu.Sequence, &fu.Note, &fu.DueAt, &fu.CreatedBy, &fu.CreatedAt); err != nil {
			return nil, err
		}
		followUps = append(followUps, fu)
	}
	return followUps, rows.Err()
}

// CountByStatus implements lead.LeadRepository.
func (r *leadRepositoryImpl) CountByStatus(ctx context.Context, companyID string) (map[lead.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT status, COUNT(*) FROM leads WHERE company_id = $1 GROUP BY status`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[lead.Status]int64)
	for rows.Next() {
		var status lead.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
