package lead

import "context"

type LeadRepository interface {
	GetByID(ctx context.Context, companyID, id string) (Lead, error)
	Create(ctx context.Context, newLead Lead) (Lead, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]Lead, error)
	Update(ctx context.Context, companyID, id string, req UpdateLeadRequest) error
	UpdateStatus(ctx context.Context, companyID, id string, status Status) error
	UpdateAssignee(ctx context.Context, companyID, id string, assignedTo *string) error
	Delete(ctx context.Context, companyID, id string) error

	CountFollowUps(ctx context.Context, leadID string) (int, error)
	AppendFollowUp(ctx context.Context, fu FollowUp) (FollowUp, error)
	ListFollowUps(ctx context.Context, leadID string) ([]FollowUp, error)
	CountByStatus(ctx context.Context, companyID string) (map[Status]int64, error)
}
