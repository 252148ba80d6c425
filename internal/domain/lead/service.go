package lead

import "context"

type LeadService interface {
	// Create resolves the embedded contact details to a contact id
	// before inserting the lead.
	Create(ctx context.Context, companyID, createdBy string, req CreateLeadRequest) (LeadResponse, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]LeadResponse, error)
	Get(ctx context.Context, companyID, id string) (LeadResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateLeadRequest) (LeadResponse, error)
	SetStatus(ctx context.Context, companyID, id string, req SetStatusRequest) (LeadResponse, error)
	AddFollowUp(ctx context.Context, companyID, leadID, createdBy string, req AddFollowUpRequest) (FollowUpResponse, error)
	// Assign sets or clears the assignee and mails them (best-effort).
	Assign(ctx context.Context, companyID, id string, req AssignLeadRequest) (LeadResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}
