package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/lead"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/pkg/email"
)

type LeadServiceImpl struct {
	leadRepo       lead.LeadRepository
	contactService contact.ContactService
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	emailService   email.EmailService
}

func NewLeadService(
	leadRepo lead.LeadRepository,
	contactService contact.ContactService,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
) lead.LeadService {
	return &LeadServiceImpl{
		leadRepo:       leadRepo,
		contactService: contactService,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		emailService:   emailService,
	}
}

// Create implements lead.LeadService.
func (s *LeadServiceImpl) Create(ctx context.Context, companyID, createdBy string, req lead.CreateLeadRequest) (lead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return lead.LeadResponse{}, err
	}

	contactID, err := s.contactService.Resolve(ctx, companyID, req.Contact)
	if err != nil {
		return lead.LeadResponse{}, err
	}

	if req.AssignedTo != nil {
		if err := s.checkAssignee(ctx, companyID, *req.AssignedTo); err != nil {
			return lead.LeadResponse{}, err
		}
	}

	value := decimal.Zero
	if req.Value != nil {
		value = *req.Value
	}

	created, err := s.leadRepo.Create(ctx, lead.Lead{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		ContactID:  contactID,
		Title:      req.Title,
		Source:     req.Source,
		Status:     lead.StatusNew,
		Value:      value,
		AssignedTo: req.AssignedTo,
		CreatedBy:  createdBy,
	})
	if err != nil {
		return lead.LeadResponse{}, fmt.Errorf("failed to create lead: %w", err)
	}

	if created.AssignedTo != nil {
		s.notifyAssignee(ctx, created)
	}
	return lead.ToResponse(created), nil
}

// List implements lead.LeadService.
func (s *LeadServiceImpl) List(ctx context.Context, companyID string, filter lead.ListFilter) ([]lead.LeadResponse, error) {
	leads, err := s.leadRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	responses := make([]lead.LeadResponse, 0, len(leads))
	for _, l := range leads {
		responses = append(responses, lead.ToResponse(l))
	}
	return responses, nil
}

// Get implements lead.LeadService. Follow-ups ride along.
func (s *LeadServiceImpl) Get(ctx context.Context, companyID, id string) (lead.LeadResponse, error) {
	l, err := s.leadRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lead.LeadResponse{}, lead.ErrLeadNotFound
		}
		return lead.LeadResponse{}, fmt.Errorf("failed to get lead: %w", err)
	}

	l.FollowUps, err = s.leadRepo.ListFollowUps(ctx, l.ID)
	if err != nil {
		return lead.LeadResponse{}, fmt.Errorf("failed to list follow-ups: %w", err)
	}
	return lead.ToResponse(l), nil
}

// Update implements lead.LeadService. Submitted contact details are
// re-resolved and may point the lead at a different contact.
func (s *LeadServiceImpl) Update(ctx context.Context, companyID, id string, req lead.UpdateLeadRequest) (lead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return lead.LeadResponse{}, err
	}

	if req.Contact != nil {
		contactID, err := s.contactService.Resolve(ctx, companyID, *req.Contact)
		if err != nil {
			return lead.LeadResponse{}, err
		}
		req.ContactID = &contactID
	}
	if req.AssignedTo != nil {
		if err := s.checkAssignee(ctx, companyID, *req.AssignedTo); err != nil {
			return lead.LeadResponse{}, err
		}
	}

	if err := s.leadRepo.Update(ctx, companyID, id, req); err != nil {
		return lead.LeadResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// SetStatus implements lead.LeadService. Membership is the only check;
// a closed lead may go straight back to new.
func (s *LeadServiceImpl) SetStatus(ctx context.Context, companyID, id string, req lead.SetStatusRequest) (lead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return lead.LeadResponse{}, err
	}

	if err := s.leadRepo.UpdateStatus(ctx, companyID, id, lead.Status(req.Status)); err != nil {
		return lead.LeadResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// AddFollowUp implements lead.LeadService.
func (s *LeadServiceImpl) AddFollowUp(ctx context.Context, companyID, leadID, createdBy string, req lead.AddFollowUpRequest) (lead.FollowUpResponse, error) {
	if err := req.Validate(); err != nil {
		return lead.FollowUpResponse{}, err
	}

	if _, err := s.leadRepo.GetByID(ctx, companyID, leadID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lead.FollowUpResponse{}, lead.ErrLeadNotFound
		}
		return lead.FollowUpResponse{}, fmt.Errorf("failed to get lead: %w", err)
	}

	count, err := s.leadRepo.CountFollowUps(ctx, leadID)
	if err != nil {
		return lead.FollowUpResponse{}, fmt.Errorf("failed to count follow-ups: %w", err)
	}

	fu, err := s.leadRepo.AppendFollowUp(ctx, lead.FollowUp{
		ID:        uuid.NewString(),
		LeadID:    leadID,
		Sequence:  count + 1,
		Note:      req.Note,
		DueAt:     req.DueAt,
		CreatedBy: createdBy,
	})
	if err != nil {
		return lead.FollowUpResponse{}, fmt.Errorf("failed to append follow-up: %w", err)
	}

	return lead.FollowUpResponse{
		ID:        fu.ID,
		Sequence:  fu.Sequence,
		Note:      fu.Note,
		DueAt:     fu.DueAt,
		CreatedBy: fu.CreatedBy,
		CreatedAt: fu.CreatedAt,
	}, nil
}

// Assign implements lead.LeadService.
func (s *LeadServiceImpl) Assign(ctx context.Context, companyID, id string, req lead.AssignLeadRequest) (lead.LeadResponse, error) {
	if req.AssignedTo != nil {
		if err := s.checkAssignee(ctx, companyID, *req.AssignedTo); err != nil {
			return lead.LeadResponse{}, err
		}
	}

	if err := s.leadRepo.UpdateAssignee(ctx, companyID, id, req.AssignedTo); err != nil {
		return lead.LeadResponse{}, err
	}

	updated, err := s.Get(ctx, companyID, id)
	if err != nil {
		return lead.LeadResponse{}, err
	}

	if req.AssignedTo != nil {
		l, err := s.leadRepo.GetByID(ctx, companyID, id)
		if err == nil {
			s.notifyAssignee(ctx, l)
		}
	}
	return updated, nil
}

// Delete implements lead.LeadService.
func (s *LeadServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	return s.leadRepo.Delete(ctx, companyID, id)
}

// checkAssignee rejects user ids that are not employees of the company.
func (s *LeadServiceImpl) checkAssignee(ctx context.Context, companyID, userID string) error {
	e, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return lead.ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to get assignee: %w", err)
	}
	if e.CompanyID != companyID {
		return lead.ErrAssigneeNotFound
	}
	return nil
}

// notifyAssignee mails the new assignee. Failures are logged only.
func (s *LeadServiceImpl) notifyAssignee(ctx context.Context, l lead.Lead) {
	if l.AssignedTo == nil {
		return
	}

	assignee, err := s.userRepo.GetByID(ctx, *l.AssignedTo)
	if err != nil {
		slog.Warn("Failed to load assignee for lead mail", "lead_id", l.ID, "error", err)
		return
	}

	contactName := ""
	if c, err := s.contactService.Get(ctx, l.CompanyID, l.ContactID); err == nil {
		contactName = c.Name
	}

	if err := s.emailService.SendLeadAssigned(assignee.Email, assignee.Name, l.Title, contactName); err != nil {
		slog.Warn("Failed to send lead assignment mail", "lead_id", l.ID, "error", err)
	}
}
