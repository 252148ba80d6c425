package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/company"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/pkg/email"
)

type CompanyServiceImpl struct {
	companyRepo  company.CompanyRepository
	userRepo     user.UserRepository
	emailService email.EmailService
	loginLink    string
}

func NewCompanyService(
	companyRepo company.CompanyRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	loginLink string,
) company.CompanyService {
	return &CompanyServiceImpl{
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		emailService: emailService,
		loginLink:    loginLink,
	}
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, filter company.ListFilter) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToResponse(c))
	}
	return responses, nil
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, id string) (company.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company: %w", err)
	}
	return company.ToResponse(c), nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.companyRepo.Update(ctx, id, req); err != nil {
		return company.CompanyResponse{}, err
	}
	return s.Get(ctx, id)
}

// SetVerify implements company.CompanyService.
func (s *CompanyServiceImpl) SetVerify(ctx context.Context, id string, req company.SetVerifyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	state := company.VerifyState(req.State)
	if err := s.companyRepo.UpdateVerify(ctx, id, state); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	s.notifyOwner(ctx, updated, state)
	return updated, nil
}

// notifyOwner mails the verification outcome to the company owner. A
// mail failure is logged and swallowed.
func (s *CompanyServiceImpl) notifyOwner(ctx context.Context, c company.CompanyResponse, state company.VerifyState) {
	owner, err := s.userRepo.GetByID(ctx, c.OwnerID)
	if err != nil {
		slog.Warn("Failed to load company owner for verification mail", "company_id", c.ID, "error", err)
		return
	}

	switch state {
	case company.VerifyVerified:
		err = s.emailService.SendCompanyVerified(owner.Email, c.Name, s.loginLink)
	case company.VerifyRejected:
		err = s.emailService.SendCompanyRejected(owner.Email, c.Name)
	default:
		return
	}
	if err != nil {
		slog.Warn("Failed to send company verification mail", "company_id", c.ID, "state", state, "error", err)
	}
}

// SetActive implements company.CompanyService.
func (s *CompanyServiceImpl) SetActive(ctx context.Context, id string, isActive bool) (company.CompanyResponse, error) {
	if err := s.companyRepo.UpdateActive(ctx, id, isActive); err != nil {
		return company.CompanyResponse{}, err
	}
	return s.Get(ctx, id)
}
