package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/meeting"
)

type MeetingServiceImpl struct {
	meetingRepo    meeting.MeetingRepository
	contactService contact.ContactService
	employeeRepo   employee.EmployeeRepository
}

func NewMeetingService(
	meetingRepo meeting.MeetingRepository,
	contactService contact.ContactService,
	employeeRepo employee.EmployeeRepository,
) meeting.MeetingService {
	return &MeetingServiceImpl{
		meetingRepo:    meetingRepo,
		contactService: contactService,
		employeeRepo:   employeeRepo,
	}
}

// Create implements meeting.MeetingService.
func (s *MeetingServiceImpl) Create(ctx context.Context, companyID, createdBy string, req meeting.CreateMeetingRequest) (meeting.MeetingResponse, error) {
	if err := req.Validate(); err != nil {
		return meeting.MeetingResponse{}, err
	}

	for _, employeeID := range req.EmployeeIDs {
		if err := s.checkEmployee(ctx, companyID, employeeID); err != nil {
			return meeting.MeetingResponse{}, err
		}
	}

	contactIDs := make([]string, 0, len(req.Clients))
	for _, client := range req.Clients {
		contactID, err := s.contactService.Resolve(ctx, companyID, client)
		if err != nil {
			return meeting.MeetingResponse{}, err
		}
		contactIDs = append(contactIDs, contactID)
	}

	created, err := s.meetingRepo.Create(ctx, meeting.Meeting{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		Title:       req.Title,
		Agenda:      req.Agenda,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedBy:   createdBy,
		EmployeeIDs: req.EmployeeIDs,
		ContactIDs:  contactIDs,
	})
	if err != nil {
		return meeting.MeetingResponse{}, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting.ToResponse(created), nil
}

// ListByRange implements meeting.MeetingService.
func (s *MeetingServiceImpl) ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]meeting.MeetingResponse, error) {
	meetings, err := s.meetingRepo.ListByRange(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	responses := make([]meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, meeting.ToResponse(m))
	}
	return responses, nil
}

// Get implements meeting.MeetingService.
func (s *MeetingServiceImpl) Get(ctx context.Context, companyID, id string) (meeting.MeetingResponse, error) {
	m, err := s.meetingRepo.GetByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.MeetingResponse{}, meeting.ErrMeetingNotFound
		}
		return meeting.MeetingResponse{}, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting.ToResponse(m), nil
}

// Update implements meeting.MeetingService.
func (s *MeetingServiceImpl) Update(ctx context.Context, companyID, id string, req meeting.UpdateMeetingRequest) (meeting.MeetingResponse, error) {
	if err := req.Validate(); err != nil {
		return meeting.MeetingResponse{}, err
	}

	if err := s.meetingRepo.Update(ctx, companyID, id, req); err != nil {
		return meeting.MeetingResponse{}, err
	}
	return s.Get(ctx, companyID, id)
}

// Delete implements meeting.MeetingService.
func (s *MeetingServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	return s.meetingRepo.Delete(ctx, companyID, id)
}

// AddParticipant implements meeting.MeetingService.
func (s *MeetingServiceImpl) AddParticipant(ctx context.Context, companyID, meetingID string, req meeting.AddParticipantRequest) (meeting.MeetingResponse, error) {
	if err := req.Validate(); err != nil {
		return meeting.MeetingResponse{}, err
	}

	if _, err := s.Get(ctx, companyID, meetingID); err != nil {
		return meeting.MeetingResponse{}, err
	}

	if req.EmployeeID != nil {
		if err := s.checkEmployee(ctx, companyID, *req.EmployeeID); err != nil {
			return meeting.MeetingResponse{}, err
		}
		if err := s.meetingRepo.AddEmployee(ctx, meetingID, *req.EmployeeID); err != nil {
			return meeting.MeetingResponse{}, err
		}
	} else {
		contactID, err := s.contactService.Resolve(ctx, companyID, *req.Client)
		if err != nil {
			return meeting.MeetingResponse{}, err
		}
		if err := s.meetingRepo.AddContact(ctx, meetingID, contactID); err != nil {
			return meeting.MeetingResponse{}, err
		}
	}
	return s.Get(ctx, companyID, meetingID)
}

// RemoveEmployee implements meeting.MeetingService.
func (s *MeetingServiceImpl) RemoveEmployee(ctx context.Context, companyID, meetingID, employeeID string) (meeting.MeetingResponse, error) {
	if _, err := s.Get(ctx, companyID, meetingID); err != nil {
		return meeting.MeetingResponse{}, err
	}

	if err := s.meetingRepo.RemoveEmployee(ctx, meetingID, employeeID); err != nil {
		return meeting.MeetingResponse{}, err
	}
	return s.Get(ctx, companyID, meetingID)
}

// RemoveContact implements meeting.MeetingService.
func (s *MeetingServiceImpl) RemoveContact(ctx context.Context, companyID, meetingID, contactID string) (meeting.MeetingResponse, error) {
	if _, err := s.Get(ctx, companyID, meetingID); err != nil {
		return meeting.MeetingResponse{}, err
	}

	if err := s.meetingRepo.RemoveContact(ctx, meetingID, contactID); err != nil {
		return meeting.MeetingResponse{}, err
	}
	return s.Get(ctx, companyID, meetingID)
}

// checkEmployee rejects employee ids from other tenants.
func (s *MeetingServiceImpl) checkEmployee(ctx context.Context, companyID, employeeID string) error {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return meeting.ErrParticipantNotFound
		}
		return fmt.Errorf("failed to get participant: %w", err)
	}
	if e.CompanyID != companyID {
		return meeting.ErrParticipantNotFound
	}
	return nil
}
