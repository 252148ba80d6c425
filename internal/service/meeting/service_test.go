package meeting

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/meeting"
)

const testCompanyID = "company-1"

type fakeMeetingRepo struct {
	meetings map[string]meeting.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[string]meeting.Meeting)}
}

func (f *fakeMeetingRepo) GetByID(_ context.Context, companyID, id string) (meeting.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok || m.CompanyID != companyID {
		return meeting.Meeting{}, pgx.ErrNoRows
	}
	return m, nil
}

func (f *fakeMeetingRepo) Create(_ context.Context, newMeeting meeting.Meeting) (meeting.Meeting, error) {
	newMeeting.CreatedAt = time.Now()
	newMeeting.UpdatedAt = newMeeting.CreatedAt
	f.meetings[newMeeting.ID] = newMeeting
	return newMeeting, nil
}

func (f *fakeMeetingRepo) ListByRange(_ context.Context, companyID string, from, to time.Time) ([]meeting.Meeting, error) {
	var out []meeting.Meeting
	for _, m := range f.meetings {
		if m.CompanyID == companyID && !m.StartsAt.Before(from) && !m.StartsAt.After(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) Update(_ context.Context, companyID, id string, req meeting.UpdateMeetingRequest) error {
	m, ok := f.meetings[id]
	if !ok || m.CompanyID != companyID {
		return meeting.ErrMeetingNotFound
	}
	if req.Title != nil {
		m.Title = *req.Title
	}
	f.meetings[id] = m
	return nil
}

func (f *fakeMeetingRepo) Delete(_ context.Context, companyID, id string) error {
	m, ok := f.meetings[id]
	if !ok || m.CompanyID != companyID {
		return meeting.ErrMeetingNotFound
	}
	delete(f.meetings, id)
	return nil
}

func (f *fakeMeetingRepo) AddEmployee(_ context.Context, meetingID, employeeID string) error {
	m := f.meetings[meetingID]
	if slices.Contains(m.EmployeeIDs, employeeID) {
		return meeting.ErrParticipantDuplicated
	}
	m.EmployeeIDs = append(m.EmployeeIDs, employeeID)
	f.meetings[meetingID] = m
	return nil
}

func (f *fakeMeetingRepo) AddContact(_ context.Context, meetingID, contactID string) error {
	m := f.meetings[meetingID]
	if slices.Contains(m.ContactIDs, contactID) {
		return meeting.ErrParticipantDuplicated
	}
	m.ContactIDs = append(m.ContactIDs, contactID)
	f.meetings[meetingID] = m
	return nil
}

func (f *fakeMeetingRepo) RemoveEmployee(_ context.Context, meetingID, employeeID string) error {
	m := f.meetings[meetingID]
	i := slices.Index(m.EmployeeIDs, employeeID)
	if i < 0 {
		return meeting.ErrParticipantNotFound
	}
	m.EmployeeIDs = slices.Delete(m.EmployeeIDs, i, i+1)
	f.meetings[meetingID] = m
	return nil
}

func (f *fakeMeetingRepo) RemoveContact(_ context.Context, meetingID, contactID string) error {
	m := f.meetings[meetingID]
	i := slices.Index(m.ContactIDs, contactID)
	if i < 0 {
		return meeting.ErrParticipantNotFound
	}
	m.ContactIDs = slices.Delete(m.ContactIDs, i, i+1)
	f.meetings[meetingID] = m
	return nil
}

func (f *fakeMeetingRepo) CountTodayByCompany(_ context.Context, companyID string, dayStart, dayEnd time.Time) (int64, error) {
	var n int64
	for _, m := range f.meetings {
		if m.CompanyID == companyID && !m.StartsAt.Before(dayStart) && !m.StartsAt.After(dayEnd) {
			n++
		}
	}
	return n, nil
}

// fakeContactService resolves by email, assigning ids in arrival order.
type fakeContactService struct {
	contact.ContactService
	byEmail map[string]string
}

func newFakeContactService() *fakeContactService {
	return &fakeContactService{byEmail: make(map[string]string)}
}

func (f *fakeContactService) Resolve(_ context.Context, _ string, details contact.ContactDetails) (string, error) {
	if id, ok := f.byEmail[details.Email]; ok {
		return id, nil
	}
	id := fmt.Sprintf("contact-%d", len(f.byEmail)+1)
	f.byEmail[details.Email] = id
	return id, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func newService(t *testing.T) (meeting.MeetingService, *fakeMeetingRepo) {
	t.Helper()
	repo := newFakeMeetingRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", CompanyID: testCompanyID},
		"emp-2": {ID: "emp-2", CompanyID: testCompanyID},
		"emp-x": {ID: "emp-x", CompanyID: "company-other"},
	}}
	return NewMeetingService(repo, newFakeContactService(), employees), repo
}

func validCreateRequest() meeting.CreateMeetingRequest {
	starts := time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
	return meeting.CreateMeetingRequest{
		Title:    "Quarterly review",
		StartsAt: starts,
		EndsAt:   starts.Add(time.Hour),
	}
}

func TestCreate_ResolvesClientsToContacts(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.EmployeeIDs = []string{"emp-1"}
	req.Clients = []contact.ContactDetails{
		{Name: "Ana", Email: "ana@client.test"},
		{Name: "Ana again", Email: "ana@client.test"},
	}

	created, err := svc.Create(ctx, testCompanyID, "user-1", req)
	require.NoError(t, err)

	assert.Equal(t, []string{"emp-1"}, created.EmployeeIDs)
	// Both client entries carry the same email, so they resolve to the
	// same contact id.
	require.Len(t, created.ContactIDs, 2)
	assert.Equal(t, created.ContactIDs[0], created.ContactIDs[1])
}

func TestCreate_RejectsForeignEmployee(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	req := validCreateRequest()
	req.EmployeeIDs = []string{"emp-x"}

	_, err := svc.Create(context.Background(), testCompanyID, "user-1", req)
	assert.ErrorIs(t, err, meeting.ErrParticipantNotFound)
}

func TestAddParticipant_DuplicateEmployeeRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompanyID, "user-1", validCreateRequest())
	require.NoError(t, err)

	empID := "emp-2"
	req := meeting.AddParticipantRequest{EmployeeID: &empID}
	_, err = svc.AddParticipant(ctx, testCompanyID, created.ID, req)
	require.NoError(t, err)

	_, err = svc.AddParticipant(ctx, testCompanyID, created.ID, req)
	assert.ErrorIs(t, err, meeting.ErrParticipantDuplicated)
}

func TestRemoveEmployee_NotOnRoster(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompanyID, "user-1", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.RemoveEmployee(ctx, testCompanyID, created.ID, "emp-1")
	assert.ErrorIs(t, err, meeting.ErrParticipantNotFound)
}

func TestGet_ScopedToCompany(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testCompanyID, "user-1", validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Get(ctx, "company-other", created.ID)
	assert.ErrorIs(t, err, meeting.ErrMeetingNotFound)
}
