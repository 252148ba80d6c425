package lead

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/lead"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
)

const (
	testCompanyID = "11111111-1111-1111-1111-111111111111"
	testUserID    = "22222222-2222-2222-2222-222222222222"
)

type fakeLeadRepo struct {
	lead.LeadRepository
	leads     map[string]lead.Lead
	followUps map[string][]lead.FollowUp
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{
		leads:     make(map[string]lead.Lead),
		followUps: make(map[string][]lead.FollowUp),
	}
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, companyID, id string) (lead.Lead, error) {
	l, ok := f.leads[id]
	if !ok || l.CompanyID != companyID {
		return lead.Lead{}, pgx.ErrNoRows
	}
	return l, nil
}

func (f *fakeLeadRepo) Create(ctx context.Context, newLead lead.Lead) (lead.Lead, error) {
	newLead.CreatedAt = time.Now()
	f.leads[newLead.ID] = newLead
	return newLead, nil
}

func (f *fakeLeadRepo) UpdateStatus(ctx context.Context, companyID, id string, status lead.Status) error {
	l, ok := f.leads[id]
	if !ok || l.CompanyID != companyID {
		return lead.ErrLeadNotFound
	}
	l.Status = status
	f.leads[id] = l
	return nil
}

func (f *fakeLeadRepo) UpdateAssignee(ctx context.Context, companyID, id string, assignedTo *string) error {
	l, ok := f.leads[id]
	if !ok || l.CompanyID != companyID {
		return lead.ErrLeadNotFound
	}
	l.AssignedTo = assignedTo
	f.leads[id] = l
	return nil
}

func (f *fakeLeadRepo) CountFollowUps(ctx context.Context, leadID string) (int, error) {
	return len(f.followUps[leadID]), nil
}

func (f *fakeLeadRepo) AppendFollowUp(ctx context.Context, fu lead.FollowUp) (lead.FollowUp, error) {
	fu.CreatedAt = time.Now()
	f.followUps[fu.LeadID] = append(f.followUps[fu.LeadID], fu)
	return fu, nil
}

func (f *fakeLeadRepo) ListFollowUps(ctx context.Context, leadID string) ([]lead.FollowUp, error) {
	return f.followUps[leadID], nil
}

// fakeContactService hands out one id per distinct email.
type fakeContactService struct {
	contact.ContactService
	resolved map[string]string
	nextID   int
}

func (f *fakeContactService) Resolve(ctx context.Context, companyID string, details contact.ContactDetails) (string, error) {
	if err := details.Validate(); err != nil {
		return "", err
	}
	if f.resolved == nil {
		f.resolved = make(map[string]string)
	}
	key := companyID + "/" + details.Email + "/" + details.Phone
	if id, ok := f.resolved[key]; ok {
		return id, nil
	}
	f.nextID++
	id := string(rune('a' + f.nextID))
	f.resolved[key] = id
	return id, nil
}

func (f *fakeContactService) Get(ctx context.Context, companyID, id string) (contact.ContactResponse, error) {
	return contact.ContactResponse{ID: id, Name: "Some Contact"}, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	byUserID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	e, ok := f.byUserID[userID]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

type fakeEmailService struct {
	leadMails int
}

func (f *fakeEmailService) SendCompanyVerified(to, companyName, loginLink string) error { return nil }
func (f *fakeEmailService) SendCompanyRejected(to, companyName string) error           { return nil }
func (f *fakeEmailService) SendEmployeeVerified(to, employeeName, companyName, roleName, loginLink string) error {
	return nil
}
func (f *fakeEmailService) SendLeadAssigned(to, assigneeName, leadTitle, contactName string) error {
	f.leadMails++
	return nil
}
func (f *fakeEmailService) SendTaskDue(to, assigneeName, taskTitle string, dueAt *time.Time) error {
	return nil
}

func newTestService() (*fakeLeadRepo, *fakeEmailService, lead.LeadService) {
	leadRepo := newFakeLeadRepo()
	mails := &fakeEmailService{}
	svc := NewLeadService(
		leadRepo,
		&fakeContactService{},
		&fakeEmployeeRepo{byUserID: map[string]employee.Employee{
			testUserID: {ID: "emp-1", UserID: testUserID, CompanyID: testCompanyID},
		}},
		&fakeUserRepo{users: map[string]user.User{
			testUserID: {ID: testUserID, Email: "emp@example.com", Name: "Emp"},
		}},
		mails,
	)
	return leadRepo, mails, svc
}

func createTestLead(t *testing.T, svc lead.LeadService) lead.LeadResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), testCompanyID, testUserID, lead.CreateLeadRequest{
		Title:   "Big deal",
		Contact: contact.ContactDetails{Name: "Ada", Email: "ada@example.com"},
	})
	require.NoError(t, err)
	return created
}

func TestCreate_ResolvesContactAndStartsNew(t *testing.T) {
	t.Parallel()
	_, _, svc := newTestService()

	created := createTestLead(t, svc)
	assert.Equal(t, lead.StatusNew, created.Status)
	assert.NotEmpty(t, created.ContactID)
}

func TestCreate_SameContactDetailsShareContact(t *testing.T) {
	t.Parallel()
	_, _, svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, testCompanyID, testUserID, lead.CreateLeadRequest{
		Title:   "First",
		Contact: contact.ContactDetails{Name: "Ada", Email: "ada@example.com"},
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, testCompanyID, testUserID, lead.CreateLeadRequest{
		Title:   "Second",
		Contact: contact.ContactDetails{Name: "Ada", Email: "ada@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, first.ContactID, second.ContactID)
}

func TestSetStatus_MembershipOnly(t *testing.T) {
	t.Parallel()
	_, _, svc := newTestService()
	ctx := context.Background()
	created := createTestLead(t, svc)

	// closed straight back to new is legal; ordering is not validated.
	updated, err := svc.SetStatus(ctx, testCompanyID, created.ID, lead.SetStatusRequest{Status: "closed"})
	require.NoError(t, err)
	assert.Equal(t, lead.StatusClosed, updated.Status)

	updated, err = svc.SetStatus(ctx, testCompanyID, created.ID, lead.SetStatusRequest{Status: "new"})
	require.NoError(t, err)
	assert.Equal(t, lead.StatusNew, updated.Status)

	_, err = svc.SetStatus(ctx, testCompanyID, created.ID, lead.SetStatusRequest{Status: "archived"})
	assert.Error(t, err)
}

func TestAddFollowUp_SequencesPerLead(t *testing.T) {
	t.Parallel()
	_, _, svc := newTestService()
	ctx := context.Background()
	first := createTestLead(t, svc)
	second, err := svc.Create(ctx, testCompanyID, testUserID, lead.CreateLeadRequest{
		Title:   "Other deal",
		Contact: contact.ContactDetails{Name: "Grace", Email: "grace@example.com"},
	})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		fu, err := svc.AddFollowUp(ctx, testCompanyID, first.ID, testUserID, lead.AddFollowUpRequest{Note: "ping"})
		require.NoError(t, err)
		assert.Equal(t, i, fu.Sequence)
	}

	// Sequences are per lead, not global.
	fu, err := svc.AddFollowUp(ctx, testCompanyID, second.ID, testUserID, lead.AddFollowUpRequest{Note: "ping"})
	require.NoError(t, err)
	assert.Equal(t, 1, fu.Sequence)
}

func TestAddFollowUp_UnknownLead(t *testing.T) {
	t.Parallel()
	_, _, svc := newTestService()

	_, err := svc.AddFollowUp(context.Background(), testCompanyID, "missing", testUserID, lead.AddFollowUpRequest{Note: "ping"})
	assert.ErrorIs(t, err, lead.ErrLeadNotFound)
}

func TestAssign_MailsAssignee(t *testing.T) {
	t.Parallel()
	_, mails, svc := newTestService()
	created := createTestLead(t, svc)

	assignee := testUserID
	updated, err := svc.Assign(context.Background(), testCompanyID, created.ID, lead.AssignLeadRequest{AssignedTo: &assignee})
	require.NoError(t, err)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, assignee, *updated.AssignedTo)
	assert.Equal(t, 1, mails.leadMails)
}

func TestAssign_UnknownAssigneeRejected(t *testing.T) {
	t.Parallel()
	_, _, svc := newTestService()
	created := createTestLead(t, svc)

	stranger := "99999999-9999-9999-9999-999999999999"
	_, err := svc.Assign(context.Background(), testCompanyID, created.ID, lead.AssignLeadRequest{AssignedTo: &stranger})
	assert.ErrorIs(t, err, lead.ErrAssigneeNotFound)
}
