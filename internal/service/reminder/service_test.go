package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexocrm/crm-backend-go/internal/domain/reminder"
)

const testUserID = "22222222-2222-2222-2222-222222222222"

type fakeReminderRepo struct {
	reminders []reminder.Reminder
}

func (f *fakeReminderRepo) GetByID(ctx context.Context, userID, id string) (reminder.Reminder, error) {
	for _, r := range f.reminders {
		if r.UserID == userID && r.ID == id {
			return r, nil
		}
	}
	return reminder.Reminder{}, pgx.ErrNoRows
}

func (f *fakeReminderRepo) Create(ctx context.Context, newReminder reminder.Reminder) (reminder.Reminder, error) {
	f.reminders = append(f.reminders, newReminder)
	return newReminder, nil
}

func (f *fakeReminderRepo) ListByUserID(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	out := make([]reminder.Reminder, 0)
	for _, r := range f.reminders {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) ListByUserAndType(ctx context.Context, userID string, t reminder.Type) ([]reminder.Reminder, error) {
	out := make([]reminder.Reminder, 0)
	for _, r := range f.reminders {
		if r.UserID == userID && r.Type == t {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) Update(ctx context.Context, userID, id string, req reminder.UpdateReminderRequest) error {
	for i, r := range f.reminders {
		if r.UserID == userID && r.ID == id {
			if req.Message != nil {
				f.reminders[i].Message = *req.Message
			}
			if req.DateTime != nil {
				f.reminders[i].DateTime = req.DateTime
			}
			if req.Days != nil {
				f.reminders[i].Days = req.Days
			}
			return nil
		}
	}
	return reminder.ErrReminderNotFound
}

func (f *fakeReminderRepo) Delete(ctx context.Context, userID, id string) error {
	for i, r := range f.reminders {
		if r.UserID == userID && r.ID == id {
			f.reminders = append(f.reminders[:i], f.reminders[i+1:]...)
			return nil
		}
	}
	return reminder.ErrReminderNotFound
}

func TestCreate_ValidatesShapePerType(t *testing.T) {
	t.Parallel()
	svc := NewReminderService(&fakeReminderRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, testUserID, reminder.CreateReminderRequest{
		Type:    "monthly",
		Message: "pay rent",
	})
	assert.Error(t, err, "monthly without date_time must fail")

	_, err = svc.Create(ctx, testUserID, reminder.CreateReminderRequest{
		Type:    "weekly",
		Message: "standup",
	})
	assert.Error(t, err, "weekly without days must fail")

	_, err = svc.Create(ctx, testUserID, reminder.CreateReminderRequest{
		Type:    "daily",
		Message: "drink water",
	})
	assert.NoError(t, err)
}

func TestCalendar_TruncatesTheRange(t *testing.T) {
	t.Parallel()
	repo := &fakeReminderRepo{}
	svc := NewReminderService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, testUserID, reminder.CreateReminderRequest{
		Type:    "daily",
		Message: "drink water",
	})
	require.NoError(t, err)

	// Mid-morning bounds: truncation pulls the start back to midnight,
	// so the 09:00 firing of the first day is still inside the range.
	start := time.Date(2024, time.March, 1, 10, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 2, 11, 0, 0, 0, time.UTC)

	occs, err := svc.Calendar(ctx, testUserID, start, end)
	require.NoError(t, err)
	require.Len(t, occs, 2)
	assert.Equal(t, 9, occs[0].DateTime.Hour())
	assert.Equal(t, 1, occs[0].DateTime.Day())
	assert.Equal(t, 2, occs[1].DateTime.Day())
}

func TestCalendar_InvalidRange(t *testing.T) {
	t.Parallel()
	svc := NewReminderService(&fakeReminderRepo{})

	start := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Calendar(context.Background(), testUserID, start, end)
	assert.ErrorIs(t, err, reminder.ErrInvalidRange)
}

func TestCalendar_MergesTypesSorted(t *testing.T) {
	t.Parallel()
	repo := &fakeReminderRepo{}
	svc := NewReminderService(repo)
	ctx := context.Background()

	onceAt := time.Date(2024, time.March, 1, 7, 0, 0, 0, time.UTC)
	_, err := svc.Create(ctx, testUserID, reminder.CreateReminderRequest{
		Type: "once", DateTime: &onceAt, Message: "early call",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, testUserID, reminder.CreateReminderRequest{
		Type: "daily", Message: "drink water",
	})
	require.NoError(t, err)

	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	occs, err := svc.Calendar(ctx, testUserID, day, day)
	require.NoError(t, err)
	require.Len(t, occs, 2)
	assert.Equal(t, "early call", occs[0].Message)
	assert.False(t, occs[0].Generated)
	assert.Equal(t, "drink water", occs[1].Message)
	assert.True(t, occs[1].Generated)
}

func TestUpcoming_FiltersPastOccurrences(t *testing.T) {
	t.Parallel()
	repo := &fakeReminderRepo{}
	svc := NewReminderService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, testUserID, reminder.CreateReminderRequest{
		Type: "daily", Message: "drink water",
	})
	require.NoError(t, err)

	before := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	occs, err := svc.Upcoming(ctx, testUserID, before)
	require.NoError(t, err)
	assert.Len(t, occs, 1, "09:00 is still ahead at 08:00")

	after := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	occs, err = svc.Upcoming(ctx, testUserID, after)
	require.NoError(t, err)
	assert.Empty(t, occs, "09:00 already fired by 10:00")
}
