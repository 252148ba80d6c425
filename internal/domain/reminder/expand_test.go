package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func rangeOver(from, to time.Time) (time.Time, time.Time) {
	return TruncateRange(from, to)
}

func TestExpand_DailyRangeInclusive(t *testing.T) {
	t.Parallel()

	start, end := rangeOver(day(2024, time.March, 1), day(2024, time.March, 3))
	standup := Reminder{ID: "r1", Type: TypeDaily, Message: "Standup"}

	got, err := Expand(start, end, []Reminder{standup})
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i, wantDay := range []int{1, 2, 3} {
		assert.Equal(t, at(2024, time.March, wantDay, 9, 0, 0), got[i].DateTime)
		assert.True(t, got[i].Generated)
		assert.Equal(t, "Standup", got[i].Message)
		assert.Equal(t, "r1", got[i].TemplateID)
	}
}

func TestExpand_WeeklySelectsMemberDays(t *testing.T) {
	t.Parallel()

	// 2024-03-04 is a Monday, 2024-03-10 a Sunday.
	start, end := rangeOver(day(2024, time.March, 4), day(2024, time.March, 10))
	weekly := Reminder{ID: "r2", Type: TypeWeekly, Days: []int{1, 3}, Message: "Sync"}

	got, err := Expand(start, end, []Reminder{weekly})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, at(2024, time.March, 4, 9, 0, 0), got[0].DateTime) // Monday
	assert.Equal(t, at(2024, time.March, 6, 9, 0, 0), got[1].DateTime) // Wednesday
	assert.True(t, got[0].Generated)
	assert.True(t, got[1].Generated)
}

func TestExpand_OnceBoundaryInclusion(t *testing.T) {
	t.Parallel()

	start, end := rangeOver(day(2024, time.March, 1), day(2024, time.March, 5))

	inside := at(2024, time.March, 5, 23, 59, 59)
	outside := at(2024, time.March, 6, 0, 0, 0)

	got, err := Expand(start, end, []Reminder{
		{ID: "in", Type: TypeOnce, DateTime: &inside, Message: "call"},
		{ID: "out", Type: TypeOnce, DateTime: &outside, Message: "call"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "in", got[0].TemplateID)
	assert.Equal(t, inside, got[0].DateTime)
	assert.False(t, got[0].Generated, "verbatim once reminders are not generated")
}

func TestExpand_MonthlyAnchorDay(t *testing.T) {
	t.Parallel()

	anchor := at(2024, time.January, 15, 14, 30, 0)
	monthly := Reminder{ID: "r3", Type: TypeMonthly, DateTime: &anchor, Message: "Invoices"}

	start, end := rangeOver(day(2024, time.March, 1), day(2024, time.April, 30))
	got, err := Expand(start, end, []Reminder{monthly})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, at(2024, time.March, 15, 9, 0, 0), got[0].DateTime)
	assert.Equal(t, at(2024, time.April, 15, 9, 0, 0), got[1].DateTime)
}

func TestExpand_MonthlyDay31SkipsShortMonths(t *testing.T) {
	t.Parallel()

	anchor := at(2024, time.January, 31, 10, 0, 0)
	monthly := Reminder{ID: "r4", Type: TypeMonthly, DateTime: &anchor, Message: "EOM"}

	// April has 30 days: nothing fires. No last-day fallback.
	start, end := rangeOver(day(2024, time.April, 1), day(2024, time.April, 30))
	got, err := Expand(start, end, []Reminder{monthly})
	require.NoError(t, err)
	assert.Empty(t, got)

	// May has the 31st.
	start, end = rangeOver(day(2024, time.May, 1), day(2024, time.May, 31))
	got, err = Expand(start, end, []Reminder{monthly})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, at(2024, time.May, 31, 9, 0, 0), got[0].DateTime)
}

func TestExpand_YearlyMatchesDayAndMonth(t *testing.T) {
	t.Parallel()

	anchor := at(2020, time.March, 5, 8, 0, 0)
	yearly := Reminder{ID: "r5", Type: TypeYearly, DateTime: &anchor, Message: "Anniversary"}

	start, end := rangeOver(day(2024, time.January, 1), day(2024, time.December, 31))
	got, err := Expand(start, end, []Reminder{yearly})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, at(2024, time.March, 5, 9, 0, 0), got[0].DateTime)

	// April 5 is the wrong month, March 6 the wrong day.
	start, end = rangeOver(day(2024, time.April, 1), day(2024, time.April, 30))
	got, err = Expand(start, end, []Reminder{yearly})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_MergedAndSortedAscending(t *testing.T) {
	t.Parallel()

	onceAt := at(2024, time.March, 2, 7, 30, 0)
	templates := []Reminder{
		{ID: "daily", Type: TypeDaily, Message: "standup"},
		{ID: "once", Type: TypeOnce, DateTime: &onceAt, Message: "dentist"},
	}

	start, end := rangeOver(day(2024, time.March, 1), day(2024, time.March, 3))
	got, err := Expand(start, end, templates)
	require.NoError(t, err)
	require.Len(t, got, 4)

	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].DateTime.Before(got[i-1].DateTime), "occurrences must be sorted ascending")
	}
	// The 07:30 once lands between day 1 and day 2 standups.
	assert.Equal(t, "once", got[1].TemplateID)
}

func TestExpand_Deterministic(t *testing.T) {
	t.Parallel()

	onceAt := at(2024, time.March, 3, 12, 0, 0)
	anchor := at(2024, time.January, 2, 0, 0, 0)
	templates := []Reminder{
		{ID: "a", Type: TypeDaily, Message: "a"},
		{ID: "b", Type: TypeWeekly, Days: []int{0, 2, 4}, Message: "b"},
		{ID: "c", Type: TypeOnce, DateTime: &onceAt, Message: "c"},
		{ID: "d", Type: TypeMonthly, DateTime: &anchor, Message: "d"},
	}

	start, end := rangeOver(day(2024, time.March, 1), day(2024, time.March, 14))
	first, err := Expand(start, end, templates)
	require.NoError(t, err)
	second, err := Expand(start, end, templates)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpand_InvalidRange(t *testing.T) {
	t.Parallel()

	start, end := day(2024, time.March, 10), day(2024, time.March, 1)
	_, err := Expand(start, end, nil)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExpand_SingleDayRange(t *testing.T) {
	t.Parallel()

	start, end := rangeOver(day(2024, time.March, 1), day(2024, time.March, 1))
	got, err := Expand(start, end, []Reminder{{ID: "r", Type: TypeDaily, Message: "m"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, at(2024, time.March, 1, 9, 0, 0), got[0].DateTime)
}

func TestTruncateRange(t *testing.T) {
	t.Parallel()

	s, e := TruncateRange(at(2024, time.March, 1, 13, 45, 12), at(2024, time.March, 5, 6, 0, 0))
	assert.Equal(t, at(2024, time.March, 1, 0, 0, 0), s)
	assert.Equal(t, time.Date(2024, time.March, 5, 23, 59, 59, 999000000, time.UTC), e)
}

func TestUpcomingFrom(t *testing.T) {
	t.Parallel()

	occs := []Occurrence{
		{TemplateID: "a", DateTime: at(2024, time.March, 1, 9, 0, 0)},
		{TemplateID: "b", DateTime: at(2024, time.March, 1, 12, 0, 0)},
		{TemplateID: "c", DateTime: at(2024, time.March, 1, 18, 0, 0)},
	}

	got := UpcomingFrom(occs, at(2024, time.March, 1, 12, 0, 0))
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].TemplateID, "boundary occurrence at now is still upcoming")
	assert.Equal(t, "c", got[1].TemplateID)
}
