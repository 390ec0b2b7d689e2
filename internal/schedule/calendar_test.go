package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equinoterapia/clinica-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeDateRangeDay(t *testing.T) {
	current := date(2025, time.April, 9)
	rng := ComputeDateRange(current, models.ViewDay)

	assert.Equal(t, current, rng.Start)
	assert.Equal(t, current, rng.End)
	assert.Equal(t, "Wednesday, 9 April 2025", rng.DisplayText)
}

func TestComputeDateRangeWeekRunsMondayToSunday(t *testing.T) {
	// 2025-04-09 is a Wednesday.
	rng := ComputeDateRange(date(2025, time.April, 9), models.ViewWeek)

	assert.Equal(t, date(2025, time.April, 7), rng.Start)
	assert.Equal(t, time.Monday, rng.Start.Weekday())
	assert.Equal(t, date(2025, time.April, 13), rng.End)
	assert.Equal(t, time.Sunday, rng.End.Weekday())
}

func TestComputeDateRangeWeekOnSunday(t *testing.T) {
	// A Sunday belongs to the week that started the previous Monday.
	rng := ComputeDateRange(date(2025, time.April, 13), models.ViewWeek)

	assert.Equal(t, date(2025, time.April, 7), rng.Start)
	assert.Equal(t, date(2025, time.April, 13), rng.End)
}

func TestComputeDateRangeMonth(t *testing.T) {
	rng := ComputeDateRange(date(2025, time.April, 9), models.ViewMonth)

	assert.Equal(t, date(2025, time.April, 1), rng.Start)
	assert.Equal(t, date(2025, time.April, 30), rng.End)
	assert.Equal(t, "April 2025", rng.DisplayText)
}

func TestGenerateCalendarDaysDayView(t *testing.T) {
	current := date(2025, time.April, 9)
	sessions := []models.Session{testSession(1, "2025-04-09", "10:00", 1, 1, 1)}
	rng := ComputeDateRange(current, models.ViewDay)

	days := GenerateCalendarDays(rng, models.ViewDay, current, sessions)
	require.Len(t, days, 1)
	assert.True(t, days[0].IsCurrentMonth)
	assert.Len(t, days[0].Sessions, 1)
}

func TestGenerateCalendarDaysWeekView(t *testing.T) {
	current := date(2025, time.April, 9)
	rng := ComputeDateRange(current, models.ViewWeek)

	days := GenerateCalendarDays(rng, models.ViewWeek, current, nil)
	require.Len(t, days, 7)
	assert.Equal(t, date(2025, time.April, 7), days[0].Date)
	assert.Equal(t, date(2025, time.April, 13), days[6].Date)
	for _, day := range days {
		assert.True(t, day.IsCurrentMonth)
		assert.NotNil(t, day.Sessions)
	}
}

func TestGenerateCalendarDaysMonthGrid(t *testing.T) {
	// April 2025 starts on a Tuesday: one leading March day, then 30 days,
	// then four trailing May days to round up to 35 cells.
	current := date(2025, time.April, 9)
	rng := ComputeDateRange(current, models.ViewMonth)

	days := GenerateCalendarDays(rng, models.ViewMonth, current, nil)
	require.Len(t, days, 35)
	assert.Zero(t, len(days)%7)

	assert.Equal(t, date(2025, time.March, 31), days[0].Date)
	assert.False(t, days[0].IsCurrentMonth)

	assert.Equal(t, date(2025, time.April, 1), days[1].Date)
	assert.True(t, days[1].IsCurrentMonth)

	assert.Equal(t, date(2025, time.April, 30), days[30].Date)
	assert.True(t, days[30].IsCurrentMonth)

	assert.Equal(t, date(2025, time.May, 4), days[34].Date)
	assert.False(t, days[34].IsCurrentMonth)
}

func TestGenerateCalendarDaysMonthStartingMonday(t *testing.T) {
	// September 2025 starts on a Monday: no leading padding, 30 days plus
	// five trailing October days.
	current := date(2025, time.September, 10)
	rng := ComputeDateRange(current, models.ViewMonth)

	days := GenerateCalendarDays(rng, models.ViewMonth, current, nil)
	require.Len(t, days, 35)
	assert.Equal(t, date(2025, time.September, 1), days[0].Date)
	assert.True(t, days[0].IsCurrentMonth)
	assert.Equal(t, date(2025, time.October, 5), days[34].Date)
	assert.False(t, days[34].IsCurrentMonth)
}

func TestGenerateCalendarDaysMonthBucketsSessions(t *testing.T) {
	current := date(2025, time.April, 9)
	sessions := []models.Session{
		testSession(1, "2025-04-09", "10:00", 1, 1, 1),
		testSession(2, "2025-04-09", "11:00", 2, 2, 2),
		testSession(3, "2025-05-01", "10:00", 3, 1, 3),
	}
	rng := ComputeDateRange(current, models.ViewMonth)

	days := GenerateCalendarDays(rng, models.ViewMonth, current, sessions)
	var ninth, mayFirst models.DayWithSessions
	for _, day := range days {
		switch models.DayOf(day.Date) {
		case "2025-04-09":
			ninth = day
		case "2025-05-01":
			mayFirst = day
		}
	}
	assert.Len(t, ninth.Sessions, 2)
	// Trailing padding cells still carry their sessions.
	assert.Len(t, mayFirst.Sessions, 1)
	assert.False(t, mayFirst.IsCurrentMonth)
}

func TestNavigate(t *testing.T) {
	current := date(2025, time.April, 9)

	assert.Equal(t, date(2025, time.April, 8), Navigate(current, models.ViewDay, DirectionPrev))
	assert.Equal(t, date(2025, time.April, 10), Navigate(current, models.ViewDay, DirectionNext))
	assert.Equal(t, date(2025, time.April, 2), Navigate(current, models.ViewWeek, DirectionPrev))
	assert.Equal(t, date(2025, time.April, 16), Navigate(current, models.ViewWeek, DirectionNext))
	assert.Equal(t, date(2025, time.March, 9), Navigate(current, models.ViewMonth, DirectionPrev))
	assert.Equal(t, date(2025, time.May, 9), Navigate(current, models.ViewMonth, DirectionNext))
}

func TestResolveDayClickDrillsDownFromMonth(t *testing.T) {
	clicked := date(2025, time.April, 22)

	newDate, newView := ResolveDayClick(models.ViewMonth, clicked)
	assert.Equal(t, clicked, newDate)
	assert.Equal(t, models.ViewDay, newView)

	newDate, newView = ResolveDayClick(models.ViewWeek, clicked)
	assert.Equal(t, clicked, newDate)
	assert.Equal(t, models.ViewWeek, newView)
}

func TestParseDirection(t *testing.T) {
	dir, err := ParseDirection("prev")
	require.NoError(t, err)
	assert.Equal(t, DirectionPrev, dir)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
