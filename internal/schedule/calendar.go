package schedule

import (
	"fmt"
	"time"

	"github.com/equinoterapia/clinica-api/internal/models"
)

// Direction moves a calendar view backwards or forwards by one period.
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// ParseDirection validates a raw navigation value.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case DirectionPrev, DirectionNext:
		return Direction(raw), nil
	default:
		return "", fmt.Errorf("unknown navigation direction %q", raw)
	}
}

// ComputeDateRange resolves the inclusive period a view covers around the
// current date. Weeks run Monday to Sunday.
func ComputeDateRange(current time.Time, view models.ViewType) models.DateRange {
	switch view {
	case models.ViewWeek:
		start := startOfWeek(current)
		end := start.AddDate(0, 0, 6)
		return models.DateRange{
			Start:       start,
			End:         end,
			DisplayText: start.Format("2 January") + " – " + end.Format("2 January 2006"),
		}
	case models.ViewMonth:
		start := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location())
		end := start.AddDate(0, 1, -1)
		return models.DateRange{
			Start:       start,
			End:         end,
			DisplayText: current.Format("January 2006"),
		}
	default:
		return models.DateRange{
			Start:       current,
			End:         current,
			DisplayText: current.Format("Monday, 2 January 2006"),
		}
	}
}

// GenerateCalendarDays projects the session list onto the cells of a view.
//
// Day view yields exactly one cell. Week view yields the seven days of the
// range. Month view pads the month with leading previous-month days (ISO
// weekday of the month start minus one) and trailing next-month days up to
// a multiple of seven, flagging the padding as outside the current month.
func GenerateCalendarDays(rng models.DateRange, view models.ViewType, current time.Time, sessions []models.Session) []models.DayWithSessions {
	switch view {
	case models.ViewDay:
		return []models.DayWithSessions{cell(current, sessions, true)}
	case models.ViewWeek:
		days := make([]models.DayWithSessions, 0, 7)
		for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
			days = append(days, cell(d, sessions, true))
		}
		return days
	default:
		monthStart := rng.Start
		monthEnd := rng.End

		days := make([]models.DayWithSessions, 0, 42)
		leading := isoWeekday(monthStart) - 1
		for d := monthStart.AddDate(0, 0, -leading); d.Before(monthStart); d = d.AddDate(0, 0, 1) {
			days = append(days, cell(d, sessions, false))
		}
		for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
			days = append(days, cell(d, sessions, true))
		}
		total := ((len(days) + 6) / 7) * 7
		for d, n := monthEnd.AddDate(0, 0, 1), total-len(days); n > 0; d, n = d.AddDate(0, 0, 1), n-1 {
			days = append(days, cell(d, sessions, false))
		}
		return days
	}
}

// SessionsOn buckets sessions by exact canonical-day equality. The result
// is never nil so empty cells serialise as [].
func SessionsOn(day time.Time, sessions []models.Session) []models.Session {
	matched := make([]models.Session, 0)
	want := models.DayOf(day)
	for _, s := range sessions {
		if s.Date == want {
			matched = append(matched, s)
		}
	}
	return matched
}

// Navigate shifts the current date by one period of the active view.
func Navigate(current time.Time, view models.ViewType, dir Direction) time.Time {
	step := 1
	if dir == DirectionPrev {
		step = -1
	}
	switch view {
	case models.ViewWeek:
		return current.AddDate(0, 0, 7*step)
	case models.ViewMonth:
		return current.AddDate(0, step, 0)
	default:
		return current.AddDate(0, 0, step)
	}
}

// ResolveDayClick applies the drill-down rule for clicking a calendar cell:
// the clicked day becomes the current date, and the month view switches to
// the day view. Other views keep their granularity.
func ResolveDayClick(view models.ViewType, clicked time.Time) (time.Time, models.ViewType) {
	if view == models.ViewMonth {
		return clicked, models.ViewDay
	}
	return clicked, view
}

func cell(day time.Time, sessions []models.Session, currentMonth bool) models.DayWithSessions {
	return models.DayWithSessions{
		Date:           day,
		Sessions:       SessionsOn(day, sessions),
		IsCurrentMonth: currentMonth,
	}
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	weekday := isoWeekday(t)
	return t.AddDate(0, 0, -(weekday - 1))
}

// isoWeekday maps Sunday from 0 to 7 so Monday is 1.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
