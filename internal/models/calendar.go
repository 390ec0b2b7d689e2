package models

import (
	"fmt"
	"time"
)

// ViewType selects the calendar granularity.
type ViewType string

const (
	ViewDay   ViewType = "day"
	ViewWeek  ViewType = "week"
	ViewMonth ViewType = "month"
)

// ParseViewType validates a raw view value from the query string.
func ParseViewType(raw string) (ViewType, error) {
	switch ViewType(raw) {
	case ViewDay, ViewWeek, ViewMonth:
		return ViewType(raw), nil
	default:
		return "", fmt.Errorf("unknown calendar view %q", raw)
	}
}

// DateRange is the inclusive period covered by a calendar view.
type DateRange struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DisplayText string    `json:"display_text"`
}

// DayWithSessions is one calendar cell: a day, its sessions, and whether the
// day belongs to the month currently displayed (month view pads the grid
// with out-of-month days).
type DayWithSessions struct {
	Date           time.Time `json:"date"`
	Sessions       []Session `json:"sessions"`
	IsCurrentMonth bool      `json:"is_current_month"`
}

// TimeSlot is one fixed hourly slot of a single day's agenda.
type TimeSlot struct {
	Time     string    `json:"time"`
	Sessions []Session `json:"sessions"`
}
