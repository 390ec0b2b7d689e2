package models

import (
	"fmt"
	"time"
)

// dayLayout is the canonical wire form for calendar dates.
const dayLayout = "2006-01-02"

// Day is the canonical calendar-date value used across the scheduling core.
// Every date comparison goes through this type so ad hoc time formatting
// cannot drift between components.
type Day string

// DayOf truncates a time to its calendar day.
func DayOf(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// ParseDay validates the YYYY-MM-DD wire form and returns the canonical value.
func ParseDay(raw string) (Day, error) {
	t, err := time.Parse(dayLayout, raw)
	if err != nil {
		return "", fmt.Errorf("parse day %q: %w", raw, err)
	}
	return DayOf(t), nil
}

// Time returns the day at midnight. Values built through DayOf or ParseDay
// are always valid; anything else yields the zero time.
func (d Day) Time() time.Time {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Day) String() string {
	return string(d)
}
