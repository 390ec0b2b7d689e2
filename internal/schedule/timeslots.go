package schedule

import (
	"fmt"
	"time"

	"github.com/equinoterapia/clinica-api/internal/models"
)

// The clinic's working day: fixed hourly slots from 8:00 to 17:00.
const (
	slotFirstHour = 8
	slotLastHour  = 17
)

// GenerateTimeSlots projects a single day's sessions onto the fixed slot
// grid: ten slots labeled "8:00" through "17:00" (no leading zero),
// ascending by hour. Slots without sessions carry an empty, non-nil list.
func GenerateTimeSlots(current time.Time, sessions []models.Session) []models.TimeSlot {
	day := models.DayOf(current)
	slots := make([]models.TimeSlot, 0, slotLastHour-slotFirstHour+1)
	for hour := slotFirstHour; hour <= slotLastHour; hour++ {
		label := fmt.Sprintf("%d:00", hour)
		matched := make([]models.Session, 0)
		for _, s := range sessions {
			if s.Date == day && s.Time == label {
				matched = append(matched, s)
			}
		}
		slots = append(slots, models.TimeSlot{Time: label, Sessions: matched})
	}
	return slots
}

// IsSlotTime reports whether a raw time value names one of the fixed hourly
// slots.
func IsSlotTime(raw string) bool {
	for hour := slotFirstHour; hour <= slotLastHour; hour++ {
		if raw == fmt.Sprintf("%d:00", hour) {
			return true
		}
	}
	return false
}
