package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equinoterapia/clinica-api/internal/models"
)

func TestGenerateTimeSlotsEmptyDay(t *testing.T) {
	slots := GenerateTimeSlots(date(2025, time.April, 9), nil)
	require.Len(t, slots, 10)

	assert.Equal(t, "8:00", slots[0].Time)
	assert.Equal(t, "9:00", slots[1].Time)
	assert.Equal(t, "16:00", slots[8].Time)
	assert.Equal(t, "17:00", slots[9].Time)
	for _, slot := range slots {
		assert.NotNil(t, slot.Sessions)
		assert.Empty(t, slot.Sessions)
	}
}

func TestGenerateTimeSlotsBucketsByExactMatch(t *testing.T) {
	sessions := []models.Session{
		testSession(1, "2025-04-09", "10:00", 1, 1, 1),
		testSession(2, "2025-04-09", "10:00", 2, 2, 2),
		testSession(3, "2025-04-10", "10:00", 3, 1, 3),
		testSession(4, "2025-04-09", "17:00", 1, 2, 2),
	}

	slots := GenerateTimeSlots(date(2025, time.April, 9), sessions)
	bySlot := make(map[string][]models.Session, len(slots))
	for _, slot := range slots {
		bySlot[slot.Time] = slot.Sessions
	}

	assert.Len(t, bySlot["10:00"], 2, "other days must not leak in")
	assert.Len(t, bySlot["17:00"], 1)
	assert.Empty(t, bySlot["8:00"])
}

func TestIsSlotTime(t *testing.T) {
	assert.True(t, IsSlotTime("8:00"))
	assert.True(t, IsSlotTime("17:00"))
	assert.False(t, IsSlotTime("07:00"))
	assert.False(t, IsSlotTime("08:00"), "labels carry no leading zero")
	assert.False(t, IsSlotTime("18:00"))
	assert.False(t, IsSlotTime("10:30"))
}
