package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equinoterapia/clinica-api/internal/models"
)

func TestBatchAddSequentialIDsInInputOrder(t *testing.T) {
	reg := testRegistry()
	sessions := []models.Session{testSession(4, "2025-04-08", "10:00", 1, 1, 1)}

	entries := []BatchEntry{
		{PatientID: "1", ProfessionalID: "1", HorseID: "1", Time: "9:00"},
		{PatientID: "2", ProfessionalID: "2", HorseID: "2", Time: "10:00"},
		{PatientID: "3", ProfessionalID: "1", HorseID: "3", Time: "11:00"},
	}

	result := BatchAdd(reg, sessions, "2025-04-09", entries, DefaultHorseDailyCap)
	require.Len(t, result.Created, 3)
	assert.Zero(t, result.Skipped)

	assert.Equal(t, 5, result.Created[0].ID)
	assert.Equal(t, 6, result.Created[1].ID)
	assert.Equal(t, 7, result.Created[2].ID)
	for _, sess := range result.Created {
		assert.Equal(t, models.Day("2025-04-09"), sess.Date)
	}
	// Caller's snapshot is untouched.
	assert.Len(t, sessions, 1)
}

func TestBatchAddSkipsUnresolvedEntries(t *testing.T) {
	reg := testRegistry()

	entries := []BatchEntry{
		{PatientID: "1", ProfessionalID: "1", HorseID: "1", Time: "9:00"},
		{PatientID: "99", ProfessionalID: "1", HorseID: "1", Time: "10:00"},
		{PatientID: "2", ProfessionalID: "2", HorseID: "2", Time: "11:00"},
	}

	result := BatchAdd(reg, nil, "2025-04-09", entries, DefaultHorseDailyCap)
	require.Len(t, result.Created, 2)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Created[0].ID)
	assert.Equal(t, 2, result.Created[1].ID)
}

func TestBatchAddCannotConflictWithItself(t *testing.T) {
	reg := testRegistry()

	// Same professional, same slot, twice within one batch.
	entries := []BatchEntry{
		{PatientID: "1", ProfessionalID: "1", HorseID: "1", Time: "10:00"},
		{PatientID: "2", ProfessionalID: "1", HorseID: "2", Time: "10:00"},
	}

	result := BatchAdd(reg, nil, "2025-04-09", entries, DefaultHorseDailyCap)
	require.Len(t, result.Created, 1)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "Juan Pérez", result.Created[0].PatientName)
}

func TestBatchAddHonoursHorseCapAcrossBatch(t *testing.T) {
	reg := testRegistry()

	entries := []BatchEntry{
		{PatientID: "1", ProfessionalID: "1", HorseID: "1", Time: "8:00"},
		{PatientID: "2", ProfessionalID: "2", HorseID: "1", Time: "9:00"},
		{PatientID: "3", ProfessionalID: "1", HorseID: "1", Time: "10:00"},
		{PatientID: "1", ProfessionalID: "2", HorseID: "1", Time: "11:00"},
		{PatientID: "2", ProfessionalID: "1", HorseID: "1", Time: "12:00"},
	}

	result := BatchAdd(reg, nil, "2025-04-09", entries, DefaultHorseDailyCap)
	assert.Len(t, result.Created, 4)
	assert.Equal(t, 1, result.Skipped)
}

func TestBatchAddAgainstExistingStore(t *testing.T) {
	reg := testRegistry()
	sessions := []models.Session{testSession(1, "2025-04-09", "10:00", 1, 1, 1)}

	entries := []BatchEntry{
		// Conflicts with the stored session.
		{PatientID: "2", ProfessionalID: "1", HorseID: "2", Time: "10:00"},
	}

	result := BatchAdd(reg, sessions, "2025-04-09", entries, DefaultHorseDailyCap)
	assert.Empty(t, result.Created)
	assert.Equal(t, 1, result.Skipped)
}
