package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/equinoterapia/clinica-api/internal/models"
)

func TestValidateIncompleteSelection(t *testing.T) {
	reg := testRegistry()

	cases := map[string]Candidate{
		"empty patient":        {PatientID: "", ProfessionalID: "1", HorseID: "1", Date: "2025-04-09", Time: "10:00"},
		"unknown professional": {PatientID: "1", ProfessionalID: "99", HorseID: "1", Date: "2025-04-09", Time: "10:00"},
		"garbage horse id":     {PatientID: "1", ProfessionalID: "1", HorseID: "abc", Date: "2025-04-09", Time: "10:00"},
	}
	for name, cand := range cases {
		t.Run(name, func(t *testing.T) {
			err := Validate(reg, nil, cand, DefaultHorseDailyCap, 0)
			assert.ErrorIs(t, err, ErrIncompleteSelection)
		})
	}
}

func TestValidateHorseUnavailable(t *testing.T) {
	reg := testRegistry()
	cand := Candidate{PatientID: "1", ProfessionalID: "1", HorseID: "4", Date: "2025-04-09", Time: "10:00"}

	err := Validate(reg, nil, cand, DefaultHorseDailyCap, 0)
	assert.ErrorIs(t, err, ErrHorseUnavailable)
}

func TestValidateHorseCapacityExceeded(t *testing.T) {
	reg := testRegistry()
	sessions := []models.Session{
		testSession(1, "2025-04-09", "8:00", 1, 1, 3),
		testSession(2, "2025-04-09", "9:00", 2, 2, 3),
		testSession(3, "2025-04-09", "10:00", 3, 1, 3),
		testSession(4, "2025-04-09", "11:00", 1, 2, 3),
	}
	cand := Candidate{PatientID: "2", ProfessionalID: "1", HorseID: "3", Date: "2025-04-09", Time: "12:00"}

	err := Validate(reg, sessions, cand, DefaultHorseDailyCap, 0)
	assert.ErrorIs(t, err, ErrHorseCapacityExceeded)

	// A different date does not count against the cap.
	cand.Date = "2025-04-10"
	assert.NoError(t, Validate(reg, sessions, cand, DefaultHorseDailyCap, 0))
}

func TestValidateProfessionalConflict(t *testing.T) {
	reg := testRegistry()
	sessions := []models.Session{
		testSession(1, "2025-04-09", "11:00", 1, 2, 1),
	}

	// Another patient/horse combo at the same date and time clashes.
	cand := Candidate{PatientID: "2", ProfessionalID: "2", HorseID: "2", Date: "2025-04-09", Time: "11:00"}
	err := Validate(reg, sessions, cand, DefaultHorseDailyCap, 0)
	assert.ErrorIs(t, err, ErrProfessionalConflict)

	// The same attempt one hour later succeeds.
	cand.Time = "12:00"
	assert.NoError(t, Validate(reg, sessions, cand, DefaultHorseDailyCap, 0))
}

func TestValidateEditExcludesOwnSession(t *testing.T) {
	reg := testRegistry()
	sessions := []models.Session{
		testSession(7, "2025-04-09", "11:00", 1, 2, 1),
		testSession(8, "2025-04-09", "8:00", 2, 1, 2),
		testSession(9, "2025-04-09", "9:00", 3, 1, 2),
		testSession(10, "2025-04-09", "10:00", 1, 1, 2),
	}

	// Re-validating session 7 against its own unchanged slot must pass.
	cand := Candidate{PatientID: "1", ProfessionalID: "2", HorseID: "1", Date: "2025-04-09", Time: "11:00"}
	assert.NoError(t, Validate(reg, sessions, cand, DefaultHorseDailyCap, 7))

	// Without the exclusion the same candidate is a conflict.
	assert.ErrorIs(t, Validate(reg, sessions, cand, DefaultHorseDailyCap, 0), ErrProfessionalConflict)
}

func TestValidateHorseCapacityWinsOverProfessionalConflict(t *testing.T) {
	reg := testRegistry()
	sessions := []models.Session{
		testSession(1, "2025-04-09", "8:00", 1, 1, 1),
		testSession(2, "2025-04-09", "9:00", 2, 2, 1),
		testSession(3, "2025-04-09", "10:00", 3, 1, 1),
		testSession(4, "2025-04-09", "11:00", 1, 2, 1),
	}

	// Horse 1 is at the cap and professional 2 is busy at 11:00; the
	// capacity rejection is reported first.
	cand := Candidate{PatientID: "2", ProfessionalID: "2", HorseID: "1", Date: "2025-04-09", Time: "11:00"}
	assert.ErrorIs(t, Validate(reg, sessions, cand, DefaultHorseDailyCap, 0), ErrHorseCapacityExceeded)
}

func TestValidateHorseCapDefaultsWhenZero(t *testing.T) {
	reg := testRegistry()
	horse, ok := reg.FindHorse(1)
	assert.True(t, ok)

	sessions := []models.Session{
		testSession(1, "2025-04-09", "8:00", 1, 1, 1),
		testSession(2, "2025-04-09", "9:00", 2, 2, 1),
		testSession(3, "2025-04-09", "10:00", 3, 1, 1),
	}
	assert.NoError(t, ValidateHorse(sessions, horse, "2025-04-09", 0, 0))

	sessions = append(sessions, testSession(4, "2025-04-09", "11:00", 1, 2, 1))
	assert.ErrorIs(t, ValidateHorse(sessions, horse, "2025-04-09", 0, 0), ErrHorseCapacityExceeded)
}
