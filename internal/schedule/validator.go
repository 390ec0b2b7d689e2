package schedule

import (
	"errors"

	"github.com/equinoterapia/clinica-api/internal/models"
)

// DefaultHorseDailyCap is how many sessions a horse can carry per day.
const DefaultHorseDailyCap = 4

// Validation failures. These are values, not panics: a rejected candidate
// is a normal outcome and never mutates state.
var (
	ErrIncompleteSelection   = errors.New("patient, professional and horse must all be selected")
	ErrHorseUnavailable      = errors.New("horse is not currently available")
	ErrHorseCapacityExceeded = errors.New("horse already has the maximum of sessions for this date")
	ErrProfessionalConflict  = errors.New("professional already has a session at this time")
)

// Candidate carries the raw form input for one prospective session. The
// three ids arrive as strings straight from the UI and are resolved against
// the registry during validation.
type Candidate struct {
	PatientID      string
	ProfessionalID string
	HorseID        string
	Date           models.Day
	Time           string
}

// Validate runs the full rule set against a snapshot of the store and the
// registry: completeness first (the later checks need a resolved horse),
// then horse availability and capacity, then professional double-booking.
// The first failure short-circuits. excludeID skips one session id when
// re-validating an edit; pass 0 for a new session.
func Validate(reg Registry, sessions []models.Session, cand Candidate, dailyCap, excludeID int) error {
	res, ok := reg.resolve(cand)
	if !ok {
		return ErrIncompleteSelection
	}
	if err := ValidateHorse(sessions, res.horse, cand.Date, dailyCap, excludeID); err != nil {
		return err
	}
	return ValidateProfessional(sessions, res.professional.ID, cand.Date, cand.Time, excludeID)
}

// ValidateHorse checks the availability flag and the per-day capacity for
// one horse. Capacity counts existing sessions on the same date, excluding
// the session being edited.
func ValidateHorse(sessions []models.Session, horse models.Horse, date models.Day, dailyCap, excludeID int) error {
	if !horse.Availability {
		return ErrHorseUnavailable
	}
	if dailyCap <= 0 {
		dailyCap = DefaultHorseDailyCap
	}
	count := 0
	for _, s := range sessions {
		if s.ID == excludeID {
			continue
		}
		if s.Date == date && s.HorseID == horse.ID {
			count++
		}
	}
	if count >= dailyCap {
		return ErrHorseCapacityExceeded
	}
	return nil
}

// ValidateProfessional rejects a candidate when the professional already
// has a session at the same date and time, excluding the session being
// edited.
func ValidateProfessional(sessions []models.Session, professionalID int, date models.Day, timeSlot string, excludeID int) error {
	for _, s := range sessions {
		if s.ID == excludeID {
			continue
		}
		if s.Date == date && s.Time == timeSlot && s.ProfessionalID == professionalID {
			return ErrProfessionalConflict
		}
	}
	return nil
}
