// Package schedule implements the clinic's session scheduling core: the
// in-memory session store, the conflict validator, the session factory, and
// the calendar/time-slot projections. Everything here is a pure function
// over immutable snapshots; callers own locking and persistence.
package schedule

import (
	"strconv"

	"github.com/equinoterapia/clinica-api/internal/models"
)

// Registry is a point-in-time snapshot of the patient, professional and
// horse rosters that candidate sessions resolve against.
type Registry struct {
	Patients      []models.Patient
	Professionals []models.Professional
	Horses        []models.Horse
}

// FindPatient looks up a patient by id.
func (r Registry) FindPatient(id int) (models.Patient, bool) {
	for _, p := range r.Patients {
		if p.ID == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

// FindProfessional looks up a professional by id.
func (r Registry) FindProfessional(id int) (models.Professional, bool) {
	for _, p := range r.Professionals {
		if p.ID == id {
			return p, true
		}
	}
	return models.Professional{}, false
}

// FindHorse looks up a horse by id.
func (r Registry) FindHorse(id int) (models.Horse, bool) {
	for _, h := range r.Horses {
		if h.ID == id {
			return h, true
		}
	}
	return models.Horse{}, false
}

// resolved bundles the three registry records a candidate references.
type resolved struct {
	patient      models.Patient
	professional models.Professional
	horse        models.Horse
}

// resolve maps the candidate's raw string ids to registry records. Empty
// strings, non-numeric input and unknown ids all fail the same way: the
// selection is incomplete.
func (r Registry) resolve(c Candidate) (resolved, bool) {
	patientID, err := strconv.Atoi(c.PatientID)
	if err != nil {
		return resolved{}, false
	}
	professionalID, err := strconv.Atoi(c.ProfessionalID)
	if err != nil {
		return resolved{}, false
	}
	horseID, err := strconv.Atoi(c.HorseID)
	if err != nil {
		return resolved{}, false
	}

	patient, ok := r.FindPatient(patientID)
	if !ok {
		return resolved{}, false
	}
	professional, ok := r.FindProfessional(professionalID)
	if !ok {
		return resolved{}, false
	}
	horse, ok := r.FindHorse(horseID)
	if !ok {
		return resolved{}, false
	}

	return resolved{patient: patient, professional: professional, horse: horse}, true
}
