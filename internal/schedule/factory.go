package schedule

import "github.com/equinoterapia/clinica-api/internal/models"

// BuildSession materialises a candidate into a denormalized session record.
// editID preserves the identity of a session being edited; pass 0 to assign
// the next id from the snapshot. The factory has no validation
// responsibility: it is only called after Validate passes, and it returns
// nil when any id fails to resolve so a racing registry change cannot
// produce a half-built record. The caller performs the store mutation.
func BuildSession(reg Registry, sessions []models.Session, cand Candidate, editID int) *models.Session {
	res, ok := reg.resolve(cand)
	if !ok {
		return nil
	}

	id := editID
	if id == 0 {
		id = NextID(sessions)
	}

	return &models.Session{
		ID:               id,
		Date:             cand.Date,
		Time:             cand.Time,
		PatientID:        res.patient.ID,
		PatientName:      res.patient.DisplayName(),
		ProfessionalID:   res.professional.ID,
		ProfessionalName: res.professional.DisplayName(),
		HorseID:          res.horse.ID,
		HorseName:        res.horse.Name,
	}
}
