package models

// Session assigns a patient, a professional and a horse to a date/time slot.
// The three name fields are snapshots taken when the session was last
// written; a later rename in a registry does not update past sessions.
type Session struct {
	ID               int    `db:"id" json:"id"`
	Date             Day    `db:"fecha" json:"date"`
	Time             string `db:"hora" json:"time"`
	PatientID        int    `db:"paciente_id" json:"patient_id"`
	PatientName      string `db:"paciente_nombre" json:"patient_name"`
	ProfessionalID   int    `db:"profesional_id" json:"professional_id"`
	ProfessionalName string `db:"profesional_nombre" json:"professional_name"`
	HorseID          int    `db:"caballo_id" json:"horse_id"`
	HorseName        string `db:"caballo_nombre" json:"horse_name"`
}

// SessionFilter narrows session listings. Zero values mean "no filter".
type SessionFilter struct {
	Date           Day
	PatientID      int
	ProfessionalID int
	HorseID        int
}

// Matches reports whether a session passes every set filter field.
func (f SessionFilter) Matches(s Session) bool {
	if f.Date != "" && s.Date != f.Date {
		return false
	}
	if f.PatientID != 0 && s.PatientID != f.PatientID {
		return false
	}
	if f.ProfessionalID != 0 && s.ProfessionalID != f.ProfessionalID {
		return false
	}
	if f.HorseID != 0 && s.HorseID != f.HorseID {
		return false
	}
	return true
}
