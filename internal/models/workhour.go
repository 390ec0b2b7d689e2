package models

// WorkHourEntry is a ledger row of hours worked by a professional on a day.
// Entries are recorded from direct form input and carry no conflict
// validation; the professional name is a snapshot like on sessions.
type WorkHourEntry struct {
	ID               int     `db:"id" json:"id"`
	ProfessionalID   int     `db:"profesional_id" json:"professional_id"`
	ProfessionalName string  `db:"profesional_nombre" json:"professional_name"`
	Date             Day     `db:"fecha" json:"date"`
	Hours            float64 `db:"horas" json:"hours"`
	IsAdministrative bool    `db:"administrativo" json:"is_administrative"`
}

// WorkHourSummary aggregates a professional's hours over a period.
// Administrative hours are counted in the total and also broken out.
type WorkHourSummary struct {
	ProfessionalID      int     `json:"professional_id"`
	ProfessionalName    string  `json:"professional_name"`
	TotalHours          float64 `json:"total_hours"`
	AdministrativeHours float64 `json:"administrative_hours"`
}
