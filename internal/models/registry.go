package models

// Patient is a registry record for a person receiving therapy sessions.
type Patient struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"nombre" json:"name"`
	LastName string `db:"apellido" json:"last_name"`
}

// DisplayName formats the denormalized name snapshot stored on sessions.
func (p Patient) DisplayName() string {
	return p.Name + " " + p.LastName
}

// Professional is a registry record for a staff member who runs sessions.
type Professional struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"nombre" json:"name"`
	LastName string `db:"apellido" json:"last_name"`
}

// DisplayName formats the denormalized name snapshot stored on sessions.
func (p Professional) DisplayName() string {
	return p.Name + " " + p.LastName
}

// Horse is a registry record for a therapy horse. Availability is the only
// mutable field; flipping it gates new session creation but never invalidates
// sessions written while the horse was available.
type Horse struct {
	ID           int    `db:"id" json:"id"`
	Name         string `db:"nombre" json:"name"`
	Availability bool   `db:"disponible" json:"availability"`
}
