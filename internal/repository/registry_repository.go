package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/equinoterapia/clinica-api/internal/models"
)

// PatientRepository provides persistence for patients.
type PatientRepository struct {
	db *sqlx.DB
}

// NewPatientRepository creates a new patient repository.
func NewPatientRepository(db *sqlx.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// List returns all patients ordered by last name.
func (r *PatientRepository) List(ctx context.Context) ([]models.Patient, error) {
	const query = `SELECT id, nombre, apellido FROM pacientes ORDER BY apellido, nombre`
	var patients []models.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// ProfessionalRepository provides persistence for clinic staff.
type ProfessionalRepository struct {
	db *sqlx.DB
}

// NewProfessionalRepository creates a new professional repository.
func NewProfessionalRepository(db *sqlx.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

// List returns all professionals ordered by last name.
func (r *ProfessionalRepository) List(ctx context.Context) ([]models.Professional, error) {
	const query = `SELECT id, nombre, apellido FROM personal ORDER BY apellido, nombre`
	var professionals []models.Professional
	if err := r.db.SelectContext(ctx, &professionals, query); err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return professionals, nil
}

// HorseRepository provides persistence for horses.
type HorseRepository struct {
	db *sqlx.DB
}

// NewHorseRepository creates a new horse repository.
func NewHorseRepository(db *sqlx.DB) *HorseRepository {
	return &HorseRepository{db: db}
}

// List returns all horses ordered by name.
func (r *HorseRepository) List(ctx context.Context) ([]models.Horse, error) {
	const query = `SELECT id, nombre, disponible FROM caballos ORDER BY nombre`
	var horses []models.Horse
	if err := r.db.SelectContext(ctx, &horses, query); err != nil {
		return nil, fmt.Errorf("list horses: %w", err)
	}
	return horses, nil
}

// SetAvailability flips a horse's availability flag.
func (r *HorseRepository) SetAvailability(ctx context.Context, id int, available bool) error {
	const query = `UPDATE caballos SET disponible = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, available, id)
	if err != nil {
		return fmt.Errorf("update horse availability: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update horse availability: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("horse %d not found", id)
	}
	return nil
}
