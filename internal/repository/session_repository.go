package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/equinoterapia/clinica-api/internal/models"
)

// SessionRepository mirrors scheduled sessions into PostgreSQL. The in-memory
// store stays authoritative; this table backs restarts and reporting.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = "id, fecha, hora, paciente_id, paciente_nombre, profesional_id, profesional_nombre, caballo_id, caballo_nombre"

// List returns sessions with optional filtering, ordered by date and time.
func (r *SessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.Session, error) {
	base := "FROM sesiones WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("fecha = $%d", len(args)+1))
		args = append(args, string(filter.Date))
	}
	if filter.PatientID != 0 {
		conditions = append(conditions, fmt.Sprintf("paciente_id = $%d", len(args)+1))
		args = append(args, filter.PatientID)
	}
	if filter.ProfessionalID != 0 {
		conditions = append(conditions, fmt.Sprintf("profesional_id = $%d", len(args)+1))
		args = append(args, filter.ProfessionalID)
	}
	if filter.HorseID != 0 {
		conditions = append(conditions, fmt.Sprintf("caballo_id = $%d", len(args)+1))
		args = append(args, filter.HorseID)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY fecha, hora, id", sessionColumns, base)
	var sessions []models.Session
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Insert stores a session under its already-assigned id.
func (r *SessionRepository) Insert(ctx context.Context, session models.Session) error {
	const query = `INSERT INTO sesiones (id, fecha, hora, paciente_id, paciente_nombre, profesional_id, profesional_nombre, caballo_id, caballo_nombre)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := r.db.ExecContext(ctx, query,
		session.ID,
		string(session.Date),
		session.Time,
		session.PatientID,
		session.PatientName,
		session.ProfessionalID,
		session.ProfessionalName,
		session.HorseID,
		session.HorseName,
	); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Update rewrites an existing session row.
func (r *SessionRepository) Update(ctx context.Context, session models.Session) error {
	const query = `UPDATE sesiones SET fecha = $1, hora = $2, paciente_id = $3, paciente_nombre = $4,
		profesional_id = $5, profesional_nombre = $6, caballo_id = $7, caballo_nombre = $8 WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		string(session.Date),
		session.Time,
		session.PatientID,
		session.PatientName,
		session.ProfessionalID,
		session.ProfessionalName,
		session.HorseID,
		session.HorseName,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session %d not found", session.ID)
	}
	return nil
}

// Delete removes a session row by id.
func (r *SessionRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM sesiones WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
