package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/equinoterapia/clinica-api/internal/models"
)

// WorkHourRepository mirrors the work-hour ledger into PostgreSQL.
type WorkHourRepository struct {
	db *sqlx.DB
}

// NewWorkHourRepository creates a new work-hour repository.
func NewWorkHourRepository(db *sqlx.DB) *WorkHourRepository {
	return &WorkHourRepository{db: db}
}

const workHourColumns = "id, profesional_id, profesional_nombre, fecha, horas, administrativo"

// List returns ledger entries, optionally narrowed to a professional or date.
func (r *WorkHourRepository) List(ctx context.Context, professionalID int, date models.Day) ([]models.WorkHourEntry, error) {
	base := "FROM horas_trabajo WHERE 1=1"
	var conditions []string
	var args []interface{}

	if professionalID != 0 {
		conditions = append(conditions, fmt.Sprintf("profesional_id = $%d", len(args)+1))
		args = append(args, professionalID)
	}
	if date != "" {
		conditions = append(conditions, fmt.Sprintf("fecha = $%d", len(args)+1))
		args = append(args, string(date))
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY fecha, profesional_id, id", workHourColumns, base)
	var entries []models.WorkHourEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list work hours: %w", err)
	}
	return entries, nil
}

// Insert stores a ledger entry under its already-assigned id.
func (r *WorkHourRepository) Insert(ctx context.Context, entry models.WorkHourEntry) error {
	const query = `INSERT INTO horas_trabajo (id, profesional_id, profesional_nombre, fecha, horas, administrativo)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.ProfessionalID,
		entry.ProfessionalName,
		string(entry.Date),
		entry.Hours,
		entry.IsAdministrative,
	); err != nil {
		return fmt.Errorf("insert work hour entry: %w", err)
	}
	return nil
}
