package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/equinoterapia/clinica-api/internal/models"
)

func newSessionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSessionRepositoryInsertAndList(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	session := models.Session{
		ID:               1,
		Date:             models.Day("2025-04-07"),
		Time:             "10:00",
		PatientID:        1,
		PatientName:      "Juan Pérez",
		ProfessionalID:   1,
		ProfessionalName: "Ana Silva",
		HorseID:          1,
		HorseName:        "Luna",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sesiones")).
		WithArgs(1, "2025-04-07", "10:00", 1, "Juan Pérez", 1, "Ana Silva", 1, "Luna").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Insert(context.Background(), session))

	rows := sqlmock.NewRows([]string{"id", "fecha", "hora", "paciente_id", "paciente_nombre", "profesional_id", "profesional_nombre", "caballo_id", "caballo_nombre"}).
		AddRow(1, "2025-04-07", "10:00", 1, "Juan Pérez", 1, "Ana Silva", 1, "Luna")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, fecha, hora")).
		WithArgs("2025-04-07").
		WillReturnRows(rows)

	sessions, err := repo.List(context.Background(), models.SessionFilter{Date: models.Day("2025-04-07")})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "Luna", sessions[0].HorseName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sesiones SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), models.Session{ID: 42, Date: models.Day("2025-04-07"), Time: "10:00"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "42")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sesiones")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
