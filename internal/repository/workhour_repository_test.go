package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/equinoterapia/clinica-api/internal/models"
)

func TestWorkHourRepositoryInsertAndList(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewWorkHourRepository(db)
	entry := models.WorkHourEntry{
		ID:               1,
		ProfessionalID:   1,
		ProfessionalName: "Ana Silva",
		Date:             models.Day("2025-04-07"),
		Hours:            2.5,
		IsAdministrative: false,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO horas_trabajo")).
		WithArgs(1, 1, "Ana Silva", "2025-04-07", 2.5, false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Insert(context.Background(), entry))

	rows := sqlmock.NewRows([]string{"id", "profesional_id", "profesional_nombre", "fecha", "horas", "administrativo"}).
		AddRow(1, 1, "Ana Silva", "2025-04-07", 2.5, false)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, profesional_id, profesional_nombre")).
		WithArgs(1).
		WillReturnRows(rows)

	entries, err := repo.List(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 2.5, entries[0].Hours)
	require.NoError(t, mock.ExpectationsWereMet())
}
