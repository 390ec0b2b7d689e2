package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/service"
	"github.com/equinoterapia/clinica-api/pkg/response"
)

func newWorkHourRouter(t *testing.T, initial []models.WorkHourEntry) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := service.NewRegistryService(
		&fakePatients{},
		&fakeProfessionals{items: []models.Professional{
			{ID: 1, Name: "Ana", LastName: "Silva"},
			{ID: 2, Name: "Carlos", LastName: "Rodríguez"},
		}},
		&fakeHorses{},
		nil,
	)
	require.NoError(t, registry.Load(context.Background()))

	h := NewWorkHourHandler(service.NewWorkHourService(initial, registry, nil, nil, nil))

	r := gin.New()
	r.GET("/work-hours/summary", h.Summary)
	return r
}

func TestWorkHourHandlerSummaryFiltersPeriod(t *testing.T) {
	initial := []models.WorkHourEntry{
		{ID: 1, ProfessionalID: 1, ProfessionalName: "Ana Silva", Date: "2025-04-07", Hours: 2},
		{ID: 2, ProfessionalID: 1, ProfessionalName: "Ana Silva", Date: "2025-04-08", Hours: 3, IsAdministrative: true},
		{ID: 3, ProfessionalID: 2, ProfessionalName: "Carlos Rodríguez", Date: "2025-05-01", Hours: 6},
	}
	r := newWorkHourRouter(t, initial)

	rec := doJSON(r, http.MethodGet, "/work-hours/summary?view=month&date=2025-04-15", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	list, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)

	row, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), row["professional_id"])
	assert.Equal(t, float64(5), row["total_hours"])
	assert.Equal(t, float64(3), row["administrative_hours"])
}

func TestWorkHourHandlerSummaryRejectsBadView(t *testing.T) {
	r := newWorkHourRouter(t, nil)

	rec := doJSON(r, http.MethodGet, "/work-hours/summary?view=year", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
