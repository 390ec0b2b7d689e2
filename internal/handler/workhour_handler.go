package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/service"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
	"github.com/equinoterapia/clinica-api/pkg/response"
)

// WorkHourHandler manages the work-hour ledger endpoints.
type WorkHourHandler struct {
	service *service.WorkHourService
}

// NewWorkHourHandler constructs handler.
func NewWorkHourHandler(svc *service.WorkHourService) *WorkHourHandler {
	return &WorkHourHandler{service: svc}
}

// List godoc
// @Summary List work hour entries
// @Tags WorkHours
// @Produce json
// @Param professionalId query int false "Filter by professional"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /work-hours [get]
func (h *WorkHourHandler) List(c *gin.Context) {
	professionalID := 0
	if id, err := strconv.Atoi(c.Query("professionalId")); err == nil {
		professionalID = id
	}
	var date models.Day
	if raw := c.Query("date"); raw != "" {
		day, err := models.ParseDay(raw)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "date must be formatted YYYY-MM-DD"))
			return
		}
		date = day
	}

	entries, err := h.service.List(c.Request.Context(), professionalID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Create godoc
// @Summary Record a work hour entry
// @Tags WorkHours
// @Accept json
// @Produce json
// @Param payload body service.AddWorkHourRequest true "Entry payload"
// @Success 201 {object} response.Envelope
// @Router /work-hours [post]
func (h *WorkHourHandler) Create(c *gin.Context) {
	var req service.AddWorkHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	entry, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// BatchCreate godoc
// @Summary Record several work hour entries
// @Tags WorkHours
// @Accept json
// @Produce json
// @Param payload body service.BatchAddWorkHoursRequest true "Batch payload"
// @Success 201 {object} response.Envelope
// @Router /work-hours/batch [post]
func (h *WorkHourHandler) BatchCreate(c *gin.Context) {
	var req service.BatchAddWorkHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.BatchAdd(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, result, nil)
}

// Summary godoc
// @Summary Total hours per professional over a period
// @Tags WorkHours
// @Produce json
// @Param view query string false "Period: day, week or month" default(month)
// @Param date query string false "Focus date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Envelope
// @Router /work-hours/summary [get]
func (h *WorkHourHandler) Summary(c *gin.Context) {
	view, current, ok := calendarParams(c)
	if !ok {
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), view, current)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Export godoc
// @Summary Export the work hour report
// @Tags WorkHours
// @Produce json
// @Param format query string false "csv or pdf" default(pdf)
// @Failure 501 {object} response.Envelope
// @Router /work-hours/export [get]
func (h *WorkHourHandler) Export(c *gin.Context) {
	payload, err := h.service.Export(c.Request.Context(), c.DefaultQuery("format", "pdf"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", payload)
}
