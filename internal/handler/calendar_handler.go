package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/equinoterapia/clinica-api/internal/middleware"
	"github.com/equinoterapia/clinica-api/internal/models"
	"github.com/equinoterapia/clinica-api/internal/service"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
	"github.com/equinoterapia/clinica-api/pkg/export"
	"github.com/equinoterapia/clinica-api/pkg/response"
)

// CalendarHandler serves calendar and agenda projections.
type CalendarHandler struct {
	service *service.CalendarService
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
}

// NewCalendarHandler constructs handler.
func NewCalendarHandler(svc *service.CalendarService, csv *export.CSVExporter, pdf *export.PDFExporter) *CalendarHandler {
	return &CalendarHandler{service: svc, csv: csv, pdf: pdf}
}

// View godoc
// @Summary Render the calendar
// @Tags Calendar
// @Produce json
// @Param view query string false "View type: day, week or month" default(month)
// @Param date query string false "Focus date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Envelope
// @Router /calendar [get]
func (h *CalendarHandler) View(c *gin.Context) {
	view, current, ok := calendarParams(c)
	if !ok {
		return
	}
	result, err := h.service.View(c.Request.Context(), view, current)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil, middleware.ExtractMeta(c))
}

// Navigate godoc
// @Summary Step the calendar backward or forward
// @Tags Calendar
// @Produce json
// @Param view query string false "View type: day, week or month" default(month)
// @Param date query string false "Focus date (YYYY-MM-DD), defaults to today"
// @Param direction query string true "prev or next"
// @Success 200 {object} response.Envelope
// @Router /calendar/navigate [get]
func (h *CalendarHandler) Navigate(c *gin.Context) {
	view, current, ok := calendarParams(c)
	if !ok {
		return
	}
	result, err := h.service.Navigate(c.Request.Context(), view, current, c.Query("direction"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil, middleware.ExtractMeta(c))
}

// Click godoc
// @Summary Resolve a day-cell click
// @Tags Calendar
// @Produce json
// @Param view query string false "View type the click happened in" default(month)
// @Param date query string true "Clicked date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /calendar/click [get]
func (h *CalendarHandler) Click(c *gin.Context) {
	view, clicked, ok := calendarParams(c)
	if !ok {
		return
	}
	result, err := h.service.Click(c.Request.Context(), view, clicked)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil, middleware.ExtractMeta(c))
}

// TimeSlots godoc
// @Summary Render one day's agenda as hourly slots
// @Tags Calendar
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Envelope
// @Router /timeslots [get]
func (h *CalendarHandler) TimeSlots(c *gin.Context) {
	current, ok := dateParam(c)
	if !ok {
		return
	}
	result, err := h.service.TimeSlots(c.Request.Context(), current)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil, middleware.ExtractMeta(c))
}

// ExportAgenda godoc
// @Summary Export one day's agenda as CSV or PDF
// @Tags Calendar
// @Produce octet-stream
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /agenda/export [get]
func (h *CalendarHandler) ExportAgenda(c *gin.Context) {
	current, ok := dateParam(c)
	if !ok {
		return
	}
	dataset, title, err := h.service.AgendaDataset(c.Request.Context(), current)
	if err != nil {
		response.Error(c, err)
		return
	}

	day := models.DayOf(current)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		payload, err := h.csv.Render(dataset)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render agenda csv"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=agenda-%s.csv", day))
		c.Data(http.StatusOK, "text/csv", payload)
	case "pdf":
		payload, err := h.pdf.Render(dataset, title)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render agenda pdf"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=agenda-%s.pdf", day))
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func calendarParams(c *gin.Context) (models.ViewType, time.Time, bool) {
	view, err := models.ParseViewType(c.DefaultQuery("view", string(models.ViewMonth)))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "view must be day, week or month"))
		return "", time.Time{}, false
	}
	current, ok := dateParam(c)
	if !ok {
		return "", time.Time{}, false
	}
	return view, current, true
}

func dateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	day, err := models.ParseDay(raw)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "date must be formatted YYYY-MM-DD"))
		return time.Time{}, false
	}
	return day.Time(), true
}
