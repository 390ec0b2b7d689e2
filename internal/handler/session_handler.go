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

// SessionHandler manages session scheduling endpoints.
type SessionHandler struct {
	service *service.ScheduleService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(svc *service.ScheduleService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// List godoc
// @Summary List scheduled sessions
// @Tags Sessions
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param patientId query int false "Filter by patient"
// @Param professionalId query int false "Filter by professional"
// @Param horseId query int false "Filter by horse"
// @Success 200 {object} response.Envelope
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	var filter models.SessionFilter
	if raw := c.Query("date"); raw != "" {
		day, err := models.ParseDay(raw)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "date must be formatted YYYY-MM-DD"))
			return
		}
		filter.Date = day
	}
	if id, err := strconv.Atoi(c.Query("patientId")); err == nil {
		filter.PatientID = id
	}
	if id, err := strconv.Atoi(c.Query("professionalId")); err == nil {
		filter.ProfessionalID = id
	}
	if id, err := strconv.Atoi(c.Query("horseId")); err == nil {
		filter.HorseID = id
	}

	sessions, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// Get godoc
// @Summary Get one session
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	session, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Create godoc
// @Summary Schedule a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.CreateSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Update godoc
// @Summary Reschedule a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param payload body service.UpdateSessionRequest true "Session payload"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req service.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Delete godoc
// @Summary Cancel a session
// @Tags Sessions
// @Param id path int true "Session ID"
// @Success 204
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// BatchCreate godoc
// @Summary Schedule several sessions on one date
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.BatchCreateSessionsRequest true "Batch payload"
// @Success 201 {object} response.Envelope
// @Router /sessions/batch [post]
func (h *SessionHandler) BatchCreate(c *gin.Context) {
	var req service.BatchCreateSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.BatchCreate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, result, nil)
}

func sessionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "session id must be a positive integer"))
		return 0, false
	}
	return id, true
}
