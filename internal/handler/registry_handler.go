package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/equinoterapia/clinica-api/internal/service"
	appErrors "github.com/equinoterapia/clinica-api/pkg/errors"
	"github.com/equinoterapia/clinica-api/pkg/response"
)

// RegistryHandler serves the patient, professional and horse rosters.
type RegistryHandler struct {
	service *service.RegistryService
}

// NewRegistryHandler constructs handler.
func NewRegistryHandler(svc *service.RegistryService) *RegistryHandler {
	return &RegistryHandler{service: svc}
}

// UpdateHorseAvailabilityRequest flips a horse's availability flag.
type UpdateHorseAvailabilityRequest struct {
	Available *bool `json:"available"`
}

// ListPatients godoc
// @Summary List patients
// @Tags Registry
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /patients [get]
func (h *RegistryHandler) ListPatients(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Patients(), nil)
}

// ListProfessionals godoc
// @Summary List professionals
// @Tags Registry
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /professionals [get]
func (h *RegistryHandler) ListProfessionals(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Professionals(), nil)
}

// ListHorses godoc
// @Summary List horses
// @Tags Registry
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /horses [get]
func (h *RegistryHandler) ListHorses(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Horses(), nil)
}

// SetHorseAvailability godoc
// @Summary Update a horse's availability
// @Tags Registry
// @Accept json
// @Produce json
// @Param id path int true "Horse ID"
// @Param payload body UpdateHorseAvailabilityRequest true "Availability payload"
// @Success 200 {object} response.Envelope
// @Router /horses/{id}/availability [patch]
func (h *RegistryHandler) SetHorseAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "horse id must be a positive integer"))
		return
	}

	var req UpdateHorseAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if req.Available == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "available is required"))
		return
	}

	horse, err := h.service.SetHorseAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, horse, nil)
}
