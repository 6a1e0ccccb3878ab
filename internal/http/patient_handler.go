package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutrisigno-api/internal/service"
)

// PatientHandler mantiene dependencias para los endpoints del panel de
// profesionales sobre pacientes.
type PatientHandler struct {
	logger      *zap.Logger
	patientServ *service.PatientService
}

// NewPatientHandler crea una instancia de PatientHandler con dependencias necesarias.
func NewPatientHandler(logger *zap.Logger, patientServ *service.PatientService) *PatientHandler {
	return &PatientHandler{
		logger:      logger,
		patientServ: patientServ,
	}
}

// List maneja GET /patients.
func (h *PatientHandler) List(c *gin.Context) {
	status := c.Query("status")
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	patients, err := h.patientServ.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		h.logger.Error("patient list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list patients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pacientes": patients})
}

// Get maneja GET /patients/:pacId.
func (h *PatientHandler) Get(c *gin.Context) {
	pacID, err := uuid.Parse(c.Param("pacId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pac_id"})
		return
	}

	patient, err := h.patientServ.Get(c.Request.Context(), pacID)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		h.logger.Error("patient fetch failed", zap.Error(err), zap.String("pac_id", pacID.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch patient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paciente": patient})
}

// UpdateStatus maneja PATCH /patients/:pacId/status.
func (h *PatientHandler) UpdateStatus(c *gin.Context) {
	pacID, err := uuid.Parse(c.Param("pacId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pac_id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.patientServ.UpdateStatus(c.Request.Context(), pacID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		case errors.Is(err, service.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		default:
			h.logger.Error("status update failed", zap.Error(err), zap.String("pac_id", pacID.String()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"pac_id": pacID, "status": req.Status})
}

// Similar maneja GET /patients/:pacId/similar.
func (h *PatientHandler) Similar(c *gin.Context) {
	pacID, err := uuid.Parse(c.Param("pacId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pac_id"})
		return
	}

	k := queryInt(c, "k", 5)
	neighbors, err := h.patientServ.Similar(c.Request.Context(), pacID, k)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		h.logger.Error("similar patients failed", zap.Error(err), zap.String("pac_id", pacID.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch similar patients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"similares": neighbors})
}

// queryInt lee un parámetro de query numérico con valor por defecto. Los
// valores negativos o mal formados caen al default.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return def
	}
	return value
}
