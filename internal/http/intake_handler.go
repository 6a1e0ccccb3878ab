package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/intake"
	"nutrisigno-api/internal/service"
)

// IntakeHandler mantiene dependencias para los endpoints del formulario
// público de anamnesis.
type IntakeHandler struct {
	logger     *zap.Logger
	intakeServ *service.IntakeService
}

// NewIntakeHandler crea una instancia de IntakeHandler con dependencias necesarias.
func NewIntakeHandler(logger *zap.Logger, intakeServ *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{
		logger:     logger,
		intakeServ: intakeServ,
	}
}

// Submit maneja POST /questionnaires. El payload llega como mapa crudo
// porque el formulario evoluciona sin cambios de contrato: las claves que
// el servidor no conoce se conservan como respuestas extra.
func (h *IntakeHandler) Submit(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("invalid questionnaire payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patient, err := h.intakeServ.Process(c.Request.Context(), payload)
	if err != nil {
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Messages})
			return
		}
		h.logger.Error("questionnaire processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process questionnaire"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"pac_id":  patient.PacID,
		"pilares": patient.Pilares,
	})
}

// FormSchema maneja GET /form-schema.
func (h *IntakeHandler) FormSchema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"secoes": intake.FormSchema()})
}
