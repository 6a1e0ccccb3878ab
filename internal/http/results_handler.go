package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/service"
)

// Mensajes públicos del lookup, en el idioma del formulario.
const (
	msgLookupNotFound    = "Não encontramos nenhum cadastro com esses dados."
	msgLookupRateLimited = "Muitas tentativas. Aguarde alguns minutos e tente novamente."
)

// ResultsHandler mantiene dependencias para los endpoints públicos de
// resultados.
type ResultsHandler struct {
	logger      *zap.Logger
	resultsServ *service.ResultsService
}

// NewResultsHandler crea una instancia de ResultsHandler con dependencias necesarias.
func NewResultsHandler(logger *zap.Logger, resultsServ *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{
		logger:      logger,
		resultsServ: resultsServ,
	}
}

// Lookup maneja POST /results/lookup. Teléfono más fecha de nacimiento son
// la llave de acceso sin contraseña del paciente, por eso la respuesta de
// error nunca distingue entre "no existe" y "datos equivocados".
func (h *ResultsHandler) Lookup(c *gin.Context) {
	var req struct {
		Telefone       string `json:"telefone" binding:"required"`
		DataNascimento string `json:"data_nascimento" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid lookup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	results, err := h.resultsServ.Lookup(c.Request.Context(), req.Telefone, req.DataNascimento)
	if err != nil {
		var validation *domain.ValidationError
		switch {
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": msgLookupRateLimited})
		case errors.As(err, &validation):
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
		case errors.Is(err, service.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": msgLookupNotFound})
		default:
			h.logger.Error("results lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not lookup results"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"resultado": results})
}

// GetByPacID maneja GET /results/:pacId.
func (h *ResultsHandler) GetByPacID(c *gin.Context) {
	pacID, err := uuid.Parse(c.Param("pacId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pac_id"})
		return
	}

	results, err := h.resultsServ.GetByPacID(c.Request.Context(), pacID)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgLookupNotFound})
			return
		}
		h.logger.Error("results fetch failed", zap.Error(err), zap.String("pac_id", pacID.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"resultado": results})
}
