package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/service"
)

// LeadHandler mantiene dependencias para los endpoints de captación.
type LeadHandler struct {
	logger      *zap.Logger
	bodyFatServ *service.BodyFatService
}

// NewLeadHandler crea una instancia de LeadHandler con dependencias necesarias.
func NewLeadHandler(logger *zap.Logger, bodyFatServ *service.BodyFatService) *LeadHandler {
	return &LeadHandler{
		logger:      logger,
		bodyFatServ: bodyFatServ,
	}
}

// RegisterBodyFat maneja POST /leads/body-fat. Calcula el porcentaje de
// grasa corporal y registra el contacto como lead de la calculadora.
func (h *LeadHandler) RegisterBodyFat(c *gin.Context) {
	var req struct {
		Nome      string   `json:"nome" binding:"required"`
		Celular   string   `json:"celular" binding:"required"`
		Genero    string   `json:"genero" binding:"required"`
		AlturaCm  float64  `json:"altura_cm" binding:"required"`
		PescocoCm float64  `json:"pescoco_cm" binding:"required"`
		CinturaCm *float64 `json:"cintura_cm"`
		QuadrilCm *float64 `json:"quadril_cm"`
		AbdomenCm *float64 `json:"abdomen_cm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid body fat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	lead, err := h.bodyFatServ.Register(c.Request.Context(), service.BodyFatInput{
		Nome:      req.Nome,
		Celular:   req.Celular,
		Genero:    req.Genero,
		AlturaCm:  req.AlturaCm,
		PescocoCm: req.PescocoCm,
		CinturaCm: req.CinturaCm,
		QuadrilCm: req.QuadrilCm,
		AbdomenCm: req.AbdomenCm,
	})
	if err != nil {
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Messages})
			return
		}
		h.logger.Error("body fat lead failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register lead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"resultado_gordura": lead.ResultadoGordura})
}
