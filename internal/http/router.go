package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutrisigno-api/internal/service"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	intakeH *IntakeHandler,
	resultsH *ResultsHandler,
	leadH *LeadHandler,
	authH *AuthHandler,
	patientH *PatientHandler,
	jwtServ *service.JWTService,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging, recovery y JSON content-type.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Superficie pública: formulario, resultados y calculadora.
	api.POST("/questionnaires", intakeH.Submit)
	api.GET("/form-schema", intakeH.FormSchema)

	results := api.Group("/results")
	results.POST("/lookup", resultsH.Lookup)
	results.GET("/:pacId", resultsH.GetByPacID)

	api.POST("/leads/body-fat", leadH.RegisterBodyFat)

	auth := api.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/logout", authH.Logout)

	// Panel de profesionales, siempre detrás del JWT.
	patients := api.Group("/patients", JWTAuthMiddleware(jwtServ))
	patients.GET("", patientH.List)
	patients.GET("/:pacId", patientH.Get)
	patients.PATCH("/:pacId/status", patientH.UpdateStatus)
	patients.GET("/:pacId/similar", patientH.Similar)

	return r
}

// requestIDMiddleware asigna un id único a cada request y lo propaga en la
// respuesta para correlacionar logs entre servicios.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
