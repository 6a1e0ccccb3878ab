package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"nutrisigno-api/internal/config"
	"nutrisigno-api/internal/db"
	"nutrisigno-api/internal/email"
	apihttp "nutrisigno-api/internal/http"
	"nutrisigno-api/internal/repository"
	"nutrisigno-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	patientRepo := repository.NewPgPatientRepository(pool)
	professionalRepo := repository.NewPgProfessionalRepository(pool)
	leadRepo := repository.NewPgLeadRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	lookupWindow := time.Duration(cfg.LookupRateWindowMinutes) * time.Minute
	loginWindow := time.Duration(cfg.LoginRateWindowMinutes) * time.Minute
	lookupLimiter := service.NewMemoryRateLimiter(lookupWindow, cfg.LookupRateMax)
	loginLimiter := service.NewMemoryRateLimiter(loginWindow, cfg.LoginRateMax)
	var (
		tokenStore   service.RefreshTokenStore
		resultsCache *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
			lookupLimiter = service.NewRedisRateLimiter(redisClient, "lookup:rl:", lookupWindow, cfg.LookupRateMax)
			loginLimiter = service.NewRedisRateLimiter(redisClient, "login:rl:", loginWindow, cfg.LoginRateMax)
			resultsCache = redisClient
		}
		cancel()
	}
	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	resultsSvc := service.NewResultsService(logger, patientRepo, resultsCache, time.Duration(cfg.ResultsCacheTTLMinutes)*time.Minute, lookupLimiter)
	intakeSvc := service.NewIntakeService(logger, patientRepo, resultsSvc, emailSender)
	patientSvc := service.NewPatientService(logger, patientRepo, resultsSvc)
	bodyFatSvc := service.NewBodyFatService(logger, leadRepo)
	authSvc := service.NewAuthService(logger, professionalRepo, jwtSvc, loginLimiter)

	if cfg.SeedProfessionalEmail != "" && cfg.SeedProfessionalPassword != "" {
		if err := authSvc.EnsureSeed(ctx, cfg.SeedProfessionalEmail, cfg.SeedProfessionalPassword, cfg.SeedProfessionalNome); err != nil {
			logger.Warn("seed professional failed", zap.Error(err))
		}
	}

	intakeHandler := apihttp.NewIntakeHandler(logger, intakeSvc)
	resultsHandler := apihttp.NewResultsHandler(logger, resultsSvc)
	leadHandler := apihttp.NewLeadHandler(logger, bodyFatSvc)
	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	patientHandler := apihttp.NewPatientHandler(logger, patientSvc)
	router := apihttp.NewRouter(logger, intakeHandler, resultsHandler, leadHandler, authHandler, patientHandler, jwtSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
