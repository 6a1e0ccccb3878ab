package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/repository"
)

// ErrInvalidCredentials cubre email desconocido y contraseña incorrecta
// por igual, sin filtrar cuál de los dos falló.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService autentica profesionales del panel y administra sus tokens.
type AuthService struct {
	logger        *zap.Logger
	professionals repository.ProfessionalRepository
	tokens        *JWTService
	loginLimiter  RateLimiter
}

func NewAuthService(logger *zap.Logger, professionals repository.ProfessionalRepository, tokens *JWTService, loginLimiter RateLimiter) *AuthService {
	return &AuthService{
		logger:        logger,
		professionals: professionals,
		tokens:        tokens,
		loginLimiter:  loginLimiter,
	}
}

func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (TokenPair, error) {
	if s.professionals == nil || s.tokens == nil {
		return TokenPair{}, errors.New("auth service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return TokenPair{}, ErrInvalidCredentials
	}

	if s.loginLimiter != nil && !s.loginLimiter.Allow(emailAddr) {
		return TokenPair{}, ErrRateLimited
	}

	professional, err := s.professionals.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}
	if professional.PasswordHash == "" {
		return TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(professional.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	if s.logger != nil {
		s.logger.Info("professional login", zap.String("professional_id", professional.ID))
	}
	return s.tokens.GeneratePair(professional)
}

func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	if s.tokens == nil {
		return TokenPair{}, errors.New("auth service not configured")
	}
	return s.tokens.RefreshPair(refreshToken)
}

func (s *AuthService) Logout(refreshToken string) error {
	if s.tokens == nil {
		return errors.New("auth service not configured")
	}
	return s.tokens.RevokeRefresh(refreshToken)
}

// EnsureSeed crea la cuenta inicial del panel si no existe. Con email o
// contraseña vacíos no hace nada, para que un ambiente sin seed arranque
// igual.
func (s *AuthService) EnsureSeed(ctx context.Context, emailAddr, password, nome string) error {
	if s.professionals == nil {
		return errors.New("auth service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return nil
	}

	_, err := s.professionals.GetByEmail(ctx, emailAddr)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	professional := domain.Professional{
		ID:           uuid.NewString(),
		Email:        emailAddr,
		Nome:         strings.TrimSpace(nome),
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.professionals.Create(ctx, professional); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("seed professional created", zap.String("email", emailAddr))
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
