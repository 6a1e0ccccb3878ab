package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/service"
)

type mockProfessionalRepo struct {
	byEmail map[string]domain.Professional
}

func newMockProfessionalRepo() *mockProfessionalRepo {
	return &mockProfessionalRepo{byEmail: make(map[string]domain.Professional)}
}

func (m *mockProfessionalRepo) Create(_ context.Context, professional domain.Professional) error {
	if _, ok := m.byEmail[professional.Email]; ok {
		return nil
	}
	m.byEmail[professional.Email] = professional
	return nil
}

func (m *mockProfessionalRepo) GetByEmail(_ context.Context, email string) (domain.Professional, error) {
	professional, ok := m.byEmail[email]
	if !ok {
		return domain.Professional{}, pgx.ErrNoRows
	}
	return professional, nil
}

func seedProfessional(t *testing.T, repo *mockProfessionalRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo.byEmail[email] = domain.Professional{
		ID:           "pro-1",
		Email:        email,
		Nome:         "Dra. Clara",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
}

func newAuthService(repo *mockProfessionalRepo, limiter service.RateLimiter) *service.AuthService {
	jwtSvc := service.NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore())
	return service.NewAuthService(zap.NewNop(), repo, jwtSvc, limiter)
}

func setupAuthRouter(authSvc *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(zap.NewNop(), authSvc)
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/auth/refresh", h.RefreshToken)
	r.POST("/api/v1/auth/logout", h.Logout)
	return r
}

type tokensResponse struct {
	Tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	} `json:"tokens"`
}

func TestAuthHandlerLogin_Success(t *testing.T) {
	repo := newMockProfessionalRepo()
	seedProfessional(t, repo, "clara@example.com", "segredo123")
	r := setupAuthRouter(newAuthService(repo, nil))

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "clara@example.com",
		"password": "segredo123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp tokensResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Fatal("expected both tokens in response")
	}
	if resp.Tokens.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Fatalf("unexpected expires_in %d", resp.Tokens.ExpiresIn)
	}
}

func TestAuthHandlerLogin_WrongPassword(t *testing.T) {
	repo := newMockProfessionalRepo()
	seedProfessional(t, repo, "clara@example.com", "segredo123")
	r := setupAuthRouter(newAuthService(repo, nil))

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "clara@example.com",
		"password": "errada",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthHandlerLogin_RateLimited(t *testing.T) {
	repo := newMockProfessionalRepo()
	seedProfessional(t, repo, "clara@example.com", "segredo123")
	r := setupAuthRouter(newAuthService(repo, &mockLimiter{allow: false}))

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "clara@example.com",
		"password": "segredo123",
	})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
}

func TestAuthHandlerLogin_InvalidRequest(t *testing.T) {
	repo := newMockProfessionalRepo()
	r := setupAuthRouter(newAuthService(repo, nil))

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "not-an-email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestAuthHandlerRefreshAndLogout(t *testing.T) {
	repo := newMockProfessionalRepo()
	seedProfessional(t, repo, "clara@example.com", "segredo123")
	r := setupAuthRouter(newAuthService(repo, nil))

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "clara@example.com",
		"password": "segredo123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d", rec.Code)
	}
	var login tokensResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	rec = performRequest(r, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": login.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: expected status 200, got %d", rec.Code)
	}
	var refreshed tokensResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &refreshed); err != nil {
		t.Fatalf("decode refresh: %v", err)
	}
	if refreshed.Tokens.RefreshToken == login.Tokens.RefreshToken {
		t.Fatal("expected refresh to rotate the token")
	}

	// El refresh consumido no puede reutilizarse.
	rec = performRequest(r, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": login.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("reuse: expected status 401, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/api/v1/auth/logout", map[string]string{
		"refresh_token": refreshed.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected status 204, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": refreshed.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("after logout: expected status 401, got %d", rec.Code)
	}
}
