package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/scoring"
	"nutrisigno-api/internal/service"
)

type mockLimiter struct {
	allow   bool
	lastKey string
}

func (m *mockLimiter) Allow(key string) bool {
	m.lastKey = key
	return m.allow
}

func intPtr(v int) *int { return &v }

func seedResultsPatient(t *testing.T, repo *mockPatientRepo) domain.Patient {
	t.Helper()
	saved, err := repo.Upsert(context.Background(), domain.Patient{
		Nome:           "Maria Silva",
		Email:          "maria@example.com",
		TelefoneNorm:   "5511999998888",
		DataNascimento: time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		Respostas: map[string]any{
			"peso":         70.0,
			"altura":       175.0,
			"consumo_agua": 2.5,
		},
		Pilares: scoring.PillarScores{
			scoring.PillarEnergia:    intPtr(75),
			scoring.PillarDigestao:   intPtr(80),
			scoring.PillarSono:       intPtr(75),
			scoring.PillarHidratacao: intPtr(100),
			scoring.PillarEmocao:     intPtr(55),
			scoring.PillarRotina:     intPtr(70),
		},
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return saved
}

func setupResultsRouter(resultsSvc *service.ResultsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewResultsHandler(zap.NewNop(), resultsSvc)
	r.POST("/api/v1/results/lookup", h.Lookup)
	r.GET("/api/v1/results/:pacId", h.GetByPacID)
	return r
}

func TestResultsHandlerLookup_Success(t *testing.T) {
	repo := newMockPatientRepo()
	seeded := seedResultsPatient(t, repo)
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodPost, "/api/v1/results/lookup", map[string]string{
		"telefone":        "+55 (11) 99999-8888",
		"data_nascimento": "10/05/1990",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Resultado struct {
			PacID   string          `json:"pac_id"`
			Nome    string          `json:"nome"`
			Status  string          `json:"status"`
			Pilares map[string]*int `json:"pilares"`
		} `json:"resultado"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Resultado.PacID != seeded.PacID.String() {
		t.Fatalf("expected pac_id %s, got %s", seeded.PacID, resp.Resultado.PacID)
	}
	if resp.Resultado.Nome != "Maria Silva" {
		t.Fatalf("unexpected nome %q", resp.Resultado.Nome)
	}
	if resp.Resultado.Status != domain.StatusPendingValidation {
		t.Fatalf("unexpected status %q", resp.Resultado.Status)
	}
	if score := resp.Resultado.Pilares["Energia"]; score == nil || *score != 75 {
		t.Fatalf("expected Energia 75, got %v", score)
	}
}

func TestResultsHandlerLookup_AcceptsISODate(t *testing.T) {
	repo := newMockPatientRepo()
	seedResultsPatient(t, repo)
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodPost, "/api/v1/results/lookup", map[string]string{
		"telefone":        "5511999998888",
		"data_nascimento": "1990-05-10",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestResultsHandlerLookup_NotFound(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodPost, "/api/v1/results/lookup", map[string]string{
		"telefone":        "5511999998888",
		"data_nascimento": "10/05/1990",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Não encontramos nenhum cadastro com esses dados." {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestResultsHandlerLookup_RateLimited(t *testing.T) {
	repo := newMockPatientRepo()
	seedResultsPatient(t, repo)
	limiter := &mockLimiter{allow: false}
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, limiter)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodPost, "/api/v1/results/lookup", map[string]string{
		"telefone":        "+55 (11) 99999-8888",
		"data_nascimento": "10/05/1990",
	})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Muitas tentativas. Aguarde alguns minutos e tente novamente." {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
	if limiter.lastKey != "5511999998888" {
		t.Fatalf("expected limiter keyed by canonical phone, got %q", limiter.lastKey)
	}
}

func TestResultsHandlerLookup_InvalidDate(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodPost, "/api/v1/results/lookup", map[string]string{
		"telefone":        "5511999998888",
		"data_nascimento": "texto",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Data inválida. Use o formato DD/MM/AAAA." {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestResultsHandlerLookup_MissingFields(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodPost, "/api/v1/results/lookup", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestResultsHandlerGet_Success(t *testing.T) {
	repo := newMockPatientRepo()
	seeded := seedResultsPatient(t, repo)
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodGet, "/api/v1/results/"+seeded.PacID.String(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestResultsHandlerGet_InvalidID(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodGet, "/api/v1/results/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestResultsHandlerGet_NotFound(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewResultsService(zap.NewNop(), repo, nil, 0, nil)
	r := setupResultsRouter(svc)

	rec := performRequest(r, http.MethodGet, "/api/v1/results/"+uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
