package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/service"
)

type mockPatientRepo struct {
	patients map[uuid.UUID]domain.Patient
	byKey    map[string]uuid.UUID
	similars []domain.SimilarPatient
	upserts  int
	err      error
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{
		patients: make(map[uuid.UUID]domain.Patient),
		byKey:    make(map[string]uuid.UUID),
	}
}

func patientKey(phoneNorm string, dob time.Time) string {
	return phoneNorm + "|" + dob.Format("2006-01-02")
}

func (m *mockPatientRepo) Upsert(_ context.Context, patient domain.Patient) (domain.Patient, error) {
	if m.err != nil {
		return domain.Patient{}, m.err
	}
	m.upserts++
	now := time.Now().UTC()
	key := patientKey(patient.TelefoneNorm, patient.DataNascimento)
	if id, ok := m.byKey[key]; ok {
		existing := m.patients[id]
		if patient.Nome != "" {
			existing.Nome = patient.Nome
		}
		if patient.Email != "" {
			existing.Email = patient.Email
		}
		existing.Respostas = patient.Respostas
		existing.Pilares = patient.Pilares
		existing.UpdatedAt = now
		m.patients[id] = existing
		return existing, nil
	}
	patient.PacID = uuid.New()
	if patient.Status == "" {
		patient.Status = domain.StatusPendingValidation
	}
	patient.CreatedAt = now
	patient.UpdatedAt = now
	m.patients[patient.PacID] = patient
	m.byKey[key] = patient.PacID
	return patient, nil
}

func (m *mockPatientRepo) GetByPacID(_ context.Context, pacID uuid.UUID) (domain.Patient, error) {
	if m.err != nil {
		return domain.Patient{}, m.err
	}
	patient, ok := m.patients[pacID]
	if !ok {
		return domain.Patient{}, pgx.ErrNoRows
	}
	return patient, nil
}

func (m *mockPatientRepo) GetByPhoneDob(_ context.Context, phoneNorm string, dob time.Time) (domain.Patient, error) {
	if m.err != nil {
		return domain.Patient{}, m.err
	}
	id, ok := m.byKey[patientKey(phoneNorm, dob)]
	if !ok {
		return domain.Patient{}, pgx.ErrNoRows
	}
	return m.patients[id], nil
}

func (m *mockPatientRepo) List(_ context.Context, status string, _, _ int) ([]domain.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Patient
	for _, patient := range m.patients {
		if status != "" && patient.Status != status {
			continue
		}
		out = append(out, patient)
	}
	return out, nil
}

func (m *mockPatientRepo) UpdateStatus(_ context.Context, pacID uuid.UUID, status string) error {
	if m.err != nil {
		return m.err
	}
	patient, ok := m.patients[pacID]
	if !ok {
		return pgx.ErrNoRows
	}
	patient.Status = status
	patient.UpdatedAt = time.Now().UTC()
	m.patients[pacID] = patient
	return nil
}

func (m *mockPatientRepo) SimilarByPillars(_ context.Context, _ uuid.UUID, _ int) ([]domain.SimilarPatient, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.similars, nil
}

func setupIntakeRouter(intakeSvc *service.IntakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewIntakeHandler(zap.NewNop(), intakeSvc)
	r.POST("/api/v1/questionnaires", h.Submit)
	r.GET("/api/v1/form-schema", h.FormSchema)
	return r
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func questionnairePayload() map[string]any {
	return map[string]any{
		"nome":              "Maria Silva",
		"email":             "maria@example.com",
		"telefone":          "+55 (11) 99999-8888",
		"data_nascimento":   "1990-05-10",
		"peso":              68.5,
		"altura":            165.0,
		"consumo_agua":      2.0,
		"signo":             "Leão",
		"nivel_energia_dia": "Alta",
		"qualidade_sono":    "Moderada",
		"horas_sono":        8.0,
	}
}

func TestIntakeHandlerSubmit_Success(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewIntakeService(zap.NewNop(), repo, nil, nil)
	r := setupIntakeRouter(svc)

	rec := performRequest(r, http.MethodPost, "/api/v1/questionnaires", questionnairePayload())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		PacID   string          `json:"pac_id"`
		Pilares map[string]*int `json:"pilares"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := uuid.Parse(resp.PacID); err != nil {
		t.Fatalf("expected a valid pac_id, got %q", resp.PacID)
	}
	if score := resp.Pilares["Energia"]; score == nil || *score != 75 {
		t.Fatalf("expected Energia 75, got %v", score)
	}
	if score := resp.Pilares["Sono"]; score == nil || *score != 75 {
		t.Fatalf("expected Sono 75, got %v", score)
	}
	if score := resp.Pilares["Hidratacao"]; score == nil || *score != 100 {
		t.Fatalf("expected Hidratacao 100, got %v", score)
	}
	if resp.Pilares["Emocao"] != nil {
		t.Fatalf("expected Emocao null, got %d", *resp.Pilares["Emocao"])
	}
	if repo.upserts != 1 {
		t.Fatalf("expected 1 upsert, got %d", repo.upserts)
	}
}

func TestIntakeHandlerSubmit_ValidationErrors(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewIntakeService(zap.NewNop(), repo, nil, nil)
	r := setupIntakeRouter(svc)

	payload := questionnairePayload()
	delete(payload, "telefone")
	rec := performRequest(r, http.MethodPost, "/api/v1/questionnaires", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "Telefone é obrigatório e deve conter apenas números." {
		t.Fatalf("unexpected errors: %v", resp.Errors)
	}
	if repo.upserts != 0 {
		t.Fatalf("expected no upsert, got %d", repo.upserts)
	}
}

func TestIntakeHandlerSubmit_MalformedJSON(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewIntakeService(zap.NewNop(), repo, nil, nil)
	r := setupIntakeRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/questionnaires", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestIntakeHandlerFormSchema(t *testing.T) {
	repo := newMockPatientRepo()
	svc := service.NewIntakeService(zap.NewNop(), repo, nil, nil)
	r := setupIntakeRouter(svc)

	rec := performRequest(r, http.MethodGet, "/api/v1/form-schema", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Secoes []struct {
			Pilar     string `json:"pilar"`
			Perguntas []struct {
				ID string `json:"id"`
			} `json:"perguntas"`
		} `json:"secoes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Secoes) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(resp.Secoes))
	}
	if resp.Secoes[0].Pilar != "Energia" {
		t.Fatalf("expected first section Energia, got %q", resp.Secoes[0].Pilar)
	}
	total := 0
	for _, section := range resp.Secoes {
		total += len(section.Perguntas)
	}
	if total != 19 {
		t.Fatalf("expected 19 questions, got %d", total)
	}
}
