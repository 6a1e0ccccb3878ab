package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/intake"
	"nutrisigno-api/internal/repository"
	"nutrisigno-api/internal/scoring"
)

// ErrPatientNotFound indica que no existe paciente para los datos dados.
var ErrPatientNotFound = errors.New("patient not found")

const resultsCachePrefix = "results:"

// PatientResults es el panel de resultados de un paciente: puntajes de
// pilares saneados más los insights derivados de sus respuestas.
type PatientResults struct {
	PacID     uuid.UUID            `json:"pac_id"`
	Nome      string               `json:"nome,omitempty"`
	Status    string               `json:"status"`
	Pilares   scoring.PillarScores `json:"pilares"`
	Insights  domain.Insights      `json:"insights"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// cachedResults es la forma que viaja por Redis. Los pilares se guardan
// crudos y pasan por el saneador en cada lectura, igual que lo persistido.
type cachedResults struct {
	PacID     string          `json:"pac_id"`
	Nome      string          `json:"nome"`
	Status    string          `json:"status"`
	Pilares   map[string]any  `json:"pilares"`
	Insights  domain.Insights `json:"insights"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type resultsCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ResultsService arma el panel de resultados con cache read-through.
type ResultsService struct {
	logger        *zap.Logger
	patients      repository.PatientRepository
	cache         resultsCache
	cacheTTL      time.Duration
	lookupLimiter RateLimiter
}

func NewResultsService(logger *zap.Logger, patients repository.PatientRepository, cache *redis.Client, cacheTTL time.Duration, lookupLimiter RateLimiter) *ResultsService {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	svc := &ResultsService{
		logger:        logger,
		patients:      patients,
		cacheTTL:      cacheTTL,
		lookupLimiter: lookupLimiter,
	}
	if cache != nil {
		svc.cache = cache
	}
	return svc
}

// GetByPacID devuelve el panel de un paciente, sirviendo desde cache
// cuando hay una entrada fresca.
func (s *ResultsService) GetByPacID(ctx context.Context, pacID uuid.UUID) (PatientResults, error) {
	if s.patients == nil {
		return PatientResults{}, errors.New("results service not configured")
	}

	if cached, ok := s.readCache(ctx, pacID); ok {
		return cached, nil
	}

	patient, err := s.patients.GetByPacID(ctx, pacID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PatientResults{}, ErrPatientNotFound
		}
		return PatientResults{}, err
	}

	results := s.assemble(patient)
	s.writeCache(ctx, results)
	return results, nil
}

// Lookup busca el panel por teléfono y fecha de nacimiento, la llave de
// acceso sin contraseña del paciente. Cada intento consume cuota del
// rate limiter asociado al teléfono.
func (s *ResultsService) Lookup(ctx context.Context, phone, dob string) (PatientResults, error) {
	if s.patients == nil {
		return PatientResults{}, errors.New("results service not configured")
	}

	phoneNorm := intake.CanonPhone(phone)
	if s.lookupLimiter != nil && !s.lookupLimiter.Allow(phoneNorm) {
		return PatientResults{}, ErrRateLimited
	}

	dobNorm, err := intake.CanonBirthDate(dob)
	if err != nil || dobNorm == "" {
		return PatientResults{}, &domain.ValidationError{Messages: []string{"Data inválida. Use o formato DD/MM/AAAA."}}
	}
	dobTime, err := time.Parse(intake.BirthDateLayout, dobNorm)
	if err != nil {
		return PatientResults{}, &domain.ValidationError{Messages: []string{"Data inválida. Use o formato DD/MM/AAAA."}}
	}

	patient, err := s.patients.GetByPhoneDob(ctx, phoneNorm, dobTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PatientResults{}, ErrPatientNotFound
		}
		return PatientResults{}, err
	}

	results := s.assemble(patient)
	s.writeCache(ctx, results)
	return results, nil
}

// Invalidate descarta la entrada de cache de un paciente. Se llama tras
// cada reenvío del formulario o cambio de status.
func (s *ResultsService) Invalidate(ctx context.Context, pacID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, resultsCachePrefix+pacID.String()).Err(); err != nil && s.logger != nil {
		s.logger.Warn("results cache invalidate failed", zap.Error(err), zap.String("pac_id", pacID.String()))
	}
}

func (s *ResultsService) assemble(patient domain.Patient) PatientResults {
	return PatientResults{
		PacID:     patient.PacID,
		Nome:      patient.Nome,
		Status:    patient.Status,
		Pilares:   patient.Pilares,
		Insights:  ComputeInsights(patient.Respostas),
		UpdatedAt: patient.UpdatedAt,
	}
}

func (s *ResultsService) readCache(ctx context.Context, pacID uuid.UUID) (PatientResults, bool) {
	if s.cache == nil {
		return PatientResults{}, false
	}
	raw, err := s.cache.Get(ctx, resultsCachePrefix+pacID.String()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logger != nil {
			s.logger.Warn("results cache read failed", zap.Error(err), zap.String("pac_id", pacID.String()))
		}
		return PatientResults{}, false
	}

	var env cachedResults
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return PatientResults{}, false
	}
	id, err := uuid.Parse(env.PacID)
	if err != nil {
		return PatientResults{}, false
	}
	return PatientResults{
		PacID:     id,
		Nome:      env.Nome,
		Status:    env.Status,
		Pilares:   scoring.SanitizeScores(env.Pilares),
		Insights:  env.Insights,
		UpdatedAt: env.UpdatedAt,
	}, true
}

func (s *ResultsService) writeCache(ctx context.Context, results PatientResults) {
	if s.cache == nil {
		return
	}
	env := cachedResults{
		PacID:     results.PacID.String(),
		Nome:      results.Nome,
		Status:    results.Status,
		Pilares:   pilaresAnyMap(results.Pilares),
		Insights:  results.Insights,
		UpdatedAt: results.UpdatedAt,
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, resultsCachePrefix+results.PacID.String(), payload, s.cacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Warn("results cache write failed", zap.Error(err), zap.String("pac_id", results.PacID.String()))
	}
}

func pilaresAnyMap(scores scoring.PillarScores) map[string]any {
	out := make(map[string]any, len(scores))
	for pillar, value := range scores {
		if value == nil {
			out[string(pillar)] = nil
			continue
		}
		out[string(pillar)] = *value
	}
	return out
}
