package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/repository"
)

// ErrInvalidStatus indica un status fuera del ciclo de validación.
var ErrInvalidStatus = errors.New("invalid status")

// PatientService expone las operaciones del panel de profesionales sobre
// los pacientes registrados.
type PatientService struct {
	logger   *zap.Logger
	patients repository.PatientRepository
	results  *ResultsService
}

func NewPatientService(logger *zap.Logger, patients repository.PatientRepository, results *ResultsService) *PatientService {
	return &PatientService{
		logger:   logger,
		patients: patients,
		results:  results,
	}
}

func (s *PatientService) List(ctx context.Context, status string, limit, offset int) ([]domain.Patient, error) {
	if s.patients == nil {
		return nil, errors.New("patient service not configured")
	}
	if status != "" && !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.patients.List(ctx, status, limit, offset)
}

func (s *PatientService) Get(ctx context.Context, pacID uuid.UUID) (domain.Patient, error) {
	if s.patients == nil {
		return domain.Patient{}, errors.New("patient service not configured")
	}
	patient, err := s.patients.GetByPacID(ctx, pacID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Patient{}, ErrPatientNotFound
	}
	return patient, err
}

func (s *PatientService) UpdateStatus(ctx context.Context, pacID uuid.UUID, status string) error {
	if s.patients == nil {
		return errors.New("patient service not configured")
	}
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.patients.UpdateStatus(ctx, pacID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPatientNotFound
		}
		return err
	}
	if s.logger != nil {
		s.logger.Info("patient status updated",
			zap.String("pac_id", pacID.String()),
			zap.String("status", status),
		)
	}
	if s.results != nil {
		s.results.Invalidate(ctx, pacID)
	}
	return nil
}

// Similar devuelve los vecinos más cercanos por vector de pilares. Un
// paciente con puntajes incompletos existe pero no tiene vecinos.
func (s *PatientService) Similar(ctx context.Context, pacID uuid.UUID, k int) ([]domain.SimilarPatient, error) {
	if s.patients == nil {
		return nil, errors.New("patient service not configured")
	}
	if _, err := s.patients.GetByPacID(ctx, pacID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return s.patients.SimilarByPillars(ctx, pacID, k)
}
