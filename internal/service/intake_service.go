package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/email"
	"nutrisigno-api/internal/intake"
	"nutrisigno-api/internal/repository"
	"nutrisigno-api/internal/scoring"
)

// IntakeService coordina el ciclo completo del formulario de anamnesis:
// normalizar, validar, puntuar pilares y persistir.
type IntakeService struct {
	logger      *zap.Logger
	patients    repository.PatientRepository
	results     *ResultsService
	emailSender email.Sender
}

func NewIntakeService(logger *zap.Logger, patients repository.PatientRepository, results *ResultsService, emailSender email.Sender) *IntakeService {
	return &IntakeService{
		logger:      logger,
		patients:    patients,
		results:     results,
		emailSender: emailSender,
	}
}

// Process recibe el payload crudo del formulario y devuelve el paciente
// persistido con sus puntajes de pilares ya calculados. Los errores de
// validación llegan como *domain.ValidationError con mensajes en
// portugués para el usuario final.
func (s *IntakeService) Process(ctx context.Context, payload map[string]any) (domain.Patient, error) {
	if s.patients == nil {
		return domain.Patient{}, errors.New("intake service not configured")
	}

	form := intake.FromPayload(payload)
	normalized, err := intake.Normalize(form)
	if err != nil {
		return domain.Patient{}, &domain.ValidationError{Messages: []string{err.Error()}}
	}
	if s.logger != nil {
		s.logger.Info("intake normalized",
			zap.String("phone", normalized.Telefone),
			zap.String("dob", normalized.DataNascimento),
		)
	}

	if msgs := intake.Validate(normalized); len(msgs) > 0 {
		if s.logger != nil {
			s.logger.Info("intake validation failed", zap.Int("count", len(msgs)))
		}
		return domain.Patient{}, &domain.ValidationError{Messages: msgs}
	}

	respostas := intake.Respostas(normalized)
	scores := scoring.CalculatePillars(respostas)

	dob, err := time.Parse(intake.BirthDateLayout, normalized.DataNascimento)
	if err != nil {
		return domain.Patient{}, &domain.ValidationError{Messages: []string{"Data de nascimento inválida. Use DD/MM/AAAA ou YYYY-MM-DD."}}
	}

	patient := domain.Patient{
		Nome:           normalized.Nome,
		Email:          normalized.Email,
		TelefoneNorm:   normalized.Telefone,
		DataNascimento: dob,
		Respostas:      respostas,
		Pilares:        scores,
	}

	saved, err := s.patients.Upsert(ctx, patient)
	if err != nil {
		return domain.Patient{}, err
	}
	if s.logger != nil {
		s.logger.Info("intake saved", zap.String("pac_id", saved.PacID.String()))
	}

	if s.results != nil {
		s.results.Invalidate(ctx, saved.PacID)
	}

	// Si el correo de confirmación falla, el registro ya quedó persistido.
	if s.emailSender != nil && saved.Email != "" {
		if err := s.emailSender.SendIntakeConfirmation(ctx, saved.Email, saved.Nome, saved.PacID.String()); err != nil {
			if s.logger != nil {
				s.logger.Warn("intake confirmation email failed", zap.Error(err), zap.String("pac_id", saved.PacID.String()))
			}
		}
	}

	return saved, nil
}
