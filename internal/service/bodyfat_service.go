package service

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/repository"
)

var (
	nomeRE        = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s]+$`)
	celularDigits = regexp.MustCompile(`\D`)
)

// BodyFatInput son los datos de la calculadora pública. Las medidas en
// centímetros; cintura y quadril solo aplican al cálculo femenino,
// abdômen al masculino.
type BodyFatInput struct {
	Nome      string
	Celular   string
	Genero    string
	AlturaCm  float64
	PescocoCm float64
	CinturaCm *float64
	QuadrilCm *float64
	AbdomenCm *float64
}

// BodyFatService calcula el porcentaje de grasa corporal por el método de
// la Marina de los EE. UU. y registra el lead de cada cálculo.
type BodyFatService struct {
	logger *zap.Logger
	leads  repository.LeadRepository
}

func NewBodyFatService(logger *zap.Logger, leads repository.LeadRepository) *BodyFatService {
	return &BodyFatService{logger: logger, leads: leads}
}

// Register valida la entrada, calcula el porcentaje y persiste el lead.
// Los errores de validación llegan como *domain.ValidationError.
func (s *BodyFatService) Register(ctx context.Context, input BodyFatInput) (domain.BodyFatLead, error) {
	if s.leads == nil {
		return domain.BodyFatLead{}, errors.New("body fat service not configured")
	}

	celular, msgs := validateBodyFatInput(input)
	if len(msgs) > 0 {
		return domain.BodyFatLead{}, &domain.ValidationError{Messages: msgs}
	}

	resultado, err := CalculateBodyFat(input.Genero, input.AlturaCm, input.PescocoCm, input.CinturaCm, input.QuadrilCm, input.AbdomenCm)
	if err != nil {
		return domain.BodyFatLead{}, &domain.ValidationError{Messages: []string{err.Error()}}
	}

	lead := domain.BodyFatLead{
		Nome:             strings.TrimSpace(input.Nome),
		Celular:          celular,
		Genero:           input.Genero,
		ResultadoGordura: resultado,
		AlturaCm:         input.AlturaCm,
		CinturaCm:        input.CinturaCm,
		QuadrilCm:        input.QuadrilCm,
		AbdomenCm:        input.AbdomenCm,
		PescocoCm:        input.PescocoCm,
		Origem:           domain.LeadOrigemCalculadora,
	}
	saved, err := s.leads.Create(ctx, lead)
	if err != nil {
		return domain.BodyFatLead{}, err
	}
	if s.logger != nil {
		s.logger.Info("body fat lead saved",
			zap.Int64("lead_id", saved.ID),
			zap.String("genero", saved.Genero),
		)
	}
	return saved, nil
}

// CalculateBodyFat aplica la fórmula de la Marina Americana. Femenino:
// 163.205*log10(cintura+quadril-pescoco) - 97.684*log10(altura) - 78.387.
// Masculino: 86.010*log10(abdomen-pescoco) - 70.041*log10(altura) + 36.76.
func CalculateBodyFat(genero string, alturaCm, pescocoCm float64, cinturaCm, quadrilCm, abdomenCm *float64) (float64, error) {
	if genero == domain.GeneroFeminino {
		if cinturaCm == nil || quadrilCm == nil {
			return 0, errors.New("Medidas de cintura e quadril são obrigatórias para o cálculo feminino.")
		}
		base := *cinturaCm + *quadrilCm - pescocoCm
		if base <= 0 {
			return 0, errors.New("As medidas devem resultar em um valor válido para log10.")
		}
		return 163.205*math.Log10(base) - 97.684*math.Log10(alturaCm) - 78.387, nil
	}

	if abdomenCm == nil {
		return 0, errors.New("Medida de abdômen é obrigatória para o cálculo masculino.")
	}
	base := *abdomenCm - pescocoCm
	if base <= 0 {
		return 0, errors.New("As medidas devem resultar em um valor válido para log10.")
	}
	return 86.010*math.Log10(base) - 70.041*math.Log10(alturaCm) + 36.76, nil
}

// validateBodyFatInput devuelve el celular canónico (11 dígitos) y los
// mensajes de validación en portugués.
func validateBodyFatInput(input BodyFatInput) (string, []string) {
	var msgs []string

	nome := strings.TrimSpace(input.Nome)
	if len([]rune(nome)) < 3 || len([]rune(nome)) > 80 {
		msgs = append(msgs, "Informe um nome válido (mínimo 3 caracteres).")
	} else if !nomeRE.MatchString(nome) {
		msgs = append(msgs, "Informe um nome válido (apenas letras e espaços).")
	}

	digits := celularDigits.ReplaceAllString(input.Celular, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if len(digits) != 11 {
		msgs = append(msgs, "Informe um celular válido com DDD (11 dígitos).")
	}

	if input.Genero != domain.GeneroFeminino && input.Genero != domain.GeneroMasculino {
		msgs = append(msgs, "Gênero deve ser feminino ou masculino.")
	}

	if input.AlturaCm <= 0 {
		msgs = append(msgs, "Altura deve ser um número válido em cm.")
	}
	if input.PescocoCm <= 0 {
		msgs = append(msgs, "Pescoço deve ser um número válido em cm.")
	}
	if input.Genero == domain.GeneroFeminino {
		if input.CinturaCm != nil && *input.CinturaCm <= 0 {
			msgs = append(msgs, "Cintura deve ser um número válido em cm.")
		}
		if input.QuadrilCm != nil && *input.QuadrilCm <= 0 {
			msgs = append(msgs, "Quadril deve ser um número válido em cm.")
		}
	}
	if input.Genero == domain.GeneroMasculino {
		if input.AbdomenCm != nil && *input.AbdomenCm <= 0 {
			msgs = append(msgs, "Abdômen deve ser um número válido em cm.")
		}
	}

	return digits, msgs
}
