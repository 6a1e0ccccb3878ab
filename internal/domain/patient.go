package domain

import (
	"time"

	"github.com/google/uuid"

	"nutrisigno-api/internal/scoring"
)

// Estados del ciclo de validación de un paciente.
const (
	StatusPendingValidation = "pendente_validacao"
	StatusValidated         = "validado"
	StatusArchived          = "arquivado"
)

// ValidStatus indica si un estado pertenece al ciclo de validación conocido.
func ValidStatus(status string) bool {
	switch status {
	case StatusPendingValidation, StatusValidated, StatusArchived:
		return true
	}
	return false
}

// Patient representa un registro de anamnesis: las respuestas crudas del
// cuestionario más los puntajes de pilares derivados de ellas.
type Patient struct {
	PacID          uuid.UUID            `json:"pac_id"`
	Nome           string               `json:"nome"`
	Email          string               `json:"email,omitempty"`
	TelefoneNorm   string               `json:"telefone_norm"`
	DataNascimento time.Time            `json:"data_nascimento"`
	Respostas      map[string]any       `json:"respostas"`
	Pilares        scoring.PillarScores `json:"pilares"`
	Status         string               `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// SimilarPatient es un vecino por distancia coseno entre vectores de pilares.
type SimilarPatient struct {
	PacID    uuid.UUID `json:"pac_id"`
	Nome     string    `json:"nome"`
	Distance float64   `json:"distance"`
}
