package domain

import "time"

// Valores de género aceptados por la calculadora de grasa corporal.
const (
	GeneroFeminino  = "feminino"
	GeneroMasculino = "masculino"
)

// LeadOrigemCalculadora marca los leads capturados por la calculadora pública.
const LeadOrigemCalculadora = "calculadora_gordura_marinha"

// BodyFatLead es un contacto captado por la calculadora de grasa corporal,
// junto con las medidas usadas y el resultado estimado.
type BodyFatLead struct {
	ID               int64     `json:"id"`
	Nome             string    `json:"nome"`
	Celular          string    `json:"celular"`
	Genero           string    `json:"genero"`
	ResultadoGordura float64   `json:"resultado_gordura"`
	AlturaCm         float64   `json:"altura_cm"`
	CinturaCm        *float64  `json:"cintura_cm,omitempty"`
	QuadrilCm        *float64  `json:"quadril_cm,omitempty"`
	AbdomenCm        *float64  `json:"abdomen_cm,omitempty"`
	PescocoCm        float64   `json:"pescoco_cm"`
	Origem           string    `json:"origem"`
	CreatedAt        time.Time `json:"created_at"`
}
