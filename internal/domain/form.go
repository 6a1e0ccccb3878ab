package domain

// FormSubmission es el payload de anamnesis tal como llega del formulario
// público. Los campos numéricos opcionales usan punteros para distinguir
// "no informado" de cero; los campos desconocidos quedan en Extras.
type FormSubmission struct {
	Nome                   string         `json:"nome"`
	Email                  string         `json:"email"`
	Telefone               string         `json:"telefone"`
	DataNascimento         string         `json:"data_nascimento"`
	HoraNascimento         string         `json:"hora_nascimento,omitempty"`
	LocalNascimento        string         `json:"local_nascimento,omitempty"`
	Signo                  string         `json:"signo,omitempty"`
	Peso                   *float64       `json:"peso,omitempty"`
	Altura                 *float64       `json:"altura,omitempty"`
	HistoricoSaude         string         `json:"historico_saude,omitempty"`
	ConsumoAgua            *float64       `json:"consumo_agua,omitempty"`
	NivelAtividade         string         `json:"nivel_atividade,omitempty"`
	TipoFezes              string         `json:"tipo_fezes,omitempty"`
	CorUrina               string         `json:"cor_urina,omitempty"`
	Motivacao              *int           `json:"motivacao,omitempty"`
	Estresse               *int           `json:"estresse,omitempty"`
	HabitosAlimentares     string         `json:"habitos_alimentares,omitempty"`
	EnergiaDiaria          string         `json:"energia_diaria,omitempty"`
	ImpulsividadeAlimentar *int           `json:"impulsividade_alimentar,omitempty"`
	RotinaAlimentar        *int           `json:"rotina_alimentar,omitempty"`
	Observacoes            string         `json:"observacoes,omitempty"`
	Extras                 map[string]any `json:"extras,omitempty"`
}
