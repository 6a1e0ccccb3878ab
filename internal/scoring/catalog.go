package scoring

import (
	"math"
	"strings"
)

/*
========================
 Catálogo de preguntas
========================
*/

// QuestionType clasifica cómo se captura la respuesta en el formulario.
type QuestionType string

const (
	QuestionLikert         QuestionType = "likert"
	QuestionNumeric        QuestionType = "numeric"
	QuestionMultipleChoice QuestionType = "multiple_choice"
)

// Question es la definición inmutable de una pregunta del catálogo.
type Question struct {
	Text       string
	Type       QuestionType
	Options    []string
	Normalizer Normalizer
}

// Escalas likert compartidas por varias preguntas.
var (
	frequency5 = []string{"Nunca", "Raramente", "Às vezes", "Frequentemente", "Quase sempre"}
	intensity5 = []string{"Muito baixa", "Baixa", "Moderada", "Alta", "Muito alta"}
)

// likertMapping distribuye las opciones uniformemente entre 0 y 100:
// la primera vale 0, la última 100.
func likertMapping(options []string) map[string]float64 {
	step := 100.0
	if len(options) > 1 {
		step = 100.0 / float64(len(options)-1)
	}
	mapping := make(map[string]float64, len(options))
	for i, option := range options {
		mapping[strings.ToLower(option)] = math.Round(float64(i) * step)
	}
	return mapping
}

// questionCatalog se construye una vez al cargar el paquete y nunca se muta.
// Las grafías con y sin acento son claves explícitas: el motor no pliega
// acentos, así que cada variante aceptada debe estar declarada.
var questionCatalog = map[string]Question{
	"nivel_energia_dia": {
		Text:       "Como você avalia seu nível de energia ao longo do dia?",
		Type:       QuestionLikert,
		Options:    intensity5,
		Normalizer: NewCategorical(likertMapping(intensity5)),
	},
	"cansaco_frequente": {
		Text:    "Com que frequência você se sente cansada ao longo do dia?",
		Type:    QuestionLikert,
		Options: frequency5,
		Normalizer: NewCategorical(map[string]float64{
			"nunca":          100,
			"raramente":      85,
			"às vezes":       60,
			"as vezes":       60,
			"frequentemente": 35,
			"quase sempre":   15,
		}),
	},
	"acorda_cansada": {
		Text: "Como você costuma se sentir ao acordar?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Extremamente cansada",
			"Cansada",
			"Neutra",
			"Disposta",
			"Muito disposta",
		},
		Normalizer: NewCategorical(map[string]float64{
			"extremamente cansada": 5,
			"cansada":              30,
			"neutra":               60,
			"disposta":             85,
			"muito disposta":       100,
		}),
	},
	"tipo_fezes_bristol": {
		Text: "Qual tipo de fezes representa melhor seu padrão (Escala de Bristol)?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Tipo 1 (Carocinhos duros)",
			"Tipo 2 (Salsicha grumosa)",
			"Tipo 3 (Salsicha com rachaduras)",
			"Tipo 4 (Salsicha lisa e macia)",
			"Tipo 5 (Pedaços macios)",
			"Tipo 6 (Pedaços fofos)",
			"Tipo 7 (Aquosa)",
		},
		Normalizer: NewCategorical(map[string]float64{
			"tipo 1 (carocinhos duros)":        15,
			"tipo 2 (salsicha grumosa)":        35,
			"tipo 3 (salsicha com rachaduras)": 80,
			"tipo 4 (salsicha lisa e macia)":   100,
			"tipo 5 (pedaços macios)":          80,
			"tipo 6 (pedaços fofos)":           35,
			"tipo 7 (aquosa)":                  10,
			"1":                                15,
			"2":                                35,
			"3":                                80,
			"4":                                100,
			"5":                                80,
			"6":                                35,
			"7":                                10,
		}),
	},
	"freq_inchaco_abdominal": {
		Text:    "Com que frequência você sente inchaço abdominal?",
		Type:    QuestionLikert,
		Options: frequency5,
		Normalizer: NewCategorical(map[string]float64{
			"nunca":          100,
			"raramente":      85,
			"às vezes":       55,
			"as vezes":       55,
			"frequentemente": 25,
			"quase sempre":   10,
		}),
	},
	"freq_evacuacao": {
		Text: "Com que frequência você evacua?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Menos de 3x por semana",
			"3-4x por semana",
			"1x por dia",
			"2x por dia",
			"3 ou mais vezes por dia",
		},
		Normalizer: NewCategorical(map[string]float64{
			"menos de 3x por semana":  10,
			"3-4x por semana":         45,
			"1x por dia":              90,
			"2x por dia":              100,
			"3 ou mais vezes por dia": 70,
		}),
	},
	"horas_sono_noite": {
		Text:       "Quantas horas de sono você costuma ter por noite?",
		Type:       QuestionNumeric,
		Normalizer: NewNumericRange(7, 8.5, 4, 11),
	},
	"qualidade_sono": {
		Text:       "Como você avalia a qualidade do seu sono?",
		Type:       QuestionLikert,
		Options:    intensity5,
		Normalizer: NewCategorical(likertMapping(intensity5)),
	},
	"despertares_noturnos": {
		Text:       "Quantas vezes você acorda durante a noite?",
		Type:       QuestionNumeric,
		Normalizer: NewNumericRange(0, 1, 0, 6),
	},
	"copos_agua_dia": {
		Text:       "Quantos copos de 200 ml de água você bebe por dia?",
		Type:       QuestionNumeric,
		Normalizer: NewNumericRange(8, 12, 2, 20),
	},
	"cor_urina": {
		Text: "Qual a cor predominante da sua urina?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Transparente",
			"Amarelo muito claro",
			"Amarelo claro",
			"Amarelo",
			"Âmbar",
			"Muito escura",
		},
		Normalizer: NewCategorical(map[string]float64{
			"transparente":        95,
			"amarelo muito claro": 100,
			"amarelo claro":       85,
			"amarelo":             60,
			"âmbar":               30,
			"ambar":               30,
			"muito escura":        10,
			// Variantes largas de formularios antiguos, con la advertencia
			// embebida en la opción.
			"transparente (parabéns, você está hidratado(a)!)":        95,
			"amarelo muito claro (parabéns, você está hidratado(a)!)": 100,
			"amarelo claro (atenção, moderadamente desidratado)":      70,
			"amarelo (atenção, moderadamente desidratado)":            60,
			"amarelo escuro (perigo, procure atendimento!)":           25,
			"castanho claro (perigo extremo, muito desidratado!)":     15,
			"castanho escuro (perigo extremo, muito desidratado!)":    10,
		}),
	},
	"retencao_inchaco": {
		Text:    "Com que frequência percebe retenção de líquidos ou inchaço?",
		Type:    QuestionLikert,
		Options: frequency5,
		Normalizer: NewCategorical(map[string]float64{
			"nunca":          100,
			"raramente":      80,
			"às vezes":       60,
			"as vezes":       60,
			"frequentemente": 35,
			"quase sempre":   15,
		}),
	},
	"fome_emocional": {
		Text:    "Com que frequência você come para aliviar emoções?",
		Type:    QuestionLikert,
		Options: frequency5,
		Normalizer: NewCategorical(map[string]float64{
			"nunca":          100,
			"raramente":      80,
			"às vezes":       55,
			"as vezes":       55,
			"frequentemente": 25,
			"quase sempre":   10,
		}),
	},
	"compulsao_alimentar": {
		Text:    "Com que frequência sente episódios de compulsão alimentar?",
		Type:    QuestionLikert,
		Options: frequency5,
		Normalizer: NewCategorical(map[string]float64{
			"nunca":          100,
			"raramente":      75,
			"às vezes":       45,
			"as vezes":       45,
			"frequentemente": 20,
			"quase sempre":   5,
		}),
	},
	"culpa_apos_comer": {
		Text:    "Com que frequência sente culpa após comer?",
		Type:    QuestionLikert,
		Options: frequency5,
		Normalizer: NewCategorical(map[string]float64{
			"nunca":          100,
			"raramente":      80,
			"às vezes":       55,
			"as vezes":       55,
			"frequentemente": 30,
			"quase sempre":   10,
		}),
	},
	"refeicoes_por_dia": {
		Text:       "Quantas refeições completas você costuma fazer por dia?",
		Type:       QuestionNumeric,
		Normalizer: NewNumericRange(3, 5, 1, 7),
	},
	"freq_pular_refeicoes": {
		Text:    "Com que frequência você pula refeições?",
		Type:    QuestionLikert,
		Options: frequency5,
		Normalizer: NewCategorical(map[string]float64{
			"nunca":          100,
			"raramente":      80,
			"às vezes":       55,
			"as vezes":       55,
			"frequentemente": 30,
			"quase sempre":   10,
		}),
	},
	"constancia_fim_de_semana": {
		Text: "Como sua rotina alimentar muda nos fins de semana?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Quase não muda",
			"Muda um pouco",
			"Muda bastante",
			"É totalmente diferente",
		},
		Normalizer: NewCategorical(map[string]float64{
			"quase não muda":         100,
			"quase nao muda":         100,
			"muda um pouco":          75,
			"muda bastante":          35,
			"é totalmente diferente": 15,
			"e totalmente diferente": 15,
		}),
	},
	"freq_atividade_fisica": {
		Text: "Com que frequência pratica atividade física estruturada?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"Nunca",
			"1x por semana",
			"2-3x por semana",
			"4-5x por semana",
			"Diariamente",
		},
		Normalizer: NewCategorical(map[string]float64{
			"nunca":           5,
			"1x por semana":   35,
			"2-3x por semana": 70,
			"4-5x por semana": 90,
			"diariamente":     100,
		}),
	},
}

// catalogNormalizer devuelve el normalizador configurado de una pregunta,
// o nil si la pregunta no existe o no declara uno.
func catalogNormalizer(questionID string) Normalizer {
	question, ok := questionCatalog[questionID]
	if !ok {
		return nil
	}
	return question.Normalizer
}

// CatalogQuestion expone la definición de una pregunta del catálogo.
func CatalogQuestion(questionID string) (Question, bool) {
	q, ok := questionCatalog[questionID]
	return q, ok
}

/*
========================
 Configuración de pilares
========================
*/

// pillarConfigs define componentes ponderados y ajustes por pilar, en el
// orden canónico. Se construye una vez y nunca se muta; los pesos no
// necesitan sumar 1 porque la agregación renormaliza sobre lo respondido.
var pillarConfigs = []PillarConfig{
	{
		Name: PillarEnergia,
		Components: []Component{
			{QuestionID: "nivel_energia_dia", Weight: 0.4},
			{QuestionID: "cansaco_frequente", Weight: 0.3},
			{QuestionID: "acorda_cansada", Weight: 0.3},
		},
		Adjustments: []AdjustmentRule{
			{
				When: Comparison{
					Question: "cansaco_frequente",
					Op:       OpIn,
					Value:    []string{"Frequentemente", "Quase sempre"},
				},
				Impact: -6,
			},
			{
				When: Comparison{
					Question: "acorda_cansada",
					Op:       OpIn,
					Value:    []string{"Extremamente cansada", "Cansada"},
				},
				Impact: -6,
			},
		},
	},
	{
		Name: PillarDigestao,
		Components: []Component{
			{QuestionID: "tipo_fezes_bristol", Weight: 0.45},
			{QuestionID: "freq_evacuacao", Weight: 0.3},
			{QuestionID: "freq_inchaco_abdominal", Weight: 0.25},
		},
		Adjustments: []AdjustmentRule{
			{
				When: All{Conditions: []Condition{
					Comparison{
						Question: "tipo_fezes_bristol",
						Op:       OpIn,
						Value: []string{
							"Tipo 1",
							"Tipo 1 (Carocinhos duros)",
							"Tipo 2",
							"Tipo 2 (Salsicha grumosa)",
						},
					},
					Comparison{
						Question: "freq_evacuacao",
						Op:       OpIn,
						Value:    []string{"Menos de 3x por semana"},
					},
				}},
				Impact: -10,
			},
			{
				When: Comparison{
					Question: "freq_inchaco_abdominal",
					Op:       OpIn,
					Value:    []string{"Frequentemente", "Quase sempre"},
				},
				Impact: -6,
			},
		},
	},
	{
		Name: PillarSono,
		Components: []Component{
			{QuestionID: "horas_sono_noite", Weight: 0.35},
			{QuestionID: "qualidade_sono", Weight: 0.35},
			{QuestionID: "despertares_noturnos", Weight: 0.3},
		},
		Adjustments: []AdjustmentRule{
			{
				When:   Comparison{Question: "horas_sono_noite", Op: OpLt, Value: 6},
				Impact: -12,
			},
			{
				When: All{Conditions: []Condition{
					Comparison{
						Question: "horas_sono_noite",
						Op:       OpBetween,
						Value:    []float64{7, 9},
					},
					Comparison{
						Question: "despertares_noturnos",
						Op:       OpGt,
						Value:    2,
					},
				}},
				Impact: -8,
			},
		},
	},
	{
		Name: PillarHidratacao,
		Components: []Component{
			{QuestionID: "copos_agua_dia", Weight: 0.45},
			{QuestionID: "cor_urina", Weight: 0.35},
			{QuestionID: "retencao_inchaco", Weight: 0.2},
		},
		Adjustments: []AdjustmentRule{
			{
				When:   Comparison{Question: "copos_agua_dia", Op: OpLt, Value: 6},
				Impact: -6,
			},
			{
				When: Comparison{
					Question: "retencao_inchaco",
					Op:       OpIn,
					Value:    []string{"Frequentemente", "Quase sempre"},
				},
				Impact: -6,
			},
		},
	},
	{
		Name: PillarEmocao,
		Components: []Component{
			{QuestionID: "fome_emocional", Weight: 0.4},
			{QuestionID: "compulsao_alimentar", Weight: 0.35},
			{QuestionID: "culpa_apos_comer", Weight: 0.25},
		},
		Adjustments: []AdjustmentRule{
			{
				When: All{Conditions: []Condition{
					Comparison{
						Question: "fome_emocional",
						Op:       OpIn,
						Value:    []string{"Frequentemente", "Quase sempre"},
					},
					Comparison{
						Question: "compulsao_alimentar",
						Op:       OpIn,
						Value:    []string{"Frequentemente", "Quase sempre"},
					},
				}},
				Impact: -10,
			},
			{
				When: Comparison{
					Question: "culpa_apos_comer",
					Op:       OpIn,
					Value:    []string{"Frequentemente", "Quase sempre"},
				},
				Impact: -6,
			},
		},
	},
	{
		Name: PillarRotina,
		Components: []Component{
			{QuestionID: "refeicoes_por_dia", Weight: 0.3},
			{QuestionID: "freq_pular_refeicoes", Weight: 0.25},
			{QuestionID: "constancia_fim_de_semana", Weight: 0.2},
			{QuestionID: "freq_atividade_fisica", Weight: 0.25},
		},
		Adjustments: []AdjustmentRule{
			{
				When: Comparison{
					Question: "freq_pular_refeicoes",
					Op:       OpIn,
					Value:    []string{"Frequentemente", "Quase sempre"},
				},
				Impact: -10,
			},
			{
				When: Comparison{
					Question: "constancia_fim_de_semana",
					Op:       OpIn,
					Value:    []string{"Muda bastante", "É totalmente diferente"},
				},
				Impact: -8,
			},
		},
	},
}
