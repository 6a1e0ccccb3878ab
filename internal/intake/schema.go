package intake

/*
========================
 Esquema del formulario
========================
*/

// FormQuestion describe una pregunta del formulario público de anamnesis.
// Opcoes y Config son excluyentes: selects y radios llevan opciones, los
// sliders llevan rango numérico.
type FormQuestion struct {
	ID                  string        `json:"id"`
	Label               string        `json:"label"`
	Descricao           string        `json:"descricao"`
	TipoCampo           string        `json:"tipo_campo"`
	Opcoes              []string      `json:"opcoes,omitempty"`
	Config              *SliderConfig `json:"config,omitempty"`
	ValorPadrao         any           `json:"valor_padrao"`
	PilaresRelacionados []string      `json:"pilares_relacionados"`
}

// SliderConfig es el rango permitido de un campo numérico tipo slider.
type SliderConfig struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// FormSection agrupa las preguntas de un pilar con su texto introductorio.
// Pilar es la etiqueta visible (con acentos); PilaresRelacionados de cada
// pregunta usa los nombres canónicos sin acento del motor de puntuación.
type FormSection struct {
	Pilar     string         `json:"pilar"`
	Descricao string         `json:"descricao"`
	Perguntas []FormQuestion `json:"perguntas"`
}

// Listas de opciones compartidas entre preguntas.
var (
	frequency5Options = []string{
		"Nunca",
		"Raramente",
		"Às vezes",
		"Frequentemente",
		"Quase sempre",
	}
	intensity5Options = []string{
		"Muito baixa",
		"Baixa",
		"Moderada",
		"Alta",
		"Muito alta",
	}
	activityOptions = []string{
		"Nunca",
		"1x por semana",
		"2-3x por semana",
		"4-5x por semana",
		"Diariamente",
	}
	bristolOptions = []string{
		"Tipo 1 (Carocinhos duros)",
		"Tipo 2 (Salsicha grumosa)",
		"Tipo 3 (Salsicha com rachaduras)",
		"Tipo 4 (Salsicha lisa e macia)",
		"Tipo 5 (Pedaços macios)",
		"Tipo 6 (Pedaços fofos)",
		"Tipo 7 (Aquosa)",
	}
	urineColorOptions = []string{
		"Transparente",
		"Amarelo muito claro",
		"Amarelo claro",
		"Amarelo",
		"Âmbar",
		"Muito escura",
	}
	weekendConstancyOptions = []string{
		"Quase não muda",
		"Muda um pouco",
		"Muda bastante",
		"É totalmente diferente",
	}
)

// formSchema es la definición completa del formulario en orden de pilar.
// Se construye una vez al cargar el paquete y nunca se muta.
var formSchema = []FormSection{
	{
		Pilar:     "Energia",
		Descricao: "Avalia como a pessoa sente e recupera energia diariamente.",
		Perguntas: []FormQuestion{
			{
				ID:                  "nivel_energia_dia",
				Label:               "Como você avalia seu nível de energia ao longo do dia?",
				Descricao:           "Captura a percepção geral de energia. Pilar: Energia.",
				TipoCampo:           "select",
				Opcoes:              intensity5Options,
				ValorPadrao:         "Moderada",
				PilaresRelacionados: []string{"Energia"},
			},
			{
				ID:                  "cansaco_frequente",
				Label:               "Com que frequência você se sente cansada ao longo do dia?",
				Descricao:           "Mapeia episódios de fadiga recorrente. Pilar: Energia.",
				TipoCampo:           "select",
				Opcoes:              frequency5Options,
				ValorPadrao:         "Às vezes",
				PilaresRelacionados: []string{"Energia"},
			},
			{
				ID:        "acorda_cansada",
				Label:     "Como você costuma se sentir ao acordar?",
				Descricao: "Indica recuperação durante a noite. Pilar: Energia.",
				TipoCampo: "select",
				Opcoes: []string{
					"Extremamente cansada",
					"Cansada",
					"Neutra",
					"Disposta",
					"Muito disposta",
				},
				ValorPadrao:         "Neutra",
				PilaresRelacionados: []string{"Energia", "Sono"},
			},
		},
	},
	{
		Pilar:     "Digestão",
		Descricao: "Investiga qualidade das fezes, gases e evacuação.",
		Perguntas: []FormQuestion{
			{
				ID:                  "tipo_fezes_bristol",
				Label:               "Qual tipo de fezes representa melhor seu padrão (Escala de Bristol)?",
				Descricao:           "Consistência intestinal diretamente ligada à digestão.",
				TipoCampo:           "radio",
				Opcoes:              bristolOptions,
				ValorPadrao:         bristolOptions[3],
				PilaresRelacionados: []string{"Digestao"},
			},
			{
				ID:                  "freq_inchaco_abdominal",
				Label:               "Com que frequência você sente inchaço abdominal?",
				Descricao:           "Sintoma digestivo relevante. Pilar: Digestão.",
				TipoCampo:           "select",
				Opcoes:              frequency5Options,
				ValorPadrao:         "Às vezes",
				PilaresRelacionados: []string{"Digestao"},
			},
			{
				ID:        "freq_evacuacao",
				Label:     "Com que frequência você evacua?",
				Descricao: "Ritmo intestinal completo. Pilar: Digestão.",
				TipoCampo: "select",
				Opcoes: []string{
					"Menos de 3x por semana",
					"3-4x por semana",
					"1x por dia",
					"2x por dia",
					"3 ou mais vezes por dia",
				},
				ValorPadrao:         "1x por dia",
				PilaresRelacionados: []string{"Digestao"},
			},
		},
	},
	{
		Pilar:     "Sono",
		Descricao: "Observa quantidade e qualidade do sono noturno.",
		Perguntas: []FormQuestion{
			{
				ID:                  "horas_sono_noite",
				Label:               "Quantas horas de sono você costuma ter por noite?",
				Descricao:           "Duração média do sono. Pilar: Sono.",
				TipoCampo:           "slider",
				Config:              &SliderConfig{Min: 4, Max: 11, Step: 0.5},
				ValorPadrao:         7.0,
				PilaresRelacionados: []string{"Sono"},
			},
			{
				ID:                  "qualidade_sono",
				Label:               "Como você avalia a qualidade do seu sono?",
				Descricao:           "Percepção subjetiva de descanso. Pilar: Sono.",
				TipoCampo:           "select",
				Opcoes:              intensity5Options,
				ValorPadrao:         "Moderada",
				PilaresRelacionados: []string{"Sono"},
			},
			{
				ID:                  "despertares_noturnos",
				Label:               "Quantas vezes você acorda durante a noite?",
				Descricao:           "Fragmentação do sono. Pilar: Sono.",
				TipoCampo:           "slider",
				Config:              &SliderConfig{Min: 0, Max: 6, Step: 1},
				ValorPadrao:         1,
				PilaresRelacionados: []string{"Sono"},
			},
		},
	},
	{
		Pilar:     "Hidratação",
		Descricao: "Avalia ingestão hídrica e indicadores visuais.",
		Perguntas: []FormQuestion{
			{
				ID:                  "copos_agua_dia",
				Label:               "Quantos copos de 200 ml de água você bebe por dia?",
				Descricao:           "Volume diário consumido. Pilar: Hidratação.",
				TipoCampo:           "slider",
				Config:              &SliderConfig{Min: 0, Max: 20, Step: 1},
				ValorPadrao:         8,
				PilaresRelacionados: []string{"Hidratacao"},
			},
			{
				ID:                  "cor_urina",
				Label:               "Qual a cor predominante da sua urina?",
				Descricao:           "Indicador indireto de hidratação. Pilar: Hidratação.",
				TipoCampo:           "select",
				Opcoes:              urineColorOptions,
				ValorPadrao:         urineColorOptions[1],
				PilaresRelacionados: []string{"Hidratacao"},
			},
			{
				ID:                  "retencao_inchaco",
				Label:               "Com que frequência percebe retenção de líquidos ou inchaço?",
				Descricao:           "Monitora edema associado à hidratação. Pilar: Hidratação.",
				TipoCampo:           "select",
				Opcoes:              frequency5Options,
				ValorPadrao:         "Raramente",
				PilaresRelacionados: []string{"Hidratacao"},
			},
		},
	},
	{
		Pilar:     "Emoção",
		Descricao: "Foca em relação emocional com a alimentação.",
		Perguntas: []FormQuestion{
			{
				ID:                  "fome_emocional",
				Label:               "Com que frequência você come para aliviar emoções?",
				Descricao:           "Indica gatilhos emocionais. Pilar: Emoção.",
				TipoCampo:           "select",
				Opcoes:              frequency5Options,
				ValorPadrao:         "Às vezes",
				PilaresRelacionados: []string{"Emocao"},
			},
			{
				ID:                  "compulsao_alimentar",
				Label:               "Com que frequência sente episódios de compulsão alimentar?",
				Descricao:           "Avalia perda de controle alimentar. Pilar: Emoção.",
				TipoCampo:           "select",
				Opcoes:              frequency5Options,
				ValorPadrao:         "Raramente",
				PilaresRelacionados: []string{"Emocao"},
			},
			{
				ID:                  "culpa_apos_comer",
				Label:               "Com que frequência sente culpa após comer?",
				Descricao:           "Registra impacto emocional pós-refeição. Pilar: Emoção.",
				TipoCampo:           "select",
				Opcoes:              frequency5Options,
				ValorPadrao:         "Às vezes",
				PilaresRelacionados: []string{"Emocao"},
			},
		},
	},
	{
		Pilar:     "Rotina",
		Descricao: "Mapeia constância alimentar e atividade física.",
		Perguntas: []FormQuestion{
			{
				ID:                  "refeicoes_por_dia",
				Label:               "Quantas refeições completas você costuma fazer por dia?",
				Descricao:           "Frequência alimentar diária. Pilar: Rotina.",
				TipoCampo:           "slider",
				Config:              &SliderConfig{Min: 1, Max: 7, Step: 1},
				ValorPadrao:         4,
				PilaresRelacionados: []string{"Rotina"},
			},
			{
				ID:                  "freq_pular_refeicoes",
				Label:               "Com que frequência você pula refeições?",
				Descricao:           "Estabilidade alimentar. Pilar: Rotina.",
				TipoCampo:           "select",
				Opcoes:              frequency5Options,
				ValorPadrao:         "Raramente",
				PilaresRelacionados: []string{"Rotina"},
			},
			{
				ID:                  "constancia_fim_de_semana",
				Label:               "Como sua rotina alimentar muda nos fins de semana?",
				Descricao:           "Comparação semana vs. fim de semana. Pilar: Rotina.",
				TipoCampo:           "select",
				Opcoes:              weekendConstancyOptions,
				ValorPadrao:         weekendConstancyOptions[1],
				PilaresRelacionados: []string{"Rotina"},
			},
			{
				ID:                  "freq_atividade_fisica",
				Label:               "Com que frequência pratica atividade física estruturada?",
				Descricao:           "Revela constância de movimento. Pilar: Rotina.",
				TipoCampo:           "select",
				Opcoes:              activityOptions,
				ValorPadrao:         activityOptions[2],
				PilaresRelacionados: []string{"Rotina", "Energia"},
			},
		},
	},
}

var formQuestionIndex = buildFormQuestionIndex()

func buildFormQuestionIndex() map[string]FormQuestion {
	index := make(map[string]FormQuestion)
	for _, section := range formSchema {
		for _, question := range section.Perguntas {
			index[question.ID] = question
		}
	}
	return index
}

// FormSchema devuelve las seis secciones del formulario en orden de pilar.
// Los llamadores tratan el resultado como de solo lectura.
func FormSchema() []FormSection {
	return formSchema
}

// FormQuestionByID busca una pregunta del esquema por su id.
func FormQuestionByID(id string) (FormQuestion, bool) {
	question, ok := formQuestionIndex[id]
	return question, ok
}
