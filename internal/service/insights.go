package service

import (
	"strconv"
	"strings"

	"nutrisigno-api/internal/domain"
)

/*
========================
 IMC e hidratación
========================
*/

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Abaixo do peso"
	case bmi < 25:
		return "Peso normal"
	case bmi < 30:
		return "Sobrepeso"
	}
	return "Obesidade"
}

func waterStatus(consumptionL, recommendedL float64) string {
	ratio := 0.0
	if recommendedL > 0 {
		ratio = consumptionL / recommendedL
	}
	switch {
	case ratio >= 1.0:
		return "Excelente, você está bem hidratado(a)!"
	case ratio >= 0.8:
		return "Bom, porém você pode aumentar um pouco a ingestão de água."
	}
	return "Atenção: aumente o consumo de água para evitar desidratação."
}

/*
========================
 Escala de Bristol
========================
*/

const bristolParseFail = "Não foi possível interpretar o tipo de fezes."

var bristolTexts = map[int]string{
	1: "Fezes muito duras, indicar possível constipação e baixa ingestão de fibras.",
	2: "Fezes duras, sinal de constipação e necessidade de mais fibras e água.",
	3: "Fezes com fissuras, indicam tendência à constipação; aumentar fibras e líquidos.",
	4: "Fezes normais, consistência saudável.",
	5: "Fezes moles, podem indicar alimentação leve ou possível intolerância alimentar.",
	6: "Fezes pastosas, sugerem possível diarreia ou intolerância; consulte um profissional se persistir.",
	7: "Fezes líquidas, sinal de diarreia; hidrate-se e procure atendimento se necessário.",
}

// interpretBristol acepta tanto la etiqueta del formulario ("Tipo 4 (...)")
// como variantes numéricas ("4", "4-...").
func interpretBristol(selection string) string {
	var raw string
	if strings.HasPrefix(selection, "Tipo") {
		parts := strings.Split(selection, " ")
		if len(parts) < 2 {
			return bristolParseFail
		}
		raw = parts[1]
	} else {
		raw = strings.Split(selection, "-")[0]
	}
	num, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return bristolParseFail
	}
	text, ok := bristolTexts[num]
	if !ok {
		return "Tipo de fezes desconhecido."
	}
	return text
}

/*
========================
 Color de orina
========================
*/

func interpretUrine(selection string) string {
	if strings.Contains(selection, "Transparente") || strings.Contains(selection, "Amarelo muito claro") {
		return "Excelente hidratação! Mantenha o consumo de água."
	}
	if strings.Contains(selection, "Amarelo") {
		return "Hidratação moderada; aumente sua ingestão de água."
	}
	return "Perigo extremo! Procure atendimento médico; você está muito desidratado(a)."
}

/*
========================
 Señal por signo zodiacal
========================
*/

var signHints = map[string]string{
	"Áries":       "Evite decisões impulsivas: planeje suas refeições e escolha opções saciantes.",
	"Touro":       "Valorize a qualidade, evitando excessos; comidas prazerosas podem ser saudáveis.",
	"Gêmeos":      "Varie os alimentos para evitar tédio e mantenha refeições regulares.",
	"Câncer":      "Prefira refeições leves e frequentes para evitar desconfortos gástricos.",
	"Leão":        "Evite exagerar para impressionar; busque equilíbrio e moderação.",
	"Virgem":      "Mantenha uma rotina organizada, preparando refeições caseiras sempre que possível.",
	"Libra":       "Planeje seu cardápio semanal para reduzir indecisão e escolhas de última hora.",
	"Escorpião":   "Evite extremos alimentares; consuma porções controladas e variadas.",
	"Sagitário":   "Cuidado com o entusiasmo excessivo: busque equilíbrio entre prazer e nutrição.",
	"Capricórnio": "Estabeleça pausas alimentares e evite rigidez excessiva; permita pequenas indulgências.",
	"Aquário":     "Experimente novos ingredientes, mas mantenha constância e variedade.",
	"Peixes":      "Escute seu corpo e hidrate-se; refeições intuitivas podem ajudar na saciedade.",
}

/*
========================
 Motivación y estrés
========================
*/

func mentalNotes(motivacao, estresse float64) string {
	switch {
	case motivacao >= 4 && estresse <= 2:
		return "Você está motivado(a) e com baixo estresse, ótimo cenário para mudanças!"
	case motivacao >= 4:
		return "Alta motivação, mas com estresse; tente técnicas de relaxamento para manter o foco."
	case estresse <= 2:
		return "Você tem baixa motivação, mas baixo estresse; busque fontes de inspiração para engajar."
	}
	return "Motivação e estresse merecem atenção; considere apoio psicológico para mudanças sustentáveis."
}

/*
========================
 Cálculo de insights
========================
*/

// ComputeInsights deriva las métricas e interpretaciones textuales de las
// respuestas crudas: IMC y su categoría, agua recomendada (35 ml por kg),
// lecturas de Bristol y color de orina, pista por signo y notas de
// motivación/estrés. Es una función pura sobre el mapa de respuestas.
func ComputeInsights(respostas map[string]any) domain.Insights {
	insights := domain.Insights{}

	weight, hasWeight := insightFloat(respostas["peso"])
	height, hasHeight := insightFloat(respostas["altura"])
	water, hasWater := insightFloat(respostas["consumo_agua"])

	if hasWeight && weight != 0 && hasHeight && height != 0 {
		meters := height / 100.0
		if meters > 0 {
			bmi := weight / (meters * meters)
			insights.BMI = &bmi
			insights.BMICategory = bmiCategory(bmi)
		}
	}

	if hasWeight && weight != 0 {
		insights.RecommendedWater = weight * 35 / 1000
	}
	if hasWater && water != 0 {
		insights.Consumption = water
	}
	insights.WaterStatus = waterStatus(insights.Consumption, insights.RecommendedWater)

	insights.Bristol = interpretBristol(stringAnswer(respostas["tipo_fezes"]))
	insights.Urine = interpretUrine(stringAnswer(respostas["cor_urina"]))

	if sign := stringAnswer(respostas["signo"]); sign != "" {
		insights.SignHint = signHints[sign]
	}

	motivacao, hasMotivacao := insightFloat(respostas["motivacao"])
	estresse, hasEstresse := insightFloat(respostas["estresse"])
	if hasMotivacao && motivacao != 0 && hasEstresse && estresse != 0 {
		insights.MentalNotes = mentalNotes(motivacao, estresse)
	}

	return insights
}

func insightFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func stringAnswer(value any) string {
	s, _ := value.(string)
	return s
}
