package service

import (
	"math"
	"testing"
)

func TestComputeInsightsFullProfile(t *testing.T) {
	respostas := map[string]any{
		"peso":         70.0,
		"altura":       175.0,
		"consumo_agua": 2.5,
		"tipo_fezes":   "Tipo 4 (Salsicha lisa e macia)",
		"cor_urina":    "Amarelo claro",
		"signo":        "Leão",
		"motivacao":    5.0,
		"estresse":     2.0,
	}

	insights := ComputeInsights(respostas)

	if insights.BMI == nil {
		t.Fatalf("expected bmi to be computed")
	}
	if math.Abs(*insights.BMI-22.8571) > 0.001 {
		t.Fatalf("expected bmi ~22.857, got %v", *insights.BMI)
	}
	if insights.BMICategory != "Peso normal" {
		t.Fatalf("expected category Peso normal, got %q", insights.BMICategory)
	}
	if math.Abs(insights.RecommendedWater-2.45) > 0.0001 {
		t.Fatalf("expected recommended water 2.45, got %v", insights.RecommendedWater)
	}
	if insights.Consumption != 2.5 {
		t.Fatalf("expected consumption 2.5, got %v", insights.Consumption)
	}
	if insights.WaterStatus != "Excelente, você está bem hidratado(a)!" {
		t.Fatalf("unexpected water status: %q", insights.WaterStatus)
	}
	if insights.Bristol != "Fezes normais, consistência saudável." {
		t.Fatalf("unexpected bristol reading: %q", insights.Bristol)
	}
	if insights.Urine != "Hidratação moderada; aumente sua ingestão de água." {
		t.Fatalf("unexpected urine reading: %q", insights.Urine)
	}
	if insights.SignHint != signHints["Leão"] {
		t.Fatalf("unexpected sign hint: %q", insights.SignHint)
	}
	if insights.MentalNotes != "Você está motivado(a) e com baixo estresse, ótimo cenário para mudanças!" {
		t.Fatalf("unexpected mental notes: %q", insights.MentalNotes)
	}
}

func TestComputeInsightsEmptyAnswers(t *testing.T) {
	insights := ComputeInsights(map[string]any{})

	if insights.BMI != nil {
		t.Fatalf("expected nil bmi without weight/height, got %v", *insights.BMI)
	}
	if insights.BMICategory != "" {
		t.Fatalf("expected empty bmi category, got %q", insights.BMICategory)
	}
	if insights.RecommendedWater != 0 {
		t.Fatalf("expected zero recommended water, got %v", insights.RecommendedWater)
	}
	if insights.WaterStatus != "Atenção: aumente o consumo de água para evitar desidratação." {
		t.Fatalf("unexpected water status: %q", insights.WaterStatus)
	}
	if insights.Bristol != bristolParseFail {
		t.Fatalf("expected bristol parse failure, got %q", insights.Bristol)
	}
	if insights.SignHint != "" {
		t.Fatalf("expected empty sign hint, got %q", insights.SignHint)
	}
	if insights.MentalNotes != "" {
		t.Fatalf("expected empty mental notes, got %q", insights.MentalNotes)
	}
}

func TestComputeInsightsStringNumbers(t *testing.T) {
	respostas := map[string]any{
		"peso":      "80",
		"altura":    "180",
		"motivacao": "0",
		"estresse":  "3",
	}

	insights := ComputeInsights(respostas)

	if insights.BMI == nil {
		t.Fatalf("expected bmi from string numbers")
	}
	if math.Abs(*insights.BMI-24.6913) > 0.001 {
		t.Fatalf("expected bmi ~24.691, got %v", *insights.BMI)
	}
	if insights.MentalNotes != "" {
		t.Fatalf("expected no mental notes when motivacao is zero, got %q", insights.MentalNotes)
	}
}

func TestBMICategoryBands(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{bmi: 17.0, want: "Abaixo do peso"},
		{bmi: 18.49, want: "Abaixo do peso"},
		{bmi: 18.5, want: "Peso normal"},
		{bmi: 24.99, want: "Peso normal"},
		{bmi: 25.0, want: "Sobrepeso"},
		{bmi: 29.99, want: "Sobrepeso"},
		{bmi: 30.0, want: "Obesidade"},
		{bmi: 42.0, want: "Obesidade"},
	}
	for _, tc := range cases {
		if got := bmiCategory(tc.bmi); got != tc.want {
			t.Fatalf("bmiCategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestWaterStatusBands(t *testing.T) {
	cases := []struct {
		name        string
		consumption float64
		recommended float64
		want        string
	}{
		{
			name:        "ratio at or above one",
			consumption: 2.5,
			recommended: 2.45,
			want:        "Excelente, você está bem hidratado(a)!",
		},
		{
			name:        "ratio above 0.8",
			consumption: 2.0,
			recommended: 2.45,
			want:        "Bom, porém você pode aumentar um pouco a ingestão de água.",
		},
		{
			name:        "ratio below 0.8",
			consumption: 1.5,
			recommended: 2.45,
			want:        "Atenção: aumente o consumo de água para evitar desidratação.",
		},
		{
			name:        "no recommendation",
			consumption: 0,
			recommended: 0,
			want:        "Atenção: aumente o consumo de água para evitar desidratação.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := waterStatus(tc.consumption, tc.recommended); got != tc.want {
				t.Fatalf("waterStatus(%v, %v) = %q, want %q", tc.consumption, tc.recommended, got, tc.want)
			}
		})
	}
}

func TestInterpretBristolVariants(t *testing.T) {
	cases := []struct {
		name      string
		selection string
		want      string
	}{
		{
			name:      "full form label",
			selection: "Tipo 4 (Salsicha lisa e macia)",
			want:      bristolTexts[4],
		},
		{
			name:      "watery type",
			selection: "Tipo 7 (Aquosa)",
			want:      bristolTexts[7],
		},
		{
			name:      "dash separated legacy value",
			selection: "3 - Salsicha com rachaduras",
			want:      bristolTexts[3],
		},
		{
			name:      "bare number",
			selection: "5",
			want:      bristolTexts[5],
		},
		{
			name:      "tipo without number",
			selection: "Tipo",
			want:      bristolParseFail,
		},
		{
			name:      "non numeric type",
			selection: "Tipo x (desconhecido)",
			want:      bristolParseFail,
		},
		{
			name:      "out of scale",
			selection: "9",
			want:      "Tipo de fezes desconhecido.",
		},
		{
			name:      "empty selection",
			selection: "",
			want:      bristolParseFail,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := interpretBristol(tc.selection); got != tc.want {
				t.Fatalf("interpretBristol(%q) = %q, want %q", tc.selection, got, tc.want)
			}
		})
	}
}

func TestInterpretUrineBranches(t *testing.T) {
	cases := []struct {
		name      string
		selection string
		want      string
	}{
		{
			name:      "transparent",
			selection: "Transparente (Parabéns, você está hidratado(a)!)",
			want:      "Excelente hidratação! Mantenha o consumo de água.",
		},
		{
			name:      "very light yellow",
			selection: "Amarelo muito claro",
			want:      "Excelente hidratação! Mantenha o consumo de água.",
		},
		{
			name:      "plain yellow",
			selection: "Amarelo",
			want:      "Hidratação moderada; aumente sua ingestão de água.",
		},
		{
			name:      "dark yellow still matches yellow",
			selection: "Amarelo escuro (Perigo, procure atendimento!)",
			want:      "Hidratação moderada; aumente sua ingestão de água.",
		},
		{
			name:      "brown",
			selection: "Castanho escuro (Perigo extremo, muito desidratado!)",
			want:      "Perigo extremo! Procure atendimento médico; você está muito desidratado(a).",
		},
		{
			name:      "empty selection",
			selection: "",
			want:      "Perigo extremo! Procure atendimento médico; você está muito desidratado(a).",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := interpretUrine(tc.selection); got != tc.want {
				t.Fatalf("interpretUrine(%q) = %q, want %q", tc.selection, got, tc.want)
			}
		})
	}
}

func TestMentalNotesBranches(t *testing.T) {
	cases := []struct {
		name      string
		motivacao float64
		estresse  float64
		want      string
	}{
		{
			name:      "motivated and calm",
			motivacao: 5,
			estresse:  1,
			want:      "Você está motivado(a) e com baixo estresse, ótimo cenário para mudanças!",
		},
		{
			name:      "motivated but stressed",
			motivacao: 4,
			estresse:  3,
			want:      "Alta motivação, mas com estresse; tente técnicas de relaxamento para manter o foco.",
		},
		{
			name:      "calm but unmotivated",
			motivacao: 2,
			estresse:  2,
			want:      "Você tem baixa motivação, mas baixo estresse; busque fontes de inspiração para engajar.",
		},
		{
			name:      "unmotivated and stressed",
			motivacao: 2,
			estresse:  4,
			want:      "Motivação e estresse merecem atenção; considere apoio psicológico para mudanças sustentáveis.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mentalNotes(tc.motivacao, tc.estresse); got != tc.want {
				t.Fatalf("mentalNotes(%v, %v) = %q, want %q", tc.motivacao, tc.estresse, got, tc.want)
			}
		})
	}
}

func TestSignHintsCoverAllSigns(t *testing.T) {
	signs := []string{
		"Áries", "Touro", "Gêmeos", "Câncer", "Leão", "Virgem",
		"Libra", "Escorpião", "Sagitário", "Capricórnio", "Aquário", "Peixes",
	}
	for _, sign := range signs {
		if signHints[sign] == "" {
			t.Fatalf("expected hint for sign %q", sign)
		}
	}
	if signHints["Ofiúco"] != "" {
		t.Fatalf("expected no hint for unknown sign")
	}
}
