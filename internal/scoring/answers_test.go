package scoring

import "testing"

func TestResolveAnswer_CanonicalKeyWins(t *testing.T) {
	respostas := Answers{
		"horas_sono_noite": 8,
		"horas_sono":       5,
	}

	value, ok := resolveAnswer(respostas, "horas_sono_noite")
	if !ok || value != 8 {
		t.Fatalf("expected canonical value 8, got (%v, %v)", value, ok)
	}
}

func TestResolveAnswer_AliasOrder(t *testing.T) {
	// horas_sono va antes que sono_horas en la tabla de alias.
	respostas := Answers{
		"horas_sono": 6,
		"sono_horas": 9,
	}

	value, ok := resolveAnswer(respostas, "horas_sono_noite")
	if !ok || value != 6 {
		t.Fatalf("expected first alias to win, got (%v, %v)", value, ok)
	}
}

func TestResolveAnswer_CanonicalNilBlocksAliases(t *testing.T) {
	respostas := Answers{
		"horas_sono_noite": nil,
		"horas_sono":       8,
	}

	if _, ok := resolveAnswer(respostas, "horas_sono_noite"); ok {
		t.Fatalf("explicit nil under the canonical key should read as absent")
	}
}

func TestResolveAnswer_WaterLitersTransform(t *testing.T) {
	// consumo_agua llegaba en litros y se convierte a copos de 200 ml.
	value, ok := resolveAnswer(Answers{"consumo_agua": 2}, "copos_agua_dia")
	if !ok {
		t.Fatalf("expected transformed answer")
	}
	if value != 10.0 {
		t.Fatalf("expected 2 liters -> 10 cups, got %v", value)
	}

	value, ok = resolveAnswer(Answers{"consumo_agua": "1,5"}, "copos_agua_dia")
	if !ok || value != 7.5 {
		t.Fatalf("expected 1,5 liters -> 7.5 cups, got (%v, %v)", value, ok)
	}
}

func TestResolveAnswer_FailedTransformTriesNothingElse(t *testing.T) {
	if _, ok := resolveAnswer(Answers{"consumo_agua": "muita"}, "copos_agua_dia"); ok {
		t.Fatalf("uncoercible legacy water answer should read as absent")
	}
}

func TestResolveAnswer_PreferredAliasBeforeTransform(t *testing.T) {
	respostas := Answers{
		"qtd_copos_agua": 9,
		"consumo_agua":   2,
	}

	value, ok := resolveAnswer(respostas, "copos_agua_dia")
	if !ok || value != 9 {
		t.Fatalf("expected qtd_copos_agua to win untransformed, got (%v, %v)", value, ok)
	}
}

func TestResolveAnswer_UnknownQuestion(t *testing.T) {
	if _, ok := resolveAnswer(Answers{"x": 1}, "pergunta_inexistente"); ok {
		t.Fatalf("unknown question should read as absent")
	}
}

func TestCalculatePillars_LegacyWaterAnswerFeedsHidratacao(t *testing.T) {
	// 2 litros = 10 copos, dentro del rango ideal [8,12].
	scores := CalculatePillars(Answers{"consumo_agua": 2})

	score := scores[PillarHidratacao]
	if score == nil {
		t.Fatalf("expected Hidratacao scored through legacy key")
	}
	if *score != 100 {
		t.Fatalf("expected 100 for ideal water intake, got %d", *score)
	}
}
