package scoring

import "testing"

func TestNumericRange_Boundaries(t *testing.T) {
	// Rango de horas de sueño: ideal [7, 8.5], duro [4, 11].
	n := NewNumericRange(7, 8.5, 4, 11)

	cases := []struct {
		name string
		raw  any
		want float64
	}{
		{"min ideal", 7, 100},
		{"max ideal", 8.5, 100},
		{"inside ideal", 8, 100},
		{"at hard min", 4, 0},
		{"below hard min", 2, 0},
		{"at hard max", 11, 0},
		{"above hard max", 14, 0},
		{"halfway below ideal", 5.5, 50},
		{"halfway above ideal", 9.75, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.raw)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNumericRange_CommaDecimalSeparator(t *testing.T) {
	n := NewNumericRange(7, 8.5, 4, 11)

	if got := n.Normalize("7,5"); got != 100 {
		t.Fatalf("expected comma decimal to parse, got %v", got)
	}
	if got := n.Normalize("5,5"); got != 50 {
		t.Fatalf("expected 5,5 to interpolate to 50, got %v", got)
	}
}

func TestNumericRange_UnparsableFallsToDefault(t *testing.T) {
	n := NewNumericRange(7, 8.5, 4, 11)

	for _, raw := range []any{"oito", "", struct{}{}, []string{"8"}} {
		if got := n.Normalize(raw); got != DefaultScore {
			t.Fatalf("Normalize(%v) should fall to default, got %v", raw, got)
		}
	}
}

func TestCategorical_LookupIsCaseInsensitiveAndTrimmed(t *testing.T) {
	n := NewCategorical(map[string]float64{"raramente": 85})

	for _, raw := range []any{"Raramente", "RARAMENTE", "  raramente  "} {
		if got := n.Normalize(raw); got != 85 {
			t.Fatalf("Normalize(%v) = %v, want 85", raw, got)
		}
	}
}

func TestCategorical_UnmappedFallsToDefault(t *testing.T) {
	n := NewCategorical(map[string]float64{"nunca": 100})

	if got := n.Normalize("talvez"); got != DefaultScore {
		t.Fatalf("expected default %v for unmapped value, got %v", DefaultScore, got)
	}

	custom := Categorical{Mapping: map[string]float64{"nunca": 100}, Default: 70}
	if got := custom.Normalize("talvez"); got != 70 {
		t.Fatalf("expected declared default 70, got %v", got)
	}
}

func TestCategorical_NumericAnswersMatchNumericKeys(t *testing.T) {
	bristol := catalogNormalizer("tipo_fezes_bristol")
	if bristol == nil {
		t.Fatalf("expected bristol normalizer in catalog")
	}

	cases := []struct {
		raw  any
		want float64
	}{
		{4, 100},
		{float64(4), 100},
		{"4", 100},
		{7, 10},
		{"Tipo 4 (Salsicha lisa e macia)", 100},
	}
	for _, tc := range cases {
		if got := bristol.Normalize(tc.raw); got != tc.want {
			t.Fatalf("Normalize(%v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestCoerceFloat_Inputs(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want float64
		ok   bool
	}{
		{"int", 3, 3, true},
		{"float", 3.5, 3.5, true},
		{"dot string", "3.5", 3.5, true},
		{"comma string", "3,5", 3.5, true},
		{"padded string", " 8 ", 8, true},
		{"bool true", true, 1, true},
		{"empty string", "", 0, false},
		{"word", "oito", 0, false},
		{"nan string", "NaN", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := coerceFloat(tc.raw)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Fatalf("coerceFloat(%v) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
			}
		})
	}
}
