package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultScore es el puntaje asignado cuando una respuesta presente no se
// puede interpretar (texto sin mapeo, número ilegible).
const DefaultScore = 50.0

/*
========================
 Normalizadores
========================
*/

// Normalizer convierte una respuesta presente en un puntaje 0-100.
// Es una unión cerrada: Categorical | NumericRange. La ausencia de
// respuesta se resuelve antes, en la agregación, nunca aquí.
type Normalizer interface {
	Normalize(raw any) float64
	isNormalizer()
}

// Categorical resuelve por búsqueda de texto plegado (minúsculas, sin
// espacios de borde). Cada grafía aceptada de una opción es una clave
// explícita del mapeo; no hay plegado de acentos implícito.
type Categorical struct {
	Mapping map[string]float64
	Default float64
}

// NumericRange interpola linealmente entre un rango ideal y límites duros.
type NumericRange struct {
	MinIdeal float64
	MaxIdeal float64
	HardMin  float64
	HardMax  float64
	Default  float64
}

func (Categorical) isNormalizer()  {}
func (NumericRange) isNormalizer() {}

// NewCategorical pliega las claves del mapeo y fija el default global.
func NewCategorical(mapping map[string]float64) Categorical {
	folded := make(map[string]float64, len(mapping))
	for k, v := range mapping {
		folded[foldKey(k)] = v
	}
	return Categorical{Mapping: folded, Default: DefaultScore}
}

func NewNumericRange(minIdeal, maxIdeal, hardMin, hardMax float64) NumericRange {
	return NumericRange{
		MinIdeal: minIdeal,
		MaxIdeal: maxIdeal,
		HardMin:  hardMin,
		HardMax:  hardMax,
		Default:  DefaultScore,
	}
}

func (n Categorical) Normalize(raw any) float64 {
	if score, ok := n.Mapping[foldKey(stringify(raw))]; ok {
		return score
	}
	return n.Default
}

func (n NumericRange) Normalize(raw any) float64 {
	value, ok := coerceFloat(raw)
	if !ok {
		return n.Default
	}
	switch {
	case value < n.MinIdeal:
		if value <= n.HardMin {
			return 0
		}
		return 100 * (value - n.HardMin) / (n.MinIdeal - n.HardMin)
	case value > n.MaxIdeal:
		if value >= n.HardMax {
			return 0
		}
		return 100 * (n.HardMax - value) / (n.HardMax - n.MaxIdeal)
	default:
		return 100
	}
}

/*
========================
 Coerción de valores
========================
*/

// foldKey normaliza texto para comparación: recorta bordes y baja a
// minúsculas. No elimina acentos; las grafías sin acento se declaran
// como claves propias en el catálogo.
func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stringify produce la representación textual usada en comparaciones
// categóricas. Los flotantes enteros quedan sin decimales ("3", no "3.0")
// para que coincidan con claves numéricas como las de la escala Bristol.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// coerceFloat acepta números, strings con coma o punto decimal y booleanos.
func coerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case float32:
		return coerceFloat(float64(x))
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		candidate := strings.TrimSpace(strings.ReplaceAll(x, ",", "."))
		f, err := strconv.ParseFloat(candidate, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
