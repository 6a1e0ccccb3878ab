package scoring

import "math"

// SanitizeScores revalida un mapa de puntuaciones que viene de storage o
// caché en lugar del motor. Para cada pilar: valor ausente, vacío o no
// numérico queda en nil; un número finito se recorta a [0,100] y se
// redondea. Nunca inventa un número donde había basura.
func SanitizeScores(raw map[string]any) PillarScores {
	out := make(PillarScores, len(Pillars()))
	for _, name := range Pillars() {
		value, ok := raw[string(name)]
		if !ok || value == nil {
			out[name] = nil
			continue
		}
		numeric, ok := coerceFloat(value)
		if !ok {
			out[name] = nil
			continue
		}
		score := int(math.Round(clampScore(numeric)))
		out[name] = &score
	}
	return out
}
