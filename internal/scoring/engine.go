// Package scoring implementa el motor de puntuación de los seis pilares de
// bienestar. Todo el comportamiento está dirigido por datos: catálogo de
// preguntas, configuración de pilares y reglas de ajuste. Es una función
// pura sobre el mapa de respuestas, sin estado compartido mutable, segura
// para llamadas concurrentes.
package scoring

import "math"

// Component es una pregunta ponderada dentro de un pilar. Normalizer
// permite sobreescribir el normalizador del catálogo para ese pilar.
type Component struct {
	QuestionID string
	Weight     float64
	Normalizer Normalizer
}

// AdjustmentRule suma Impact al puntaje base cuando When se cumple.
// Las reglas son independientes: todas las que disparan se aplican, sin
// prioridad ni corte.
type AdjustmentRule struct {
	When   Condition
	Impact float64
}

// PillarConfig agrupa los componentes ponderados y los ajustes de un pilar.
type PillarConfig struct {
	Name        Pillar
	Components  []Component
	Adjustments []AdjustmentRule
}

// weightedBase agrega los componentes respondidos como media ponderada.
// Un componente sin respuesta no aporta y su peso sale del denominador.
// answered es false cuando ningún componente tuvo respuesta.
func weightedBase(respostas Answers, components []Component) (base float64, answered bool) {
	accumulated := 0.0
	totalWeight := 0.0
	for _, component := range components {
		normalizer := component.Normalizer
		if normalizer == nil {
			normalizer = catalogNormalizer(component.QuestionID)
		}
		if normalizer == nil {
			continue
		}
		answer, present := resolveAnswer(respostas, component.QuestionID)
		if !present {
			continue
		}
		accumulated += normalizer.Normalize(answer) * component.Weight
		totalWeight += component.Weight
	}
	if totalWeight == 0 {
		return 0, false
	}
	return accumulated / totalWeight, true
}

// applyAdjustments recorre las reglas en orden de declaración, suma el
// impacto de cada una que se cumple y recorta el resultado a [0,100].
func applyAdjustments(base float64, respostas Answers, rules []AdjustmentRule) float64 {
	score := base
	for _, rule := range rules {
		if rule.When.Matches(respostas) {
			score += rule.Impact
		}
	}
	return clampScore(score)
}

// CalculatePillars puntúa las respuestas del formulario y devuelve el mapa
// con los seis pilares. Un pilar sin ningún componente respondido queda en
// nil; el resto se recorta a [0,100] y se redondea al entero más cercano.
func CalculatePillars(respostas Answers) PillarScores {
	resultados := make(PillarScores, len(pillarConfigs))
	for _, config := range pillarConfigs {
		base, answered := weightedBase(respostas, config.Components)
		if !answered {
			resultados[config.Name] = nil
			continue
		}
		final := int(math.Round(applyAdjustments(base, respostas, config.Adjustments)))
		resultados[config.Name] = &final
	}
	return resultados
}
