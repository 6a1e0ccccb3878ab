package scoring

import "fmt"

/*
========================
 Lint del catálogo
========================
*/

// ValidateCatalog revisa la coherencia interna de las tablas estáticas y
// devuelve una lista de problemas (vacía si todo está bien). Lo usa el
// binario catalogcheck antes de publicar cambios de configuración.
func ValidateCatalog() []string {
	var problems []string

	for id, question := range questionCatalog {
		switch n := question.Normalizer.(type) {
		case Categorical:
			if len(n.Mapping) == 0 {
				problems = append(problems, fmt.Sprintf("pregunta %q: mapeo categórico vacío", id))
			}
			for key, score := range n.Mapping {
				if score < 0 || score > 100 {
					problems = append(problems, fmt.Sprintf("pregunta %q: la clave %q mapea a %v fuera de [0,100]", id, key, score))
				}
				if key != foldKey(key) {
					problems = append(problems, fmt.Sprintf("pregunta %q: la clave %q no está plegada", id, key))
				}
			}
		case NumericRange:
			if n.MinIdeal > n.MaxIdeal {
				problems = append(problems, fmt.Sprintf("pregunta %q: min_ideal %v mayor que max_ideal %v", id, n.MinIdeal, n.MaxIdeal))
			}
			if n.HardMin > n.MinIdeal {
				problems = append(problems, fmt.Sprintf("pregunta %q: hard_min %v mayor que min_ideal %v", id, n.HardMin, n.MinIdeal))
			}
			if n.HardMax < n.MaxIdeal {
				problems = append(problems, fmt.Sprintf("pregunta %q: hard_max %v menor que max_ideal %v", id, n.HardMax, n.MaxIdeal))
			}
		case nil:
			problems = append(problems, fmt.Sprintf("pregunta %q: sin normalizador", id))
		}
	}

	for canonical, aliases := range legacyAliases {
		if _, ok := questionCatalog[canonical]; !ok {
			problems = append(problems, fmt.Sprintf("alias hacia %q: la pregunta canónica no existe", canonical))
		}
		for _, alias := range aliases {
			if alias.key == "" {
				problems = append(problems, fmt.Sprintf("alias de %q: clave vacía", canonical))
			}
			if _, ok := questionCatalog[alias.key]; ok {
				problems = append(problems, fmt.Sprintf("alias %q de %q: colisiona con una pregunta del catálogo", alias.key, canonical))
			}
		}
	}

	seen := make(map[Pillar]bool, len(pillarConfigs))
	for _, config := range pillarConfigs {
		if seen[config.Name] {
			problems = append(problems, fmt.Sprintf("pilar %q: configurado dos veces", config.Name))
		}
		seen[config.Name] = true
		if len(config.Components) == 0 {
			problems = append(problems, fmt.Sprintf("pilar %q: sin componentes", config.Name))
		}
		for _, component := range config.Components {
			if component.Weight <= 0 {
				problems = append(problems, fmt.Sprintf("pilar %q: componente %q con peso %v", config.Name, component.QuestionID, component.Weight))
			}
			if component.Normalizer == nil {
				if _, ok := questionCatalog[component.QuestionID]; !ok {
					problems = append(problems, fmt.Sprintf("pilar %q: componente %q no está en el catálogo", config.Name, component.QuestionID))
				}
			}
		}
		for i, rule := range config.Adjustments {
			problems = append(problems, checkCondition(config.Name, i, rule.When)...)
		}
	}
	for _, name := range Pillars() {
		if !seen[name] {
			problems = append(problems, fmt.Sprintf("pilar %q: sin configuración", name))
		}
	}

	return problems
}

// checkCondition valida recursivamente que las comparaciones referencien
// preguntas conocidas y operadores soportados.
func checkCondition(pillar Pillar, rule int, condition Condition) []string {
	var problems []string
	switch c := condition.(type) {
	case All:
		for _, child := range c.Conditions {
			problems = append(problems, checkCondition(pillar, rule, child)...)
		}
	case Any:
		for _, child := range c.Conditions {
			problems = append(problems, checkCondition(pillar, rule, child)...)
		}
	case Comparison:
		if _, ok := questionCatalog[c.Question]; !ok {
			problems = append(problems, fmt.Sprintf("pilar %q, ajuste %d: la condición referencia la pregunta desconocida %q", pillar, rule, c.Question))
		}
		switch c.Op {
		case OpEq, OpIn, OpNotIn, OpLt, OpLe, OpGt, OpGe, OpBetween:
		default:
			problems = append(problems, fmt.Sprintf("pilar %q, ajuste %d: operador desconocido %q", pillar, rule, c.Op))
		}
		if c.Op == OpBetween {
			if _, _, ok := bounds(c.Value); !ok {
				problems = append(problems, fmt.Sprintf("pilar %q, ajuste %d: límites between mal formados", pillar, rule))
			}
		}
	case nil:
		problems = append(problems, fmt.Sprintf("pilar %q, ajuste %d: condición nil", pillar, rule))
	}
	return problems
}
