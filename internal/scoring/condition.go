package scoring

/*
========================
 Evaluador de condiciones
========================
*/

// Operator es el comparador de una condición hoja.
type Operator string

const (
	OpEq      Operator = "eq"
	OpIn      Operator = "in"
	OpNotIn   Operator = "not_in"
	OpLt      Operator = "lt"
	OpLe      Operator = "le"
	OpGt      Operator = "gt"
	OpGe      Operator = "ge"
	OpBetween Operator = "between"
)

// Condition es un árbol booleano evaluado contra las respuestas.
// Unión cerrada: Comparison | All | Any. Todo dato faltante o mal formado
// evalúa a false; un ajuste nunca dispara sobre datos ambiguos.
type Condition interface {
	Matches(respostas Answers) bool
	isCondition()
}

// Comparison compara la respuesta de una pregunta contra un valor objetivo.
// Con UseNormalized el operando izquierdo es el puntaje normalizado de la
// respuesta en lugar del valor crudo.
type Comparison struct {
	Question      string
	Op            Operator
	Value         any
	UseNormalized bool
}

// All es conjunción: verdadera si todos los hijos lo son (vacía es verdadera).
type All struct {
	Conditions []Condition
}

// Any es disyunción: verdadera si algún hijo lo es (vacía es falsa).
type Any struct {
	Conditions []Condition
}

func (Comparison) isCondition() {}
func (All) isCondition()        {}
func (Any) isCondition()        {}

func (c All) Matches(respostas Answers) bool {
	for _, child := range c.Conditions {
		if !child.Matches(respostas) {
			return false
		}
	}
	return true
}

func (c Any) Matches(respostas Answers) bool {
	for _, child := range c.Conditions {
		if child.Matches(respostas) {
			return true
		}
	}
	return false
}

func (c Comparison) Matches(respostas Answers) bool {
	left, ok := c.leftOperand(respostas)
	if !ok {
		return false
	}

	switch c.Op {
	case OpLt, OpLe, OpGt, OpGe:
		value, okV := coerceFloat(left)
		target, okT := coerceFloat(c.Value)
		if !okV || !okT {
			return false
		}
		switch c.Op {
		case OpLt:
			return value < target
		case OpLe:
			return value <= target
		case OpGt:
			return value > target
		default:
			return value >= target
		}
	case OpBetween:
		value, okV := coerceFloat(left)
		if !okV {
			return false
		}
		low, high, okB := bounds(c.Value)
		if !okB {
			return false
		}
		return low <= value && value <= high
	case OpIn:
		members, okM := foldedSet(c.Value)
		if !okM {
			return false
		}
		_, found := members[foldKey(stringify(left))]
		return found
	case OpNotIn:
		members, okM := foldedSet(c.Value)
		if !okM {
			return false
		}
		_, found := members[foldKey(stringify(left))]
		return !found
	case OpEq:
		return foldKey(stringify(left)) == foldKey(stringify(c.Value))
	default:
		return false
	}
}

// leftOperand resuelve el valor a comparar; false si la respuesta falta o,
// con UseNormalized, la pregunta no tiene normalizador en el catálogo.
func (c Comparison) leftOperand(respostas Answers) (any, bool) {
	raw, present := resolveAnswer(respostas, c.Question)
	if !present {
		return nil, false
	}
	if !c.UseNormalized {
		return raw, true
	}
	normalizer := catalogNormalizer(c.Question)
	if normalizer == nil {
		return nil, false
	}
	return normalizer.Normalize(raw), true
}

// bounds extrae el par inclusivo [low, high] de un objetivo between.
func bounds(target any) (float64, float64, bool) {
	var pair []any
	switch t := target.(type) {
	case []any:
		pair = t
	case []float64:
		if len(t) != 2 {
			return 0, 0, false
		}
		return t[0], t[1], true
	case []int:
		if len(t) != 2 {
			return 0, 0, false
		}
		return float64(t[0]), float64(t[1]), true
	default:
		return 0, 0, false
	}
	if len(pair) != 2 {
		return 0, 0, false
	}
	low, okL := coerceFloat(pair[0])
	high, okH := coerceFloat(pair[1])
	if !okL || !okH {
		return 0, 0, false
	}
	return low, high, true
}

// foldedSet construye el conjunto de pertenencia para in/not_in.
func foldedSet(target any) (map[string]struct{}, bool) {
	add := func(set map[string]struct{}, v any) {
		set[foldKey(stringify(v))] = struct{}{}
	}
	switch t := target.(type) {
	case []string:
		set := make(map[string]struct{}, len(t))
		for _, v := range t {
			add(set, v)
		}
		return set, true
	case []any:
		set := make(map[string]struct{}, len(t))
		for _, v := range t {
			add(set, v)
		}
		return set, true
	default:
		return nil, false
	}
}
