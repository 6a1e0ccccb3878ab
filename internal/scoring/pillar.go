package scoring

// Pillar identifica una de las seis dimensiones de bienestar.
type Pillar string

const (
	PillarEnergia    Pillar = "Energia"
	PillarDigestao   Pillar = "Digestao"
	PillarSono       Pillar = "Sono"
	PillarHidratacao Pillar = "Hidratacao"
	PillarEmocao     Pillar = "Emocao"
	PillarRotina     Pillar = "Rotina"
)

// Pillars devuelve los seis pilares en el orden canónico del producto.
// El orden importa para el vector de similitud y para salidas legibles.
func Pillars() []Pillar {
	return []Pillar{
		PillarEnergia,
		PillarDigestao,
		PillarSono,
		PillarHidratacao,
		PillarEmocao,
		PillarRotina,
	}
}

// Answers son las respuestas crudas del formulario, indexadas por id de
// pregunta. Los valores pueden ser strings, números o nil. El motor nunca
// muta este mapa.
type Answers map[string]any

// PillarScores mapea cada pilar a su puntuación 0-100. Un puntero nil
// significa "sin datos": ningún componente del pilar fue respondido.
// nil y 0 son señales distintas y nunca se mezclan.
type PillarScores map[Pillar]*int

// Complete indica si los seis pilares tienen puntuación numérica.
func (p PillarScores) Complete() bool {
	for _, name := range Pillars() {
		v, ok := p[name]
		if !ok || v == nil {
			return false
		}
	}
	return true
}

// Vector devuelve las puntuaciones en orden canónico para búsquedas de
// similitud. ok es false si algún pilar está sin datos.
func (p PillarScores) Vector() ([]float32, bool) {
	if !p.Complete() {
		return nil, false
	}
	out := make([]float32, 0, len(Pillars()))
	for _, name := range Pillars() {
		out = append(out, float32(*p[name]))
	}
	return out, true
}
