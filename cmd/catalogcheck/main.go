package main

import (
	"fmt"
	"os"

	"nutrisigno-api/internal/intake"
	"nutrisigno-api/internal/scoring"
)

// Lint de las tablas estáticas: catálogo de puntuación y esquema del
// formulario. Se corre antes de publicar cambios de configuración para
// detectar preguntas desalineadas entre ambos.
func main() {
	problems := scoring.ValidateCatalog()
	problems = append(problems, checkFormSchema()...)

	if len(problems) == 0 {
		fmt.Println("✅ catálogo y esquema del formulario coherentes")
		os.Exit(0)
	}

	for _, p := range problems {
		fmt.Printf("❌ %s\n", p)
	}
	fmt.Printf("Problemas: %d\n", len(problems))
	os.Exit(1)
}

// checkFormSchema verifica que cada pregunta del formulario exista en el
// catálogo con el mismo texto y las mismas opciones.
func checkFormSchema() []string {
	var problems []string

	seen := make(map[string]bool)
	for _, section := range intake.FormSchema() {
		for _, q := range section.Perguntas {
			if seen[q.ID] {
				problems = append(problems, fmt.Sprintf("formulario: pregunta %q duplicada", q.ID))
				continue
			}
			seen[q.ID] = true

			catalogQ, ok := scoring.CatalogQuestion(q.ID)
			if !ok {
				problems = append(problems, fmt.Sprintf("formulario: pregunta %q no existe en el catálogo", q.ID))
				continue
			}
			if q.Label != catalogQ.Text {
				problems = append(problems, fmt.Sprintf("formulario: pregunta %q con label distinto al catálogo", q.ID))
			}

			switch q.TipoCampo {
			case "select", "radio":
				if !sameOptions(q.Opcoes, catalogQ.Options) {
					problems = append(problems, fmt.Sprintf("formulario: pregunta %q con opciones distintas al catálogo", q.ID))
				}
			case "slider":
				if catalogQ.Type != scoring.QuestionNumeric {
					problems = append(problems, fmt.Sprintf("formulario: pregunta %q es slider pero el catálogo no la trata como numérica", q.ID))
				}
				if q.Config == nil {
					problems = append(problems, fmt.Sprintf("formulario: slider %q sin config de rango", q.ID))
				}
			default:
				problems = append(problems, fmt.Sprintf("formulario: pregunta %q con tipo_campo %q desconocido", q.ID, q.TipoCampo))
			}
		}
	}

	return problems
}

func sameOptions(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
