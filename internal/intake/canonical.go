// Package intake convierte el payload crudo del formulario de anamnesis en
// datos canónicos listos para validar, puntuar y persistir. El teléfono se
// reduce a dígitos y la fecha de nacimiento a DD/MM/YYYY, de modo que la
// búsqueda posterior por teléfono+fecha siempre compare valores canónicos.
package intake

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// BirthDateLayout es el formato canónico de fecha de nacimiento (DD/MM/YYYY).
const BirthDateLayout = "02/01/2006"

var (
	nonDigitsRE = regexp.MustCompile(`\D+`)
	isoDateRE   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	brDateRE    = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// CanonPhone reduce un teléfono a sus dígitos, sin ceros a la izquierda.
func CanonPhone(raw string) string {
	digits := nonDigitsRE.ReplaceAllString(raw, "")
	return strings.TrimLeft(digits, "0")
}

// CanonBirthDate normaliza una fecha a DD/MM/YYYY. Acepta DD/MM/YYYY,
// YYYY-MM-DD y variantes sin cero inicial; una cadena vacía se devuelve
// vacía sin error. No valida el calendario: eso le toca al validador.
func CanonBirthDate(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", nil
	}

	if m := brDateRE.FindStringSubmatch(text); m != nil {
		return m[1] + "/" + m[2] + "/" + m[3], nil
	}
	if m := isoDateRE.FindStringSubmatch(text); m != nil {
		return m[3] + "/" + m[2] + "/" + m[1], nil
	}

	for _, layout := range []string{BirthDateLayout, "2006-01-02"} {
		if dt, err := time.Parse(layout, text); err == nil {
			return dt.Format(BirthDateLayout), nil
		}
	}
	return "", fmt.Errorf("data_nascimento inválida: %s", text)
}
