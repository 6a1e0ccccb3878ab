package domain

import "strings"

// ValidationError agrupa mensajes de validación listos para el usuario
// final. El texto completo une los mensajes con "; ".
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
