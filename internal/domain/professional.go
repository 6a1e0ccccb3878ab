package domain

import "time"

// Professional es la cuenta con acceso al panel de validación.
type Professional struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nome         string    `json:"nome,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
