package email

import (
	"context"
	"errors"
)

// Sender define la interfaz para el correo de confirmación de anamnesis.
type Sender interface {
	SendIntakeConfirmation(ctx context.Context, toEmail string, nome string, pacID string) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendIntakeConfirmation(_ context.Context, _ string, _ string, _ string) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
