package adapter

import (
	"context"

	"github.com/MKhiriev/go-media-hub/internal/logger"
)

// logMailSender writes messages to the log instead of delivering them.
// The new password is never logged.
type logMailSender struct {
	logger *logger.Logger
}

func (l *logMailSender) SendMailWithSignUpKey(_ context.Context, email, key string) error {
	l.logger.Info().Str("to", email).Str("key", key).Msg("sign-up key mail")
	return nil
}

func (l *logMailSender) SendMailWithNewPassword(_ context.Context, email, _ string) error {
	l.logger.Info().Str("to", email).Msg("new password mail")
	return nil
}
