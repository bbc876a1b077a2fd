// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the media-hub server.
//
// The primary abstraction is [MailSender], which decouples the service layer
// from the mail transport. The package ships an HTTP gateway implementation
// and a log-only fallback used when no gateway endpoint is configured
// ([NewMailSender] picks one).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrUnauthorized] for 401, [ErrBadGateway] for 502).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_sender_mock.go -package=mock

// MailSender delivers the account emails of the sign-up and password reset
// flows.
type MailSender interface {
	// SendMailWithSignUpKey sends the numeric verification code that the
	// recipient must echo back to finish registration.
	SendMailWithSignUpKey(ctx context.Context, email, key string) error

	// SendMailWithNewPassword sends a freshly generated password after a
	// password reset.
	SendMailWithNewPassword(ctx context.Context, email, password string) error
}
