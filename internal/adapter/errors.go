package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("mail gateway rejected request")
	ErrUnauthorized        = errors.New("mail gateway unauthorized")
	ErrForbidden           = errors.New("mail gateway forbidden")
	ErrNotFound            = errors.New("mail gateway endpoint not found")
	ErrConflict            = errors.New("mail gateway conflict")
	ErrBadGateway          = errors.New("mail gateway bad gateway")
	ErrInternalServerError = errors.New("mail gateway internal error")

	ErrInvalidEndpoint = errors.New("invalid mail gateway endpoint")
	ErrDelivery        = errors.New("mail delivery failed")
)
