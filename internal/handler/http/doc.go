// Package http implements the REST API of the media service.
//
// It exposes route wiring, request handlers and middleware. Authentication,
// role checks, request tracing and access logging are handled here before
// requests are delegated to the service layer. Every failed request is
// answered with a JSON [models.ErrorResponse].
package http
