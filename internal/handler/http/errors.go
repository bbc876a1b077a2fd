// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. They are mapped
// to responses like the service errors are.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingUser is returned when an authenticated route runs without a
	// user in the request context.
	ErrMissingUser = errors.New("no authenticated user in request")

	// ErrInvalidPathParameter is returned when a URL parameter is not a UUID.
	ErrInvalidPathParameter = errors.New("invalid path parameter")

	// ErrInvalidQueryParameter is returned for malformed query parameters.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrMissingProfileHeader is returned when a viewing route is called
	// without the profileId header.
	ErrMissingProfileHeader = errors.New("missing `profileId` header")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)
