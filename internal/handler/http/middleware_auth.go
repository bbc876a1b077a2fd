package http

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.TokenProvider.ParseAccessToken] and stores the user id and
// role in the request context with [utils.WithUser].
//
// Requests without a header, with a malformed header or with an invalid or
// expired token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		token, err := h.services.TokenProvider.ParseAccessToken(tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := utils.WithUser(r.Context(), token.UserID, token.Role)

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.UserID.String())
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// requireRole lets the request through only when the authenticated user has
// one of roles. It must run after auth.
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrMissingUser)
				return
			}
			if !slices.Contains(roles, role) {
				writeError(w, r, fmt.Errorf("%w: role %s", service.ErrForbidden, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
