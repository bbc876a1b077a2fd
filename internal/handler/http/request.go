package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

const (
	profileIDHeader = "profileId"

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// decodeRequest decodes the JSON body into dst and checks its validate tags.
func (h *Handler) decodeRequest(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return h.validator.Validate(r.Context(), dst)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %w", ErrInvalidPathParameter, name, err)
	}
	return id, nil
}

func currentUser(r *http.Request) (uuid.UUID, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, ErrMissingUser
	}
	return userID, nil
}

func viewingProfile(r *http.Request) (uuid.UUID, error) {
	header := r.Header.Get(profileIDHeader)
	if header == "" {
		return uuid.Nil, ErrMissingProfileHeader
	}
	id, err := uuid.Parse(header)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrMissingProfileHeader, err)
	}
	return id, nil
}

// pagination reads limit and offset from the query string.
func pagination(r *http.Request) (limit, offset uint64, err error) {
	limit, offset = defaultPageLimit, 0

	query := r.URL.Query()
	if v := query.Get("limit"); v != "" {
		if limit, err = strconv.ParseUint(v, 10, 64); err != nil || limit == 0 {
			return 0, 0, fmt.Errorf("%w: limit %q", ErrInvalidQueryParameter, v)
		}
		limit = min(limit, maxPageLimit)
	}
	if v := query.Get("offset"); v != "" {
		if offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: offset %q", ErrInvalidQueryParameter, v)
		}
	}
	return limit, offset, nil
}

func castKind(r *http.Request) (models.CastKind, error) {
	kind := models.CastKind(chi.URLParam(r, "kind"))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: unknown cast kind %q", ErrInvalidPathParameter, kind)
	}
	return kind, nil
}

// writeResponse writes data as JSON, logging a failed write.
func writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
