package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

func TestAuth(t *testing.T) {
	userID := utils.NewID()

	tests := []struct {
		name       string
		header     string
		setup      func(m *testMocks)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   codeInvalidToken,
		},
		{
			name:       "not a bearer header",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   codeInvalidToken,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(m *testMocks) {
				m.tokens.EXPECT().ParseAccessToken("expired").
					Return(models.Token{}, errors.Join(service.ErrTokenIsExpiredOrInvalid, errors.New("token is expired")))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   codeInvalidToken,
		},
		{
			name:   "valid token",
			header: "Bearer " + testToken,
			setup: func(m *testMocks) {
				m.expectAuth(userID, models.RoleUser)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			var gotUserID uuid.UUID
			var gotRole models.Role
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				gotRole, _ = utils.GetRoleFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeBody[models.ErrorResponse](t, rec).Code)
				return
			}
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, models.RoleUser, gotRole)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		withUser   bool
		role       models.Role
		wantStatus int
	}{
		{name: "admin passes", withUser: true, role: models.RoleAdmin, wantStatus: http.StatusOK},
		{name: "user is forbidden", withUser: true, role: models.RoleUser, wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.withUser {
				req = req.WithContext(utils.WithUser(req.Context(), utils.NewID(), tt.role))
			}
			rec := httptest.NewRecorder()
			requireRole(models.RoleAdmin)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
