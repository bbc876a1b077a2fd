package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

func TestCatalogRoutes(t *testing.T) {
	user := newUser()

	t.Run("list genres", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth(user.ID, models.RoleUser)
		m.genres.EXPECT().FindAll(gomock.Any()).Return([]models.Genre{{ID: utils.NewID(), Name: "Drama"}}, nil)

		rec := serve(h, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Drama", decodeBody[[]models.Genre](t, rec)[0].Name)
	})

	t.Run("list actors anonymously", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/actors", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user cannot create creator", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth(user.ID, models.RoleUser)

		rec := serve(h, authorized(newJSONRequest(t, http.MethodPost, "/api/v1/creators", models.CatalogNameRequest{Name: "Villeneuve"})))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates actor", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth(user.ID, models.RoleAdmin)
		m.actors.EXPECT().Create(gomock.Any(), "Zendaya").Return(models.Actor{ID: utils.NewID(), Name: "Zendaya"}, nil)

		rec := serve(h, authorized(newJSONRequest(t, http.MethodPost, "/api/v1/actors", models.CatalogNameRequest{Name: "Zendaya"})))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Zendaya", decodeBody[models.Actor](t, rec).Name)
	})

	t.Run("duplicate genre", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth(user.ID, models.RoleAdmin)
		m.genres.EXPECT().Create(gomock.Any(), "Drama").Return(models.Genre{}, service.ErrNameAlreadyExists)

		rec := serve(h, authorized(newJSONRequest(t, http.MethodPost, "/api/v1/genres", models.CatalogNameRequest{Name: "Drama"})))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, codeRowAlreadyExist, decodeBody[models.ErrorResponse](t, rec).Code)
	})

	t.Run("empty name", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuth(user.ID, models.RoleAdmin)

		rec := serve(h, authorized(newJSONRequest(t, http.MethodPost, "/api/v1/genres", models.CatalogNameRequest{})))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
