package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/mock"
	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

const testToken = "test-access-token"

// testMocks holds the service mocks behind a Handler.
type testMocks struct {
	users    *mock.MockUserService
	profiles *mock.MockProfileService
	wishes   *mock.MockWishContentService
	contents *mock.MockMediaContentsService
	genres   *mock.MockNamedService[models.Genre]
	actors   *mock.MockNamedService[models.Actor]
	creators *mock.MockNamedService[models.Creator]
	tokens   *mock.MockTokenProvider
	health   *mock.MockHealthService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		users:    mock.NewMockUserService(ctrl),
		profiles: mock.NewMockProfileService(ctrl),
		wishes:   mock.NewMockWishContentService(ctrl),
		contents: mock.NewMockMediaContentsService(ctrl),
		genres:   mock.NewMockNamedService[models.Genre](ctrl),
		actors:   mock.NewMockNamedService[models.Actor](ctrl),
		creators: mock.NewMockNamedService[models.Creator](ctrl),
		tokens:   mock.NewMockTokenProvider(ctrl),
		health:   mock.NewMockHealthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		UserService:          m.users,
		ProfileService:       m.profiles,
		WishContentService:   m.wishes,
		MediaContentsService: m.contents,
		GenreService:         m.genres,
		ActorService:         m.actors,
		CreatorService:       m.creators,
		TokenProvider:        m.tokens,
		HealthService:        m.health,
		AppInfoService:       m.appInfo,
	}

	return NewHandler(services, config.Server{}, logger.Nop()), m
}

// expectAuth makes testToken authenticate userID with role.
func (m *testMocks) expectAuth(userID uuid.UUID, role models.Role) {
	m.tokens.EXPECT().ParseAccessToken(testToken).Return(models.Token{UserID: userID, Role: role}, nil).AnyTimes()
}

// newJSONRequest builds a request with body marshalled as JSON. A nil body
// sends no body at all.
func newJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// authorized adds the test bearer token.
func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func newUser() models.User {
	return models.User{ID: utils.NewID(), Email: "alice@media.test", Role: models.RoleUser}
}
