package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/mock"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

// testStorages holds the mocks behind a *store.Storages.
type testStorages struct {
	tx            *mock.MockTransactor
	users         *mock.MockUserRepository
	profiles      *mock.MockProfileRepository
	likes         *mock.MockLikeRepository
	wishes        *mock.MockWishContentRepository
	contents      *mock.MockMediaContentsRepository
	series        *mock.MockMediaSeriesRepository
	genres        *mock.MockNamedRepository[models.Genre]
	actors        *mock.MockNamedRepository[models.Actor]
	creators      *mock.MockNamedRepository[models.Creator]
	codes         *mock.MockVerificationCodeCache
	refreshTokens *mock.MockRefreshTokenRepository
	database      *mock.MockPinger
	cache         *mock.MockPinger
}

// newTestStorages builds mocked storages whose transactor runs fn inline.
func newTestStorages(ctrl *gomock.Controller) (*testStorages, *store.Storages) {
	m := &testStorages{
		tx:            mock.NewMockTransactor(ctrl),
		users:         mock.NewMockUserRepository(ctrl),
		profiles:      mock.NewMockProfileRepository(ctrl),
		likes:         mock.NewMockLikeRepository(ctrl),
		wishes:        mock.NewMockWishContentRepository(ctrl),
		contents:      mock.NewMockMediaContentsRepository(ctrl),
		series:        mock.NewMockMediaSeriesRepository(ctrl),
		genres:        mock.NewMockNamedRepository[models.Genre](ctrl),
		actors:        mock.NewMockNamedRepository[models.Actor](ctrl),
		creators:      mock.NewMockNamedRepository[models.Creator](ctrl),
		codes:         mock.NewMockVerificationCodeCache(ctrl),
		refreshTokens: mock.NewMockRefreshTokenRepository(ctrl),
		database:      mock.NewMockPinger(ctrl),
		cache:         mock.NewMockPinger(ctrl),
	}

	inline := func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(inline).AnyTimes()
	m.tx.EXPECT().WithinReadOnlyTx(gomock.Any(), gomock.Any()).DoAndReturn(inline).AnyTimes()

	return m, &store.Storages{
		Transactor:              m.tx,
		UserRepository:          m.users,
		ProfileRepository:       m.profiles,
		LikeRepository:          m.likes,
		WishContentRepository:   m.wishes,
		MediaContentsRepository: m.contents,
		MediaSeriesRepository:   m.series,
		GenreRepository:         m.genres,
		ActorRepository:         m.actors,
		CreatorRepository:       m.creators,
		VerificationCodeCache:   m.codes,
		RefreshTokenRepository:  m.refreshTokens,
		Database:                m.database,
		Cache:                   m.cache,
	}
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:         "sign-key",
		TokenIssuer:          "media-hub-test",
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
		SignUpKeyTTL:         180 * time.Second,
		MaxProfiles:          4,
		PasswordMinLength:    8,
		PasswordMaxLength:    20,
		BcryptCost:           bcrypt.MinCost,
		Version:              "test",
	}
}

func testUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		ID:        utils.NewID(),
		Email:     "alice@media.test",
		Password:  hash,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
}

func testProfile(userID uuid.UUID) models.Profile {
	return models.Profile{
		ID:        utils.NewID(),
		Name:      "alice",
		Rate:      "18",
		UserID:    userID,
		State:     models.StateActive,
		CreatedAt: time.Now().UTC(),
	}
}

func testContents() models.MediaContents {
	return models.MediaContents{
		ID:    utils.NewID(),
		Title: "Night Shift",
		Rate:  "15",
		State: models.StateActive,
	}
}
