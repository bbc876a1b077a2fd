package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/mock"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/validators"
	"github.com/MKhiriev/go-media-hub/models"
)

// newIntegrationServices wires the services over a migrated SQLite file and
// an in-memory Redis.
func newIntegrationServices(t *testing.T) (*Services, *store.Storages, *mock.MockMailSender) {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, config.DB{DSN: "sqlite3://" + filepath.Join(t.TempDir(), "media.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.StructuredConfig{App: testAppConfig()}
	cfg.Storage.Redis.KeyPrefix = "test:"

	storages := store.NewStorages(db, rdb, cfg, logger.Nop())
	mail := mock.NewMockMailSender(gomock.NewController(t))

	services, err := NewServices(storages, mail, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	return services, storages, mail
}

func TestIntegration_ProfileLimit(t *testing.T) {
	services, _, _ := newIntegrationServices(t)
	ctx := context.Background()

	user, err := services.UserService.SignUp(ctx, models.SignUpRequest{Email: "bob@media.test", Password: testPassword})
	require.NoError(t, err)

	limit := testAppConfig().MaxProfiles
	for i := 0; i < limit; i++ {
		_, err = services.ProfileService.Create(ctx, user.ID, models.ProfileCreateRequest{Name: "p", Rate: "12"})
		require.NoError(t, err)
	}

	_, err = services.ProfileService.Create(ctx, user.ID, models.ProfileCreateRequest{Name: "one more", Rate: "12"})
	require.ErrorIs(t, err, validators.ErrProfileLimitExceeded)

	profiles, err := services.ProfileService.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, profiles, limit)

	// a deleted profile frees a slot
	require.NoError(t, services.ProfileService.Delete(ctx, user.ID, profiles[0].ID))
	_, err = services.ProfileService.Create(ctx, user.ID, models.ProfileCreateRequest{Name: "again", Rate: "12"})
	require.NoError(t, err)
}

func TestIntegration_LikeAndWishLifecycle(t *testing.T) {
	services, _, _ := newIntegrationServices(t)
	ctx := context.Background()

	user, err := services.UserService.SignUp(ctx, models.SignUpRequest{Email: "carol@media.test", Password: testPassword})
	require.NoError(t, err)
	profile, err := services.ProfileService.Create(ctx, user.ID, models.ProfileCreateRequest{Name: "carol", Rate: "18"})
	require.NoError(t, err)

	genre, err := services.GenreService.Create(ctx, "Thriller")
	require.NoError(t, err)
	contents, err := services.MediaContentsService.Create(ctx, models.MediaContentsCreateRequest{
		Title:    "Heat",
		Rate:     "18",
		GenreIDs: []uuid.UUID{genre.ID},
	})
	require.NoError(t, err)
	require.Len(t, contents.Genres, 1)

	_, err = services.ProfileService.CreateLike(ctx, user.ID, profile.ID, contents.ID)
	require.NoError(t, err)
	_, err = services.ProfileService.CreateLike(ctx, user.ID, profile.ID, contents.ID)
	require.ErrorIs(t, err, ErrLikeAlreadyExists)

	_, err = services.WishContentService.Create(ctx, user.ID, profile.ID, contents.ID)
	require.NoError(t, err)

	view, err := services.MediaContentsService.FindByID(ctx, user.ID, profile.ID, contents.ID)
	require.NoError(t, err)
	assert.True(t, view.IsLike)
	assert.True(t, view.IsWish)

	// wishes are soft deleted and may be added again
	require.NoError(t, services.WishContentService.Delete(ctx, user.ID, profile.ID, contents.ID))
	require.ErrorIs(t, services.WishContentService.Delete(ctx, user.ID, profile.ID, contents.ID), ErrWishNotFound)
	_, err = services.WishContentService.Create(ctx, user.ID, profile.ID, contents.ID)
	require.NoError(t, err)

	// a deleted profile can no longer like anything
	require.NoError(t, services.ProfileService.Delete(ctx, user.ID, profile.ID))
	err = services.ProfileService.DeleteLike(ctx, user.ID, profile.ID, contents.ID)
	require.ErrorIs(t, err, validators.ErrResourceDeleted)
	_, err = services.ProfileService.FindByID(ctx, user.ID, profile.ID)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestIntegration_SignUpVerificationAndTokens(t *testing.T) {
	services, _, mail := newIntegrationServices(t)
	ctx := context.Background()
	email := "dave@media.test"

	var code string
	mail.EXPECT().SendMailWithSignUpKey(gomock.Any(), email, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, key string) error {
			code = key
			return nil
		},
	)

	require.NoError(t, services.UserService.SignUpVerifyMail(ctx, email))
	require.Len(t, code, signUpKeyLength)
	require.ErrorIs(t, services.UserService.SignUpVerifyAuth(ctx, email, "nope"), ErrNotAccessible)
	require.NoError(t, services.UserService.SignUpVerifyAuth(ctx, email, code))

	user, err := services.UserService.SignUp(ctx, models.SignUpRequest{Email: email, Password: testPassword})
	require.NoError(t, err)

	signIn, err := services.UserService.SignIn(ctx, models.SignInRequest{Email: email, Password: testPassword})
	require.NoError(t, err)

	token, err := services.TokenProvider.ParseAccessToken(signIn.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)

	refreshed, err := services.UserService.RefreshAccessToken(ctx, signIn.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, signIn.RefreshToken, refreshed.RefreshToken)

	_, err = services.UserService.RefreshAccessToken(ctx, signIn.RefreshToken)
	require.ErrorIs(t, err, ErrNotAccessible)
}

func TestIntegration_Health(t *testing.T) {
	services, _, _ := newIntegrationServices(t)

	resp, ok := services.HealthService.Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "ok", resp.Status)
}
