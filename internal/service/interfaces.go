package service

import (
	"context"

	"github.com/MKhiriev/go-media-hub/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService covers the account flows: sign-up with an emailed code,
// sign-in, token refresh and password management.
type UserService interface {
	FindByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	IsDuplicatedByEmail(ctx context.Context, email string) (bool, error)

	SignUpVerifyMail(ctx context.Context, email string) error
	SignUpVerifyAuth(ctx context.Context, email, signUpKey string) error
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (models.TokenResponse, error)

	UpdatePassword(ctx context.Context, userID uuid.UUID, req models.PasswordUpdateRequest) (models.User, error)
	FindPassword(ctx context.Context, email string) error
	FindProfiles(ctx context.Context, userID uuid.UUID) ([]models.Profile, error)
}

// ProfileService manages profiles and their likes. userID is always the
// authenticated caller.
type ProfileService interface {
	FindByID(ctx context.Context, userID, profileID uuid.UUID) (models.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Profile, error)
	Create(ctx context.Context, userID uuid.UUID, req models.ProfileCreateRequest) (models.Profile, error)
	Update(ctx context.Context, userID, profileID uuid.UUID, req models.ProfileUpdateRequest) (models.Profile, error)
	Delete(ctx context.Context, userID, profileID uuid.UUID) error

	CreateLike(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) (models.Like, error)
	DeleteLike(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) error
	FindLikes(ctx context.Context, userID, profileID uuid.UUID) ([]models.Like, error)
}

type WishContentService interface {
	Create(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) (models.WishContent, error)
	Delete(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) error
	FindByProfileID(ctx context.Context, userID, profileID uuid.UUID) ([]models.WishContent, error)
}

// MediaContentsService manages the catalog. Lookups are made on behalf of a
// viewing profile; mutations are admin operations.
type MediaContentsService interface {
	FindByID(ctx context.Context, userID, profileID, id uuid.UUID) (models.MediaContentsView, error)
	FindAll(ctx context.Context, limit, offset uint64) ([]models.MediaContents, error)
	Create(ctx context.Context, req models.MediaContentsCreateRequest) (models.MediaContents, error)
	Update(ctx context.Context, id uuid.UUID, req models.MediaContentsUpdateRequest) (models.MediaContents, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddCast(ctx context.Context, id uuid.UUID, kind models.CastKind, castID uuid.UUID) (models.MediaContents, error)
	RemoveCast(ctx context.Context, id uuid.UUID, kind models.CastKind, castID uuid.UUID) (models.MediaContents, error)

	FindSeriesByID(ctx context.Context, id uuid.UUID) (models.MediaSeries, error)
	FindSeriesByContentsID(ctx context.Context, contentsID uuid.UUID) ([]models.MediaSeries, error)
	CreateSeries(ctx context.Context, contentsID uuid.UUID, req models.MediaSeriesCreateRequest) (models.MediaSeries, error)
	UpdateSeries(ctx context.Context, id uuid.UUID, req models.MediaSeriesUpdateRequest) (models.MediaSeries, error)
	DeleteSeries(ctx context.Context, id uuid.UUID) error
}

// NamedService manages genres, actors and creators.
type NamedService[T models.Genre | models.Actor | models.Creator] interface {
	Create(ctx context.Context, name string) (T, error)
	FindAll(ctx context.Context) ([]T, error)
}

// TokenProvider issues and parses the tokens handed to clients.
type TokenProvider interface {
	CreateAccessToken(userID uuid.UUID, role models.Role) (models.Token, error)
	CreateRefreshToken() (string, error)
	ParseAccessToken(token string) (models.Token, error)
}

type HealthService interface {
	Check(ctx context.Context) (models.HealthResponse, bool)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
