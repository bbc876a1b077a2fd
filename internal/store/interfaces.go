package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-media-hub/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Repositories return an explicit found flag next to the value: found is
// false when the row is absent, and the error is reserved for failures.

// Transactor runs fn inside a database transaction. The transaction is
// carried in the context passed to fn, so repository calls made with that
// context join it. A nested call joins the outer transaction.
//
// The transaction is rolled back when fn returns an error or panics.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.User, bool, error)
	// LockByID is FindByID that also locks the row for the rest of the
	// transaction.
	LockByID(ctx context.Context, id uuid.UUID) (models.User, bool, error)
	FindByEmail(ctx context.Context, email string) (models.User, bool, error)
	Save(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, bool, error)
}

// ProfileRepository stores profiles. FindByID returns profiles in any
// state; the list and count queries see active profiles only.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.Profile, bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Profile, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	Save(ctx context.Context, profile models.Profile) (models.Profile, error)
	Update(ctx context.Context, profile models.Profile) (models.Profile, bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// LikeRepository stores likes. Delete removes the row.
type LikeRepository interface {
	Save(ctx context.Context, like models.Like) (models.Like, error)
	Delete(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error)
	Exists(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]models.Like, error)
}

// WishContentRepository stores wish list items. Delete marks the active
// row deleted; every query sees active rows only.
type WishContentRepository interface {
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]models.WishContent, error)
	Save(ctx context.Context, wish models.WishContent) (models.WishContent, error)
	ExistsByProfileIDAndMediaContentsID(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error)
	Delete(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error)
}

// MediaContentsRepository stores catalog contents together with their
// genre, actor and creator associations.
type MediaContentsRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.MediaContents, bool, error)
	FindAll(ctx context.Context, limit, offset uint64) ([]models.MediaContents, error)
	Save(ctx context.Context, contents models.MediaContents) (models.MediaContents, error)
	Update(ctx context.Context, contents models.MediaContents) (models.MediaContents, bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	AddCast(ctx context.Context, contentsID uuid.UUID, kind models.CastKind, castID uuid.UUID) error
	RemoveCast(ctx context.Context, contentsID uuid.UUID, kind models.CastKind, castID uuid.UUID) (bool, error)
}

type MediaSeriesRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.MediaSeries, bool, error)
	FindByMediaContentsID(ctx context.Context, contentsID uuid.UUID) ([]models.MediaSeries, error)
	Save(ctx context.Context, series models.MediaSeries) (models.MediaSeries, error)
	Update(ctx context.Context, series models.MediaSeries) (models.MediaSeries, bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// NamedRepository stores the catalog leaves that only carry a name.
type NamedRepository[T models.Genre | models.Actor | models.Creator] interface {
	FindByID(ctx context.Context, id uuid.UUID) (T, bool, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, entity T) (T, error)
}

type (
	GenreRepository   = NamedRepository[models.Genre]
	ActorRepository   = NamedRepository[models.Actor]
	CreatorRepository = NamedRepository[models.Creator]
)

// VerificationCodeCache keeps sign-up verification codes until they expire.
type VerificationCodeCache interface {
	SetDataExpire(ctx context.Context, key, value string, ttl time.Duration) (string, error)
	GetData(ctx context.Context, key string) (string, bool, error)
}

// RefreshTokenRepository maps issued refresh tokens to their user.
type RefreshTokenRepository interface {
	Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Find(ctx context.Context, token string) (uuid.UUID, bool, error)
	Delete(ctx context.Context, token string) (bool, error)
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
