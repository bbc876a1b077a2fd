package store

import (
	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	Transactor Transactor

	UserRepository          UserRepository
	ProfileRepository       ProfileRepository
	LikeRepository          LikeRepository
	WishContentRepository   WishContentRepository
	MediaContentsRepository MediaContentsRepository
	MediaSeriesRepository   MediaSeriesRepository
	GenreRepository         GenreRepository
	ActorRepository         ActorRepository
	CreatorRepository       CreatorRepository

	VerificationCodeCache  VerificationCodeCache
	RefreshTokenRepository RefreshTokenRepository

	// Health checks
	Database Pinger
	Cache    Pinger
}

// NewStorages wires the SQL repositories over db and the Redis stores over
// rdb.
func NewStorages(db *DB, rdb redis.Cmdable, cfg *config.StructuredConfig, logger *logger.Logger) *Storages {
	prefix := cfg.Storage.Redis.KeyPrefix

	return &Storages{
		Transactor: db,

		UserRepository:          NewUserRepository(db, logger),
		ProfileRepository:       NewProfileRepository(db, logger),
		LikeRepository:          NewLikeRepository(db, logger),
		WishContentRepository:   NewWishContentRepository(db, logger),
		MediaContentsRepository: NewMediaContentsRepository(db, logger),
		MediaSeriesRepository:   NewMediaSeriesRepository(db, logger),
		GenreRepository:         NewGenreRepository(db, logger),
		ActorRepository:         NewActorRepository(db, logger),
		CreatorRepository:       NewCreatorRepository(db, logger),

		VerificationCodeCache:  NewVerificationCodeCache(rdb, prefix, logger),
		RefreshTokenRepository: NewRefreshTokenRepository(rdb, prefix, cfg.App.TokenSignKey, logger),

		Database: db,
		Cache:    NewRedisPinger(rdb),
	}
}
