package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

// likeRepository is the SQL implementation of [LikeRepository]. Likes carry
// no lifecycle state: deleting one removes the row.
type likeRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

func pair(profileID, mediaContentsID uuid.UUID) sq.Eq {
	return sq.Eq{"profile_id": profileID.String(), "media_contents_id": mediaContentsID.String()}
}

// Save inserts a like. A second like of the same pair yields [ErrAlreadyExists].
func (r *likeRepository) Save(ctx context.Context, like models.Like) (models.Like, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert(likesTable).
		Columns(likeColumns...).
		Values(like.ID, like.ProfileID, like.MediaContentsID, like.CreatedAt)

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*likeRepository.Save").Msg("error saving like")
		return models.Like{}, err
	}

	return like, nil
}

func (r *likeRepository) Delete(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Delete(likesTable).
		Where(pair(profileID, mediaContentsID))

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.Delete").Msg("error deleting like")
		return false, err
	}

	return affected > 0, nil
}

func (r *likeRepository) Exists(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select("1").
		From(likesTable).
		Where(pair(profileID, mediaContentsID)).
		Limit(1)

	var one int
	found, err := r.db.getOne(ctx, query, func(row scanner) error {
		return row.Scan(&one)
	})
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.Exists").Msg("error checking like")
		return false, err
	}

	return found, nil
}

func (r *likeRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]models.Like, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(likeColumns...).
		From(likesTable).
		Where(sq.Eq{"profile_id": profileID.String()}).
		OrderBy("created_at DESC")

	likes := make([]models.Like, 0)
	err := r.db.getMany(ctx, query, func(row scanner) error {
		var like models.Like
		if err := row.Scan(&like.ID, &like.ProfileID, &like.MediaContentsID, &like.CreatedAt); err != nil {
			return err
		}
		likes = append(likes, like)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.FindByProfileID").Msg("error listing likes")
		return nil, err
	}

	return likes, nil
}
