package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

// wishContentRepository is the SQL implementation of [WishContentRepository].
// Deleted wishes stay in the table and are filtered out of every query.
type wishContentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewWishContentRepository(db *DB, logger *logger.Logger) WishContentRepository {
	logger.Debug().Msg("creating wish content repository")
	return &wishContentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *wishContentRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]models.WishContent, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(wishContentColumns...).
		From(wishContentsTable).
		Where(sq.Eq{"profile_id": profileID.String()}).
		Where(active()).
		OrderBy("created_at DESC")

	wishes := make([]models.WishContent, 0)
	err := r.db.getMany(ctx, query, func(row scanner) error {
		var (
			wish      models.WishContent
			isDeleted bool
		)
		if err := row.Scan(&wish.ID, &wish.ProfileID, &wish.MediaContentsID, &isDeleted, &wish.CreatedAt); err != nil {
			return err
		}
		wish.State = models.StateFromDeleted(isDeleted)
		wishes = append(wishes, wish)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*wishContentRepository.FindByProfileID").Msg("error listing wishes")
		return nil, err
	}

	return wishes, nil
}

// Save inserts an active wish. A second active wish of the same pair
// yields [ErrAlreadyExists].
func (r *wishContentRepository) Save(ctx context.Context, wish models.WishContent) (models.WishContent, error) {
	log := logger.FromContext(ctx)

	wish.State = models.StateActive
	query := r.db.builder.
		Insert(wishContentsTable).
		Columns(wishContentColumns...).
		Values(wish.ID, wish.ProfileID, wish.MediaContentsID, false, wish.CreatedAt)

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*wishContentRepository.Save").Msg("error saving wish")
		return models.WishContent{}, err
	}

	return wish, nil
}

func (r *wishContentRepository) ExistsByProfileIDAndMediaContentsID(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select("1").
		From(wishContentsTable).
		Where(pair(profileID, mediaContentsID)).
		Where(active()).
		Limit(1)

	var one int
	found, err := r.db.getOne(ctx, query, func(row scanner) error {
		return row.Scan(&one)
	})
	if err != nil {
		log.Err(err).Str("func", "*wishContentRepository.ExistsByProfileIDAndMediaContentsID").Msg("error checking wish")
		return false, err
	}

	return found, nil
}

// Delete soft deletes the active wish of the pair.
func (r *wishContentRepository) Delete(ctx context.Context, profileID, mediaContentsID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(wishContentsTable).
		SetMap(markDeleted()).
		Where(pair(profileID, mediaContentsID)).
		Where(active())

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*wishContentRepository.Delete").Msg("error deleting wish")
		return false, err
	}

	return affected > 0, nil
}
