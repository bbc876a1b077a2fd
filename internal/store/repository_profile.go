package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

func scanProfile(row scanner, profile *models.Profile) error {
	var isDeleted bool
	if err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Rate,
		&profile.MainImage,
		&profile.UserID,
		&isDeleted,
		&profile.CreatedAt,
	); err != nil {
		return err
	}
	profile.State = models.StateFromDeleted(isDeleted)
	return nil
}

// FindByID returns the profile in any lifecycle state so callers can
// report a deleted profile instead of a missing one.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Profile, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"id": id.String()})

	var profile models.Profile
	found, err := r.db.getOne(ctx, query, func(row scanner) error {
		return scanProfile(row, &profile)
	})
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindByID").Str("profile_id", id.String()).Msg("error finding profile")
		return models.Profile{}, false, err
	}

	return profile, found, nil
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"user_id": userID.String()}).
		Where(active()).
		OrderBy("created_at", "id")

	profiles := make([]models.Profile, 0, 4)
	err := r.db.getMany(ctx, query, func(row scanner) error {
		var profile models.Profile
		if err := scanProfile(row, &profile); err != nil {
			return err
		}
		profiles = append(profiles, profile)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.FindByUserID").Str("user_id", userID.String()).Msg("error listing profiles")
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select("COUNT(*)").
		From(profilesTable).
		Where(sq.Eq{"user_id": userID.String()}).
		Where(active())

	var count int
	if _, err := r.db.getOne(ctx, query, func(row scanner) error {
		return row.Scan(&count)
	}); err != nil {
		log.Err(err).Str("func", "*profileRepository.CountByUserID").Str("user_id", userID.String()).Msg("error counting profiles")
		return 0, err
	}

	return count, nil
}

func (r *profileRepository) Save(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert(profilesTable).
		Columns(profileColumns...).
		Values(
			profile.ID,
			profile.Name,
			profile.Rate,
			profile.MainImage,
			profile.UserID,
			profile.State.IsDeleted(),
			profile.CreatedAt,
		)

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*profileRepository.Save").Msg("error saving profile")
		return models.Profile{}, err
	}

	return profile, nil
}

// Update writes name, rate and main image of an active profile. The owner
// is never written.
func (r *profileRepository) Update(ctx context.Context, profile models.Profile) (models.Profile, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(profilesTable).
		SetMap(map[string]any{
			"name":       profile.Name,
			"rate":       profile.Rate,
			"main_image": profile.MainImage,
		}).
		Where(sq.Eq{"id": profile.ID.String()}).
		Where(active())

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Update").Str("profile_id", profile.ID.String()).Msg("error updating profile")
		return models.Profile{}, false, err
	}
	if affected == 0 {
		return models.Profile{}, false, nil
	}

	return r.FindByID(ctx, profile.ID)
}

// Delete soft deletes an active profile.
func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(profilesTable).
		SetMap(markDeleted()).
		Where(sq.Eq{"id": id.String()}).
		Where(active())

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.Delete").Str("profile_id", id.String()).Msg("error deleting profile")
		return false, err
	}

	return affected > 0, nil
}
