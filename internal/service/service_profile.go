package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/internal/validators"
	"github.com/MKhiriev/go-media-hub/models"
)

type profileService struct {
	tx       store.Transactor
	users    store.UserRepository
	profiles store.ProfileRepository
	contents store.MediaContentsRepository
	likes    store.LikeRepository

	maxProfiles int

	logger *logger.Logger
}

func NewProfileService(storages *store.Storages, cfg config.App, logger *logger.Logger) ProfileService {
	return &profileService{
		tx:          storages.Transactor,
		users:       storages.UserRepository,
		profiles:    storages.ProfileRepository,
		contents:    storages.MediaContentsRepository,
		likes:       storages.LikeRepository,
		maxProfiles: cfg.MaxProfiles,
		logger:      logger,
	}
}

// FindByID returns an active profile owned by userID. A deleted profile is
// reported as not found.
func (s *profileService) FindByID(ctx context.Context, userID, profileID uuid.UUID) (models.Profile, error) {
	var profile models.Profile
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		profile, err = visibleProfile(ctx, s.profiles, userID, profileID)
		return err
	})
	return profile, err
}

func (s *profileService) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		profiles, err = s.profiles.FindByUserID(ctx, userID)
		return err
	})
	return profiles, err
}

// Create adds a profile for userID unless the user already owns the
// configured maximum of active profiles.
func (s *profileService) Create(ctx context.Context, userID uuid.UUID, req models.ProfileCreateRequest) (models.Profile, error) {
	var saved models.Profile
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// the lock orders concurrent creates of one user so the count stays exact
		user, found, err := s.users.LockByID(ctx, userID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}

		count, err := s.profiles.CountByUserID(ctx, user.ID)
		if err != nil {
			return err
		}

		if err = validators.NewChain(validators.ProfileNumber(count, user.ID, s.maxProfiles)).Validate(ctx); err != nil {
			return err
		}

		saved, err = s.profiles.Save(ctx, models.Profile{
			ID:        utils.NewID(),
			Name:      req.Name,
			Rate:      req.Rate,
			MainImage: req.MainImage,
			UserID:    user.ID,
			State:     models.StateActive,
			CreatedAt: time.Now().UTC(),
		})
		return err
	})
	return saved, err
}

func (s *profileService) Update(ctx context.Context, userID, profileID uuid.UUID, req models.ProfileUpdateRequest) (models.Profile, error) {
	var updated models.Profile
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		profile, err := s.ownedProfile(ctx, userID, profileID)
		if err != nil {
			return err
		}

		profile.Update(req.Name, req.MainImage, req.Rate)

		var found bool
		updated, found, err = s.profiles.Update(ctx, profile)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: profile %s", ErrCheckedRowVanished, profileID)
		}
		return nil
	})
	return updated, err
}

// Delete soft deletes the profile. A concurrent delete that won the race
// leaves nothing to delete and is reported as ErrCheckedRowVanished.
func (s *profileService) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.ownedProfile(ctx, userID, profileID); err != nil {
			return err
		}

		deleted, err := s.profiles.Delete(ctx, profileID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: profile %s", ErrCheckedRowVanished, profileID)
		}

		logger.FromContext(ctx).Info().Str("profile_id", profileID.String()).Msg("profile deleted")
		return nil
	})
}

func (s *profileService) CreateLike(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) (models.Like, error) {
	var saved models.Like
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		profile, contents, err := s.likeTargets(ctx, userID, profileID, mediaContentsID)
		if err != nil {
			return err
		}

		exists, err := s.likes.Exists(ctx, profile.ID, contents.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrLikeAlreadyExists
		}

		saved, err = s.likes.Save(ctx, models.Like{
			ID:              utils.NewID(),
			ProfileID:       profile.ID,
			MediaContentsID: contents.ID,
			CreatedAt:       time.Now().UTC(),
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrLikeAlreadyExists
		}
		return err
	})
	return saved, err
}

// DeleteLike removes the like row. Likes are not soft deleted.
func (s *profileService) DeleteLike(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		profile, contents, err := s.likeTargets(ctx, userID, profileID, mediaContentsID)
		if err != nil {
			return err
		}

		deleted, err := s.likes.Delete(ctx, profile.ID, contents.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrLikeNotFound
		}
		return nil
	})
}

func (s *profileService) FindLikes(ctx context.Context, userID, profileID uuid.UUID) ([]models.Like, error) {
	var likes []models.Like
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		profile, err := visibleProfile(ctx, s.profiles, userID, profileID)
		if err != nil {
			return err
		}

		likes, err = s.likes.FindByProfileID(ctx, profile.ID)
		return err
	})
	return likes, err
}

func (s *profileService) ownedProfile(ctx context.Context, userID, profileID uuid.UUID) (models.Profile, error) {
	user, found, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	return mutableProfile(ctx, s.profiles, user.ID, profileID)
}

func (s *profileService) likeTargets(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) (models.Profile, models.MediaContents, error) {
	profile, found, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return models.Profile{}, models.MediaContents{}, err
	}
	if !found {
		return models.Profile{}, models.MediaContents{}, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}

	contents, err := activeContents(ctx, s.contents, mediaContentsID)
	if err != nil {
		return models.Profile{}, models.MediaContents{}, err
	}

	if err = profileChain(profile, userID).Validate(ctx); err != nil {
		return models.Profile{}, models.MediaContents{}, err
	}

	return profile, contents, nil
}

// profileChain is the check every profile mutation passes: the profile is
// not deleted, then it belongs to userID.
func profileChain(profile models.Profile, userID uuid.UUID) *validators.Chain {
	return validators.NewChain(validators.IsDeleted(profile.State, models.ProfileDomain)).
		LinkWith(validators.IDEqual(userID, profile.UserID))
}

// mutableProfile loads a profile that userID may modify.
func mutableProfile(ctx context.Context, profiles store.ProfileRepository, userID, profileID uuid.UUID) (models.Profile, error) {
	profile, found, err := profiles.FindByID(ctx, profileID)
	if err != nil {
		return models.Profile{}, err
	}
	if !found {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}

	if err = profileChain(profile, userID).Validate(ctx); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// visibleProfile loads a profile for a read by userID. Deleted profiles are
// not returned by reads, so they are not found rather than a violation.
func visibleProfile(ctx context.Context, profiles store.ProfileRepository, userID, profileID uuid.UUID) (models.Profile, error) {
	profile, found, err := profiles.FindByID(ctx, profileID)
	if err != nil {
		return models.Profile{}, err
	}
	if !found || profile.State.IsDeleted() {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, profileID)
	}

	if err = validators.IDEqual(userID, profile.UserID).Validate(ctx); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// activeContents loads media contents that can be liked, wished or viewed.
func activeContents(ctx context.Context, contents store.MediaContentsRepository, id uuid.UUID) (models.MediaContents, error) {
	mc, found, err := contents.FindByID(ctx, id)
	if err != nil {
		return models.MediaContents{}, err
	}
	if !found || mc.State.IsDeleted() {
		return models.MediaContents{}, fmt.Errorf("%w: %s", ErrMediaContentsNotFound, id)
	}
	return mc, nil
}
