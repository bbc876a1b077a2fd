package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

// wishContentService keeps the wish list of a profile. Unlike likes, wish
// items are soft deleted, so a pair can be wished again after removal.
type wishContentService struct {
	tx       store.Transactor
	profiles store.ProfileRepository
	contents store.MediaContentsRepository
	wishes   store.WishContentRepository

	logger *logger.Logger
}

func NewWishContentService(storages *store.Storages, logger *logger.Logger) WishContentService {
	return &wishContentService{
		tx:       storages.Transactor,
		profiles: storages.ProfileRepository,
		contents: storages.MediaContentsRepository,
		wishes:   storages.WishContentRepository,
		logger:   logger,
	}
}

func (s *wishContentService) Create(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) (models.WishContent, error) {
	var saved models.WishContent
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		profile, contents, err := s.targets(ctx, userID, profileID, mediaContentsID)
		if err != nil {
			return err
		}

		exists, err := s.wishes.ExistsByProfileIDAndMediaContentsID(ctx, profile.ID, contents.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrWishAlreadyExists
		}

		saved, err = s.wishes.Save(ctx, models.WishContent{
			ID:              utils.NewID(),
			ProfileID:       profile.ID,
			MediaContentsID: contents.ID,
			State:           models.StateActive,
			CreatedAt:       time.Now().UTC(),
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrWishAlreadyExists
		}
		return err
	})
	return saved, err
}

func (s *wishContentService) Delete(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		profile, contents, err := s.targets(ctx, userID, profileID, mediaContentsID)
		if err != nil {
			return err
		}

		deleted, err := s.wishes.Delete(ctx, profile.ID, contents.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrWishNotFound
		}
		return nil
	})
}

func (s *wishContentService) FindByProfileID(ctx context.Context, userID, profileID uuid.UUID) ([]models.WishContent, error) {
	var wishes []models.WishContent
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		profile, err := visibleProfile(ctx, s.profiles, userID, profileID)
		if err != nil {
			return err
		}

		wishes, err = s.wishes.FindByProfileID(ctx, profile.ID)
		return err
	})
	return wishes, err
}

func (s *wishContentService) targets(ctx context.Context, userID, profileID, mediaContentsID uuid.UUID) (models.Profile, models.MediaContents, error) {
	profile, err := mutableProfile(ctx, s.profiles, userID, profileID)
	if err != nil {
		return models.Profile{}, models.MediaContents{}, err
	}

	contents, err := activeContents(ctx, s.contents, mediaContentsID)
	if err != nil {
		return models.Profile{}, models.MediaContents{}, err
	}

	return profile, contents, nil
}
