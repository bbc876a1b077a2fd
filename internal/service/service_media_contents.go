package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/internal/validators"
	"github.com/MKhiriev/go-media-hub/models"
)

type mediaContentsService struct {
	tx       store.Transactor
	profiles store.ProfileRepository
	contents store.MediaContentsRepository
	series   store.MediaSeriesRepository
	likes    store.LikeRepository
	wishes   store.WishContentRepository

	genres   store.GenreRepository
	actors   store.ActorRepository
	creators store.CreatorRepository

	logger *logger.Logger
}

func NewMediaContentsService(storages *store.Storages, logger *logger.Logger) MediaContentsService {
	return &mediaContentsService{
		tx:       storages.Transactor,
		profiles: storages.ProfileRepository,
		contents: storages.MediaContentsRepository,
		series:   storages.MediaSeriesRepository,
		likes:    storages.LikeRepository,
		wishes:   storages.WishContentRepository,
		genres:   storages.GenreRepository,
		actors:   storages.ActorRepository,
		creators: storages.CreatorRepository,
		logger:   logger,
	}
}

// FindByID returns the contents as seen by profileID, flagging whether the
// profile liked or wished them.
func (s *mediaContentsService) FindByID(ctx context.Context, userID, profileID, id uuid.UUID) (models.MediaContentsView, error) {
	var view models.MediaContentsView
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		profile, err := visibleProfile(ctx, s.profiles, userID, profileID)
		if err != nil {
			return err
		}

		contents, err := activeContents(ctx, s.contents, id)
		if err != nil {
			return err
		}

		isLike, err := s.likes.Exists(ctx, profile.ID, contents.ID)
		if err != nil {
			return err
		}
		isWish, err := s.wishes.ExistsByProfileIDAndMediaContentsID(ctx, profile.ID, contents.ID)
		if err != nil {
			return err
		}

		view = models.MediaContentsView{MediaContents: contents, IsLike: isLike, IsWish: isWish}
		return nil
	})
	return view, err
}

func (s *mediaContentsService) FindAll(ctx context.Context, limit, offset uint64) ([]models.MediaContents, error) {
	var list []models.MediaContents
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		list, err = s.contents.FindAll(ctx, limit, offset)
		return err
	})
	return list, err
}

// Create stores new contents linked to the listed genres, actors and
// creators. Every listed id must exist.
func (s *mediaContentsService) Create(ctx context.Context, req models.MediaContentsCreateRequest) (models.MediaContents, error) {
	contents := models.MediaContents{
		ID:           utils.NewID(),
		Title:        req.Title,
		Summary:      req.Summary,
		Rate:         req.Rate,
		ThumbnailURL: req.ThumbnailURL,
		IsSeries:     req.IsSeries,
		State:        models.StateActive,
	}
	for _, id := range req.GenreIDs {
		contents.Genres = append(contents.Genres, models.Genre{ID: id})
	}
	for _, id := range req.ActorIDs {
		contents.Actors = append(contents.Actors, models.Actor{ID: id})
	}
	for _, id := range req.CreatorIDs {
		contents.Creators = append(contents.Creators, models.Creator{ID: id})
	}

	var saved models.MediaContents
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		casts := map[models.CastKind][]uuid.UUID{
			models.CastGenre:   req.GenreIDs,
			models.CastActor:   req.ActorIDs,
			models.CastCreator: req.CreatorIDs,
		}
		for kind, ids := range casts {
			for _, id := range ids {
				if err := s.requireCast(ctx, kind, id); err != nil {
					return err
				}
			}
		}

		if _, err := s.contents.Save(ctx, contents); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return fmt.Errorf("%w: duplicate id in cast list", ErrCastAlreadyLinked)
			}
			return err
		}

		var err error
		saved, err = s.reload(ctx, contents.ID)
		return err
	})
	if err != nil {
		return models.MediaContents{}, err
	}

	logger.FromContext(ctx).Info().Str("media_contents_id", saved.ID.String()).Msg("media contents created")
	return saved, nil
}

func (s *mediaContentsService) Update(ctx context.Context, id uuid.UUID, req models.MediaContentsUpdateRequest) (models.MediaContents, error) {
	var updated models.MediaContents
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		contents, err := s.mutableContents(ctx, id)
		if err != nil {
			return err
		}

		contents.Update(req.Title, req.Summary, req.Rate, req.ThumbnailURL)

		var found bool
		updated, found, err = s.contents.Update(ctx, contents)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: media contents %s", ErrCheckedRowVanished, id)
		}
		return nil
	})
	return updated, err
}

func (s *mediaContentsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.mutableContents(ctx, id); err != nil {
			return err
		}

		deleted, err := s.contents.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: media contents %s", ErrCheckedRowVanished, id)
		}
		return nil
	})
}

func (s *mediaContentsService) AddCast(ctx context.Context, id uuid.UUID, kind models.CastKind, castID uuid.UUID) (models.MediaContents, error) {
	var contents models.MediaContents
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.mutableContents(ctx, id); err != nil {
			return err
		}
		if err := s.requireCast(ctx, kind, castID); err != nil {
			return err
		}

		err := s.contents.AddCast(ctx, id, kind, castID)
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return fmt.Errorf("%w: %s %s", ErrCastAlreadyLinked, kind, castID)
		case err != nil:
			return err
		}

		contents, err = s.reload(ctx, id)
		return err
	})
	return contents, err
}

func (s *mediaContentsService) RemoveCast(ctx context.Context, id uuid.UUID, kind models.CastKind, castID uuid.UUID) (models.MediaContents, error) {
	var contents models.MediaContents
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.mutableContents(ctx, id); err != nil {
			return err
		}

		removed, err := s.contents.RemoveCast(ctx, id, kind, castID)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%w: %s %s is not linked", ErrCastNotFound, kind, castID)
		}

		contents, err = s.reload(ctx, id)
		return err
	})
	return contents, err
}

func (s *mediaContentsService) FindSeriesByID(ctx context.Context, id uuid.UUID) (models.MediaSeries, error) {
	var series models.MediaSeries
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var (
			found bool
			err   error
		)
		series, found, err = s.series.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !found || series.State.IsDeleted() {
			return fmt.Errorf("%w: %s", ErrMediaSeriesNotFound, id)
		}
		return nil
	})
	return series, err
}

func (s *mediaContentsService) FindSeriesByContentsID(ctx context.Context, contentsID uuid.UUID) ([]models.MediaSeries, error) {
	var list []models.MediaSeries
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := activeContents(ctx, s.contents, contentsID); err != nil {
			return err
		}

		var err error
		list, err = s.series.FindByMediaContentsID(ctx, contentsID)
		return err
	})
	return list, err
}

func (s *mediaContentsService) CreateSeries(ctx context.Context, contentsID uuid.UUID, req models.MediaSeriesCreateRequest) (models.MediaSeries, error) {
	var saved models.MediaSeries
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		contents, err := s.mutableContents(ctx, contentsID)
		if err != nil {
			return err
		}

		saved, err = s.series.Save(ctx, models.MediaSeries{
			ID:              utils.NewID(),
			MediaContentsID: contents.ID,
			Title:           req.Title,
			Order:           req.Order,
			State:           models.StateActive,
		})
		return err
	})
	return saved, err
}

func (s *mediaContentsService) UpdateSeries(ctx context.Context, id uuid.UUID, req models.MediaSeriesUpdateRequest) (models.MediaSeries, error) {
	var updated models.MediaSeries
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		series, err := s.mutableSeries(ctx, id)
		if err != nil {
			return err
		}

		series.Update(req.Title, req.Order)

		var found bool
		updated, found, err = s.series.Update(ctx, series)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: media series %s", ErrCheckedRowVanished, id)
		}
		return nil
	})
	return updated, err
}

func (s *mediaContentsService) DeleteSeries(ctx context.Context, id uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.mutableSeries(ctx, id); err != nil {
			return err
		}

		deleted, err := s.series.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: media series %s", ErrCheckedRowVanished, id)
		}
		return nil
	})
}

func (s *mediaContentsService) mutableContents(ctx context.Context, id uuid.UUID) (models.MediaContents, error) {
	contents, found, err := s.contents.FindByID(ctx, id)
	if err != nil {
		return models.MediaContents{}, err
	}
	if !found {
		return models.MediaContents{}, fmt.Errorf("%w: %s", ErrMediaContentsNotFound, id)
	}

	if err = validators.IsDeleted(contents.State, models.MediaContentsDomain).Validate(ctx); err != nil {
		return models.MediaContents{}, err
	}
	return contents, nil
}

func (s *mediaContentsService) mutableSeries(ctx context.Context, id uuid.UUID) (models.MediaSeries, error) {
	series, found, err := s.series.FindByID(ctx, id)
	if err != nil {
		return models.MediaSeries{}, err
	}
	if !found {
		return models.MediaSeries{}, fmt.Errorf("%w: %s", ErrMediaSeriesNotFound, id)
	}

	if err = validators.IsDeleted(series.State, models.MediaSeriesDomain).Validate(ctx); err != nil {
		return models.MediaSeries{}, err
	}
	return series, nil
}

// reload reads back contents written in the current transaction.
func (s *mediaContentsService) reload(ctx context.Context, id uuid.UUID) (models.MediaContents, error) {
	contents, found, err := s.contents.FindByID(ctx, id)
	if err != nil {
		return models.MediaContents{}, err
	}
	if !found {
		return models.MediaContents{}, fmt.Errorf("%w: media contents %s", ErrCheckedRowVanished, id)
	}
	return contents, nil
}

func (s *mediaContentsService) requireCast(ctx context.Context, kind models.CastKind, id uuid.UUID) error {
	var (
		found bool
		err   error
	)
	switch kind {
	case models.CastGenre:
		_, found, err = s.genres.FindByID(ctx, id)
	case models.CastActor:
		_, found, err = s.actors.FindByID(ctx, id)
	case models.CastCreator:
		_, found, err = s.creators.FindByID(ctx, id)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrCastNotFound, kind)
	}
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s %s", ErrCastNotFound, kind, id)
	}
	return nil
}
