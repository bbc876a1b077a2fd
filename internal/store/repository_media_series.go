package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

type mediaSeriesRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMediaSeriesRepository(db *DB, logger *logger.Logger) MediaSeriesRepository {
	logger.Debug().Msg("creating media series repository")
	return &mediaSeriesRepository{
		db:     db,
		logger: logger,
	}
}

func scanMediaSeries(row scanner, series *models.MediaSeries) error {
	var isDeleted bool
	if err := row.Scan(&series.ID, &series.MediaContentsID, &series.Title, &series.Order, &isDeleted); err != nil {
		return err
	}
	series.State = models.StateFromDeleted(isDeleted)
	return nil
}

func (r *mediaSeriesRepository) FindByID(ctx context.Context, id uuid.UUID) (models.MediaSeries, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(mediaSeriesColumns...).
		From(mediaSeriesTable).
		Where(sq.Eq{"id": id.String()})

	var series models.MediaSeries
	found, err := r.db.getOne(ctx, query, func(row scanner) error {
		return scanMediaSeries(row, &series)
	})
	if err != nil {
		log.Err(err).Str("func", "*mediaSeriesRepository.FindByID").Str("media_series_id", id.String()).Msg("error finding media series")
		return models.MediaSeries{}, false, err
	}

	return series, found, nil
}

// FindByMediaContentsID lists the active series of contents in order.
func (r *mediaSeriesRepository) FindByMediaContentsID(ctx context.Context, contentsID uuid.UUID) ([]models.MediaSeries, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(mediaSeriesColumns...).
		From(mediaSeriesTable).
		Where(sq.Eq{"media_contents_id": contentsID.String()}).
		Where(active()).
		OrderBy("series_order", "id")

	list := make([]models.MediaSeries, 0)
	err := r.db.getMany(ctx, query, func(row scanner) error {
		var series models.MediaSeries
		if err := scanMediaSeries(row, &series); err != nil {
			return err
		}
		list = append(list, series)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*mediaSeriesRepository.FindByMediaContentsID").Msg("error listing media series")
		return nil, err
	}

	return list, nil
}

func (r *mediaSeriesRepository) Save(ctx context.Context, series models.MediaSeries) (models.MediaSeries, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert(mediaSeriesTable).
		Columns(append(mediaSeriesColumns, "created_at")...).
		Values(series.ID, series.MediaContentsID, series.Title, series.Order, false, time.Now().UTC())

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*mediaSeriesRepository.Save").Msg("error saving media series")
		return models.MediaSeries{}, err
	}
	series.State = models.StateActive

	return series, nil
}

func (r *mediaSeriesRepository) Update(ctx context.Context, series models.MediaSeries) (models.MediaSeries, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(mediaSeriesTable).
		SetMap(map[string]any{
			"title":        series.Title,
			"series_order": series.Order,
		}).
		Where(sq.Eq{"id": series.ID.String()}).
		Where(active())

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*mediaSeriesRepository.Update").Msg("error updating media series")
		return models.MediaSeries{}, false, err
	}
	if affected == 0 {
		return models.MediaSeries{}, false, nil
	}

	return r.FindByID(ctx, series.ID)
}

func (r *mediaSeriesRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(mediaSeriesTable).
		SetMap(markDeleted()).
		Where(sq.Eq{"id": id.String()}).
		Where(active())

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*mediaSeriesRepository.Delete").Msg("error deleting media series")
		return false, err
	}

	return affected > 0, nil
}
