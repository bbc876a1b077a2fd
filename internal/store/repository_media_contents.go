package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

// mediaContentsRepository is the SQL implementation of
// [MediaContentsRepository]. Genres, actors and creators live in
// association tables and are loaded in one query per kind.
type mediaContentsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMediaContentsRepository(db *DB, logger *logger.Logger) MediaContentsRepository {
	logger.Debug().Msg("creating media contents repository")
	return &mediaContentsRepository{
		db:     db,
		logger: logger,
	}
}

func scanMediaContents(row scanner, contents *models.MediaContents) error {
	var isDeleted bool
	if err := row.Scan(
		&contents.ID,
		&contents.Title,
		&contents.Summary,
		&contents.Rate,
		&contents.ThumbnailURL,
		&contents.IsSeries,
		&isDeleted,
	); err != nil {
		return err
	}
	contents.State = models.StateFromDeleted(isDeleted)
	return nil
}

// FindByID returns the contents in any lifecycle state with its casts.
func (r *mediaContentsRepository) FindByID(ctx context.Context, id uuid.UUID) (models.MediaContents, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(mediaContentsColumns...).
		From(mediaContentsTable).
		Where(sq.Eq{"id": id.String()})

	var contents models.MediaContents
	found, err := r.db.getOne(ctx, query, func(row scanner) error {
		return scanMediaContents(row, &contents)
	})
	if err != nil || !found {
		if err != nil {
			log.Err(err).Str("func", "*mediaContentsRepository.FindByID").Str("media_contents_id", id.String()).Msg("error finding media contents")
		}
		return models.MediaContents{}, false, err
	}

	list := []models.MediaContents{contents}
	if err = r.loadCasts(ctx, list); err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.FindByID").Msg("error loading casts")
		return models.MediaContents{}, false, err
	}

	return list[0], true, nil
}

// FindAll lists active contents by title. A zero limit means no limit.
func (r *mediaContentsRepository) FindAll(ctx context.Context, limit, offset uint64) ([]models.MediaContents, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(mediaContentsColumns...).
		From(mediaContentsTable).
		Where(active()).
		OrderBy("title", "id")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	list := make([]models.MediaContents, 0)
	err := r.db.getMany(ctx, query, func(row scanner) error {
		var contents models.MediaContents
		if err := scanMediaContents(row, &contents); err != nil {
			return err
		}
		list = append(list, contents)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.FindAll").Msg("error listing media contents")
		return nil, err
	}

	if err = r.loadCasts(ctx, list); err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.FindAll").Msg("error loading casts")
		return nil, err
	}

	return list, nil
}

// loadCasts fills Genres, Actors and Creators of every element of list.
func (r *mediaContentsRepository) loadCasts(ctx context.Context, list []models.MediaContents) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]string, len(list))
	index := make(map[uuid.UUID]int, len(list))
	for i := range list {
		ids[i] = list[i].ID.String()
		index[list[i].ID] = i
		list[i].Genres = make([]models.Genre, 0)
		list[i].Actors = make([]models.Actor, 0)
		list[i].Creators = make([]models.Creator, 0)
	}

	for _, kind := range []models.CastKind{models.CastGenre, models.CastActor, models.CastCreator} {
		ct := castTables[kind]
		query := r.db.builder.
			Select("a.media_contents_id", "l.id", "l.name").
			From(ct.table + " a").
			Join(fmt.Sprintf("%s l ON l.id = a.%s", ct.leafTable, ct.joinColumn)).
			Where(sq.Eq{"a.media_contents_id": ids}).
			OrderBy("l.name")

		err := r.db.getMany(ctx, query, func(row scanner) error {
			var contentsID, id uuid.UUID
			var name string
			if err := row.Scan(&contentsID, &id, &name); err != nil {
				return err
			}

			c := &list[index[contentsID]]
			switch kind {
			case models.CastGenre:
				c.Genres = append(c.Genres, models.Genre{ID: id, Name: name})
			case models.CastActor:
				c.Actors = append(c.Actors, models.Actor{ID: id, Name: name})
			case models.CastCreator:
				c.Creators = append(c.Creators, models.Creator{ID: id, Name: name})
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Save inserts the contents and the associations listed in its Genres,
// Actors and Creators. Run it inside a transaction.
func (r *mediaContentsRepository) Save(ctx context.Context, contents models.MediaContents) (models.MediaContents, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert(mediaContentsTable).
		Columns(append(mediaContentsColumns, "created_at")...).
		Values(
			contents.ID,
			contents.Title,
			contents.Summary,
			contents.Rate,
			contents.ThumbnailURL,
			contents.IsSeries,
			false,
			time.Now().UTC(),
		)

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.Save").Msg("error saving media contents")
		return models.MediaContents{}, err
	}
	contents.State = models.StateActive

	casts := make(map[models.CastKind][]uuid.UUID, 3)
	for _, g := range contents.Genres {
		casts[models.CastGenre] = append(casts[models.CastGenre], g.ID)
	}
	for _, a := range contents.Actors {
		casts[models.CastActor] = append(casts[models.CastActor], a.ID)
	}
	for _, c := range contents.Creators {
		casts[models.CastCreator] = append(casts[models.CastCreator], c.ID)
	}

	for kind, castIDs := range casts {
		for _, castID := range castIDs {
			if err := r.AddCast(ctx, contents.ID, kind, castID); err != nil {
				return models.MediaContents{}, err
			}
		}
	}

	return contents, nil
}

func (r *mediaContentsRepository) Update(ctx context.Context, contents models.MediaContents) (models.MediaContents, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(mediaContentsTable).
		SetMap(map[string]any{
			"title":         contents.Title,
			"summary":       contents.Summary,
			"rate":          contents.Rate,
			"thumbnail_url": contents.ThumbnailURL,
			"is_series":     contents.IsSeries,
		}).
		Where(sq.Eq{"id": contents.ID.String()}).
		Where(active())

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.Update").Msg("error updating media contents")
		return models.MediaContents{}, false, err
	}
	if affected == 0 {
		return models.MediaContents{}, false, nil
	}

	return r.FindByID(ctx, contents.ID)
}

// Delete soft deletes active contents. Associations are kept.
func (r *mediaContentsRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Update(mediaContentsTable).
		SetMap(markDeleted()).
		Where(sq.Eq{"id": id.String()}).
		Where(active())

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.Delete").Msg("error deleting media contents")
		return false, err
	}

	return affected > 0, nil
}

// AddCast links a genre, actor or creator. An unknown castID yields
// [ErrReferenceNotFound], an existing link [ErrAlreadyExists].
func (r *mediaContentsRepository) AddCast(ctx context.Context, contentsID uuid.UUID, kind models.CastKind, castID uuid.UUID) error {
	log := logger.FromContext(ctx)

	ct, ok := castTables[kind]
	if !ok {
		return fmt.Errorf("%w: unknown cast kind %q", ErrBuildingSQLQuery, kind)
	}

	query := r.db.builder.
		Insert(ct.table).
		Columns("media_contents_id", ct.joinColumn).
		Values(contentsID, castID)

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.AddCast").Str("kind", string(kind)).Msg("error adding cast")
		return err
	}
	return nil
}

func (r *mediaContentsRepository) RemoveCast(ctx context.Context, contentsID uuid.UUID, kind models.CastKind, castID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	ct, ok := castTables[kind]
	if !ok {
		return false, fmt.Errorf("%w: unknown cast kind %q", ErrBuildingSQLQuery, kind)
	}

	query := r.db.builder.
		Delete(ct.table).
		Where(sq.Eq{"media_contents_id": contentsID.String(), ct.joinColumn: castID.String()})

	affected, err := r.db.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*mediaContentsRepository.RemoveCast").Str("kind", string(kind)).Msg("error removing cast")
		return false, err
	}

	return affected > 0, nil
}
