// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

// namedRepository stores genres, actors and creators: an id and a unique name.
type namedRepository[T models.Genre | models.Actor | models.Creator] struct {
	db     *DB
	table  string
	logger *logger.Logger
}

func NewGenreRepository(db *DB, logger *logger.Logger) GenreRepository {
	return newNamedRepository[models.Genre](db, "genres", logger)
}

func NewActorRepository(db *DB, logger *logger.Logger) ActorRepository {
	return newNamedRepository[models.Actor](db, "actors", logger)
}

func NewCreatorRepository(db *DB, logger *logger.Logger) CreatorRepository {
	return newNamedRepository[models.Creator](db, "creators", logger)
}

func newNamedRepository[T models.Genre | models.Actor | models.Creator](db *DB, table string, logger *logger.Logger) *namedRepository[T] {
	logger.Debug().Str("table", table).Msg("creating named repository")
	return &namedRepository[T]{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// The three leaf types share one layout, so conversion goes through Genre.
func toNamed[T models.Genre | models.Actor | models.Creator](id uuid.UUID, name string) T {
	return T(models.Genre{ID: id, Name: name})
}

func fromNamed[T models.Genre | models.Actor | models.Creator](entity T) models.Genre {
	return models.Genre(entity)
}

func (r *namedRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (T, bool, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select("id", "name").
		From(r.table).
		Where(sq.Eq{"id": id.String()})

	var entity T
	found, err := r.db.getOne(ctx, query, func(row scanner) error {
		var (
			id   uuid.UUID
			name string
		)
		if err := row.Scan(&id, &name); err != nil {
			return err
		}
		entity = toNamed[T](id, name)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*namedRepository.FindByID").Str("table", r.table).Msg("error finding row")
		return entity, false, err
	}

	return entity, found, nil
}

func (r *namedRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select("id", "name").
		From(r.table).
		OrderBy("name")

	list := make([]T, 0)
	err := r.db.getMany(ctx, query, func(row scanner) error {
		var (
			id   uuid.UUID
			name string
		)
		if err := row.Scan(&id, &name); err != nil {
			return err
		}
		list = append(list, toNamed[T](id, name))
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*namedRepository.FindAll").Str("table", r.table).Msg("error listing rows")
		return nil, err
	}

	return list, nil
}

// Save inserts entity. A duplicate name yields [ErrAlreadyExists].
func (r *namedRepository[T]) Save(ctx context.Context, entity T) (T, error) {
	log := logger.FromContext(ctx)

	named := fromNamed(entity)
	query := r.db.builder.
		Insert(r.table).
		Columns("id", "name", "created_at").
		Values(named.ID, named.Name, time.Now().UTC())

	if _, err := r.db.exec(ctx, query); err != nil {
		log.Err(err).Str("func", "*namedRepository.Save").Str("table", r.table).Msg("error saving row")
		var zero T
		return zero, err
	}

	return entity, nil
}
