package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

// namedService creates and lists one kind of catalog leaf. newEntity
// builds a T from an id and a name.
type namedService[T models.Genre | models.Actor | models.Creator] struct {
	tx         store.Transactor
	repository store.NamedRepository[T]
	newEntity  func(id uuid.UUID, name string) T

	logger *logger.Logger
}

func NewGenreService(storages *store.Storages, logger *logger.Logger) NamedService[models.Genre] {
	return &namedService[models.Genre]{
		tx:         storages.Transactor,
		repository: storages.GenreRepository,
		newEntity:  func(id uuid.UUID, name string) models.Genre { return models.Genre{ID: id, Name: name} },
		logger:     logger,
	}
}

func NewActorService(storages *store.Storages, logger *logger.Logger) NamedService[models.Actor] {
	return &namedService[models.Actor]{
		tx:         storages.Transactor,
		repository: storages.ActorRepository,
		newEntity:  func(id uuid.UUID, name string) models.Actor { return models.Actor{ID: id, Name: name} },
		logger:     logger,
	}
}

func NewCreatorService(storages *store.Storages, logger *logger.Logger) NamedService[models.Creator] {
	return &namedService[models.Creator]{
		tx:         storages.Transactor,
		repository: storages.CreatorRepository,
		newEntity:  func(id uuid.UUID, name string) models.Creator { return models.Creator{ID: id, Name: name} },
		logger:     logger,
	}
}

// Create stores a new entry. Names are unique per kind.
func (s *namedService[T]) Create(ctx context.Context, name string) (T, error) {
	var saved T
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repository.Save(ctx, s.newEntity(utils.NewID(), strings.TrimSpace(name)))
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrNameAlreadyExists, name)
		}
		return err
	})
	return saved, err
}

func (s *namedService[T]) FindAll(ctx context.Context) ([]T, error) {
	var list []T
	err := s.tx.WithinReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		list, err = s.repository.FindAll(ctx)
		return err
	})
	return list, err
}
