// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/store"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/internal/validators"
	"github.com/MKhiriev/go-media-hub/models"
)

func newTestMediaContentsService(t *testing.T) (MediaContentsService, *testStorages) {
	t.Helper()
	m, storages := newTestStorages(gomock.NewController(t))
	return NewMediaContentsService(storages, logger.Nop()), m
}

func TestMediaContentsService_FindByID_View(t *testing.T) {
	tests := []struct {
		name   string
		isLike bool
		isWish bool
	}{
		{name: "untouched"},
		{name: "liked", isLike: true},
		{name: "wished", isWish: true},
		{name: "liked and wished", isLike: true, isWish: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestMediaContentsService(t)
			profile := testProfile(utils.NewID())
			contents := testContents()

			m.profiles.EXPECT().FindByID(gomock.Any(), profile.ID).Return(profile, true, nil)
			m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)
			m.likes.EXPECT().Exists(gomock.Any(), profile.ID, contents.ID).Return(tt.isLike, nil)
			m.wishes.EXPECT().ExistsByProfileIDAndMediaContentsID(gomock.Any(), profile.ID, contents.ID).Return(tt.isWish, nil)

			view, err := svc.FindByID(context.Background(), profile.UserID, profile.ID, contents.ID)
			require.NoError(t, err)
			assert.Equal(t, contents.ID, view.ID)
			assert.Equal(t, tt.isLike, view.IsLike)
			assert.Equal(t, tt.isWish, view.IsWish)
		})
	}
}

func TestMediaContentsService_FindByID_NotVisible(t *testing.T) {
	t.Run("deleted contents", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		profile := testProfile(utils.NewID())
		contents := testContents()
		contents.State = models.StateDeleted

		m.profiles.EXPECT().FindByID(gomock.Any(), profile.ID).Return(profile, true, nil)
		m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)

		_, err := svc.FindByID(context.Background(), profile.UserID, profile.ID, contents.ID)
		require.ErrorIs(t, err, ErrMediaContentsNotFound)
	})

	t.Run("profile of another user", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		profile := testProfile(utils.NewID())

		m.profiles.EXPECT().FindByID(gomock.Any(), profile.ID).Return(profile, true, nil)

		_, err := svc.FindByID(context.Background(), utils.NewID(), profile.ID, utils.NewID())
		require.ErrorIs(t, err, validators.ErrOwnershipMismatch)
	})
}

func TestMediaContentsService_Create(t *testing.T) {
	genreID, actorID := utils.NewID(), utils.NewID()
	req := models.MediaContentsCreateRequest{
		Title:    "Night Shift",
		Rate:     "15",
		IsSeries: true,
		GenreIDs: []uuid.UUID{genreID},
		ActorIDs: []uuid.UUID{actorID},
	}

	t.Run("success", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)

		var stored models.MediaContents
		m.genres.EXPECT().FindByID(gomock.Any(), genreID).Return(models.Genre{ID: genreID, Name: "Drama"}, true, nil)
		m.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(models.Actor{ID: actorID, Name: "Kim"}, true, nil)
		m.contents.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mc models.MediaContents) (models.MediaContents, error) {
				stored = mc
				return mc, nil
			},
		)
		m.contents.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (models.MediaContents, bool, error) {
				return stored, stored.ID == id, nil
			},
		)

		got, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, models.StateActive, got.State)
		assert.True(t, got.IsSeries)
		require.Len(t, got.Genres, 1)
		assert.Equal(t, genreID, got.Genres[0].ID)
		require.Len(t, got.Actors, 1)
		assert.Empty(t, got.Creators)
	})

	t.Run("unknown actor", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)

		m.genres.EXPECT().FindByID(gomock.Any(), genreID).Return(models.Genre{ID: genreID}, true, nil).AnyTimes()
		m.actors.EXPECT().FindByID(gomock.Any(), actorID).Return(models.Actor{}, false, nil)

		_, err := svc.Create(context.Background(), req)
		require.ErrorIs(t, err, ErrCastNotFound)
	})
}

func TestMediaContentsService_MutationsOnDeleted(t *testing.T) {
	contents := testContents()
	contents.State = models.StateDeleted

	calls := map[string]func(svc MediaContentsService) error{
		"update": func(svc MediaContentsService) error {
			_, err := svc.Update(context.Background(), contents.ID, models.MediaContentsUpdateRequest{Title: "x"})
			return err
		},
		"delete": func(svc MediaContentsService) error {
			return svc.Delete(context.Background(), contents.ID)
		},
		"add cast": func(svc MediaContentsService) error {
			_, err := svc.AddCast(context.Background(), contents.ID, models.CastGenre, utils.NewID())
			return err
		},
		"remove cast": func(svc MediaContentsService) error {
			_, err := svc.RemoveCast(context.Background(), contents.ID, models.CastGenre, utils.NewID())
			return err
		},
		"create series": func(svc MediaContentsService) error {
			_, err := svc.CreateSeries(context.Background(), contents.ID, models.MediaSeriesCreateRequest{Title: "S1", Order: 1})
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			svc, m := newTestMediaContentsService(t)
			m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)

			err := call(svc)
			require.ErrorIs(t, err, validators.ErrResourceDeleted)

			var violation *validators.RuleViolation
			require.ErrorAs(t, err, &violation)
			assert.Equal(t, models.MediaContentsDomain, violation.Domain)
		})
	}
}

func TestMediaContentsService_Update(t *testing.T) {
	svc, m := newTestMediaContentsService(t)
	contents := testContents()

	m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)
	m.contents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, mc models.MediaContents) (models.MediaContents, bool, error) {
			return mc, true, nil
		},
	)

	got, err := svc.Update(context.Background(), contents.ID, models.MediaContentsUpdateRequest{Summary: "Late hours."})
	require.NoError(t, err)
	assert.Equal(t, contents.Title, got.Title)
	assert.Equal(t, "Late hours.", got.Summary)
}

func TestMediaContentsService_Delete_Vanished(t *testing.T) {
	svc, m := newTestMediaContentsService(t)
	contents := testContents()

	m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)
	m.contents.EXPECT().Delete(gomock.Any(), contents.ID).Return(false, nil)

	err := svc.Delete(context.Background(), contents.ID)
	require.ErrorIs(t, err, ErrCheckedRowVanished)
}

func TestMediaContentsService_AddCast(t *testing.T) {
	creatorID := utils.NewID()

	t.Run("linked", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		contents := testContents()
		linked := contents
		linked.Creators = []models.Creator{{ID: creatorID, Name: "Bong"}}

		gomock.InOrder(
			m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil),
			m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(linked, true, nil),
		)
		m.creators.EXPECT().FindByID(gomock.Any(), creatorID).Return(models.Creator{ID: creatorID}, true, nil)
		m.contents.EXPECT().AddCast(gomock.Any(), contents.ID, models.CastCreator, creatorID).Return(nil)

		got, err := svc.AddCast(context.Background(), contents.ID, models.CastCreator, creatorID)
		require.NoError(t, err)
		assert.Equal(t, linked.Creators, got.Creators)
	})

	t.Run("already linked", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		contents := testContents()

		m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)
		m.creators.EXPECT().FindByID(gomock.Any(), creatorID).Return(models.Creator{ID: creatorID}, true, nil)
		m.contents.EXPECT().AddCast(gomock.Any(), contents.ID, models.CastCreator, creatorID).Return(store.ErrAlreadyExists)

		_, err := svc.AddCast(context.Background(), contents.ID, models.CastCreator, creatorID)
		require.ErrorIs(t, err, ErrCastAlreadyLinked)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		contents := testContents()

		m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)

		_, err := svc.AddCast(context.Background(), contents.ID, models.CastKind("studio"), creatorID)
		require.ErrorIs(t, err, ErrCastNotFound)
	})
}

func TestMediaContentsService_RemoveCast_NotLinked(t *testing.T) {
	svc, m := newTestMediaContentsService(t)
	contents := testContents()
	genreID := utils.NewID()

	m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)
	m.contents.EXPECT().RemoveCast(gomock.Any(), contents.ID, models.CastGenre, genreID).Return(false, nil)

	_, err := svc.RemoveCast(context.Background(), contents.ID, models.CastGenre, genreID)
	require.ErrorIs(t, err, ErrCastNotFound)
}

func TestMediaContentsService_Series(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		contents := testContents()

		m.contents.EXPECT().FindByID(gomock.Any(), contents.ID).Return(contents, true, nil)
		m.series.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.MediaSeries) (models.MediaSeries, error) { return s, nil },
		)

		got, err := svc.CreateSeries(context.Background(), contents.ID, models.MediaSeriesCreateRequest{Title: "Season 1", Order: 1})
		require.NoError(t, err)
		assert.Equal(t, contents.ID, got.MediaContentsID)
		assert.Equal(t, 1, got.Order)
	})

	t.Run("update keeps order on zero", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		series := models.MediaSeries{ID: utils.NewID(), MediaContentsID: utils.NewID(), Title: "Season 1", Order: 1, State: models.StateActive}

		m.series.EXPECT().FindByID(gomock.Any(), series.ID).Return(series, true, nil)
		m.series.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.MediaSeries) (models.MediaSeries, bool, error) { return s, true, nil },
		)

		got, err := svc.UpdateSeries(context.Background(), series.ID, models.MediaSeriesUpdateRequest{Title: "Pilot season"})
		require.NoError(t, err)
		assert.Equal(t, "Pilot season", got.Title)
		assert.Equal(t, 1, got.Order)
	})

	t.Run("delete deleted", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		series := models.MediaSeries{ID: utils.NewID(), State: models.StateDeleted}

		m.series.EXPECT().FindByID(gomock.Any(), series.ID).Return(series, true, nil)

		err := svc.DeleteSeries(context.Background(), series.ID)
		require.ErrorIs(t, err, validators.ErrResourceDeleted)
	})

	t.Run("find deleted is not found", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		series := models.MediaSeries{ID: utils.NewID(), State: models.StateDeleted}

		m.series.EXPECT().FindByID(gomock.Any(), series.ID).Return(series, true, nil)

		_, err := svc.FindSeriesByID(context.Background(), series.ID)
		require.ErrorIs(t, err, ErrMediaSeriesNotFound)
	})

	t.Run("list of missing contents", func(t *testing.T) {
		svc, m := newTestMediaContentsService(t)
		id := utils.NewID()

		m.contents.EXPECT().FindByID(gomock.Any(), id).Return(models.MediaContents{}, false, nil)

		_, err := svc.FindSeriesByContentsID(context.Background(), id)
		require.ErrorIs(t, err, ErrMediaContentsNotFound)
	})
}
