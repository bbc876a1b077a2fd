package models

import (
	"github.com/google/uuid"
)

// Domain names reported by rule violations on catalog entities.
const (
	MediaContentsDomain = "MEDIA_CONTENTS"
	MediaSeriesDomain   = "MEDIA_SERIES"
)

// MediaContents is the top level catalog item: a movie or a whole show
// with all of its series.
type MediaContents struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Summary      string         `json:"summary"`
	Rate         string         `json:"rate"`
	ThumbnailURL string         `json:"thumbnail_url"`
	IsSeries     bool           `json:"is_series"`
	State        LifecycleState `json:"-"`

	Genres   []Genre   `json:"genres"`
	Actors   []Actor   `json:"actors"`
	Creators []Creator `json:"creators"`
}

// MediaSeries is a season of a MediaContents.
type MediaSeries struct {
	ID              uuid.UUID      `json:"id"`
	MediaContentsID uuid.UUID      `json:"media_contents_id"`
	Title           string         `json:"title"`
	Order           int            `json:"order"`
	State           LifecycleState `json:"-"`
}

// Genre is a catalog genre.
type Genre struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Actor is a catalog cast member.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Creator is a catalog director or writer.
type Creator struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CastKind selects one of the MediaContents association tables.
type CastKind string

const (
	CastGenre   CastKind = "genre"
	CastActor   CastKind = "actor"
	CastCreator CastKind = "creator"
)

// Update overwrites the non-empty fields.
func (m *MediaContents) Update(title, summary, rate, thumbnailURL string) {
	if title != "" {
		m.Title = title
	}
	if summary != "" {
		m.Summary = summary
	}
	if rate != "" {
		m.Rate = rate
	}
	if thumbnailURL != "" {
		m.ThumbnailURL = thumbnailURL
	}
}

// Update overwrites the title when non-empty and the order when positive.
func (s *MediaSeries) Update(title string, order int) {
	if title != "" {
		s.Title = title
	}
	if order > 0 {
		s.Order = order
	}
}

func (k CastKind) IsValid() bool {
	return k == CastGenre || k == CastActor || k == CastCreator
}
