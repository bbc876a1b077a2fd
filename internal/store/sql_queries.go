package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-media-hub/models"
)

const (
	usersTable         = "users"
	profilesTable      = "profiles"
	likesTable         = "likes"
	wishContentsTable  = "wish_contents"
	mediaContentsTable = "media_contents"
	mediaSeriesTable   = "media_series"
)

var (
	userColumns          = []string{"id", "email", "password", "role", "created_at"}
	profileColumns       = []string{"id", "name", "rate", "main_image", "user_id", "is_deleted", "created_at"}
	likeColumns          = []string{"id", "profile_id", "media_contents_id", "created_at"}
	wishContentColumns   = []string{"id", "profile_id", "media_contents_id", "is_deleted", "created_at"}
	mediaContentsColumns = []string{"id", "title", "summary", "rate", "thumbnail_url", "is_series", "is_deleted"}
	mediaSeriesColumns   = []string{"id", "media_contents_id", "title", "series_order", "is_deleted"}
)

// active is the single predicate every active-state query path filters on.
func active() sq.Eq {
	return sq.Eq{"is_deleted": false}
}

// markDeleted is the SET clause of every soft delete.
func markDeleted() map[string]any {
	return map[string]any{"is_deleted": true}
}

// castTable describes the association table of a cast kind.
type castTable struct {
	table      string
	joinColumn string
	leafTable  string
}

var castTables = map[models.CastKind]castTable{
	models.CastGenre:   {table: "media_contents_genres", joinColumn: "genre_id", leafTable: "genres"},
	models.CastActor:   {table: "media_contents_actors", joinColumn: "actor_id", leafTable: "actors"},
	models.CastCreator: {table: "media_contents_creators", joinColumn: "creator_id", leafTable: "creators"},
}
