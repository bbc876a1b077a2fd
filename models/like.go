package models

import (
	"time"

	"github.com/google/uuid"
)

// Like is the "liked" relation between a Profile and MediaContents.
// Likes are physically removed; the (profile, contents) pair is unique.
type Like struct {
	ID              uuid.UUID `json:"id"`
	ProfileID       uuid.UUID `json:"profile_id"`
	MediaContentsID uuid.UUID `json:"media_contents_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// WishContentDomain is the domain name reported by rule violations on wish list items.
const WishContentDomain = "WISH_CONTENT"

// WishContent is a wish-listed MediaContents of a Profile.
// Unlike Like it is soft-deleted, and the (profile, contents) pair is unique
// among active records only.
type WishContent struct {
	ID              uuid.UUID      `json:"id"`
	ProfileID       uuid.UUID      `json:"profile_id"`
	MediaContentsID uuid.UUID      `json:"media_contents_id"`
	State           LifecycleState `json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
}
