package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDomain is the domain name reported by rule violations on profiles.
const ProfileDomain = "PROFILE"

// Profile is a viewer persona under a User account.
// UserID references the owning user; it is set on creation and never changes.
type Profile struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Rate      string         `json:"rate"`
	MainImage string         `json:"main_image"`
	UserID    uuid.UUID      `json:"user_id"`
	State     LifecycleState `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// Update applies the mutable fields. Empty values keep the current ones.
func (p *Profile) Update(name, mainImage, rate string) {
	if name != "" {
		p.Name = name
	}
	if mainImage != "" {
		p.MainImage = mainImage
	}
	if rate != "" {
		p.Rate = rate
	}
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
