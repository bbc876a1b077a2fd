package models

import "github.com/google/uuid"

// SignUpVerifyMailRequest asks for a verification code to be sent to Email.
type SignUpVerifyMailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SignUpVerifyAuthRequest confirms the verification code received by mail.
type SignUpVerifyAuthRequest struct {
	Email     string `json:"email" validate:"required,email"`
	SignUpKey string `json:"sign_up_key" validate:"required"`
}

// SignUpRequest registers a new account.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInRequest authenticates an existing account.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordUpdateRequest replaces SrcPassword with DstPassword.
type PasswordUpdateRequest struct {
	SrcPassword string `json:"src_password" validate:"required"`
	DstPassword string `json:"dst_password" validate:"required"`
}

// PasswordFindRequest resets the password of the account with Email
// and mails a generated one.
type PasswordFindRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ProfileCreateRequest creates a profile for the authenticated user.
type ProfileCreateRequest struct {
	Name      string `json:"name" validate:"required,max=64"`
	Rate      string `json:"rate" validate:"required"`
	MainImage string `json:"main_image" validate:"omitempty,url"`
}

// ProfileUpdateRequest updates the mutable profile fields.
// Empty fields are left unchanged.
type ProfileUpdateRequest struct {
	Name      string `json:"name" validate:"omitempty,max=64"`
	Rate      string `json:"rate"`
	MainImage string `json:"main_image" validate:"omitempty,url"`
}

// LikeRequest references the media contents to like or unlike.
type LikeRequest struct {
	MediaContentsID uuid.UUID `json:"media_contents_id" validate:"required"`
}

// WishContentRequest references the media contents to wish or unwish.
type WishContentRequest struct {
	MediaContentsID uuid.UUID `json:"media_contents_id" validate:"required"`
}

// MediaContentsCreateRequest adds a catalog item with its initial associations.
type MediaContentsCreateRequest struct {
	Title        string      `json:"title" validate:"required"`
	Summary      string      `json:"summary"`
	Rate         string      `json:"rate" validate:"required"`
	ThumbnailURL string      `json:"thumbnail_url" validate:"omitempty,url"`
	IsSeries     bool        `json:"is_series"`
	GenreIDs     []uuid.UUID `json:"genre_ids"`
	ActorIDs     []uuid.UUID `json:"actor_ids"`
	CreatorIDs   []uuid.UUID `json:"creator_ids"`
}

// MediaContentsUpdateRequest updates catalog item fields.
// Empty fields are left unchanged.
type MediaContentsUpdateRequest struct {
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	Rate         string `json:"rate"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
}

// MediaSeriesCreateRequest adds a season to a catalog item.
type MediaSeriesCreateRequest struct {
	Title string `json:"title" validate:"required"`
	Order int    `json:"order" validate:"gte=1"`
}

// MediaSeriesUpdateRequest updates a season. Zero values are left unchanged.
type MediaSeriesUpdateRequest struct {
	Title string `json:"title"`
	Order int    `json:"order" validate:"gte=0"`
}

// CastRequest references a genre, actor or creator to attach or detach.
type CastRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// CatalogNameRequest creates a genre, actor or creator.
type CatalogNameRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}
