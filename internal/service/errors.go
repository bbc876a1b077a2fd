package service

import "errors"

// Not found.
var (
	ErrUserNotFound          = errors.New("no such user")
	ErrProfileNotFound       = errors.New("no such profile")
	ErrMediaContentsNotFound = errors.New("no such media contents")
	ErrMediaSeriesNotFound   = errors.New("no such media series")
	ErrCastNotFound          = errors.New("no such genre, actor or creator")
	ErrLikeNotFound          = errors.New("no such like")
	ErrWishNotFound          = errors.New("no such wish content")
)

// Conflict.
var (
	ErrDuplicateEmail    = errors.New("duplicate email")
	ErrLikeAlreadyExists = errors.New("like already exists")
	ErrWishAlreadyExists = errors.New("wish content already exists")
	ErrCastAlreadyLinked = errors.New("cast is already linked to media contents")
	ErrNameAlreadyExists = errors.New("name already exists")
)

var (
	// ErrNotAccessible covers expired or mismatched verification codes and
	// unknown refresh tokens.
	ErrNotAccessible = errors.New("not accessible")

	// ErrInvalidSignIn is returned when no account matches the email.
	ErrInvalidSignIn = errors.New("wrong email")

	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrCheckedRowVanished means a row verified inside the transaction was
	// gone when it was written.
	ErrCheckedRowVanished = errors.New("row is checked, but write found nothing")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
