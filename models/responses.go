package models

// SignInResponse is returned on a successful sign-in: the token pair and
// the active profiles of the account, so the client can pick one.
type SignInResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Profiles     []Profile `json:"profiles"`
}

// TokenResponse is returned by the refresh flow.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// DuplicateResponse reports whether an email is already registered.
type DuplicateResponse struct {
	Duplicated bool `json:"duplicated"`
}

// MediaContentsView is MediaContents as seen by a viewing profile.
type MediaContentsView struct {
	MediaContents
	IsLike bool `json:"is_like"`
	IsWish bool `json:"is_wish"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse reports the state of the backing stores.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
