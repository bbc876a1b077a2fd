package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
	"github.com/google/uuid"
)

// jwtTokenProvider issues HS256 access tokens and opaque refresh tokens.
// All state is read-only after construction.
type jwtTokenProvider struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenDuration controls how long a newly issued JWT remains valid.
	accessTokenDuration time.Duration
}

func NewTokenProvider(cfg config.App) TokenProvider {
	return &jwtTokenProvider{
		tokenSignKey:        cfg.TokenSignKey,
		tokenIssuer:         cfg.TokenIssuer,
		accessTokenDuration: cfg.AccessTokenDuration,
	}
}

// CreateAccessToken issues a signed JWT carrying userID as the subject and
// role as a custom claim.
func (p *jwtTokenProvider) CreateAccessToken(userID uuid.UUID, role models.Role) (models.Token, error) {
	token, err := utils.GenerateJWTToken(p.tokenIssuer, userID, role, p.accessTokenDuration, p.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// CreateRefreshToken returns a random opaque token. It carries no claims;
// the user it belongs to is looked up in the refresh token store.
func (p *jwtTokenProvider) CreateRefreshToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return id.String(), nil
}

// ParseAccessToken validates signature, issuer and expiry. Any failure is
// reported as ErrTokenIsExpiredOrInvalid.
func (p *jwtTokenProvider) ParseAccessToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, p.tokenSignKey, p.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	if !token.Role.IsValid() {
		return models.Token{}, fmt.Errorf("%w: unknown role %q", ErrTokenIsExpiredOrInvalid, token.Role)
	}

	return token, nil
}
