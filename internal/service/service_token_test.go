package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/utils"
	"github.com/MKhiriev/go-media-hub/models"
)

func TestTokenProvider_AccessTokenRoundTrip(t *testing.T) {
	provider := NewTokenProvider(testAppConfig())
	userID := utils.NewID()

	token, err := provider.CreateAccessToken(userID, models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := provider.ParseAccessToken(token.String())
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestTokenProvider_ParseAccessToken_Rejects(t *testing.T) {
	cfg := testAppConfig()
	provider := NewTokenProvider(cfg)

	foreign := testAppConfig()
	foreign.TokenSignKey = "another-key"
	foreignToken, err := NewTokenProvider(foreign).CreateAccessToken(utils.NewID(), models.RoleUser)
	require.NoError(t, err)

	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, utils.NewID(), models.RoleUser, -time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	otherIssuer, err := utils.GenerateJWTToken("someone-else", utils.NewID(), models.RoleUser, time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	badRole, err := utils.GenerateJWTToken(cfg.TokenIssuer, utils.NewID(), models.Role("ROOT"), time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "garbage"},
		{name: "foreign signature", token: foreignToken.String()},
		{name: "expired", token: expired.String()},
		{name: "other issuer", token: otherIssuer.String()},
		{name: "unknown role", token: badRole.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.ParseAccessToken(tt.token)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestTokenProvider_CreateRefreshToken_Unique(t *testing.T) {
	provider := NewTokenProvider(config.App{})

	first, err := provider.CreateRefreshToken()
	require.NoError(t, err)
	second, err := provider.CreateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	_, err = uuid.Parse(first)
	assert.NoError(t, err)
}
