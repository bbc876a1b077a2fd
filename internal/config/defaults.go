package config

import "time"

// Defaults returns the values used for every field no source has set.
// Secrets and the database DSN have no defaults.
func Defaults() StructuredConfig {
	return StructuredConfig{
		App: App{
			TokenIssuer:          "media-hub",
			AccessTokenDuration:  30 * time.Minute,
			RefreshTokenDuration: 14 * 24 * time.Hour,
			SignUpKeyTTL:         180 * time.Second,
			MaxProfiles:          4,
			PasswordMinLength:    8,
			PasswordMaxLength:    20,
			BcryptCost:           10,
			Version:              "dev",
			LogLevel:             "info",
		},
		Storage: Storage{
			Redis: Redis{
				Address:   "localhost:6379",
				KeyPrefix: "media-hub:",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			Mail: Mail{
				Sender:         "no-reply@media-hub.local",
				RequestTimeout: 10 * time.Second,
			},
		},
	}
}
