package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		SignUpKeyTTL         Duration `json:"sign_up_key_ttl"`
		MaxProfiles          int      `json:"max_profiles"`
		PasswordMinLength    int      `json:"password_min_length"`
		PasswordMaxLength    int      `json:"password_max_length"`
		BcryptCost           int      `json:"bcrypt_cost"`
		Version              string   `json:"version"`
		LogLevel             string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address   string `json:"address"`
			Password  string `json:"password"`
			DB        int    `json:"db"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			Endpoint       string   `json:"endpoint"`
			APIKey         string   `json:"api_key"`
			Sender         string   `json:"sender"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	app := jsonCfg.App
	storage := jsonCfg.Storage
	server := jsonCfg.Server
	mail := jsonCfg.Adapter.Mail

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         app.TokenSignKey,
			TokenIssuer:          app.TokenIssuer,
			AccessTokenDuration:  time.Duration(app.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(app.RefreshTokenDuration),
			SignUpKeyTTL:         time.Duration(app.SignUpKeyTTL),
			MaxProfiles:          app.MaxProfiles,
			PasswordMinLength:    app.PasswordMinLength,
			PasswordMaxLength:    app.PasswordMaxLength,
			BcryptCost:           app.BcryptCost,
			Version:              app.Version,
			LogLevel:             app.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: storage.DB.DSN,
			},
			Redis: Redis{
				Address:   storage.Redis.Address,
				Password:  storage.Redis.Password,
				DB:        storage.Redis.DB,
				KeyPrefix: storage.Redis.KeyPrefix,
			},
		},
		Server: Server{
			HTTPAddress:     server.HTTPAddress,
			RequestTimeout:  time.Duration(server.RequestTimeout),
			ShutdownTimeout: time.Duration(server.ShutdownTimeout),
		},
		Adapter: Adapter{
			Mail: Mail{
				Endpoint:       mail.Endpoint,
				APIKey:         mail.APIKey,
				Sender:         mail.Sender,
				RequestTimeout: time.Duration(mail.RequestTimeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
