package config

import (
	"errors"

	"github.com/spf13/viper"
)

// DefaultDatabasePath is the default path for the catalog database.
const DefaultDatabasePath = "./bookcatalog.db"

type (
	Config struct {
		HTTP
		Database
		Auth
		RateLimit
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		// APIKey is the shared secret compared against the X-API-Key
		// header on mutating routes.
		APIKey string
	}
	RateLimit struct {
		Enabled bool
		RPS     float64
		Burst   int
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("api_key", "")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("rate_limit_enabled", true)
	v.SetDefault("rate_limit_rps", 2.0)
	v.SetDefault("rate_limit_burst", 4)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			APIKey: v.GetString("API_KEY"),
		},
		RateLimit: RateLimit{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}

// Validate rejects configurations the server must not start with. Mutating
// routes are never served without a shared secret.
func (c *Config) Validate() error {
	if c.Auth.APIKey == "" {
		return errors.New("API_KEY is not set; refusing to serve unprotected mutating routes")
	}
	return nil
}
