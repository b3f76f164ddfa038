package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Client
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	Env                string `mapstructure:"APP_ENV"` // development | production

	// Stub backend (development / tests only)
	StubPort           int    `mapstructure:"STUB_PORT"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Reason vocabularies — comma-separated overrides; empty = built-in lists
	RaisonsAnnulation string `mapstructure:"RAISONS_ANNULATION"`
	RaisonsDefaut     string `mapstructure:"RAISONS_DEFAUT"`

	// Export
	ExportPath string `mapstructure:"EXPORT_PATH"`
}

// HTTPTimeout returns the outbound request timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("API_BASE_URL", "http://localhost:3001")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STUB_PORT", 3001)
	viper.SetDefault("JWT_SECRET", "laban-dev-secret")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("EXPORT_PATH", ".")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
