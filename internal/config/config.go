// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Amadeus  AmadeusConfig
	Airports AirportsConfig
	Pipeline PipelineConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// AmadeusConfig holds the upstream Amadeus API settings.
type AmadeusConfig struct {
	// BaseURL is the API host; the test environment by default
	BaseURL string `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`

	// TokenURL is the OAuth2 token endpoint
	TokenURL string `env:"AMADEUS_TOKEN_URL" envDefault:"https://test.api.amadeus.com/v1/security/oauth2/token"`

	// ClientID and ClientSecret are the OAuth2 client credentials
	ClientID     string `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string `env:"AMADEUS_CLIENT_SECRET"`

	// Timeout bounds each upstream request
	Timeout time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"10s"`

	// MaxOffers caps the number of offers requested per search
	MaxOffers int `env:"AMADEUS_MAX_OFFERS" envDefault:"20"`
}

// AirportsConfig holds the static global airport dataset settings.
type AirportsConfig struct {
	// DatasetURL is where the JSON dataset is fetched from at startup;
	// empty disables the static dataset
	DatasetURL string `env:"AIRPORTS_DATASET_URL"`
}

// PipelineConfig holds the offer derivation pipeline settings.
type PipelineConfig struct {
	// HistogramBinSize is the price histogram bin width
	HistogramBinSize float64 `env:"PIPELINE_HISTOGRAM_BIN_SIZE" envDefault:"50"`

	// StrictIntegrity fails a search when any offer carries unusable data,
	// instead of dropping the offending offers
	StrictIntegrity bool `env:"PIPELINE_STRICT_INTEGRITY" envDefault:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate upstream settings
	if cfg.Amadeus.BaseURL == "" {
		return fmt.Errorf("AMADEUS_BASE_URL must not be empty")
	}
	if cfg.Amadeus.TokenURL == "" {
		return fmt.Errorf("AMADEUS_TOKEN_URL must not be empty")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}
	if cfg.Amadeus.MaxOffers < 1 || cfg.Amadeus.MaxOffers > 250 {
		return fmt.Errorf("AMADEUS_MAX_OFFERS must be between 1 and 250, got %d", cfg.Amadeus.MaxOffers)
	}

	// Validate pipeline settings
	if cfg.Pipeline.HistogramBinSize <= 0 {
		return fmt.Errorf("PIPELINE_HISTOGRAM_BIN_SIZE must be positive")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
