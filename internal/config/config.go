// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/timeutil"
)

// Storage drivers.
const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

// developmentJWTSecret signs tokens when APP_ENV=development and no secret is set.
const developmentJWTSecret = "development-only-insecure-secret"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Timeouts   TimeoutConfig
	Storage    StorageConfig
	Mongo      MongoConfig
	Auth       AuthConfig
	Cloudinary CloudinaryConfig
	Stripe     StripeConfig
	SMTP       SMTPConfig
	Cache      CacheConfig
	KeepAlive  KeepAliveConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`

	// BackendURL is the public URL of this service, pinged by the keepalive loop
	BackendURL string `env:"BACKEND_URL"`

	// FrontendURL is the allowed CORS origin; credentials are allowed for it
	FrontendURL string `env:"FRONTEND_URL"`

	// StaticDir, when set, is served as a single-page app with index.html fallback
	StaticDir string `env:"STATIC_DIR"`

	// UploadMaxBytes is the per-file limit for hotel images
	UploadMaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`
}

// TimeoutConfig bounds calls to collaborators.
type TimeoutConfig struct {
	// Search bounds the count and fetch issued by one hotel search
	Search time.Duration `env:"TIMEOUT_SEARCH" envDefault:"5s"`

	// Relay bounds one call to the media, payment or mail relay
	Relay time.Duration `env:"TIMEOUT_RELAY" envDefault:"15s"`
}

// StorageConfig selects the storage backend.
type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"mongo"`
}

// MongoConfig holds document store settings.
type MongoConfig struct {
	URI      string        `env:"MONGODB_CONNECTION_STRING" envDefault:"mongodb://localhost:27017"`
	Database string        `env:"MONGODB_DATABASE" envDefault:"hotel-booking"`
	Timeout  time.Duration `env:"MONGODB_TIMEOUT" envDefault:"5s"`
}

// AuthConfig holds token settings.
type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET_KEY"`
	TokenTTL   time.Duration `env:"JWT_TTL" envDefault:"24h"`
	CookieName string        `env:"AUTH_COOKIE_NAME" envDefault:"auth_token"`
}

// CloudinaryConfig holds media host credentials.
type CloudinaryConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

// Enabled reports whether every credential is present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// StripeConfig holds payment processor settings.
type StripeConfig struct {
	APIKey   string `env:"STRIPE_API_KEY"`
	Currency string `env:"STRIPE_CURRENCY" envDefault:"gbp"`
}

// Enabled reports whether an API key is present.
func (c StripeConfig) Enabled() bool {
	return c.APIKey != ""
}

// SMTPConfig holds mail relay settings.
type SMTPConfig struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" envDefault:"587"`
	User       string `env:"SMTP_USER"`
	Password   string `env:"SMTP_PASS"`
	From       string `env:"FROM_EMAIL"`
	AdminEmail string `env:"ADMIN_EMAIL"`
	BrandName  string `env:"BRAND_NAME" envDefault:"Hotel Booking"`
}

// Enabled reports whether the relay host and sender are set.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// CacheConfig sizes the hotel read cache.
type CacheConfig struct {
	HotelTTL time.Duration `env:"CACHE_HOTEL_TTL" envDefault:"5m"`
	MaxSize  int64         `env:"CACHE_MAX_SIZE" envDefault:"1000"`
}

// KeepAliveConfig controls the self-ping loop that keeps free-tier hosts awake.
type KeepAliveConfig struct {
	Enabled      bool          `env:"KEEPALIVE_ENABLED" envDefault:"false"`
	Interval     time.Duration `env:"KEEPALIVE_INTERVAL" envDefault:"14m30s"`
	InitialDelay time.Duration `env:"KEEPALIVE_INITIAL_DELAY" envDefault:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone renders stay dates in notification emails
	Timezone string `env:"APP_TIMEZONE" envDefault:"UTC"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" && cfg.IsDevelopment() {
		log.Warn().Msg("JWT_SECRET_KEY not set, using an insecure development secret")
		cfg.Auth.JWTSecret = developmentJWTSecret
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
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	positive := []struct {
		name  string
		value time.Duration
	}{
		{"SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout},
		{"TIMEOUT_SEARCH", cfg.Timeouts.Search},
		{"TIMEOUT_RELAY", cfg.Timeouts.Relay},
		{"MONGODB_TIMEOUT", cfg.Mongo.Timeout},
		{"JWT_TTL", cfg.Auth.TokenTTL},
		{"CACHE_HOTEL_TTL", cfg.Cache.HotelTTL},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}

	if cfg.Server.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if cfg.Cache.MaxSize <= 0 {
		return fmt.Errorf("CACHE_MAX_SIZE must be positive")
	}

	switch cfg.Storage.Driver {
	case StorageMongo:
		if cfg.Mongo.URI == "" {
			return fmt.Errorf("MONGODB_CONNECTION_STRING is required when STORAGE_DRIVER=mongo")
		}
		if cfg.Mongo.Database == "" {
			return fmt.Errorf("MONGODB_DATABASE must not be empty")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: mongo, memory; got %q", cfg.Storage.Driver)
	}

	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required outside development")
	}
	if cfg.Auth.CookieName == "" {
		return fmt.Errorf("AUTH_COOKIE_NAME must not be empty")
	}

	if cfg.SMTP.Port < 1 || cfg.SMTP.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", cfg.SMTP.Port)
	}

	if cfg.KeepAlive.Enabled {
		if cfg.KeepAlive.Interval <= 0 {
			return fmt.Errorf("KEEPALIVE_INTERVAL must be positive")
		}
		if cfg.KeepAlive.InitialDelay < 0 {
			return fmt.Errorf("KEEPALIVE_INITIAL_DELAY must not be negative")
		}
		if _, err := url.ParseRequestURI(cfg.Server.BackendURL); err != nil {
			return fmt.Errorf("BACKEND_URL must be an absolute URL when KEEPALIVE_ENABLED=true")
		}
	}

	if _, err := timeutil.GetLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

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
