// Package usecase contains the business logic of the hotel booking backend.
// Use cases depend only on domain ports; adapters are injected by main.
package usecase

import "time"

// Default values for Config.
const (
	DefaultSearchTimeout = 5 * time.Second
	DefaultRelayTimeout  = 15 * time.Second
	DefaultCurrency      = "gbp"
	DefaultBrandName     = "Hotel Booking"
	DefaultTimezone      = "UTC"

	// MaxHotelImages is the largest gallery accepted per request
	MaxHotelImages = 6
)

// Config contains configuration shared by the use cases.
type Config struct {
	// SearchTimeout bounds the storage calls of one hotel search
	SearchTimeout time.Duration

	// RelayTimeout bounds one call to the media, payment or mail relay
	RelayTimeout time.Duration

	// Currency is the payment currency (ISO 4217, lower case)
	Currency string

	// AdminEmail receives a copy of every booking confirmation
	AdminEmail string

	// BrandName signs notification emails
	BrandName string

	// Timezone renders stay dates in notification emails
	Timezone string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout: DefaultSearchTimeout,
		RelayTimeout:  DefaultRelayTimeout,
		Currency:      DefaultCurrency,
		BrandName:     DefaultBrandName,
		Timezone:      DefaultTimezone,
	}
}

// withDefaults fills zero fields of cfg from DefaultConfig. A nil cfg yields the defaults.
func withDefaults(cfg *Config) Config {
	out := DefaultConfig()
	if cfg == nil {
		return out
	}
	if cfg.SearchTimeout > 0 {
		out.SearchTimeout = cfg.SearchTimeout
	}
	if cfg.RelayTimeout > 0 {
		out.RelayTimeout = cfg.RelayTimeout
	}
	if cfg.Currency != "" {
		out.Currency = cfg.Currency
	}
	if cfg.BrandName != "" {
		out.BrandName = cfg.BrandName
	}
	if cfg.Timezone != "" {
		out.Timezone = cfg.Timezone
	}
	out.AdminEmail = cfg.AdminEmail
	return out
}
