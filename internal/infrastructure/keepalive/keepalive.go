// Package keepalive periodically requests the service's own health endpoint
// so hosting platforms that idle inactive instances keep it awake.
package keepalive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
)

// HealthPath is appended to the base URL.
const HealthPath = "/health"

// Config controls the ping loop.
type Config struct {
	// BaseURL is the public URL of this service
	BaseURL string

	// InitialDelay is waited once before the first ping
	InitialDelay time.Duration

	// Interval separates consecutive pings
	Interval time.Duration

	// Timeout bounds one ping; defaults to 10s
	Timeout time.Duration
}

// Pinger runs the ping loop.
type Pinger struct {
	url    string
	cfg    Config
	client *http.Client
	log    *logger.Logger
}

// New creates a pinger for cfg.
func New(cfg Config, log *logger.Logger) *Pinger {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pinger{
		url:    strings.TrimRight(cfg.BaseURL, "/") + HealthPath,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.WithComponent("keepalive"),
	}
}

// Run pings until ctx is canceled. Failed pings are logged and never stop the loop.
func (p *Pinger) Run(ctx context.Context) {
	p.log.Info().Str("url", p.url).Dur("interval", p.cfg.Interval).Msg("keepalive started")

	select {
	case <-ctx.Done():
		return
	case <-time.After(p.cfg.InitialDelay):
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := p.Ping(ctx); err != nil && ctx.Err() == nil {
			p.log.Warn().Err(err).Msg("keepalive ping failed")
		}

		select {
		case <-ctx.Done():
			p.log.Info().Msg("keepalive stopped")
			return
		case <-ticker.C:
		}
	}
}

// Ping requests the health endpoint once.
func (p *Pinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	p.log.Debug().Int("status", resp.StatusCode).Msg("keepalive ping ok")
	return nil
}
