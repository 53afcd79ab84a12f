// Package mock provides test doubles for the hotel booking backend.
// These doubles are designed for integration testing where we need
// configurable behavior (delays, errors, recorded calls).
package mock

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

// wait applies delay while honoring cancellation.
func wait(ctx context.Context, delay time.Duration) error {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return ctx.Err()
}

// Uploader is a configurable implementation of domain.ImageUploader.
// Each upload returns BaseURL followed by the file name.
type Uploader struct {
	BaseURL string

	err   error
	delay time.Duration

	mu       sync.Mutex
	uploaded []string
}

// NewUploader creates an uploader returning URLs under baseURL.
func NewUploader(baseURL string) *Uploader {
	return &Uploader{BaseURL: baseURL}
}

// WithError configures the uploader to fail every upload.
func (u *Uploader) WithError(err error) *Uploader {
	u.err = err
	return u
}

// WithDelay configures the uploader to wait before responding.
func (u *Uploader) WithDelay(d time.Duration) *Uploader {
	u.delay = d
	return u
}

// Upload implements domain.ImageUploader.
func (u *Uploader) Upload(ctx context.Context, img domain.Image) (string, error) {
	if err := wait(ctx, u.delay); err != nil {
		return "", err
	}
	if u.err != nil {
		return "", u.err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.uploaded = append(u.uploaded, img.Filename)
	return u.BaseURL + img.Filename, nil
}

// Uploaded returns the file names uploaded so far, in completion order.
func (u *Uploader) Uploaded() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.uploaded...)
}

// PaymentGateway is an in-memory implementation of domain.PaymentGateway.
// Intents are created in the "requires_payment_method" status; tests capture them with Succeed.
type PaymentGateway struct {
	err error

	mu      sync.Mutex
	seq     int
	intents map[string]*domain.PaymentIntent
}

// NewPaymentGateway creates an empty gateway.
func NewPaymentGateway() *PaymentGateway {
	return &PaymentGateway{intents: make(map[string]*domain.PaymentIntent)}
}

// WithError configures the gateway to fail every call.
func (g *PaymentGateway) WithError(err error) *PaymentGateway {
	g.err = err
	return g
}

// CreateIntent implements domain.PaymentGateway.
func (g *PaymentGateway) CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := "pi_test_" + strconv.Itoa(g.seq)
	metadata := make(map[string]string, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	intent := &domain.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret",
		Status:       "requires_payment_method",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Metadata:     metadata,
	}
	g.intents[id] = intent
	copied := *intent
	return &copied, nil
}

// GetIntent implements domain.PaymentGateway.
func (g *PaymentGateway) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.err != nil {
		return nil, g.err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	intent, ok := g.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such payment_intent: %s", id)
	}
	copied := *intent
	return &copied, nil
}

// Succeed marks an intent as captured.
func (g *PaymentGateway) Succeed(id string) {
	g.SetStatus(id, domain.PaymentIntentStatusSucceeded)
}

// SetStatus overrides the status of an intent.
func (g *PaymentGateway) SetStatus(id, status string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if intent, ok := g.intents[id]; ok {
		intent.Status = status
	}
}

// Mailer records sent messages and can fail selected recipients.
type Mailer struct {
	failures map[string]error

	mu   sync.Mutex
	sent []domain.Email
}

// NewMailer creates a mailer that delivers everything.
func NewMailer() *Mailer {
	return &Mailer{failures: make(map[string]error)}
}

// FailFor makes sends to the given recipient return err.
func (m *Mailer) FailFor(to string, err error) *Mailer {
	m.failures[to] = err
	return m
}

// Send implements domain.Mailer.
func (m *Mailer) Send(ctx context.Context, msg domain.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err, ok := m.failures[msg.To]; ok {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns the delivered messages in order.
func (m *Mailer) Sent() []domain.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Email(nil), m.sent...)
}

// Ensure the doubles implement the domain ports at compile time.
var (
	_ domain.ImageUploader  = (*Uploader)(nil)
	_ domain.PaymentGateway = (*PaymentGateway)(nil)
	_ domain.Mailer         = (*Mailer)(nil)
)
