// Package stripe relays payment intents to Stripe.
package stripe

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
)

// maxNetworkRetries is handed to the Stripe client, which retries idempotent requests itself.
const maxNetworkRetries = 2

// ErrNotConfigured is returned by Unavailable.
var ErrNotConfigured = errors.New("payment provider not configured")

// intentsAPI is the subset of the payment intent client the gateway calls.
type intentsAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// Gateway implements domain.PaymentGateway.
type Gateway struct {
	intents intentsAPI
	log     *logger.Logger
}

// New creates a gateway authenticated with the secret key.
func New(secretKey string, log *logger.Logger) *Gateway {
	backends := stripe.NewBackendsWithConfig(&stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(maxNetworkRetries),
	})
	sc := &client.API{}
	sc.Init(secretKey, backends)
	return newGateway(sc.PaymentIntents, log)
}

func newGateway(intents intentsAPI, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{intents: intents, log: log.WithComponent("stripe")}
}

// CreateIntent opens a payment intent with automatic payment methods.
func (g *Gateway) CreateIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, describe("create payment intent", err)
	}

	g.log.Debug().Str("payment_intent_id", pi.ID).Int64("amount", pi.Amount).Msg("payment intent created")
	return toDomain(pi), nil
}

// GetIntent retrieves an intent by id.
func (g *Gateway) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.intents.Get(id, params)
	if err != nil {
		return nil, describe("get payment intent", err)
	}
	return toDomain(pi), nil
}

func toDomain(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	metadata := make(map[string]string, len(pi.Metadata))
	for k, v := range pi.Metadata {
		metadata[k] = v
	}
	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Metadata:     metadata,
	}
}

// describe keeps the API error code and message, which are safe to log.
func describe(op string, err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		return fmt.Errorf("%s: %s (%s, status %d): %w", op, serr.Msg, serr.Code, serr.HTTPStatusCode, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Unavailable rejects every call. It stands in when no secret key is configured.
type Unavailable struct{}

// CreateIntent implements domain.PaymentGateway.
func (Unavailable) CreateIntent(context.Context, domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	return nil, ErrNotConfigured
}

// GetIntent implements domain.PaymentGateway.
func (Unavailable) GetIntent(context.Context, string) (*domain.PaymentIntent, error) {
	return nil, ErrNotConfigured
}

var (
	_ domain.PaymentGateway = (*Gateway)(nil)
	_ domain.PaymentGateway = Unavailable{}
)
