// Package smtp delivers notification emails through an SMTP relay.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/retry"
)

// ErrNotConfigured is returned by Unavailable.
var ErrNotConfigured = errors.New("smtp relay not configured")

// Settings configure the relay connection and the sender.
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string

	// From is the sender address; FromName is displayed next to it
	From     string
	FromName string

	Timeout time.Duration
}

// sender is the subset of the go-mail client the mailer calls.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Mailer implements domain.Mailer.
type Mailer struct {
	client   sender
	from     string
	fromName string
	retry    retry.Config
	log      *logger.Logger
}

// New creates a mailer that authenticates with PLAIN auth and upgrades to TLS when offered.
func New(s Settings, log *logger.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(s.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}
	if s.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.Timeout))
	}

	client, err := mail.NewClient(s.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return newMailer(client, s.From, s.FromName, log), nil
}

func newMailer(client sender, from, fromName string, log *logger.Logger) *Mailer {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("smtp")
	return &Mailer{
		client:   client,
		from:     from,
		fromName: fromName,
		retry: retry.RelayConfig.WithOnRetry(func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retry_in", next).Msg("smtp send failed, retrying")
		}),
		log: log,
	}
}

// Send builds a plain-text message and delivers it, retrying transient relay failures.
// Malformed addresses fail without contacting the relay.
func (m *Mailer) Send(ctx context.Context, e domain.Email) error {
	msg, err := m.message(e)
	if err != nil {
		return err
	}

	err = retry.Do(ctx, func() error {
		return m.client.DialAndSendWithContext(ctx, msg)
	}, m.retry)
	if err != nil {
		return fmt.Errorf("send to %s: %w", e.To, err)
	}

	m.log.Debug().Str("to", e.To).Str("subject", e.Subject).Msg("email sent")
	return nil
}

func (m *Mailer) message(e domain.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()

	var err error
	if m.fromName != "" {
		err = msg.FromFormat(m.fromName, m.from)
	} else {
		err = msg.From(m.from)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.from, err)
	}
	if err := msg.To(e.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", e.To, err)
	}

	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextPlain, e.Body)
	return msg, nil
}

// Unavailable rejects every message. It stands in when no relay is configured.
type Unavailable struct{}

// Send implements domain.Mailer.
func (Unavailable) Send(context.Context, domain.Email) error {
	return ErrNotConfigured
}

var (
	_ domain.Mailer = (*Mailer)(nil)
	_ domain.Mailer = Unavailable{}
)
