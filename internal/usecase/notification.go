package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/timeutil"
)

// Email subjects.
const (
	AdminConfirmationSubject = "New Booking Confirmation"
	guestSubjectSuffix       = "Hotel Booking Confirmation"
)

// NotificationUseCase sends booking confirmation emails.
type NotificationUseCase interface {
	// SendBookingConfirmation mails the operator, then the guest.
	// The operator email must be delivered; a failed guest email is only logged.
	SendBookingConfirmation(ctx context.Context, b domain.Booking) error
}

type notificationUseCase struct {
	mailer       domain.Mailer
	adminEmail   string
	brandName    string
	timezone     string
	currency     string
	relayTimeout time.Duration
	log          *logger.Logger
}

// NewNotificationUseCase creates a NotificationUseCase.
func NewNotificationUseCase(mailer domain.Mailer, config *Config, log *logger.Logger) NotificationUseCase {
	cfg := withDefaults(config)
	if log == nil {
		log = logger.Nop()
	}
	return &notificationUseCase{
		mailer:       mailer,
		adminEmail:   cfg.AdminEmail,
		brandName:    cfg.BrandName,
		timezone:     cfg.Timezone,
		currency:     strings.ToUpper(cfg.Currency),
		relayTimeout: cfg.RelayTimeout,
		log:          log.WithComponent("notifications"),
	}
}

var (
	adminTemplate = template.Must(template.New("admin").Parse(`Hello Team,

We have received a new booking. Here are the details:

Guest Information:
- Name: {{.FirstName}} {{.LastName}}
- Email: {{.Email}}
{{- if .Phone}}
- Phone: {{.Phone}}
{{- end}}

Booking Details:
- Destination: {{.Destination}}
- Check-in Date: {{.CheckIn}}
- Check-out Date: {{.CheckOut}}
- Room Type: {{.Type}}
- Number of Rooms: {{.Rooms}}
- Number of Guests: {{.Guests}}
{{- if .PromoCode}}
- Promo Code: {{.PromoCode}}
{{- end}}
- Total Cost: {{.Cost}}

Additional Information:
- Booking Date: {{.BookingDate}}
- User ID: {{.UserID}}
- Hotel ID: {{.HotelID}}

Please process this booking accordingly.

Best regards,
{{.Brand}} Booking System
`))

	guestTemplate = template.Must(template.New("guest").Parse(`Hello {{.FirstName}},

We have received your booking. Here are the details:

Booking Details:
- Destination: {{.Destination}}
- Check-in Date: {{.CheckIn}}
- Check-out Date: {{.CheckOut}}
- Number of Rooms: {{.Rooms}}
- Number of Guests: {{.Guests}}
- Total Cost: {{.Cost}}

Additional Information:
- Booking Date: {{.BookingDate}}

We are happy to serve you.

Best regards,
{{.Brand}}
`))
)

// emailView is the booking as rendered into email bodies.
type emailView struct {
	FirstName, LastName, Email, Phone string
	Destination, Type, PromoCode       string
	CheckIn, CheckOut, BookingDate     string
	Rooms, Guests                      int
	Cost                               string
	UserID, HotelID                    string
	Brand                              string
}

func (uc *notificationUseCase) SendBookingConfirmation(ctx context.Context, b domain.Booking) error {
	if err := validateConfirmationEmail(b); err != nil {
		return err
	}

	view := uc.view(b)
	adminBody, err := render(adminTemplate, view)
	if err != nil {
		return err
	}
	guestBody, err := render(guestTemplate, view)
	if err != nil {
		return err
	}

	relayCtx, cancel := context.WithTimeout(ctx, uc.relayTimeout)
	defer cancel()

	if uc.adminEmail == "" {
		logger.FromContext(ctx, uc.log).Warn().Msg("admin email not configured, skipping operator copy")
	} else {
		err = uc.mailer.Send(relayCtx, domain.Email{
			To:      uc.adminEmail,
			Subject: AdminConfirmationSubject,
			Body:    adminBody,
		})
		if err != nil {
			return relayFailure(ctx, uc.log, "send admin email", err, domain.NewNotificationError)
		}
	}

	err = uc.mailer.Send(relayCtx, domain.Email{
		To:      b.Email,
		Subject: uc.brandName + " " + guestSubjectSuffix,
		Body:    guestBody,
	})
	if err != nil {
		logger.FromContext(ctx, uc.log).Warn().Err(err).Str("booking_email", b.Email).Msg("guest confirmation email failed")
	}

	return nil
}

func (uc *notificationUseCase) view(b domain.Booking) emailView {
	return emailView{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		Phone:       b.Phone,
		Destination: b.Destination,
		Type:        b.Type,
		PromoCode:   b.PromoCode,
		CheckIn:     timeutil.FormatStayDate(b.CheckIn, uc.timezone),
		CheckOut:    timeutil.FormatStayDate(b.CheckOut, uc.timezone),
		BookingDate: timeutil.FormatStayDate(b.BookingDate, uc.timezone),
		Rooms:       b.Rooms,
		Guests:      b.Guests,
		Cost:        fmt.Sprintf("%s %.2f", uc.currency, b.Cost),
		UserID:      b.UserID,
		HotelID:     b.HotelID,
		Brand:       uc.brandName,
	}
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func validateConfirmationEmail(b domain.Booking) error {
	var errs domain.ValidationErrors
	if b.FirstName == "" {
		errs.Add("firstName", "First name is required")
	}
	if b.Email == "" {
		errs.Add("email", "Email is required")
	}
	if b.CheckIn.IsZero() {
		errs.Add("checkIn", "Check-in date is required")
	}
	if b.CheckOut.IsZero() {
		errs.Add("checkOut", "Check-out date is required")
	}
	return errs.Err()
}
