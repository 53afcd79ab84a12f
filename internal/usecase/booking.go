package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"time"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/timeutil"
)

// BookingUseCase defines booking management and the paid booking flow.
type BookingUseCase interface {
	// List returns one page of bookings; page and limit are clamped.
	List(ctx context.Context, page, limit int) (*domain.BookingList, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)

	// Add stores a booking submitted directly by a client or administrator.
	Add(ctx context.Context, b domain.Booking) (*domain.Booking, error)

	// CreatePaymentIntent quotes a stay and opens a payment intent for it.
	CreatePaymentIntent(ctx context.Context, hotelID, userID string, nights int) (*domain.PaymentQuote, error)

	// ConfirmBooking verifies a captured payment intent and stores the booking it paid for.
	ConfirmBooking(ctx context.Context, hotelID, userID string, cmd ConfirmBookingCommand) (*domain.Booking, error)
}

// ConfirmBookingCommand carries the guest details of a paid booking.
type ConfirmBookingCommand struct {
	PaymentIntentID string
	Booking         domain.Booking
}

type bookingUseCase struct {
	bookings     domain.BookingRepository
	hotels       domain.HotelRepository
	payments     domain.PaymentGateway
	clock        timeutil.Clock
	currency     string
	relayTimeout time.Duration
	log          *logger.Logger
}

// NewBookingUseCase creates a BookingUseCase.
func NewBookingUseCase(bookings domain.BookingRepository, hotels domain.HotelRepository, payments domain.PaymentGateway, clock timeutil.Clock, config *Config, log *logger.Logger) BookingUseCase {
	cfg := withDefaults(config)
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &bookingUseCase{
		bookings:     bookings,
		hotels:       hotels,
		payments:     payments,
		clock:        clock,
		currency:     cfg.Currency,
		relayTimeout: cfg.RelayTimeout,
		log:          log.WithComponent("bookings"),
	}
}

func (uc *bookingUseCase) List(ctx context.Context, page, limit int) (*domain.BookingList, error) {
	page, limit, skip := domain.ListWindow(page, limit)

	total, err := uc.bookings.Count(ctx)
	if err != nil {
		return nil, storageFailure(ctx, uc.log, "count bookings", err)
	}

	items, err := uc.bookings.List(ctx, skip, int64(limit))
	if err != nil {
		return nil, storageFailure(ctx, uc.log, "list bookings", err)
	}
	if items == nil {
		items = []domain.Booking{}
	}

	return &domain.BookingList{
		TotalBookings: total,
		Page:          page,
		Limit:         limit,
		Data:          items,
	}, nil
}

func (uc *bookingUseCase) Get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := uc.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailure(ctx, uc.log, "get booking", err)
	}
	return b, nil
}

func (uc *bookingUseCase) Add(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	if b.BookingDate.IsZero() {
		b.BookingDate = uc.clock.Now()
	}
	if err := validateBooking(&b, true); err != nil {
		return nil, err
	}

	b.ID = ""
	if err := uc.bookings.Create(ctx, &b); err != nil {
		return nil, storageFailure(ctx, uc.log, "create booking", err)
	}

	uc.log.Info().Str("booking_id", b.ID).Str("hotel_id", b.HotelID).Msg("booking added")
	return &b, nil
}

func (uc *bookingUseCase) CreatePaymentIntent(ctx context.Context, hotelID, userID string, nights int) (*domain.PaymentQuote, error) {
	if nights < 1 {
		return nil, domain.NewValidationError("numberOfNights", "numberOfNights must be a positive integer")
	}

	hotel, err := uc.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, storageFailure(ctx, uc.log, "get hotel", err)
	}

	totalCost := hotel.PricePerNight * float64(nights)

	relayCtx, cancel := context.WithTimeout(ctx, uc.relayTimeout)
	defer cancel()

	intent, err := uc.payments.CreateIntent(relayCtx, domain.PaymentIntentRequest{
		Amount:   toMinorUnits(totalCost),
		Currency: uc.currency,
		Metadata: map[string]string{
			domain.MetadataHotelID: hotelID,
			domain.MetadataUserID:  userID,
		},
	})
	if err != nil {
		return nil, relayFailure(ctx, uc.log, "create payment intent", err, domain.NewPaymentError)
	}
	if intent.ClientSecret == "" {
		return nil, relayFailure(ctx, uc.log, "create payment intent",
			errors.New("payment intent has no client secret"), domain.NewPaymentError)
	}

	return &domain.PaymentQuote{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		TotalCost:       totalCost,
	}, nil
}

func (uc *bookingUseCase) ConfirmBooking(ctx context.Context, hotelID, userID string, cmd ConfirmBookingCommand) (*domain.Booking, error) {
	if cmd.PaymentIntentID == "" {
		return nil, domain.NewValidationError("paymentIntentId", "paymentIntentId is required")
	}

	relayCtx, cancel := context.WithTimeout(ctx, uc.relayTimeout)
	defer cancel()

	intent, err := uc.payments.GetIntent(relayCtx, cmd.PaymentIntentID)
	if err != nil {
		return nil, relayFailure(ctx, uc.log, "get payment intent", err, domain.NewPaymentError)
	}

	if intent.Metadata[domain.MetadataHotelID] != hotelID || intent.Metadata[domain.MetadataUserID] != userID {
		uc.log.Warn().
			Str("payment_intent_id", intent.ID).
			Str("hotel_id", hotelID).
			Str("user_id", userID).
			Msg("payment intent does not belong to this booking")
		return nil, domain.ErrPaymentMismatch
	}
	if intent.Status != domain.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("%w. Status: %s", domain.ErrPaymentNotSucceeded, intent.Status)
	}

	hotel, err := uc.hotels.GetByID(ctx, hotelID)
	if err != nil {
		return nil, storageFailure(ctx, uc.log, "get hotel", err)
	}

	b := cmd.Booking
	b.ID = ""
	b.HotelID = hotelID
	b.UserID = userID
	b.PaymentIntentID = intent.ID
	if b.Rooms == 0 {
		b.Rooms = 1
	}
	if b.Cost == 0 {
		b.Cost = float64(intent.Amount) / 100
	}
	if b.Destination == "" {
		b.Destination = hotel.City + ", " + hotel.Country
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = uc.clock.Now()
	}

	if err := validateBooking(&b, false); err != nil {
		return nil, err
	}

	if err := uc.bookings.Create(ctx, &b); err != nil {
		return nil, storageFailure(ctx, uc.log, "create booking", err)
	}

	uc.log.Info().
		Str("booking_id", b.ID).
		Str("hotel_id", hotelID).
		Str("payment_intent_id", intent.ID).
		Msg("paid booking confirmed")
	return &b, nil
}

// toMinorUnits converts an amount to the currency's minor unit (pence, cents).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// validateBooking checks guest details. complete additionally requires the fields
// a directly added booking must carry, which the paid flow fills in itself.
func validateBooking(b *domain.Booking, complete bool) error {
	var errs domain.ValidationErrors

	if b.FirstName == "" {
		errs.Add("firstName", "First name is required")
	}
	if b.LastName == "" {
		errs.Add("lastName", "Last name is required")
	}
	if b.Email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(b.Email); err != nil {
		errs.Add("email", "Email must be a valid email address")
	}

	if b.CheckIn.IsZero() {
		errs.Add("checkIn", "Check-in date is required")
	}
	if b.CheckOut.IsZero() {
		errs.Add("checkOut", "Check-out date is required")
	}
	if !b.CheckIn.IsZero() && !b.CheckOut.IsZero() && !b.CheckOut.After(b.CheckIn) {
		errs.Add("checkOut", "Check-out must be after check-in")
	}

	if b.Rooms < 1 {
		errs.Add("rooms", "Rooms must be at least 1")
	}
	if b.Guests < 1 {
		errs.Add("guests", "Guests must be at least 1")
	}
	if b.Cost < 0 {
		errs.Add("cost", "Cost must not be negative")
	}

	if complete {
		if b.UserID == "" {
			errs.Add("userId", "User ID is required")
		}
		if b.HotelID == "" {
			errs.Add("hotelId", "Hotel ID is required")
		}
		if b.Destination == "" {
			errs.Add("destination", "Destination is required")
		}
		if b.Type == "" {
			errs.Add("type", "Room type is required")
		}
	}

	return errs.Err()
}
