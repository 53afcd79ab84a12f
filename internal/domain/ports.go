package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock_ports.go -package=domain . HotelRepository,PaymentGateway

// HotelRepository is the storage collaborator for hotels.
// Implementations return ErrInvalidID for unaddressable ids and ErrHotelNotFound for missing hotels;
// any other error is treated as a storage failure by callers.
type HotelRepository interface {
	// Count returns the number of hotels matching the predicate.
	Count(ctx context.Context, p Predicate) (int64, error)

	// Find returns the window of matching hotels described by opts.
	Find(ctx context.Context, p Predicate, opts FindOptions) ([]Hotel, error)

	// List returns up to limit hotels in storage order; limit 0 means no limit.
	List(ctx context.Context, limit int64) ([]Hotel, error)

	// GetByID returns a single hotel.
	GetByID(ctx context.Context, id string) (*Hotel, error)

	// Create stores a new hotel and assigns its ID.
	Create(ctx context.Context, h *Hotel) error

	// Update applies a partial update and returns the updated hotel.
	Update(ctx context.Context, id string, u HotelUpdate, lastUpdated time.Time) (*Hotel, error)

	// Delete removes a hotel.
	Delete(ctx context.Context, id string) error
}

// BookingRepository is the storage collaborator for bookings.
type BookingRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, skip, limit int64) ([]Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Create(ctx context.Context, b *Booking) error
}

// UserRepository is the storage collaborator for accounts.
type UserRepository interface {
	// GetByEmail returns ErrUserNotFound when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	// Create returns ErrUserExists when the email is taken.
	Create(ctx context.Context, u *User) error
}

// Image is a binary image payload received from an admin form.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageUploader is the media collaborator: it stores an image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, img Image) (string, error)
}

// PaymentIntentRequest describes an intent to create with the payment collaborator.
type PaymentIntentRequest struct {
	// Amount is in the currency's minor unit
	Amount   int64
	Currency string
	Metadata map[string]string
}

// PaymentGateway is the payment collaborator.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// Email is a plain-text message for the mail collaborator.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Mailer is the email collaborator.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}
