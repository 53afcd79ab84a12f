package domain

import "time"

// Booking represents a reservation made by a guest.
type Booking struct {
	ID        string `json:"id"`
	UserID    string `json:"userId,omitempty"`
	HotelID   string `json:"hotelId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`

	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`

	// Cost is the total amount charged for the stay
	Cost float64 `json:"cost"`

	// Destination is the free-text destination shown in confirmations
	Destination string `json:"destination"`

	Rooms  int `json:"rooms"`
	Guests int `json:"guests"`

	BookingDate time.Time `json:"bookingDate"`

	// Type is the room type booked (e.g., "deluxe")
	Type      string `json:"type"`
	PromoCode string `json:"promoCode,omitempty"`

	// PaymentIntentID links the booking to the payment collaborator, when paid online
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

// Nights returns the number of nights between check-in and check-out.
func (b *Booking) Nights() int {
	d := b.CheckOut.Sub(b.CheckIn)
	if d <= 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// BookingList is the paginated booking listing envelope.
type BookingList struct {
	TotalBookings int64     `json:"totalBookings"`
	Page          int       `json:"page"`
	Limit         int       `json:"limit"`
	Data          []Booking `json:"data"`
}

// PaymentIntent is the subset of the payment collaborator's intent the system relies on.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	Metadata     map[string]string
}

// PaymentIntentStatusSucceeded is the status of a captured payment.
const PaymentIntentStatusSucceeded = "succeeded"

// Payment intent metadata keys.
const (
	MetadataHotelID = "hotelId"
	MetadataUserID  = "userId"
)

// PaymentQuote is returned to the client when a payment intent is created.
type PaymentQuote struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	TotalCost       float64 `json:"totalCost"`
}
