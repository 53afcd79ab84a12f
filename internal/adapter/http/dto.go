package http

import (
	"encoding/json"
	"time"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

// HotelDTO is the wire form of a hotel. Clients address records by "_id".
type HotelDTO struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	HomeDescription string    `json:"homeDescription,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city"`
	State           string    `json:"state,omitempty"`
	Country         string    `json:"country"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description"`
	Type            []string  `json:"type"`
	StarRating      int       `json:"starRating"`
	Facilities      []string  `json:"facilities"`
	PricePerNight   float64   `json:"pricePerNight"`
	AdultCount      int       `json:"adultCount"`
	ChildCount      int       `json:"childCount"`
	HomeImageURL    string    `json:"homeImageUrl,omitempty"`
	ImageURLs       []string  `json:"imageUrls"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// SearchResponseDTO is the page response envelope of hotel search.
type SearchResponseDTO struct {
	Data       []HotelDTO            `json:"data"`
	Pagination domain.PaginationInfo `json:"pagination"`
}

// BookingDTO is the wire form of a booking.
type BookingDTO struct {
	ID              string    `json:"_id"`
	UserID          string    `json:"userId,omitempty"`
	HotelID         string    `json:"hotelId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Cost            float64   `json:"cost"`
	Destination     string    `json:"destination"`
	Rooms           int       `json:"rooms"`
	Guests          int       `json:"guests"`
	BookingDate     time.Time `json:"bookingDate"`
	Type            string    `json:"type"`
	PromoCode       string    `json:"promoCode,omitempty"`
	PaymentIntentID string    `json:"paymentIntentId,omitempty"`
}

// BookingListDTO is the paginated booking listing.
type BookingListDTO struct {
	TotalBookings int64        `json:"totalBookings"`
	Page          int          `json:"page"`
	Limit         int          `json:"limit"`
	Data          []BookingDTO `json:"data"`
}

// BookingCreatedDTO is returned when a booking is added directly.
type BookingCreatedDTO struct {
	Message string     `json:"message"`
	Booking BookingDTO `json:"booking"`
}

// UserDTO is the wire form of an account. The password hash is never sent.
type UserDTO struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// UserIDDTO carries the signed-in user's id.
type UserIDDTO struct {
	UserID string `json:"userId"`
}

// BookingRequest is the JSON body of a booking submission.
// Numbers may be sent as JSON numbers or numeric strings.
type BookingRequest struct {
	UserID      string `json:"userId"`
	HotelID     string `json:"hotelId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CheckIn     string `json:"checkIn" example:"2025-12-15"`
	CheckOut    string `json:"checkOut" example:"2025-12-18"`
	BookingDate string `json:"bookingDate,omitempty"`
	Destination string `json:"destination"`
	Type        string `json:"type" example:"deluxe"`
	PromoCode   string `json:"promoCode,omitempty"`

	Cost      json.Number `json:"cost,omitempty" swaggertype:"number"`
	TotalCost json.Number `json:"totalCost,omitempty" swaggertype:"number"`

	Rooms      json.Number `json:"rooms,omitempty" swaggertype:"integer"`
	Guests     json.Number `json:"guests,omitempty" swaggertype:"integer"`
	AdultCount json.Number `json:"adultCount,omitempty" swaggertype:"integer"`
	ChildCount json.Number `json:"childCount,omitempty" swaggertype:"integer"`

	// PaymentIntentID is required when confirming a paid booking
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

// PaymentIntentRequest is the body of a payment intent request.
type PaymentIntentRequest struct {
	NumberOfNights json.Number `json:"numberOfNights" swaggertype:"integer" example:"3"`
}

// RegisterRequest is the body of a sign-up.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the body of a sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
