package http

import (
	"encoding/json"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/auth"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/timeutil"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
)

// ToHotelDTO converts a domain hotel to its wire form.
func ToHotelDTO(h *domain.Hotel) HotelDTO {
	return HotelDTO{
		ID:              h.ID,
		Name:            h.Name,
		HomeDescription: h.HomeDescription,
		Address:         h.Address,
		City:            h.City,
		State:           h.State,
		Country:         h.Country,
		Location:        h.Location,
		Description:     h.Description,
		Type:            nonNil(h.Type),
		StarRating:      h.StarRating,
		Facilities:      nonNil(h.Facilities),
		PricePerNight:   h.PricePerNight,
		AdultCount:      h.AdultCount,
		ChildCount:      h.ChildCount,
		HomeImageURL:    h.HomeImageURL,
		ImageURLs:       nonNil(h.ImageURLs),
		LastUpdated:     h.LastUpdated,
	}
}

// ToHotelDTOs converts a slice of hotels, never returning nil.
func ToHotelDTOs(hotels []domain.Hotel) []HotelDTO {
	out := make([]HotelDTO, len(hotels))
	for i := range hotels {
		out[i] = ToHotelDTO(&hotels[i])
	}
	return out
}

// ToSearchResponseDTO converts a search page to its wire form.
func ToSearchResponseDTO(resp *domain.SearchResponse) SearchResponseDTO {
	return SearchResponseDTO{
		Data:       ToHotelDTOs(resp.Data),
		Pagination: resp.Pagination,
	}
}

// ToBookingDTO converts a domain booking to its wire form.
func ToBookingDTO(b *domain.Booking) BookingDTO {
	return BookingDTO{
		ID:              b.ID,
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Cost:            b.Cost,
		Destination:     b.Destination,
		Rooms:           b.Rooms,
		Guests:          b.Guests,
		BookingDate:     b.BookingDate,
		Type:            b.Type,
		PromoCode:       b.PromoCode,
		PaymentIntentID: b.PaymentIntentID,
	}
}

// ToBookingListDTO converts a booking page to its wire form.
func ToBookingListDTO(list *domain.BookingList) BookingListDTO {
	data := make([]BookingDTO, len(list.Data))
	for i := range list.Data {
		data[i] = ToBookingDTO(&list.Data[i])
	}
	return BookingListDTO{
		TotalBookings: list.TotalBookings,
		Page:          list.Page,
		Limit:         list.Limit,
		Data:          data,
	}
}

// ToUserDTO converts an account to its wire form.
func ToUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}

// ToDomain converts the request to a booking. Malformed dates and numbers are
// reported as validation errors; required-field checks are left to the use case.
// totalCost is accepted as an alias of cost and adultCount+childCount stands in
// for a missing guests count.
func (r *BookingRequest) ToDomain() (domain.Booking, error) {
	var errs domain.ValidationErrors

	b := domain.Booking{
		UserID:          strings.TrimSpace(r.UserID),
		HotelID:         strings.TrimSpace(r.HotelID),
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		Destination:     strings.TrimSpace(r.Destination),
		Type:            strings.TrimSpace(r.Type),
		PromoCode:       strings.TrimSpace(r.PromoCode),
		PaymentIntentID: strings.TrimSpace(r.PaymentIntentID),
	}

	b.CheckIn = optionalDate(r.CheckIn, "checkIn", "Check-in date must be a valid date", &errs)
	b.CheckOut = optionalDate(r.CheckOut, "checkOut", "Check-out date must be a valid date", &errs)
	b.BookingDate = optionalDate(r.BookingDate, "bookingDate", "Booking date must be a valid date", &errs)

	cost := r.Cost
	if cost == "" {
		cost = r.TotalCost
	}
	if cost != "" {
		v, err := cost.Float64()
		if err != nil {
			errs.Add("cost", "Cost must be a number")
		}
		b.Cost = v
	}

	b.Rooms = optionalInt(r.Rooms, "rooms", "Rooms must be at least 1", &errs)
	b.Guests = optionalInt(r.Guests, "guests", "Guests must be at least 1", &errs)
	adults := optionalInt(r.AdultCount, "adultCount", "Adult count must be an integer", &errs)
	children := optionalInt(r.ChildCount, "childCount", "Child count must be an integer", &errs)
	if b.Guests == 0 {
		b.Guests = adults + children
	}

	return b, errs.Err()
}

// ToConfirmCommand converts the request to a paid booking confirmation.
func (r *BookingRequest) ToConfirmCommand() (usecase.ConfirmBookingCommand, error) {
	b, err := r.ToDomain()
	if err != nil {
		return usecase.ConfirmBookingCommand{}, err
	}
	return usecase.ConfirmBookingCommand{
		PaymentIntentID: b.PaymentIntentID,
		Booking:         b,
	}, nil
}

// Nights returns the requested number of nights.
func (r *PaymentIntentRequest) Nights() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(r.NumberOfNights.String()))
	if err != nil || n < 1 {
		return 0, domain.NewValidationError("numberOfNights", "numberOfNights must be a positive integer")
	}
	return n, nil
}

// ToCommand converts the request to a registration for role.
func (r *RegisterRequest) ToCommand(role domain.Role) usecase.RegisterCommand {
	return usecase.RegisterCommand{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     r.Email,
		Password:  r.Password,
		Role:      role,
	}
}

// Validate checks the shape of a sign-in before credentials are looked up.
func (r *LoginRequest) Validate() error {
	var errs domain.ValidationErrors

	if strings.TrimSpace(r.Email) == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		errs.Add("email", "Email is required")
	}
	if len(r.Password) < auth.MinPasswordLength {
		errs.Add("password", "Password with 6 or more characters required")
	}

	return errs.Err()
}

func optionalDate(raw, field, message string, errs *domain.ValidationErrors) time.Time {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}
	}
	t, err := timeutil.ParseISODate(raw)
	if err != nil {
		errs.Add(field, message)
		return time.Time{}
	}
	return t
}

func optionalInt(raw json.Number, field, message string, errs *domain.ValidationErrors) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw.String()))
	if err != nil {
		errs.Add(field, message)
		return 0
	}
	return n
}

func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
