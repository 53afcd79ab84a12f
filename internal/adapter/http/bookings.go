package http

import (
	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/middleware"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
)

// BookingHandler handles booking management and the paid booking flow.
type BookingHandler struct {
	useCase usecase.BookingUseCase
}

// NewBookingHandler creates a new BookingHandler with the given use case.
func NewBookingHandler(uc usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{useCase: uc}
}

// List handles GET /api/bookings
//
// @Summary List bookings
// @Description Non-positive page becomes 1; non-positive limit becomes 10; limit is capped at 100.
// @Tags bookings
// @Produce json
// @Security CookieAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} BookingListDTO
// @Failure 401 {object} response.ErrorDetail
// @Failure 403 {object} response.ErrorDetail
// @Failure 500 {object} response.ErrorDetail
// @Router /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	page := intOr(c.QueryParam(ParamPage), 0)
	limit := intOr(c.QueryParam(ParamLimit), 0)

	list, err := h.useCase.List(c.Request().Context(), page, limit)
	if err != nil {
		return handleError(c, err, resourceBooking)
	}

	return response.Paged(c, list.TotalBookings, ToBookingListDTO(list))
}

// Get handles GET /api/bookings/:id
//
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Security CookieAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} BookingDTO
// @Failure 400 {object} response.ErrorDetail "Invalid ID"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err, resourceBooking)
	}

	return response.OK(c, ToBookingDTO(b))
}

// Add handles POST /api/bookings
//
// @Summary Add a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking"
// @Success 201 {object} BookingCreatedDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail
// @Router /api/bookings [post]
func (h *BookingHandler) Add(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	b, err := req.ToDomain()
	if err != nil {
		return handleValidationError(c, err)
	}

	created, err := h.useCase.Add(c.Request().Context(), b)
	if err != nil {
		return handleError(c, err, resourceBooking)
	}

	return response.Created(c, &BookingCreatedDTO{
		Message: "Booking successful",
		Booking: ToBookingDTO(created),
	})
}

// CreatePaymentIntent handles POST /api/hotels/:id/bookings/payment-intent
//
// @Summary Open a payment intent for a stay
// @Description totalCost is pricePerNight times numberOfNights; the intent amount is in minor units.
// @Tags bookings
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Hotel ID"
// @Param request body PaymentIntentRequest true "Stay length"
// @Success 200 {object} domain.PaymentQuote
// @Failure 400 {object} response.ErrorDetail
// @Failure 401 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Failure 502 {object} response.ErrorDetail "Payment service error"
// @Router /api/hotels/{id}/bookings/payment-intent [post]
func (h *BookingHandler) CreatePaymentIntent(c echo.Context) error {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	nights, err := req.Nights()
	if err != nil {
		return handleValidationError(c, err)
	}

	quote, err := h.useCase.CreatePaymentIntent(c.Request().Context(), c.Param("id"), id.UserID, nights)
	if err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.OK(c, quote)
}

// Confirm handles POST /api/hotels/:id/bookings
//
// @Summary Confirm a paid booking
// @Description Verifies that the payment intent belongs to this hotel and user and has succeeded, then stores the booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param id path string true "Hotel ID"
// @Param request body BookingRequest true "Guest details and paymentIntentId"
// @Success 200 {object} BookingCreatedDTO
// @Failure 400 {object} response.ErrorDetail "Mismatched or unpaid intent"
// @Failure 401 {object} response.ErrorDetail
// @Failure 502 {object} response.ErrorDetail
// @Router /api/hotels/{id}/bookings [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	cmd, err := req.ToConfirmCommand()
	if err != nil {
		return handleValidationError(c, err)
	}

	b, err := h.useCase.ConfirmBooking(c.Request().Context(), c.Param("id"), id.UserID, cmd)
	if err != nil {
		return handleError(c, err, resourceHotel)
	}

	return response.OK(c, &BookingCreatedDTO{
		Message: "Booking confirmed",
		Booking: ToBookingDTO(b),
	})
}
