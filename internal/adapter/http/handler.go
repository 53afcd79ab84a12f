package http

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
)

// Resource names used in "Invalid <resource> ID format" messages.
const (
	resourceHotel   = "Hotel"
	resourceBooking = "Booking"
	resourceUser    = "User"
)

// Messages for collaborator failures. Causes are logged, never returned.
const (
	MsgUploadFailed       = "Image upload failed"
	MsgPaymentFailed      = "Payment service error"
	MsgNotificationFailed = "Failed to send email"
)

// Handlers bundles every endpoint handler for route registration.
type Handlers struct {
	Hotels        *HotelHandler
	Bookings      *BookingHandler
	Auth          *AuthHandler
	Notifications *NotificationHandler
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to HTTP responses. resource names the entity
// addressed by the request and only affects the invalid id message.
func handleError(c echo.Context, err error, resource string) error {
	switch {
	case domain.IsInvalidRequest(err):
		return handleValidationError(c, err)

	case errors.Is(err, domain.ErrInvalidID):
		return response.BadRequest(c, "Invalid "+resource+" ID format")

	case errors.Is(err, domain.ErrHotelNotFound):
		return response.NotFound(c, "Hotel not found")
	case errors.Is(err, domain.ErrBookingNotFound):
		return response.NotFound(c, "Booking not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, "User not found")
	case domain.IsNotFound(err):
		return response.NotFound(c, resource+" not found")

	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.BadRequest(c, "Invalid Credentials")
	case errors.Is(err, domain.ErrUserExists):
		return response.BadRequest(c, "User already exists")
	case errors.Is(err, domain.ErrPaymentMismatch):
		return response.BadRequest(c, "Payment intent mismatch")
	case errors.Is(err, domain.ErrPaymentNotSucceeded):
		return response.BadRequest(c, capitalize(err.Error()))

	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c)
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c)

	// Storage failures are checked before context errors: a search that times
	// out in the store is still a generic server error.
	case errors.Is(err, domain.ErrStorage):
		return response.InternalServerError(c)

	case errors.Is(err, domain.ErrUploadFailed):
		return response.BadGateway(c, MsgUploadFailed)
	case errors.Is(err, domain.ErrPaymentFailed):
		return response.BadGateway(c, MsgPaymentFailed)
	case errors.Is(err, domain.ErrNotificationFailed):
		return response.BadGateway(c, MsgNotificationFailed)

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	logger.FromContext(c.Request().Context(), logger.Global).Error().
		Err(err).
		Str("path", c.Path()).
		Msg("unhandled error")
	return response.InternalServerError(c)
}

// handleValidationError returns a 400 with per-field details when err carries them.
func handleValidationError(c echo.Context, err error) error {
	if details := domain.ValidationDetails(err); details != nil {
		return response.ValidationError(c, details)
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
