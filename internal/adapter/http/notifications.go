package http

import (
	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
)

// NotificationHandler handles booking confirmation emails.
type NotificationHandler struct {
	useCase usecase.NotificationUseCase
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(uc usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{useCase: uc}
}

// SendEmail handles POST /api/send-email
//
// @Summary Send booking confirmation emails
// @Description Sends the confirmation to the admin mailbox, then to the guest. Only the admin send must succeed.
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking to confirm"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Failed to send email"
// @Router /api/send-email [post]
func (h *NotificationHandler) SendEmail(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	b, err := req.ToDomain()
	if err != nil {
		return handleValidationError(c, err)
	}

	if err := h.useCase.SendBookingConfirmation(c.Request().Context(), b); err != nil {
		return handleError(c, err, resourceBooking)
	}

	return response.OKMessage(c, "Email sent")
}
