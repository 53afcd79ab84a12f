package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
)

// DefaultBodyLimit caps request bodies, leaving room for a full image gallery.
const DefaultBodyLimit = "50M"

// Options configures the global middleware stack.
type Options struct {
	// AllowOrigins lists the CORS origins allowed to send credentials.
	// When empty no CORS middleware is installed.
	AllowOrigins []string

	// BodyLimit is an echo size string such as "50M"; empty uses DefaultBodyLimit
	BodyLimit string

	Recovery RecoveryConfig
}

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. Recover - Third, catches panics and returns 500 (wraps handlers)
//  4. CORS and BodyLimit - Last, so rejected requests are still logged
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithOptions(e, log, Options{})
}

// SetupWithOptions registers the middleware stack with custom options.
func SetupWithOptions(e *echo.Echo, log zerolog.Logger, opts Options) {
	for _, mw := range Chain(log, opts) {
		e.Use(mw)
	}
}

// Chain returns the middleware stack as a slice for use with route groups.
func Chain(log zerolog.Logger, opts Options) []echo.MiddlewareFunc {
	limit := opts.BodyLimit
	if limit == "" {
		limit = DefaultBodyLimit
	}

	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, opts.Recovery),
	}
	if len(opts.AllowOrigins) > 0 {
		chain = append(chain, echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     opts.AllowOrigins,
			AllowCredentials: true,
			AllowMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodDelete, http.MethodOptions,
			},
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType,
				echo.HeaderAccept, echo.HeaderAuthorization, RequestIDHeader,
			},
			ExposeHeaders: []string{RequestIDHeader, response.HeaderTotalCount},
		}))
	}
	return append(chain, echomw.BodyLimit(limit))
}
