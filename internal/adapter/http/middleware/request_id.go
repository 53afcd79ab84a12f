// Package middleware provides HTTP middleware for cross-cutting concerns:
// request correlation, access logging, panic recovery and session authentication.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader carries the correlation ID between the booking frontend,
	// the admin dashboard and this API.
	RequestIDHeader = "X-Request-ID"

	// MaxRequestIDLength bounds client-supplied IDs before they reach access logs.
	MaxRequestIDLength = 64

	requestIDKey = "request_id"
)

// RequestID returns middleware that assigns every request a correlation ID.
// A client-supplied X-Request-ID is kept when it is short and made only of
// letters, digits and . _ : - characters; anything else is replaced by a new
// UUID so raw header text never lands in the logs. The ID is stored in the
// echo context and echoed in the response headers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if !validRequestID(reqID) {
				reqID = uuid.New().String()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch b := id[i]; {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		case b == '.', b == '_', b == ':', b == '-':
		default:
			return false
		}
	}
	return true
}
