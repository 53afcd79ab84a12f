package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

// identityKey is the echo context key of the authenticated principal.
const identityKey = "identity"

// TokenVerifier resolves a session token to the identity it carries.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Auth returns middleware that requires a valid session token.
// The token is read from the named cookie first, then from an
// "Authorization: Bearer" header. Requests without a valid token get 401.
func Auth(verifier TokenVerifier, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFrom(c, cookieName)
			if token == "" {
				return response.Unauthorized(c)
			}

			id, err := verifier.Verify(token)
			if err != nil {
				return response.Unauthorized(c)
			}

			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// RequireAdmin returns middleware that lets only administrators through.
// It must run after Auth; a request without an identity gets 401, a non-admin 403.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := GetIdentity(c)
			if !ok {
				return response.Unauthorized(c)
			}
			if !id.IsAdmin {
				return response.Forbidden(c)
			}
			return next(c)
		}
	}
}

// GetIdentity returns the principal stored by Auth.
func GetIdentity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}

func tokenFrom(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
