package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/middleware"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name string

	// Secure restricts the cookie to HTTPS; set in production
	Secure bool

	// TTL is the cookie lifetime, matching the token lifetime
	TTL time.Duration
}

// AuthHandler handles registration, sign-in and session endpoints.
type AuthHandler struct {
	accounts usecase.AccountUseCase
	cookie   CookieConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts usecase.AccountUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{accounts: accounts, cookie: cookie}
}

// Register handles POST /api/users/register
//
// @Summary Register a guest account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.ErrorDetail "Validation error or user already exists"
// @Router /api/users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	return h.register(c, domain.RoleUser, "User registered OK")
}

// RegisterAdmin handles POST /api/users/admin/register
//
// @Summary Register an administrator account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.ErrorDetail "Validation error or user already exists"
// @Router /api/users/admin/register [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, domain.RoleAdmin, "Admin registered successfully")
}

func (h *AuthHandler) register(c echo.Context, role domain.Role, message string) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	session, err := h.accounts.Register(c.Request().Context(), req.ToCommand(role))
	if err != nil {
		return handleError(c, err, resourceUser)
	}

	h.setSession(c, session.Token)
	return response.OKMessage(c, message)
}

// Login handles POST /api/auth/login
//
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} UserIDDTO
// @Failure 400 {object} response.ErrorDetail "Invalid Credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, false)
}

// AdminLogin handles POST /api/auth/admin/login
//
// @Summary Sign in as administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} UserIDDTO
// @Failure 400 {object} response.ErrorDetail "Invalid Credentials"
// @Failure 403 {object} response.ErrorDetail "Not an administrator"
// @Router /api/auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, true)
}

func (h *AuthHandler) login(c echo.Context, adminOnly bool) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return handleValidationError(c, err)
	}

	session, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password, adminOnly)
	if err != nil {
		return handleError(c, err, resourceUser)
	}

	h.setSession(c, session.Token)
	return response.OK(c, &UserIDDTO{UserID: session.User.ID})
}

// Me handles GET /api/users/me
//
// @Summary Current account
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} UserDTO
// @Failure 401 {object} response.ErrorDetail
// @Failure 404 {object} response.ErrorDetail
// @Router /api/users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c)
	}

	u, err := h.accounts.Me(c.Request().Context(), id.UserID)
	if err != nil {
		return handleError(c, err, resourceUser)
	}

	return response.OK(c, ToUserDTO(u))
}

// ValidateToken handles GET /api/auth/validate-token
//
// @Summary Validate the session token
// @Tags auth
// @Produce json
// @Security CookieAuth
// @Success 200 {object} UserIDDTO
// @Failure 401 {object} response.ErrorDetail
// @Router /api/auth/validate-token [get]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c)
	}
	return response.OK(c, &UserIDDTO{UserID: id.UserID})
}

// Logout handles POST /api/auth/logout
//
// @Summary Sign out
// @Tags auth
// @Success 200
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
	})
	return c.NoContent(http.StatusOK)
}

func (h *AuthHandler) setSession(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: sameSite(h.cookie.Secure),
	})
}

// sameSite allows the cookie on cross-site requests only over HTTPS.
func sameSite(secure bool) http.SameSite {
	if secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
