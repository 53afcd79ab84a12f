package http

import (
	"github.com/labstack/echo/v4"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/middleware"
)

// RegisterRoutes registers every API route under /api plus the health check.
// verifier authenticates sessions read from the cookieName cookie or a Bearer header.
func RegisterRoutes(e *echo.Echo, h Handlers, verifier middleware.TokenVerifier, cookieName string) {
	// Health check endpoint (no prefix)
	e.GET("/health", Health)

	authenticated := middleware.Auth(verifier, cookieName)
	adminOnly := []echo.MiddlewareFunc{authenticated, middleware.RequireAdmin()}

	api := e.Group("/api")

	hotels := api.Group("/hotels")
	hotels.GET("/search", h.Hotels.Search)
	hotels.GET("", h.Hotels.List)
	hotels.GET("/:id", h.Hotels.Get)
	hotels.POST("", h.Hotels.Create, adminOnly...)
	hotels.PUT("/:id", h.Hotels.Update, adminOnly...)
	hotels.DELETE("/:id", h.Hotels.Delete, adminOnly...)
	hotels.POST("/:id/bookings/payment-intent", h.Bookings.CreatePaymentIntent, authenticated)
	hotels.POST("/:id/bookings", h.Bookings.Confirm, authenticated)

	bookings := api.Group("/bookings")
	bookings.GET("", h.Bookings.List, adminOnly...)
	bookings.GET("/:id", h.Bookings.Get, adminOnly...)
	bookings.POST("", h.Bookings.Add)

	users := api.Group("/users")
	users.POST("/register", h.Auth.Register)
	users.POST("/admin/register", h.Auth.RegisterAdmin)
	users.GET("/me", h.Auth.Me, authenticated)

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/admin/login", h.Auth.AdminLogin)
	auth.GET("/validate-token", h.Auth.ValidateToken, authenticated)
	auth.POST("/logout", h.Auth.Logout)

	api.POST("/send-email", h.Notifications.SendEmail)
}
