// Package main is the entry point for the hotel booking admin backend.
//
//	@title						Hotel Booking API
//	@version					1.0.0
//	@description				Hotel catalogue search, hotel administration, bookings with card payments, accounts and booking confirmation emails.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/hotel-booking/hotel-booking-admin-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						auth_token
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/hotel-booking/hotel-booking-admin-system/docs"

	// Application layers
	hotelhttp "github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/middleware"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/mail/smtp"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/media/cloudinary"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/payment/stripe"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/storage/memory"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/storage/mongo"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/auth"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/config"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/cache"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/keepalive"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

// storage is the set of repositories the use cases run on.
type storage struct {
	hotels   domain.HotelRepository
	bookings domain.BookingRepository
	users    domain.UserRepository
	close    func(ctx context.Context) error
}

// relays are the outbound collaborators.
type relays struct {
	uploader domain.ImageUploader
	payments domain.PaymentGateway
	mailer   domain.Mailer
}

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLog := setupLogger(cfg)

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Configuration loaded")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := setupStorage(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to open storage")
	}

	hotels := cache.NewHotelRepository(store.hotels, cache.Config{
		TTL:     cfg.Cache.HotelTTL,
		MaxSize: cfg.Cache.MaxSize,
	}, appLog)
	defer hotels.Stop()

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to create token service")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	opts := middleware.Options{
		Recovery: middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()},
	}
	if cfg.Server.FrontendURL != "" {
		opts.AllowOrigins = []string{cfg.Server.FrontendURL}
	}
	middleware.SetupWithOptions(e, appLog.Logger, opts)

	// Setup routes
	setupRoutes(e, cfg, appLog, hotels, store, setupRelays(cfg, appLog), tokens)

	if cfg.KeepAlive.Enabled {
		pinger := keepalive.New(keepalive.Config{
			BaseURL:      cfg.Server.BackendURL,
			InitialDelay: cfg.KeepAlive.InitialDelay,
			Interval:     cfg.KeepAlive.Interval,
		}, appLog)
		go pinger.Run(ctx)
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, stop, store, appLog)
}

// setupLogger builds the application logger and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	lc := logger.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.Format = cfg.Logging.Format
	lc.EnableCaller = cfg.IsDevelopment()

	l := logger.New(lc)
	logger.SetGlobal(l)
	log.Logger = l.Logger
	return l
}

// setupStorage opens the configured storage driver.
func setupStorage(ctx context.Context, cfg *config.Config, appLog *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		appLog.Warn().Msg("Using in-memory storage, data is lost on restart")
		return &storage{
			hotels:   memory.NewHotelRepository(),
			bookings: memory.NewBookingRepository(),
			users:    memory.NewUserRepository(),
			close:    func(context.Context) error { return nil },
		}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	s, err := mongo.Connect(connectCtx, mongo.Options{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	}, appLog.WithComponent("mongo"))
	if err != nil {
		return nil, err
	}
	if err := s.EnsureIndexes(connectCtx); err != nil {
		_ = s.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return &storage{
		hotels:   s.Hotels(),
		bookings: s.Bookings(),
		users:    s.Users(),
		close:    s.Disconnect,
	}, nil
}

// setupRelays connects the media, payment and mail relays. A relay without
// credentials is replaced by one that fails every call, so the endpoints that
// need it answer 502 while the rest of the API keeps working.
func setupRelays(cfg *config.Config, appLog *logger.Logger) relays {
	r := relays{
		uploader: cloudinary.Unavailable{},
		payments: stripe.Unavailable{},
		mailer:   smtp.Unavailable{},
	}

	if cfg.Cloudinary.Enabled() {
		up, err := cloudinary.New(cloudinary.Credentials{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
		}, appLog)
		if err != nil {
			appLog.Error().Err(err).Msg("Cloudinary disabled")
		} else {
			r.uploader = up
		}
	} else {
		appLog.Warn().Msg("Cloudinary credentials not set, image uploads are disabled")
	}

	if cfg.Stripe.Enabled() {
		r.payments = stripe.New(cfg.Stripe.APIKey, appLog)
	} else {
		appLog.Warn().Msg("STRIPE_API_KEY not set, payments are disabled")
	}

	if cfg.SMTP.Enabled() {
		m, err := smtp.New(smtp.Settings{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			FromName: cfg.SMTP.BrandName,
			Timeout:  cfg.Timeouts.Relay,
		}, appLog)
		if err != nil {
			appLog.Error().Err(err).Msg("SMTP relay disabled")
		} else {
			r.mailer = m
		}
	} else {
		appLog.Warn().Msg("SMTP relay not configured, confirmation emails are disabled")
	}

	return r
}

// setupRoutes builds the use cases and handlers and configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, appLog *logger.Logger, hotels domain.HotelRepository, store *storage, r relays, tokens *auth.TokenService) {
	// Initialize use cases with config
	ucConfig := &usecase.Config{
		SearchTimeout: cfg.Timeouts.Search,
		RelayTimeout:  cfg.Timeouts.Relay,
		Currency:      cfg.Stripe.Currency,
		AdminEmail:    cfg.SMTP.AdminEmail,
		BrandName:     cfg.SMTP.BrandName,
		Timezone:      cfg.App.Timezone,
	}
	accounts := usecase.NewAccountUseCase(store.users, tokens, appLog)

	// Initialize handlers
	handlers := hotelhttp.Handlers{
		Hotels: hotelhttp.NewHotelHandler(
			usecase.NewHotelSearchUseCase(hotels, ucConfig, appLog),
			usecase.NewHotelAdminUseCase(hotels, r.uploader, nil, ucConfig, appLog),
			cfg.Server.UploadMaxBytes,
		),
		Bookings: hotelhttp.NewBookingHandler(
			usecase.NewBookingUseCase(store.bookings, hotels, r.payments, nil, ucConfig, appLog),
		),
		Auth: hotelhttp.NewAuthHandler(accounts, hotelhttp.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.IsProduction(),
			TTL:    tokens.TTL(),
		}),
		Notifications: hotelhttp.NewNotificationHandler(
			usecase.NewNotificationUseCase(r.mailer, ucConfig, appLog),
		),
	}

	hotelhttp.RegisterRoutes(e, handlers, accounts, cfg.Auth.CookieName)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Single-page admin app; unknown non-API paths fall back to index.html
	if cfg.Server.StaticDir != "" {
		e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
			Root:  cfg.Server.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				p := c.Request().URL.Path
				return strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/swagger/")
			},
		}))
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, stopBackground context.CancelFunc, store *storage, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}
	if err := store.close(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error closing storage")
	}

	appLog.Info().Msg("Server stopped")
}
