// Package integration provides helpers and integration tests for the hotel booking backend.
// Integration tests verify that components work together correctly, including
// middleware, HTTP handlers, use cases, the hotel cache and in-memory storage.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/middleware"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/storage/memory"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/auth"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/cache"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/timeutil"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
	"github.com/hotel-booking/hotel-booking-admin-system/test/mock"
	"github.com/hotel-booking/hotel-booking-admin-system/test/testutil"
)

const (
	// CookieName is the session cookie the test server issues
	CookieName = "auth_token"

	// ImageHost prefixes every uploaded image URL
	ImageHost = "https://media.test/"

	// AdminMailbox receives the operator copy of confirmations
	AdminMailbox = "ops@example.com"
)

// Now is the fixed time the test server's clock reports.
var Now = time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC)

// Env is the collaborator set a TestServer runs on.
type Env struct {
	Hotels   *memory.HotelRepository
	Bookings *memory.BookingRepository
	Users    *memory.UserRepository
	Uploader *mock.Uploader
	Payments *mock.PaymentGateway
	Mailer   *mock.Mailer
	Clock    *timeutil.MockClock
	Config   usecase.Config

	// HotelStore wraps Hotels before the cache; tests use it to slow down or fail storage
	HotelStore func(domain.HotelRepository) domain.HotelRepository
}

// DefaultEnv returns an environment seeded with mock.SampleHotels.
func DefaultEnv() *Env {
	return &Env{
		Hotels:   memory.NewHotelRepository(mock.SampleHotels()...),
		Bookings: memory.NewBookingRepository(),
		Users:    memory.NewUserRepository(),
		Uploader: mock.NewUploader(ImageHost),
		Payments: mock.NewPaymentGateway(),
		Mailer:   mock.NewMailer(),
		Clock:    timeutil.NewMockClock(Now),
		Config: usecase.Config{
			SearchTimeout: time.Second,
			RelayTimeout:  time.Second,
			Currency:      "gbp",
			AdminEmail:    AdminMailbox,
			BrandName:     "Harbour Stays",
			Timezone:      "Europe/London",
		},
	}
}

// UseCases builds every use case over the environment.
type UseCases struct {
	Search        usecase.HotelSearchUseCase
	Admin         usecase.HotelAdminUseCase
	Bookings      usecase.BookingUseCase
	Accounts      usecase.AccountUseCase
	Notifications usecase.NotificationUseCase
	Tokens        *auth.TokenService
	Cache         *cache.HotelRepository
}

// Build wires the use cases. Single-hotel reads go through the ccache decorator
// exactly as in the server.
func (env *Env) Build(t *testing.T) *UseCases {
	t.Helper()

	var hotels domain.HotelRepository = env.Hotels
	if env.HotelStore != nil {
		hotels = env.HotelStore(hotels)
	}
	cached := cache.NewHotelRepository(hotels, cache.Config{TTL: time.Minute, MaxSize: 100}, nil)
	t.Cleanup(cached.Stop)

	tokens, err := auth.NewTokenService("integration-secret", time.Hour, env.Clock)
	require.NoError(t, err)

	cfg := env.Config
	return &UseCases{
		Search:        usecase.NewHotelSearchUseCase(cached, &cfg, nil),
		Admin:         usecase.NewHotelAdminUseCase(cached, env.Uploader, env.Clock, &cfg, nil),
		Bookings:      usecase.NewBookingUseCase(env.Bookings, cached, env.Payments, env.Clock, &cfg, nil),
		Accounts:      usecase.NewAccountUseCase(env.Users, tokens, nil),
		Notifications: usecase.NewNotificationUseCase(env.Mailer, &cfg, nil),
		Tokens:        tokens,
		Cache:         cached,
	}
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo *echo.Echo
	Env  *Env
	UC   *UseCases
	Logs *syncBuffer
}

// NewTestServer creates a test server with the full middleware chain and every route.
func NewTestServer(t *testing.T, env *Env) *TestServer {
	t.Helper()
	if env == nil {
		env = DefaultEnv()
	}
	uc := env.Build(t)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	logs := &syncBuffer{}
	log := logger.NewWithOutput(logger.Config{Level: "debug", Format: "json", ServiceName: "integration"}, logs)
	middleware.SetupWithOptions(e, log.Logger, middleware.Options{
		AllowOrigins: []string{"https://admin.example.com"},
		BodyLimit:    "2M",
	})

	httpAdapter.RegisterRoutes(e, httpAdapter.Handlers{
		Hotels:        httpAdapter.NewHotelHandler(uc.Search, uc.Admin, 1<<20),
		Bookings:      httpAdapter.NewBookingHandler(uc.Bookings),
		Auth:          httpAdapter.NewAuthHandler(uc.Accounts, httpAdapter.CookieConfig{Name: CookieName, TTL: uc.Tokens.TTL()}),
		Notifications: httpAdapter.NewNotificationHandler(uc.Notifications),
	}, uc.Accounts, CookieName)

	return &TestServer{Echo: e, Env: env, UC: uc, Logs: logs}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Cookie      *http.Cookie
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
	Cookies []*http.Cookie
}

// Do executes a test request and returns the response.
// A Body that is an io.Reader is sent as is; anything else is encoded as JSON.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader io.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case io.Reader:
		bodyReader = b
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Cookie != nil {
		httpReq.AddCookie(req.Cookie)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
		Cookies: rec.Result().Cookies(),
	}
}

// Get issues a GET, optionally as the holder of session.
func (ts *TestServer) Get(path string, session *http.Cookie) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path, Cookie: session})
}

// PostJSON issues a JSON POST, optionally as the holder of session.
func (ts *TestServer) PostJSON(path string, body interface{}, session *http.Cookie) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body, Cookie: session})
}

// SubmitForm sends an admin hotel form.
func (ts *TestServer) SubmitForm(t *testing.T, method, path string, fields url.Values, session *http.Cookie, files ...testutil.FormFile) Response {
	t.Helper()
	body, contentType := testutil.MultipartForm(t, fields, files...)
	return ts.Do(Request{Method: method, Path: path, Body: body, ContentType: contentType, Cookie: session})
}

// SearchRequest runs a hotel search with the given raw query string.
func (ts *TestServer) SearchRequest(query string) Response {
	return ts.Get("/api/hotels/search?"+query, nil)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health", nil)
}

// Register signs up an account through the API and returns its session cookie.
func (ts *TestServer) Register(t *testing.T, email string, admin bool) *http.Cookie {
	t.Helper()
	path := "/api/users/register"
	if admin {
		path = "/api/users/admin/register"
	}
	resp := ts.PostJSON(path, map[string]string{
		"firstName": "Test",
		"lastName":  "Account",
		"email":     email,
		"password":  "password1",
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	return resp.Session(t)
}

// HotelIDs returns the stored hotel ids in storage order.
func (ts *TestServer) HotelIDs(t *testing.T) []string {
	t.Helper()
	hotels, err := ts.Env.Hotels.List(context.Background(), 0)
	require.NoError(t, err)
	ids := make([]string, len(hotels))
	for i := range hotels {
		ids[i] = hotels[i].ID
	}
	return ids
}

// Session returns the session cookie set by the response.
func (r *Response) Session(t *testing.T) *http.Cookie {
	t.Helper()
	for _, c := range r.Cookies {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatalf("response set no %s cookie", CookieName)
	return nil
}

// ParseSearchResponse parses the response body as a search page.
func (r *Response) ParseSearchResponse(t *testing.T) httpAdapter.SearchResponseDTO {
	t.Helper()
	return testutil.DecodeJSON[httpAdapter.SearchResponseDTO](t, r.Body)
}

// ParseError parses the response body as an error.
func (r *Response) ParseError(t *testing.T) response.ErrorDetail {
	t.Helper()
	return testutil.DecodeJSON[response.ErrorDetail](t, r.Body)
}

// NewHotelForm returns a complete admin form for a new hotel.
func NewHotelForm(name string) url.Values {
	return url.Values{
		"name":          {name},
		"address":       {"5 Quay Street"},
		"city":          {"Bristol"},
		"state":         {"Avon"},
		"location":      {"Harbourside"},
		"country":       {"United Kingdom"},
		"description":   {"Waterfront rooms"},
		"type":          {"Boutique"},
		"starRating":    {"4"},
		"pricePerNight": {"110"},
		"facilities":    {"wifi,parking"},
		"adultCount":    {"2"},
		"childCount":    {"2"},
	}
}

// Image returns a gallery file part.
func Image(name string) testutil.FormFile {
	return testutil.FormFile{Field: httpAdapter.FieldImageFiles, Filename: name, Content: []byte("jpeg:" + name)}
}

// syncBuffer is a bytes.Buffer safe for the concurrent writes of request logging.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// slowHotels delays every call to the wrapped repository while honoring cancellation.
type slowHotels struct {
	domain.HotelRepository
	delay time.Duration
}

// SlowHotels returns an Env.HotelStore that delays every storage call by d.
func SlowHotels(d time.Duration) func(domain.HotelRepository) domain.HotelRepository {
	return func(inner domain.HotelRepository) domain.HotelRepository {
		return &slowHotels{HotelRepository: inner, delay: d}
	}
}

func (s *slowHotels) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.delay):
		return nil
	}
}

func (s *slowHotels) Count(ctx context.Context, p domain.Predicate) (int64, error) {
	if err := s.wait(ctx); err != nil {
		return 0, err
	}
	return s.HotelRepository.Count(ctx, p)
}

func (s *slowHotels) Find(ctx context.Context, p domain.Predicate, opts domain.FindOptions) ([]domain.Hotel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.HotelRepository.Find(ctx, p, opts)
}

// countingHotels counts single-hotel reads that reach storage.
type countingHotels struct {
	domain.HotelRepository
	mu    sync.Mutex
	reads int
}

func (c *countingHotels) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	c.mu.Lock()
	c.reads++
	c.mu.Unlock()
	return c.HotelRepository.GetByID(ctx, id)
}

// Reads returns the number of GetByID calls that reached storage.
func (c *countingHotels) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}
