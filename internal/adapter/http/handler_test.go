package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/http/response"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/adapter/storage/memory"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/auth"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
	"github.com/hotel-booking/hotel-booking-admin-system/test/mock"
)

const (
	testCookie    = "auth_token"
	testImageHost = "https://media.test/"
	testAdminMail = "ops@example.com"
)

// testServer wires the full handler stack over in-memory storage and relay doubles.
type testServer struct {
	e        *echo.Echo
	hotels   *memory.HotelRepository
	bookings *memory.BookingRepository
	users    *memory.UserRepository
	uploader *mock.Uploader
	payments *mock.PaymentGateway
	mailer   *mock.Mailer
	tokens   *auth.TokenService
	search   usecase.HotelSearchUseCase
}

type serverOption func(*testServer)

func withSearch(uc usecase.HotelSearchUseCase) serverOption {
	return func(s *testServer) { s.search = uc }
}

func withUploader(u *mock.Uploader) serverOption {
	return func(s *testServer) { s.uploader = u }
}

func withMailer(m *mock.Mailer) serverOption {
	return func(s *testServer) { s.mailer = m }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	tokens, err := auth.NewTokenService("handler-test-secret", time.Hour, nil)
	require.NoError(t, err)

	s := &testServer{
		hotels:   memory.NewHotelRepository(mock.SampleHotels()...),
		bookings: memory.NewBookingRepository(),
		users:    memory.NewUserRepository(),
		uploader: mock.NewUploader(testImageHost),
		payments: mock.NewPaymentGateway(),
		mailer:   mock.NewMailer(),
		tokens:   tokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.e = echo.New()
	s.register()
	return s
}

func (s *testServer) register() {
	cfg := &usecase.Config{AdminEmail: testAdminMail, BrandName: "Harbour Stays"}
	search := s.search
	if search == nil {
		search = usecase.NewHotelSearchUseCase(s.hotels, cfg, nil)
	}
	accounts := usecase.NewAccountUseCase(s.users, s.tokens, nil)

	RegisterRoutes(s.e, Handlers{
		Hotels:        NewHotelHandler(search, usecase.NewHotelAdminUseCase(s.hotels, s.uploader, nil, cfg, nil), 1<<20),
		Bookings:      NewBookingHandler(usecase.NewBookingUseCase(s.bookings, s.hotels, s.payments, nil, cfg, nil)),
		Auth:          NewAuthHandler(accounts, CookieConfig{Name: testCookie, TTL: time.Hour}),
		Notifications: NewNotificationHandler(usecase.NewNotificationUseCase(s.mailer, cfg, nil)),
	}, accounts, testCookie)
}

// token stores an account with role and returns a session token for it.
func (s *testServer) token(t *testing.T, email string, role domain.Role) (string, string) {
	t.Helper()
	u := &domain.User{FirstName: "Test", LastName: "User", Email: email, Role: role}
	require.NoError(t, s.users.Create(context.Background(), u))
	tok, err := s.tokens.Issue(u)
	require.NoError(t, err)
	return tok, u.ID
}

func (s *testServer) hotelIDs(t *testing.T) []string {
	t.Helper()
	hotels, err := s.hotels.List(context.Background(), 0)
	require.NoError(t, err)
	ids := make([]string, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
	}
	return ids
}

type requestOption func(*http.Request)

func bearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) }
}

// makeRequest is a helper to make JSON test requests.
func (s *testServer) makeRequest(method, path string, body interface{}, opts ...requestOption) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// makeForm sends a multipart form with text fields and named files.
func (s *testServer) makeForm(method, path string, fields url.Values, files map[string][]string, opts ...requestOption) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range fields {
		for _, v := range vs {
			_ = w.WriteField(k, v)
		}
	}
	for field, names := range files {
		for _, name := range names {
			part, _ := w.CreateFormFile(field, name)
			_, _ = part.Write([]byte("image bytes of " + name))
		}
	}
	_ = w.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func newHotelFields() url.Values {
	return url.Values{
		"name":          {"Harbour Lights"},
		"address":       {"5 Quay Street"},
		"city":          {"Bristol"},
		"state":         {"Avon"},
		"location":      {"Harbourside"},
		"country":       {"United Kingdom"},
		"description":   {"Waterfront rooms"},
		"type":          {"Boutique, Family"},
		"starRating":    {"4"},
		"pricePerNight": {"110"},
		"facilities":    {"wifi,parking"},
		"adultCount":    {"2"},
		"childCount":    {"2"},
	}
}

func bookingBody(hotelID, userID string) map[string]interface{} {
	return map[string]interface{}{
		"userId":      userID,
		"hotelId":     hotelID,
		"firstName":   "Ann",
		"lastName":    "Lee",
		"email":       "ann@example.com",
		"checkIn":     "2025-09-01",
		"checkOut":    "2025-09-04",
		"cost":        360,
		"destination": "London, United Kingdom",
		"rooms":       1,
		"guests":      2,
		"type":        "deluxe",
	}
}

type stubSearch struct {
	err error
}

func (s stubSearch) Search(context.Context, domain.SearchQuery) (*domain.SearchResponse, error) {
	return nil, s.err
}

// =====================================================
// Health and Search
// =====================================================

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[response.HealthResponse](t, rec).Status)
}

func TestSearch_Success(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodGet, "/api/hotels/search?destination=london&sortOption=pricePerNightAsc", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[SearchResponseDTO](t, rec)
	assert.Equal(t, domain.PaginationInfo{Total: 2, Page: 1, Pages: 1}, body.Pagination)
	assert.Equal(t, "2", rec.Header().Get(response.HeaderTotalCount))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Camden Budget", body.Data[0].Name)
	assert.Equal(t, "Thames View", body.Data[1].Name)
	assert.NotEmpty(t, body.Data[0].ID)
	assert.Contains(t, rec.Body.String(), `"_id"`)
}

func TestSearch_ListParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{"repeated facilities require all", "facilities=wifi&facilities=pool", []string{"Thames View", "Paris Grand"}},
		{"comma facilities require all", "facilities=wifi,%20pool", []string{"Thames View", "Paris Grand"}},
		{"types match any", "types=Budget,Family", []string{"Camden Budget", "Lyon Family Resort"}},
		{"stars match any", "stars=5&stars=2", []string{"Paris Grand", "Camden Budget"}},
		{"max price inclusive", "maxPrice=120", []string{"Thames View", "Camden Budget"}},
		{"capacity minimums", "adultCount=4&childCount=3", []string{"Lyon Family Resort"}},
		{"no filters", "", []string{"Thames View", "Paris Grand", "Camden Budget", "Lyon Family Resort"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.makeRequest(http.MethodGet, "/api/hotels/search?"+tt.query, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			body := decode[SearchResponseDTO](t, rec)
			names := make([]string, len(body.Data))
			for i, h := range body.Data {
				names[i] = h.Name
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, int64(len(tt.wantNames)), body.Pagination.Total)
		})
	}
}

func TestSearch_NoMatchesIsNotAnError(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodGet, "/api/hotels/search?stars=3,4&maxPrice=50", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"pagination":{"total":0,"page":1,"pages":0}}`, rec.Body.String())
}

func TestSearch_PageBeyondOffsetRange(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodGet, "/api/hotels/search?page=1844674407370955163", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"pagination":{"total":4,"page":1844674407370955163,"pages":1}}`, rec.Body.String())
	assert.Equal(t, "4", rec.Header().Get(response.HeaderTotalCount))

	rec = s.makeRequest(http.MethodGet, "/api/hotels/search?destination=london", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "server keeps serving after an out-of-range page")
}

func TestSearch_RejectsNonFinitePrice(t *testing.T) {
	for _, raw := range []string{"NaN", "Inf", "-Inf", "-5"} {
		t.Run(raw, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.makeRequest(http.MethodGet, "/api/hotels/search?maxPrice="+url.QueryEscape(raw), nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[response.ErrorDetail](t, rec)
			assert.Equal(t, response.CodeValidationError, body.Code)
			assert.Contains(t, body.Details, ParamMaxPrice)
		})
	}
}

func TestBookings_ListPageBeyondOffsetRange(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)
	rec := s.makeRequest(http.MethodPost, "/api/bookings", bookingBody(s.hotelIDs(t)[0], "65a1b2c3d4e5f60718290001"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.makeRequest(http.MethodGet, "/api/bookings?page=1844674407370955163&limit=100", nil, bearer(admin))

	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[BookingListDTO](t, rec)
	assert.Equal(t, int64(1), list.TotalBookings)
	assert.Empty(t, list.Data)
}

func TestSearch_ValidationError(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodGet, "/api/hotels/search?adultCount=two&stars=4,x", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[response.ErrorDetail](t, rec)
	assert.Equal(t, response.CodeValidationError, body.Code)
	assert.Contains(t, body.Details, ParamAdultCount)
	assert.Contains(t, body.Details, ParamStars)
}

func TestSearch_StorageFailureIsGeneric(t *testing.T) {
	cause := errors.New("connection refused by mongo-0.internal")
	s := newTestServer(t, withSearch(stubSearch{err: domain.NewStorageError(cause)}))

	rec := s.makeRequest(http.MethodGet, "/api/hotels/search", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[response.ErrorDetail](t, rec)
	assert.Equal(t, response.MsgInternalError, body.Message)
	assert.NotContains(t, rec.Body.String(), "mongo-0")
}

func TestSearch_StorageTimeoutIsGeneric(t *testing.T) {
	s := newTestServer(t, withSearch(stubSearch{err: domain.NewStorageError(context.DeadlineExceeded)}))

	rec := s.makeRequest(http.MethodGet, "/api/hotels/search", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// =====================================================
// Hotel administration
// =====================================================

func TestHotels_List(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query string
		want  int
	}{
		{"", 4},
		{"?limit=2", 2},
		{"?limit=0", 4},
		{"?limit=-3", 4},
		{"?limit=abc", 4},
	}
	for _, tt := range tests {
		rec := s.makeRequest(http.MethodGet, "/api/hotels"+tt.query, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]HotelDTO](t, rec), tt.want, "query %q", tt.query)
	}
}

func TestHotels_Get(t *testing.T) {
	s := newTestServer(t)
	id := s.hotelIDs(t)[1]

	rec := s.makeRequest(http.MethodGet, "/api/hotels/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Paris Grand", decode[HotelDTO](t, rec).Name)

	rec = s.makeRequest(http.MethodGet, "/api/hotels/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Hotel ID format", decode[response.ErrorDetail](t, rec).Message)

	rec = s.makeRequest(http.MethodGet, "/api/hotels/65a1b2c3d4e5f60718299999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Hotel not found", decode[response.ErrorDetail](t, rec).Message)
}

func TestHotels_CreateRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	guest, _ := s.token(t, "guest@example.com", domain.RoleUser)

	rec := s.makeForm(http.MethodPost, "/api/hotels", newHotelFields(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.makeForm(http.MethodPost, "/api/hotels", newHotelFields(), nil, bearer(guest))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, response.MsgForbidden, decode[response.ErrorDetail](t, rec).Message)
}

func TestHotels_Create(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)

	rec := s.makeForm(http.MethodPost, "/api/hotels", newHotelFields(), map[string][]string{
		FieldImageFiles:   {"front.jpg", "lobby.jpg"},
		FieldHomeImageURL: {"cover.jpg"},
	}, bearer(admin))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	h := decode[HotelDTO](t, rec)
	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "Harbour Lights", h.Name)
	assert.Equal(t, []string{"Boutique", "Family"}, h.Type)
	assert.Equal(t, []string{"wifi", "parking"}, h.Facilities)
	assert.Equal(t, 4, h.StarRating)
	assert.Equal(t, 110.0, h.PricePerNight)
	assert.Equal(t, []string{testImageHost + "front.jpg", testImageHost + "lobby.jpg"}, h.ImageURLs)
	assert.Equal(t, testImageHost+"cover.jpg", h.HomeImageURL)
	assert.False(t, h.LastUpdated.IsZero())

	stored, err := s.hotels.GetByID(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bristol", stored.City)
}

func TestHotels_CreateAcceptsRatingAlias(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)

	fields := newHotelFields()
	fields.Del("starRating")
	fields.Set("rating", "3")

	rec := s.makeForm(http.MethodPost, "/api/hotels", fields, nil, bearer(admin))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 3, decode[HotelDTO](t, rec).StarRating)
}

func TestHotels_CreateValidation(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)

	fields := newHotelFields()
	fields.Del("name")
	fields.Set("pricePerNight", "cheap")

	rec := s.makeForm(http.MethodPost, "/api/hotels", fields, nil, bearer(admin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[response.ErrorDetail](t, rec)
	assert.Equal(t, response.CodeValidationError, body.Code)
	assert.Contains(t, body.Details, "pricePerNight")

	fields = newHotelFields()
	fields.Del("name")
	rec = s.makeForm(http.MethodPost, "/api/hotels", fields, nil, bearer(admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[response.ErrorDetail](t, rec).Details, "name")
	assert.Empty(t, s.uploader.Uploaded(), "nothing is uploaded for an invalid hotel")
}

func TestHotels_CreateTooManyImages(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)

	files := []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg", "7.jpg"}
	rec := s.makeForm(http.MethodPost, "/api/hotels", newHotelFields(),
		map[string][]string{FieldImageFiles: files}, bearer(admin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[response.ErrorDetail](t, rec).Details, FieldImageFiles)
	assert.Empty(t, s.uploader.Uploaded())
}

func TestHotels_CreateUploadFailure(t *testing.T) {
	s := newTestServer(t, withUploader(mock.NewUploader(testImageHost).WithError(errors.New("cloud down"))))
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)

	rec := s.makeForm(http.MethodPost, "/api/hotels", newHotelFields(),
		map[string][]string{FieldImageFiles: {"front.jpg"}}, bearer(admin))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, MsgUploadFailed, decode[response.ErrorDetail](t, rec).Message)

	count, err := s.hotels.Count(context.Background(), domain.Predicate{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), count, "no hotel is stored when an upload fails")
}

func TestHotels_Update(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)
	id := s.hotelIDs(t)[0]

	fields := url.Values{
		"name":       {"Thames View Deluxe"},
		"city":       {""},
		"facilities": {"wifi, gym"},
		"imageUrls":  {"https://media.test/kept.jpg"},
	}
	rec := s.makeForm(http.MethodPut, "/api/hotels/"+id, fields,
		map[string][]string{FieldImageFiles: {"new.jpg"}}, bearer(admin))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	h := decode[HotelDTO](t, rec)
	assert.Equal(t, "Thames View Deluxe", h.Name)
	assert.Equal(t, "London", h.City, "empty fields are left untouched")
	assert.Equal(t, []string{"wifi", "gym"}, h.Facilities)
	assert.Equal(t, []string{"https://media.test/kept.jpg", testImageHost + "new.jpg"}, h.ImageURLs)
}

func TestHotels_UpdateMissing(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)

	rec := s.makeForm(http.MethodPut, "/api/hotels/65a1b2c3d4e5f60718299999",
		url.Values{"name": {"Ghost"}}, nil, bearer(admin))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHotels_Delete(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)
	id := s.hotelIDs(t)[2]

	rec := s.makeRequest(http.MethodDelete, "/api/hotels/"+id, nil, bearer(admin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hotel deleted successfully"}`, rec.Body.String())

	rec = s.makeRequest(http.MethodGet, "/api/hotels/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.makeRequest(http.MethodDelete, "/api/hotels/"+id, nil, bearer(admin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =====================================================
// Bookings
// =====================================================

func TestBookings_AddListGet(t *testing.T) {
	s := newTestServer(t)
	admin, _ := s.token(t, "admin@example.com", domain.RoleAdmin)
	hotelID := s.hotelIDs(t)[0]

	rec := s.makeRequest(http.MethodPost, "/api/bookings", bookingBody(hotelID, "65a1b2c3d4e5f60718290001"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[BookingCreatedDTO](t, rec)
	assert.Equal(t, "Booking successful", created.Message)
	assert.NotEmpty(t, created.Booking.ID)
	assert.Equal(t, 360.0, created.Booking.Cost)
	assert.False(t, created.Booking.BookingDate.IsZero())

	rec = s.makeRequest(http.MethodGet, "/api/bookings?page=0&limit=500", nil, bearer(admin))
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[BookingListDTO](t, rec)
	assert.Equal(t, int64(1), list.TotalBookings)
	assert.Equal(t, "1", rec.Header().Get(response.HeaderTotalCount))
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, domain.MaxListLimit, list.Limit)
	require.Len(t, list.Data, 1)

	rec = s.makeRequest(http.MethodGet, "/api/bookings/"+created.Booking.ID, nil, bearer(admin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann@example.com", decode[BookingDTO](t, rec).Email)

	rec = s.makeRequest(http.MethodGet, "/api/bookings/nope", nil, bearer(admin))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Booking ID format", decode[response.ErrorDetail](t, rec).Message)

	rec = s.makeRequest(http.MethodGet, "/api/bookings/65a1b2c3d4e5f60718299999", nil, bearer(admin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Booking not found", decode[response.ErrorDetail](t, rec).Message)
}

func TestBookings_ListRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	guest, _ := s.token(t, "guest@example.com", domain.RoleUser)

	assert.Equal(t, http.StatusUnauthorized, s.makeRequest(http.MethodGet, "/api/bookings", nil).Code)
	assert.Equal(t, http.StatusForbidden, s.makeRequest(http.MethodGet, "/api/bookings", nil, bearer(guest)).Code)
}

func TestBookings_AddValidation(t *testing.T) {
	s := newTestServer(t)

	body := bookingBody(s.hotelIDs(t)[0], "65a1b2c3d4e5f60718290001")
	body["checkIn"] = "next tuesday"
	body["guests"] = 1.5

	rec := s.makeRequest(http.MethodPost, "/api/bookings", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := decode[response.ErrorDetail](t, rec).Details
	assert.Contains(t, details, "checkIn")
	assert.Contains(t, details, "guests")

	body = bookingBody(s.hotelIDs(t)[0], "65a1b2c3d4e5f60718290001")
	delete(body, "firstName")
	body["rooms"] = 0
	rec = s.makeRequest(http.MethodPost, "/api/bookings", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details = decode[response.ErrorDetail](t, rec).Details
	assert.Equal(t, "First name is required", details["firstName"])
	assert.Equal(t, "Rooms must be at least 1", details["rooms"])
}

func TestBookings_AddMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, response.MsgInvalidRequestBody, decode[response.ErrorDetail](t, rec).Message)
}

func TestBookings_PaidFlow(t *testing.T) {
	s := newTestServer(t)
	guest, guestID := s.token(t, "guest@example.com", domain.RoleUser)
	hotelID := s.hotelIDs(t)[0]

	rec := s.makeRequest(http.MethodPost, "/api/hotels/"+hotelID+"/bookings/payment-intent",
		map[string]interface{}{"numberOfNights": 3}, bearer(guest))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	quote := decode[domain.PaymentQuote](t, rec)
	assert.Equal(t, 360.0, quote.TotalCost)
	assert.Equal(t, quote.PaymentIntentID+"_secret", quote.ClientSecret)

	confirm := map[string]interface{}{
		"firstName":       "Ann",
		"lastName":        "Lee",
		"email":           "ann@example.com",
		"checkIn":         "2025-09-01",
		"checkOut":        "2025-09-04",
		"adultCount":      "2",
		"childCount":      1,
		"totalCost":       360,
		"paymentIntentId": quote.PaymentIntentID,
	}
	path := "/api/hotels/" + hotelID + "/bookings"

	rec = s.makeRequest(http.MethodPost, path, confirm, bearer(guest))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Payment intent not succeeded. Status: requires_payment_method",
		decode[response.ErrorDetail](t, rec).Message)

	s.payments.Succeed(quote.PaymentIntentID)

	other, _ := s.token(t, "other@example.com", domain.RoleUser)
	rec = s.makeRequest(http.MethodPost, path, confirm, bearer(other))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Payment intent mismatch", decode[response.ErrorDetail](t, rec).Message)

	rec = s.makeRequest(http.MethodPost, path, confirm, bearer(guest))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	b := decode[BookingCreatedDTO](t, rec).Booking
	assert.Equal(t, guestID, b.UserID)
	assert.Equal(t, hotelID, b.HotelID)
	assert.Equal(t, 3, b.Guests)
	assert.Equal(t, 360.0, b.Cost)
	assert.Equal(t, quote.PaymentIntentID, b.PaymentIntentID)
}

func TestBookings_PaymentIntentErrors(t *testing.T) {
	s := newTestServer(t)
	guest, _ := s.token(t, "guest@example.com", domain.RoleUser)
	hotelID := s.hotelIDs(t)[0]
	path := "/api/hotels/" + hotelID + "/bookings/payment-intent"

	rec := s.makeRequest(http.MethodPost, path, map[string]interface{}{"numberOfNights": 2})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.makeRequest(http.MethodPost, path, map[string]interface{}{"numberOfNights": 0}, bearer(guest))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[response.ErrorDetail](t, rec).Details, "numberOfNights")

	rec = s.makeRequest(http.MethodPost, "/api/hotels/65a1b2c3d4e5f60718299999/bookings/payment-intent",
		map[string]interface{}{"numberOfNights": 2}, bearer(guest))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.makeRequest(http.MethodPost, "/api/hotels/"+hotelID+"/bookings",
		map[string]interface{}{"paymentIntentId": "pi_unknown", "firstName": "A"}, bearer(guest))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, MsgPaymentFailed, decode[response.ErrorDetail](t, rec).Message)
}

// =====================================================
// Auth
// =====================================================

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestAuth_RegisterLoginAndSession(t *testing.T) {
	s := newTestServer(t)
	account := map[string]string{
		"firstName": "Ann",
		"lastName":  "Lee",
		"email":     "Ann@Example.com",
		"password":  "secret1",
	}

	rec := s.makeRequest(http.MethodPost, "/api/users/register", account)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"User registered OK"}`, rec.Body.String())
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	rec = s.makeRequest(http.MethodPost, "/api/users/register", account)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decode[response.ErrorDetail](t, rec).Message)

	rec = s.makeRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ann@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Credentials", decode[response.ErrorDetail](t, rec).Message)

	rec = s.makeRequest(http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ann@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)
	userID := decode[UserIDDTO](t, rec).UserID
	require.NotEmpty(t, userID)
	cookie = sessionCookie(rec)
	require.NotNil(t, cookie)

	withCookie := func(r *http.Request) { r.AddCookie(cookie) }

	rec = s.makeRequest(http.MethodGet, "/api/auth/validate-token", nil, withCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, decode[UserIDDTO](t, rec).UserID)

	rec = s.makeRequest(http.MethodGet, "/api/users/me", nil, withCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[UserDTO](t, rec)
	assert.Equal(t, "ann@example.com", me.Email)
	assert.Equal(t, string(domain.RoleUser), me.Role)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = s.makeRequest(http.MethodPost, "/api/auth/admin/login",
		map[string]string{"email": "ann@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.makeRequest(http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestAuth_AdminRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	account := map[string]string{
		"firstName": "Olu",
		"lastName":  "Ade",
		"email":     "olu@example.com",
		"password":  "admin-pass",
	}

	rec := s.makeRequest(http.MethodPost, "/api/users/admin/register", account)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Admin registered successfully"}`, rec.Body.String())

	rec = s.makeRequest(http.MethodPost, "/api/auth/admin/login",
		map[string]string{"email": "olu@example.com", "password": "admin-pass"})
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	rec = s.makeRequest(http.MethodGet, "/api/bookings", nil, func(r *http.Request) { r.AddCookie(cookie) })
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Validation(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodPost, "/api/auth/login", map[string]string{"email": "nope", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := decode[response.ErrorDetail](t, rec).Details
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")

	rec = s.makeRequest(http.MethodPost, "/api/users/register", map[string]string{"email": "a@b.co", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details = decode[response.ErrorDetail](t, rec).Details
	assert.Contains(t, details, "firstName")
	assert.Contains(t, details, "password")
}

func TestAuth_SessionEndpointsRequireToken(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.makeRequest(http.MethodGet, "/api/users/me", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.makeRequest(http.MethodGet, "/api/auth/validate-token", nil, bearer("forged")).Code)
}

// =====================================================
// Notifications
// =====================================================

func TestSendEmail(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodPost, "/api/send-email", bookingBody(s.hotelIDs(t)[0], "65a1b2c3d4e5f60718290001"))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Email sent"}`, rec.Body.String())
	sent := s.mailer.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, testAdminMail, sent[0].To)
	assert.Equal(t, "ann@example.com", sent[1].To)
}

func TestSendEmail_AdminFailure(t *testing.T) {
	s := newTestServer(t, withMailer(mock.NewMailer().FailFor(testAdminMail, errors.New("relay refused"))))

	rec := s.makeRequest(http.MethodPost, "/api/send-email", bookingBody(s.hotelIDs(t)[0], "65a1b2c3d4e5f60718290001"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, MsgNotificationFailed, decode[response.ErrorDetail](t, rec).Message)
}

func TestSendEmail_GuestFailureIsTolerated(t *testing.T) {
	s := newTestServer(t, withMailer(mock.NewMailer().FailFor("ann@example.com", errors.New("mailbox full"))))

	rec := s.makeRequest(http.MethodPost, "/api/send-email", bookingBody(s.hotelIDs(t)[0], "65a1b2c3d4e5f60718290001"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSendEmail_Validation(t *testing.T) {
	s := newTestServer(t)

	rec := s.makeRequest(http.MethodPost, "/api/send-email", map[string]string{"firstName": "Ann"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[response.ErrorDetail](t, rec).Details, "email")
}

// =====================================================
// Error mapping
// =====================================================

func TestHandleError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.NewValidationError("name", "Name is required"), http.StatusBadRequest, response.CodeValidationError},
		{"wrapped invalid request", domain.WrapInvalidRequest("bad"), http.StatusBadRequest, response.CodeValidationError},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, response.CodeInvalidRequest},
		{"not found", domain.ErrHotelNotFound, http.StatusNotFound, response.CodeNotFound},
		{"credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, response.CodeInvalidRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, response.CodeUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, response.CodeForbidden},
		{"storage", domain.NewStorageError(errors.New("down")), http.StatusInternalServerError, response.CodeInternalError},
		{"upload", domain.NewUploadError(errors.New("down")), http.StatusBadGateway, response.CodeBadGateway},
		{"payment", domain.NewPaymentError(errors.New("down")), http.StatusBadGateway, response.CodeBadGateway},
		{"mail", domain.NewNotificationError(errors.New("down")), http.StatusBadGateway, response.CodeBadGateway},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, response.CodeTimeout},
		{"canceled", context.Canceled, http.StatusGatewayTimeout, response.CodeTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, response.CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, handleError(c, tt.err, resourceHotel))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode[response.ErrorDetail](t, rec).Code)
		})
	}
}
