package http

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestParseSearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.SearchQuery
	}{
		{
			name:  "empty query",
			query: "",
			want:  domain.SearchQuery{Page: 1},
		},
		{
			name:  "all filters",
			query: "destination=%20london%20&adultCount=2&childCount=0&facilities=wifi&types=Budget&stars=4&maxPrice=99.5&sortOption=starRating&page=3",
			want: domain.SearchQuery{
				Filters: domain.FilterCriteria{
					Destination:        "london",
					MinAdultCount:      intPtr(2),
					MinChildCount:      intPtr(0),
					RequiredFacilities: []string{"wifi"},
					AllowedTypes:       []string{"Budget"},
					AllowedStarRatings: []int{4},
					MaxPricePerNight:   floatPtr(99.5),
				},
				Sort: domain.SortByStarRating,
				Page: 3,
			},
		},
		{
			name:  "repeated and comma separated lists are merged without duplicates",
			query: "facilities=wifi,%20pool&facilities=pool&facilities=spa&stars=5,4&stars=5",
			want: domain.SearchQuery{
				Filters: domain.FilterCriteria{
					RequiredFacilities: []string{"wifi", "pool", "spa"},
					AllowedStarRatings: []int{5, 4},
				},
				Page: 1,
			},
		},
		{
			name:  "blank list items are dropped",
			query: "types=,%20,&facilities=",
			want:  domain.SearchQuery{Page: 1},
		},
		{
			name:  "unknown sort means storage order",
			query: "sortOption=distance",
			want:  domain.SearchQuery{Page: 1},
		},
		{
			name:  "non-numeric page is page one",
			query: "page=last",
			want:  domain.SearchQuery{Page: 1},
		},
		{
			name:  "non-positive page is page one",
			query: "page=-2",
			want:  domain.SearchQuery{Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := ParseSearchQuery(values)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSearchQuery_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFields []string
	}{
		{"non-numeric adults", "adultCount=two", []string{ParamAdultCount}},
		{"negative children", "childCount=-1", []string{ParamChildCount}},
		{"non-numeric price", "maxPrice=cheap", []string{ParamMaxPrice}},
		{"NaN price", "maxPrice=NaN", []string{ParamMaxPrice}},
		{"infinite price", "maxPrice=Inf", []string{ParamMaxPrice}},
		{"negative infinite price", "maxPrice=-Inf", []string{ParamMaxPrice}},
		{"negative price", "maxPrice=-5", []string{ParamMaxPrice}},
		{"two bad stars share one key", "stars=four&stars=5,six", []string{ParamStars}},
		{"non-integer star", "stars=4,five", []string{ParamStars}},
		{"several at once", "adultCount=x&maxPrice=y", []string{ParamAdultCount, ParamMaxPrice}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = ParseSearchQuery(values)

			require.Error(t, err)
			assert.True(t, domain.IsInvalidRequest(err))
			details := domain.ValidationDetails(err)
			assert.Len(t, details, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, details, f)
			}
		})
	}
}

func TestParseSearchQuery_PriceMessages(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"NaN", "maxPrice must be a number"},
		{"+Inf", "maxPrice must be a number"},
		{"-0.5", "maxPrice must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseSearchQuery(url.Values{ParamMaxPrice: {tt.raw}})

			require.Error(t, err)
			assert.Equal(t, tt.want, domain.ValidationDetails(err)[ParamMaxPrice])
		})
	}
}

func TestParseSearchQuery_ZeroPriceAllowed(t *testing.T) {
	q, err := ParseSearchQuery(url.Values{ParamMaxPrice: {"0"}})

	require.NoError(t, err)
	require.NotNil(t, q.Filters.MaxPricePerNight)
	assert.Equal(t, 0.0, *q.Filters.MaxPricePerNight)
}

func TestParseSearchQuery_HugePage(t *testing.T) {
	q, err := ParseSearchQuery(url.Values{ParamPage: {"1844674407370955163"}})

	require.NoError(t, err)
	assert.Equal(t, 1844674407370955163, q.Page)
	assert.Equal(t, int64(math.MaxInt64), domain.Paginate(q.Page, 4).Skip)
}

func TestIntOr(t *testing.T) {
	assert.Equal(t, 7, intOr("7", 1))
	assert.Equal(t, 7, intOr(" 7 ", 1))
	assert.Equal(t, -3, intOr("-3", 1))
	assert.Equal(t, 1, intOr("", 1))
	assert.Equal(t, 0, intOr("ten", 0))
}

func TestHotelForm_Update(t *testing.T) {
	t.Run("only non-empty fields are set", func(t *testing.T) {
		f := &hotelForm{values: url.Values{
			"name":          {" Thames View "},
			"city":          {""},
			"type":          {""},
			"facilities":    {"wifi, pool,,"},
			"pricePerNight": {"145.5"},
		}}

		u, err := f.update()

		require.NoError(t, err)
		assert.Equal(t, strPtr("Thames View"), u.Name)
		assert.Nil(t, u.City)
		assert.Nil(t, u.Type)
		assert.Equal(t, []string{"wifi", "pool"}, u.Facilities)
		assert.Equal(t, floatPtr(145.5), u.PricePerNight)
		assert.Nil(t, u.StarRating)
		assert.Nil(t, u.ImageURLs)
	})

	t.Run("rating alias", func(t *testing.T) {
		f := &hotelForm{values: url.Values{"rating": {"5"}}}

		u, err := f.update()

		require.NoError(t, err)
		assert.Equal(t, intPtr(5), u.StarRating)
	})

	t.Run("starRating wins over the alias", func(t *testing.T) {
		f := &hotelForm{values: url.Values{"starRating": {"2"}, "rating": {"5"}}}

		u, err := f.update()

		require.NoError(t, err)
		assert.Equal(t, intPtr(2), u.StarRating)
	})

	t.Run("present but empty image list clears the gallery", func(t *testing.T) {
		f := &hotelForm{values: url.Values{FieldImageURLs: {""}}}

		u, err := f.update()

		require.NoError(t, err)
		assert.NotNil(t, u.ImageURLs)
		assert.Empty(t, u.ImageURLs)
	})

	t.Run("uploaded cover overrides text url", func(t *testing.T) {
		f := &hotelForm{
			values:    url.Values{FieldHomeImageURL: {"https://old.example/cover.jpg"}},
			homeImage: &domain.Image{Filename: "cover.jpg"},
		}

		u, err := f.update()

		require.NoError(t, err)
		assert.Nil(t, u.HomeImageURL)
	})

	t.Run("text cover url is kept without upload", func(t *testing.T) {
		f := &hotelForm{values: url.Values{FieldHomeImageURL: {"https://old.example/cover.jpg"}}}

		u, err := f.update()

		require.NoError(t, err)
		assert.Equal(t, strPtr("https://old.example/cover.jpg"), u.HomeImageURL)
	})

	t.Run("malformed numbers", func(t *testing.T) {
		f := &hotelForm{values: url.Values{
			"starRating":    {"four"},
			"adultCount":    {"2.5"},
			"childCount":    {"none"},
			"pricePerNight": {"cheap"},
		}}

		_, err := f.update()

		require.Error(t, err)
		details := domain.ValidationDetails(err)
		assert.Equal(t, "Rating must be between 1 and 5", details["starRating"])
		assert.Contains(t, details, "adultCount")
		assert.Contains(t, details, "childCount")
		assert.Equal(t, "Price per night must be a number", details["pricePerNight"])
	})
}

func TestHotelForm_CreateCommand(t *testing.T) {
	cover := &domain.Image{Filename: "cover.jpg"}
	f := &hotelForm{
		values: url.Values{
			"name":       {"Harbour Lights"},
			"type":       {"Boutique,Family"},
			"starRating": {"4"},
		},
		homeImage: cover,
		images:    []domain.Image{{Filename: "a.jpg"}, {Filename: "b.jpg"}},
	}

	cmd, err := f.createCommand()

	require.NoError(t, err)
	assert.Equal(t, "Harbour Lights", cmd.Hotel.Name)
	assert.Equal(t, []string{"Boutique", "Family"}, cmd.Hotel.Type)
	assert.Equal(t, 4, cmd.Hotel.StarRating)
	assert.Empty(t, cmd.Hotel.City)
	assert.Same(t, cover, cmd.HomeImage)
	assert.Len(t, cmd.Images, 2)
}

func TestBookingRequest_ToDomain(t *testing.T) {
	t.Run("full request", func(t *testing.T) {
		req := BookingRequest{
			UserID:      " u1 ",
			HotelID:     "h1",
			FirstName:   "Ann",
			LastName:    "Lee",
			Email:       "ann@example.com",
			CheckIn:     "2025-09-01",
			CheckOut:    "2025-09-04T00:00:00Z",
			Destination: "London",
			Type:        "deluxe",
			Cost:        json.Number("360.50"),
			Rooms:       json.Number("2"),
			Guests:      json.Number("3"),
		}

		b, err := req.ToDomain()

		require.NoError(t, err)
		assert.Equal(t, "u1", b.UserID)
		assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), b.CheckIn)
		assert.Equal(t, time.Date(2025, 9, 4, 0, 0, 0, 0, time.UTC), b.CheckOut)
		assert.True(t, b.BookingDate.IsZero())
		assert.Equal(t, 360.5, b.Cost)
		assert.Equal(t, 2, b.Rooms)
		assert.Equal(t, 3, b.Guests)
	})

	t.Run("totalCost alias and guest count from adults and children", func(t *testing.T) {
		req := BookingRequest{
			TotalCost:  json.Number("200"),
			AdultCount: json.Number("2"),
			ChildCount: json.Number("1"),
		}

		b, err := req.ToDomain()

		require.NoError(t, err)
		assert.Equal(t, 200.0, b.Cost)
		assert.Equal(t, 3, b.Guests)
		assert.Zero(t, b.Rooms)
	})

	t.Run("cost wins over totalCost", func(t *testing.T) {
		req := BookingRequest{Cost: json.Number("10"), TotalCost: json.Number("20")}

		b, err := req.ToDomain()

		require.NoError(t, err)
		assert.Equal(t, 10.0, b.Cost)
	})

	t.Run("malformed dates and counts", func(t *testing.T) {
		req := BookingRequest{
			CheckIn:     "01/09/2025",
			CheckOut:    "soon",
			BookingDate: "yesterday",
			Rooms:       json.Number("1.5"),
		}

		_, err := req.ToDomain()

		require.Error(t, err)
		details := domain.ValidationDetails(err)
		assert.Equal(t, "Check-in date must be a valid date", details["checkIn"])
		assert.Contains(t, details, "checkOut")
		assert.Contains(t, details, "bookingDate")
		assert.Equal(t, "Rooms must be at least 1", details["rooms"])
	})
}

func TestBookingRequest_ToConfirmCommand(t *testing.T) {
	req := BookingRequest{FirstName: "Ann", PaymentIntentID: " pi_123 "}

	cmd, err := req.ToConfirmCommand()

	require.NoError(t, err)
	assert.Equal(t, "pi_123", cmd.PaymentIntentID)
	assert.Equal(t, "Ann", cmd.Booking.FirstName)
}

func TestPaymentIntentRequest_Nights(t *testing.T) {
	tests := []struct {
		raw     json.Number
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"2.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		req := PaymentIntentRequest{NumberOfNights: tt.raw}

		got, err := req.Nights()

		if tt.wantErr {
			require.Error(t, err, "nights %q", tt.raw)
			assert.Contains(t, domain.ValidationDetails(err), "numberOfNights")
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        LoginRequest
		wantFields []string
	}{
		{"valid", LoginRequest{Email: "ann@example.com", Password: "secret1"}, nil},
		{"missing email", LoginRequest{Password: "secret1"}, []string{"email"}},
		{"malformed email", LoginRequest{Email: "ann", Password: "secret1"}, []string{"email"}},
		{"short password", LoginRequest{Email: "ann@example.com", Password: "12345"}, []string{"password"}},
		{"both", LoginRequest{}, []string{"email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			details := domain.ValidationDetails(err)
			assert.Len(t, details, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, details, f)
			}
		})
	}
}

func TestRegisterRequest_ToCommand(t *testing.T) {
	req := RegisterRequest{FirstName: " Ann ", LastName: "Lee", Email: "Ann@Example.com", Password: "pw"}

	cmd := req.ToCommand(domain.RoleAdmin)

	assert.Equal(t, "Ann", cmd.FirstName)
	assert.Equal(t, "Ann@Example.com", cmd.Email)
	assert.Equal(t, domain.RoleAdmin, cmd.Role)
}
