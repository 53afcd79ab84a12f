package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/usecase"
	"github.com/hotel-booking/hotel-booking-admin-system/test/mock"
)

// TestConcurrent_MultipleSearchRequests tests that multiple concurrent
// search requests are handled correctly without interference.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	// Arrange
	env := DefaultEnv()
	env.HotelStore = SlowHotels(5 * time.Millisecond) // Small delay to increase overlap
	ts := NewTestServer(t, env)

	queries := []struct {
		query     string
		wantTotal int64
	}{
		{"destination=london", 2},
		{"destination=france", 2},
		{"stars=5", 1},
		{"maxPrice=100", 1},
		{"", 4},
	}

	numRequests := 25
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.SearchRequest(queries[idx%len(queries)].query)
		}(i)
	}

	wg.Wait()

	// Assert - Every response matches its own query
	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)
		page := results[i].ParseSearchResponse(t)
		assert.Equal(t, queries[i%len(queries)].wantTotal, page.Pagination.Total, "request %d", i)
	}
}

// TestConcurrent_SameEmailRegistration tests that only one of many simultaneous
// sign-ups with the same email succeeds.
func TestConcurrent_SameEmailRegistration(t *testing.T) {
	// Arrange
	ts := NewTestServer(t, nil)
	numRequests := 20
	var wg sync.WaitGroup
	codes := make([]int, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.PostJSON("/api/users/register", map[string]string{
				"firstName": "Racer",
				"lastName":  fmt.Sprintf("No%d", idx),
				"email":     "racer@example.com",
				"password":  "password1",
			}, nil)
			codes[idx] = resp.Code
		}(i)
	}
	wg.Wait()

	// Assert
	var ok, rejected int
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusBadRequest:
			rejected++
		}
	}
	assert.Equal(t, 1, ok, "exactly one registration should win")
	assert.Equal(t, numRequests-1, rejected)
}

// TestConcurrent_Bookings tests that concurrent booking submissions are all stored with distinct ids.
func TestConcurrent_Bookings(t *testing.T) {
	// Arrange
	uc := DefaultEnv().Build(t)
	numRequests := 30
	var wg sync.WaitGroup
	ids := make([]string, numRequests)
	errs := make([]error, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			b, err := uc.Bookings.Add(context.Background(), domain.Booking{
				UserID:      "65a1b2c3d4e5f60718290002",
				HotelID:     "65a1b2c3d4e5f60718290001",
				FirstName:   "Guest",
				LastName:    fmt.Sprintf("No%d", idx),
				Email:       "guest@example.com",
				CheckIn:     Now.AddDate(0, 0, 7),
				CheckOut:    Now.AddDate(0, 0, 9),
				Cost:        240,
				Destination: "London",
				Rooms:       1,
				Guests:      2,
				Type:        "standard",
			})
			errs[idx] = err
			if err == nil {
				ids[idx] = b.ID
			}
		}(i)
	}
	wg.Wait()

	// Assert
	seen := make(map[string]struct{}, numRequests)
	for i := 0; i < numRequests; i++ {
		require.NoError(t, errs[i], "booking %d", i)
		seen[ids[i]] = struct{}{}
	}
	assert.Len(t, seen, numRequests, "every booking should get its own id")

	list, err := uc.Bookings.List(context.Background(), 1, domain.MaxListLimit)
	require.NoError(t, err)
	assert.Equal(t, int64(numRequests), list.TotalBookings)
}

// TestConcurrent_UploadOrdering tests that gallery URLs follow the submitted order even
// though the images are relayed concurrently.
func TestConcurrent_UploadOrdering(t *testing.T) {
	// Arrange
	env := DefaultEnv()
	env.Uploader = mock.NewUploader(ImageHost).WithDelay(5 * time.Millisecond)
	uc := env.Build(t)

	hotel := mock.SampleHotels()[0]
	hotel.Name = "Gallery House"
	images := make([]domain.Image, usecase.MaxHotelImages)
	want := make([]string, len(images))
	for i := range images {
		name := fmt.Sprintf("photo-%d.jpg", i)
		images[i] = domain.Image{Filename: name, ContentType: "image/jpeg", Data: []byte(name)}
		want[i] = ImageHost + name
	}

	// Act
	created, err := uc.Admin.Create(context.Background(), usecase.CreateHotelCommand{
		Hotel:  hotel,
		Images: images,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, want, created.ImageURLs)
	assert.Len(t, env.Uploader.Uploaded(), len(images))
}

// TestConcurrent_ReadsDuringUpdates tests that cached reads stay consistent while the hotel changes.
func TestConcurrent_ReadsDuringUpdates(t *testing.T) {
	// Arrange
	env := DefaultEnv()
	uc := env.Build(t)
	id := mustFirstID(t, env)
	ctx := context.Background()

	var wg sync.WaitGroup
	readErrs := make(chan error, 100)

	// Act - readers and one writer race on the same hotel
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				h, err := uc.Admin.Get(ctx, id)
				if err != nil {
					readErrs <- err
					return
				}
				if h.PricePerNight < 100 || h.PricePerNight > 200 {
					readErrs <- fmt.Errorf("unexpected price %v", h.PricePerNight)
					return
				}
			}
		}()
	}
	for p := 100.0; p <= 200; p += 25 {
		price := p
		_, err := uc.Admin.Update(ctx, id, usecase.UpdateHotelCommand{
			Update: domain.HotelUpdate{PricePerNight: &price},
		})
		require.NoError(t, err)
	}
	wg.Wait()
	close(readErrs)

	// Assert
	for err := range readErrs {
		t.Error(err)
	}
	h, err := uc.Admin.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 200.0, h.PricePerNight)
}

// TestConcurrent_HighLoadScenario tests the full stack under a mixed request load.
func TestConcurrent_HighLoadScenario(t *testing.T) {
	// Arrange
	ts := NewTestServer(t, nil)
	admin := ts.Register(t, "admin@example.com", true)
	hotelID := ts.HotelIDs(t)[0]

	numRequests := 60
	var wg sync.WaitGroup
	codes := make([]int, numRequests)

	// Act
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			var resp Response
			switch idx % 3 {
			case 0:
				resp = ts.SearchRequest("destination=london")
			case 1:
				resp = ts.Get("/api/hotels/"+hotelID, nil)
			default:
				resp = ts.Get("/api/bookings", admin)
			}
			codes[idx] = resp.Code
		}(i)
	}
	wg.Wait()

	// Assert
	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
}
