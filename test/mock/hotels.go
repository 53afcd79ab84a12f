package mock

import (
	"strconv"
	"time"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

// SampleHotels returns a catalogue covering every search filter.
// Order matters: it is the storage order unsorted searches return.
func SampleHotels() []domain.Hotel {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Hotel{
		{
			Name: "Thames View", City: "London", Country: "United Kingdom",
			Address: "1 River Walk", State: "Greater London", Location: "Southbank",
			Description: "Riverside rooms", HomeDescription: "By the river",
			Type: []string{"Boutique"}, StarRating: 4, Facilities: []string{"wifi", "pool"},
			PricePerNight: 120, AdultCount: 2, ChildCount: 1,
			ImageURLs: []string{}, LastUpdated: updated,
		},
		{
			Name: "Paris Grand", City: "Paris", Country: "France",
			Address: "2 Rue Royale", State: "Ile-de-France", Location: "8th",
			Description: "Classic luxury", HomeDescription: "Grand stay",
			Type: []string{"Luxury"}, StarRating: 5, Facilities: []string{"wifi", "spa", "pool"},
			PricePerNight: 300, AdultCount: 4, ChildCount: 2,
			ImageURLs: []string{}, LastUpdated: updated,
		},
		{
			Name: "Camden Budget", City: "London", Country: "United Kingdom",
			Address: "3 High Street", State: "Greater London", Location: "Camden",
			Description: "Simple rooms", HomeDescription: "Good value",
			Type: []string{"Budget"}, StarRating: 2, Facilities: []string{"wifi"},
			PricePerNight: 60, AdultCount: 2, ChildCount: 0,
			ImageURLs: []string{}, LastUpdated: updated,
		},
		{
			Name: "Lyon Family Resort", City: "Lyon", Country: "France",
			Address: "4 Quai Perrache", State: "Rhone", Location: "Confluence",
			Description: "Family friendly", HomeDescription: "Space for everyone",
			Type: []string{"Resort", "Family"}, StarRating: 4, Facilities: []string{"pool", "parking"},
			PricePerNight: 150, AdultCount: 4, ChildCount: 3,
			ImageURLs: []string{}, LastUpdated: updated,
		},
	}
}

// NumberedHotels returns n minimal hotels named "Hotel 1".."Hotel n" in London.
func NumberedHotels(n int) []domain.Hotel {
	hotels := make([]domain.Hotel, n)
	for i := range hotels {
		hotels[i] = domain.Hotel{
			Name: "Hotel " + strconv.Itoa(i+1), City: "London", Country: "United Kingdom",
			Description: "Numbered", Type: []string{"Budget"}, StarRating: 3,
			Facilities: []string{"wifi"}, PricePerNight: float64(50 + i),
			AdultCount: 2, ImageURLs: []string{},
		}
	}
	return hotels
}
