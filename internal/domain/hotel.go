// Package domain contains the core business entities and rules for the hotel booking system.
// These entities are storage-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"strings"
	"time"
)

// Hotel document field names.
// The predicate builder and the storage adapters share these so a constraint
// names the same attribute everywhere.
const (
	FieldID            = "_id"
	FieldName          = "name"
	FieldCity          = "city"
	FieldCountry       = "country"
	FieldType          = "type"
	FieldStarRating    = "starRating"
	FieldFacilities    = "facilities"
	FieldPricePerNight = "pricePerNight"
	FieldAdultCount    = "adultCount"
	FieldChildCount    = "childCount"
	FieldLastUpdated   = "lastUpdated"
)

// Hotel represents a bookable property managed by administrators.
type Hotel struct {
	// ID is the storage identifier, rendered as a hex string
	ID string `json:"id"`

	// Name is the display name of the hotel
	Name string `json:"name"`

	// HomeDescription is the short teaser shown on listing cards
	HomeDescription string `json:"homeDescription"`

	Address  string `json:"address,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country"`
	Location string `json:"location,omitempty"`

	// Description is the full description shown on the detail page
	Description string `json:"description"`

	// Type holds the hotel categories (e.g., "Boutique", "Resort")
	Type []string `json:"type"`

	// StarRating is the 1-5 star classification
	StarRating int `json:"starRating"`

	// Facilities lists the amenities offered (e.g., "wifi", "pool")
	Facilities []string `json:"facilities"`

	// PricePerNight is the nightly rate in the payment currency
	PricePerNight float64 `json:"pricePerNight"`

	// AdultCount and ChildCount are the maximum occupancy per booking
	AdultCount int `json:"adultCount"`
	ChildCount int `json:"childCount"`

	// HomeImageURL is the cover image hosted by the media collaborator
	HomeImageURL string `json:"homeImageUrl,omitempty"`

	// ImageURLs are the gallery images hosted by the media collaborator
	ImageURLs []string `json:"imageUrls"`

	// LastUpdated is set on every create and update
	LastUpdated time.Time `json:"lastUpdated"`
}

// HasAllFacilities reports whether the hotel offers every facility in required.
// Matching is case-sensitive, as the store compares facility strings verbatim.
func (h *Hotel) HasAllFacilities(required []string) bool {
	if len(required) == 0 {
		return true
	}
	offered := make(map[string]struct{}, len(h.Facilities))
	for _, f := range h.Facilities {
		offered[f] = struct{}{}
	}
	for _, r := range required {
		if _, ok := offered[r]; !ok {
			return false
		}
	}
	return true
}

// HasAnyType reports whether any of the hotel's types is in allowed.
func (h *Hotel) HasAnyType(allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range h.Type {
		for _, a := range allowed {
			if t == a {
				return true
			}
		}
	}
	return false
}

// HotelUpdate carries a partial update. Nil pointers and nil slices are left untouched.
type HotelUpdate struct {
	Name            *string
	HomeDescription *string
	Address         *string
	City            *string
	State           *string
	Country         *string
	Location        *string
	Description     *string
	Type            []string
	StarRating      *int
	Facilities      []string
	PricePerNight   *float64
	AdultCount      *int
	ChildCount      *int
	HomeImageURL    *string
	ImageURLs       []string
}

// IsEmpty reports whether the update sets no field.
func (u *HotelUpdate) IsEmpty() bool {
	return u.Name == nil && u.HomeDescription == nil && u.Address == nil &&
		u.City == nil && u.State == nil && u.Country == nil && u.Location == nil &&
		u.Description == nil && u.Type == nil && u.StarRating == nil &&
		u.Facilities == nil && u.PricePerNight == nil && u.AdultCount == nil &&
		u.ChildCount == nil && u.HomeImageURL == nil && u.ImageURLs == nil
}

// ApplyTo copies every set field onto h.
func (u *HotelUpdate) ApplyTo(h *Hotel) {
	setString(&h.Name, u.Name)
	setString(&h.HomeDescription, u.HomeDescription)
	setString(&h.Address, u.Address)
	setString(&h.City, u.City)
	setString(&h.State, u.State)
	setString(&h.Country, u.Country)
	setString(&h.Location, u.Location)
	setString(&h.Description, u.Description)
	setString(&h.HomeImageURL, u.HomeImageURL)
	if u.Type != nil {
		h.Type = u.Type
	}
	if u.Facilities != nil {
		h.Facilities = u.Facilities
	}
	if u.ImageURLs != nil {
		h.ImageURLs = u.ImageURLs
	}
	if u.StarRating != nil {
		h.StarRating = *u.StarRating
	}
	if u.PricePerNight != nil {
		h.PricePerNight = *u.PricePerNight
	}
	if u.AdultCount != nil {
		h.AdultCount = *u.AdultCount
	}
	if u.ChildCount != nil {
		h.ChildCount = *u.ChildCount
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// SplitList splits a comma-separated form value into trimmed, non-empty items.
// Admin forms send list fields such as facilities and type this way.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
