package domain

// SortOption defines the available sorting options for hotel search results.
type SortOption string

// Available sort options.
const (
	// SortUnsorted keeps storage order (default)
	SortUnsorted SortOption = ""

	// SortByStarRating sorts by star rating, highest first
	SortByStarRating SortOption = "starRating"

	// SortByPriceAsc sorts by nightly price, cheapest first
	SortByPriceAsc SortOption = "pricePerNightAsc"

	// SortByPriceDesc sorts by nightly price, most expensive first
	SortByPriceDesc SortOption = "pricePerNightDesc"
)

// IsValid checks if the sort option is a recognized ordering.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByStarRating, SortByPriceAsc, SortByPriceDesc:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortUnsorted if the string is empty or unrecognized.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortUnsorted
}

// SortSpec is the storage-agnostic form of a sort option.
// A zero SortSpec means storage order.
type SortSpec struct {
	Field string
	Desc  bool
}

// IsZero reports whether no ordering is requested.
func (s SortSpec) IsZero() bool {
	return s.Field == ""
}

// Spec returns the field and direction for the sort option.
func (s SortOption) Spec() SortSpec {
	switch s {
	case SortByStarRating:
		return SortSpec{Field: FieldStarRating, Desc: true}
	case SortByPriceAsc:
		return SortSpec{Field: FieldPricePerNight}
	case SortByPriceDesc:
		return SortSpec{Field: FieldPricePerNight, Desc: true}
	default:
		return SortSpec{}
	}
}

// FilterCriteria defines the optional filters for a hotel search.
// A nil pointer or empty slice means the filter is absent and adds no constraint.
type FilterCriteria struct {
	// Destination is matched case-insensitively as a substring of city or country
	Destination string `json:"destination,omitempty"`

	// MinAdultCount keeps hotels that accommodate at least this many adults
	MinAdultCount *int `json:"adultCount,omitempty"`

	// MinChildCount keeps hotels that accommodate at least this many children
	MinChildCount *int `json:"childCount,omitempty"`

	// RequiredFacilities must all be offered by a matching hotel
	RequiredFacilities []string `json:"facilities,omitempty"`

	// AllowedTypes keeps hotels having at least one of these types
	AllowedTypes []string `json:"types,omitempty"`

	// AllowedStarRatings keeps hotels whose rating is one of these
	AllowedStarRatings []int `json:"stars,omitempty"`

	// MaxPricePerNight keeps hotels priced at or below this amount
	MaxPricePerNight *float64 `json:"maxPrice,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f *FilterCriteria) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Destination == "" &&
		f.MinAdultCount == nil &&
		f.MinChildCount == nil &&
		len(f.RequiredFacilities) == 0 &&
		len(f.AllowedTypes) == 0 &&
		len(f.AllowedStarRatings) == 0 &&
		f.MaxPricePerNight == nil
}
