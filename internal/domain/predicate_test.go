package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleHotels() []Hotel {
	return []Hotel{
		{ID: "h1", City: "Paris", Country: "France", Type: []string{"Boutique"}, StarRating: 4,
			Facilities: []string{"wifi", "pool"}, PricePerNight: 180, AdultCount: 2, ChildCount: 1},
		{ID: "h2", City: "Lyon", Country: "France", Type: []string{"Budget"}, StarRating: 2,
			Facilities: []string{"wifi"}, PricePerNight: 60, AdultCount: 2, ChildCount: 0},
		{ID: "h3", City: "London", Country: "United Kingdom", Type: []string{"Luxury", "Resort"}, StarRating: 5,
			Facilities: []string{"wifi", "pool", "spa"}, PricePerNight: 420, AdultCount: 4, ChildCount: 2},
		{ID: "h4", City: "Parisville", Country: "USA", Type: []string{"Motel"}, StarRating: 3,
			Facilities: nil, PricePerNight: 90, AdultCount: 1, ChildCount: 0},
	}
}

func matchingIDs(p Predicate, hotels []Hotel) []string {
	ids := []string{}
	for i := range hotels {
		if p.Matches(&hotels[i]) {
			ids = append(ids, hotels[i].ID)
		}
	}
	return ids
}

func TestBuildPredicate_EmptyCriteria(t *testing.T) {
	p := BuildPredicate(FilterCriteria{})

	assert.True(t, p.IsEmpty())
	assert.Len(t, matchingIDs(p, sampleHotels()), 4)
}

func TestBuildPredicate_ConstraintPerField(t *testing.T) {
	criteria := FilterCriteria{
		Destination:        "paris",
		MinAdultCount:      intPtr(2),
		MinChildCount:      intPtr(1),
		RequiredFacilities: []string{"wifi", "pool"},
		AllowedTypes:       []string{"Boutique", "Luxury"},
		AllowedStarRatings: []int{3, 4},
		MaxPricePerNight:   floatPtr(200),
	}

	p := BuildPredicate(criteria)
	require.Len(t, p.Constraints, 7)

	assert.Equal(t, SubstringOr("paris", FieldCity, FieldCountry), p.Constraints[0])
	assert.Equal(t, Gte(FieldAdultCount, 2), p.Constraints[1])
	assert.Equal(t, Gte(FieldChildCount, 1), p.Constraints[2])
	assert.Equal(t, AllOf(FieldFacilities, []string{"wifi", "pool"}), p.Constraints[3])
	assert.Equal(t, AnyOf(FieldType, []string{"Boutique", "Luxury"}), p.Constraints[4])
	assert.Equal(t, AnyOf(FieldStarRating, []int{3, 4}), p.Constraints[5])
	assert.Equal(t, Lte(FieldPricePerNight, 200), p.Constraints[6])

	assert.Equal(t, []string{"h1"}, matchingIDs(p, sampleHotels()))
}

func TestPredicate_Matches(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{
			name:     "destination matches city or country case-insensitively",
			criteria: FilterCriteria{Destination: "FRANCE"},
			want:     []string{"h1", "h2"},
		},
		{
			name:     "destination is a substring match",
			criteria: FilterCriteria{Destination: "Paris"},
			want:     []string{"h1", "h4"},
		},
		{
			name:     "regex metacharacters are literal",
			criteria: FilterCriteria{Destination: "Par.s"},
			want:     []string{},
		},
		{
			name:     "adult count is an inclusive lower bound",
			criteria: FilterCriteria{MinAdultCount: intPtr(2)},
			want:     []string{"h1", "h2", "h3"},
		},
		{
			name:     "child count is an inclusive lower bound",
			criteria: FilterCriteria{MinChildCount: intPtr(2)},
			want:     []string{"h3"},
		},
		{
			name:     "facilities require every element",
			criteria: FilterCriteria{RequiredFacilities: []string{"wifi", "pool"}},
			want:     []string{"h1", "h3"},
		},
		{
			name:     "types match any element",
			criteria: FilterCriteria{AllowedTypes: []string{"Resort", "Motel"}},
			want:     []string{"h3", "h4"},
		},
		{
			name:     "stars match any listed rating",
			criteria: FilterCriteria{AllowedStarRatings: []int{2, 5}},
			want:     []string{"h2", "h3"},
		},
		{
			name:     "max price is an inclusive upper bound",
			criteria: FilterCriteria{MaxPricePerNight: floatPtr(90)},
			want:     []string{"h2", "h4"},
		},
		{
			name:     "stars and price with no overlap",
			criteria: FilterCriteria{AllowedStarRatings: []int{3, 4}, MaxPricePerNight: floatPtr(50)},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPredicate(tt.criteria)
			assert.Equal(t, tt.want, matchingIDs(p, sampleHotels()))
		})
	}
}

// A hotel offering only wifi must not match a wifi+pool search.
func TestPredicate_FacilitiesRequireAll(t *testing.T) {
	wifiOnly := Hotel{Facilities: []string{"wifi"}}
	both := Hotel{Facilities: []string{"pool", "gym", "wifi"}}

	p := BuildPredicate(FilterCriteria{RequiredFacilities: []string{"wifi", "pool"}})

	assert.False(t, p.Matches(&wifiOnly))
	assert.True(t, p.Matches(&both))
}

func TestPredicate_Monotonic(t *testing.T) {
	hotels := sampleHotels()
	all := matchingIDs(BuildPredicate(FilterCriteria{}), hotels)

	filters := []FilterCriteria{
		{Destination: "a"},
		{MinAdultCount: intPtr(0)},
		{RequiredFacilities: []string{"spa"}},
		{AllowedTypes: []string{"Budget"}},
		{AllowedStarRatings: []int{1, 2, 3, 4, 5}},
		{MaxPricePerNight: floatPtr(1000)},
	}

	for _, f := range filters {
		narrowed := matchingIDs(BuildPredicate(f), hotels)
		assert.Subset(t, all, narrowed)
	}
}

func TestConstraint_UnknownFieldNeverMatches(t *testing.T) {
	h := sampleHotels()[0]

	assert.False(t, Gte("rooms", 1).Matches(&h))
	assert.False(t, AnyOf("brand", []string{"x"}).Matches(&h))
	assert.False(t, Constraint{Op: Operator("near")}.Matches(&h))
}

func TestConstraint_String(t *testing.T) {
	c := SubstringOr("rome", FieldCity, FieldCountry)
	assert.Equal(t, "substring_or(city|country, rome)", c.String())
	assert.Equal(t, FieldCity, c.Field())
}
