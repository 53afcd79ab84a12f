package timeutil

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// locationCache stores loaded timezone locations.
var locationCache sync.Map

// Timezone names used by the service.
const (
	// UTC is the zone timestamps are stored in.
	UTC = "UTC"

	// London is the zone of the hotel operator; stays are charged in GBP.
	London = "Europe/London"
)

// Layouts accepted and produced for stay dates.
const (
	// DateLayout is the ISO calendar date (YYYY-MM-DD)
	DateLayout = "2006-01-02"

	// StayDateLayout is the human-readable date used in confirmation emails
	StayDateLayout = "Mon, 2 Jan 2006"
)

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// InTimezone converts a time to the specified timezone.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// ParseISODate parses an ISO-8601 date or timestamp as sent by booking forms.
// Both "2025-12-15" and "2025-12-15T14:00:00Z" are accepted; bare dates are UTC midnight.
func ParseISODate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO-8601 date", value)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatStayDate renders a stay date in timezone for emails.
// An unknown timezone falls back to UTC.
func FormatStayDate(t time.Time, timezone string) string {
	local, err := InTimezone(t, timezone)
	if err != nil {
		local = t.UTC()
	}
	return local.Format(StayDateLayout)
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NightsBetween counts calendar nights from checkIn to checkOut, both taken in UTC.
// It returns 0 when checkOut is not after checkIn.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := StartOfDay(checkIn.UTC())
	out := StartOfDay(checkOut.UTC())
	if !out.After(in) {
		return 0
	}
	return int(out.Sub(in).Hours()/24 + 0.5)
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
