package domain

import "math"

// Pagination defaults shared by every paginated endpoint.
const (
	// SearchPageSize is the fixed number of hotels per search page
	SearchPageSize = 5

	// DefaultPage is used when the requested page is absent or not positive
	DefaultPage = 1

	// DefaultListLimit is used when a listing limit is absent or not positive
	DefaultListLimit = 10

	// MaxListLimit caps client-provided listing limits
	MaxListLimit = 100
)

// PageWindow is the offset/limit slice of a result set for one page.
type PageWindow struct {
	Skip  int64
	Limit int64
	Pages int64
}

// ClampPage normalizes a requested page number: anything below 1 becomes 1.
func ClampPage(page int) int {
	if page < DefaultPage {
		return DefaultPage
	}
	return page
}

// ClampLimit normalizes a listing limit into [1, MaxListLimit],
// using DefaultListLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// TotalPages returns ceil(total / size), and 0 when total is 0.
func TotalPages(total int64, size int) int64 {
	if total <= 0 || size <= 0 {
		return 0
	}
	s := int64(size)
	return (total + s - 1) / s
}

// Offset returns the number of records to skip for a clamped page.
// It saturates at math.MaxInt64 so far-out pages read as empty instead of wrapping.
func Offset(page, size int) int64 {
	p := int64(ClampPage(page) - 1)
	if size <= 0 || p == 0 {
		return 0
	}
	s := int64(size)
	if p > math.MaxInt64/s {
		return math.MaxInt64
	}
	return p * s
}

// Paginate computes the search page window for the requested page and total matches.
func Paginate(page int, total int64) PageWindow {
	return PageWindow{
		Skip:  Offset(page, SearchPageSize),
		Limit: SearchPageSize,
		Pages: TotalPages(total, SearchPageSize),
	}
}

// ListWindow computes offset and limit for listing endpoints with client-chosen limits.
// It returns the clamped page and limit alongside the skip.
func ListWindow(page, limit int) (clampedPage, clampedLimit int, skip int64) {
	clampedPage = ClampPage(page)
	clampedLimit = ClampLimit(limit)
	return clampedPage, clampedLimit, Offset(clampedPage, clampedLimit)
}
