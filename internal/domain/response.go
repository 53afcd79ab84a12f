package domain

// SearchResponse is the paginated envelope returned by hotel search.
type SearchResponse struct {
	// Data contains at most SearchPageSize hotels for the requested page
	Data []Hotel `json:"data"`

	// Pagination describes the whole result set
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationInfo describes the full result set behind a page.
type PaginationInfo struct {
	// Total is the number of matching hotels, ignoring the page window
	Total int64 `json:"total"`

	// Page is the page number that was served
	Page int `json:"page"`

	// Pages is ceil(Total / page size)
	Pages int64 `json:"pages"`
}

// NewSearchResponse creates a SearchResponse for the given page of hotels.
// A nil slice is replaced by an empty one so the JSON is always an array.
func NewSearchResponse(hotels []Hotel, total int64, page int) SearchResponse {
	if hotels == nil {
		hotels = []Hotel{}
	}
	return SearchResponse{
		Data: hotels,
		Pagination: PaginationInfo{
			Total: total,
			Page:  page,
			Pages: TotalPages(total, SearchPageSize),
		},
	}
}
