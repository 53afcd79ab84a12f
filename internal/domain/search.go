package domain

// SearchQuery is the typed form of a hotel search request.
type SearchQuery struct {
	// Filters narrows the result set; empty filters match every hotel
	Filters FilterCriteria `json:"filters"`

	// Sort selects the ordering; unrecognized values mean storage order
	Sort SortOption `json:"sortOption,omitempty"`

	// Page is the 1-based page number (clamped to 1)
	Page int `json:"page"`
}

// SetDefaults applies default values to empty optional fields.
func (q *SearchQuery) SetDefaults() {
	q.Page = ClampPage(q.Page)
	if !q.Sort.IsValid() {
		q.Sort = SortUnsorted
	}
}

// FindOptions tells a repository which window of a result set to return.
type FindOptions struct {
	Sort  SortSpec
	Skip  int64
	Limit int64
}
