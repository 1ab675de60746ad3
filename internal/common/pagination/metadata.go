package pagination

// Metadata is the pagination block reported by the backend alongside a page of results.
// It is taken verbatim from the response; nothing here is recomputed client-side.
type Metadata struct {
	Page      int   `json:"page"`      // Current page number (1-based)
	PageSize  int   `json:"pageSize"`  // Items per page
	PageCount int   `json:"pageCount"` // Number of pages reported by the server
	Total     int64 `json:"total"`     // Total number of items across all pages
}

// HasPrev reports whether a previous page may be requested.
func (m Metadata) HasPrev() bool {
	return m.Page > 1
}

// HasNext reports whether a next page may be requested.
func (m Metadata) HasNext() bool {
	return m.Page < m.PageCount
}
