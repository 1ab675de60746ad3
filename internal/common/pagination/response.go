package pagination

// Response is a generic paginated result.
// T is the type of data items (e.g., entity.Article).
type Response[T any] struct {
	Data       []T      `json:"data"`       // Items of the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata as reported by the server
}

// NewResponse creates a new paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
