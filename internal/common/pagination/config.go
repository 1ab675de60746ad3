// Package pagination provides the paging model shared by the list views:
// request parameters, server-reported metadata and the navigation rules
// derived from it.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage int // Default page number (typically 1)
	PageSize    int // Items requested per page (typically 10)
	MaxPageSize int // Maximum page size accepted by the backend (typically 100)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, size=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage: 1,
		PageSize:    10,
		MaxPageSize: 100,
	}
}
