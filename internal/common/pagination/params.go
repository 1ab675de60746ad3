package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// Params represents the page a view asks the backend for.
type Params struct {
	Page     int // 1-based page number
	PageSize int // Items per page
}

// ParsePage parses a user-entered page number.
// Returns an error if the value is not a positive integer.
func ParsePage(raw string) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page %q: must be a positive integer", raw)
	}
	return page, nil
}
