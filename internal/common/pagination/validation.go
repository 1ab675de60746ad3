package pagination

import "fmt"

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - page is less than 1
//   - page size is less than 1 or greater than config.MaxPageSize
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.PageSize < 1 || p.PageSize > config.MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d", config.MaxPageSize)
	}
	return nil
}

// WithDefaults applies default values from config to Params.
//
// Rules:
//   - If page <= 0, set to config.DefaultPage
//   - If page size <= 0, set to config.PageSize
//   - If page size > config.MaxPageSize, cap to config.MaxPageSize
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = config.PageSize
	}
	if p.PageSize > config.MaxPageSize {
		p.PageSize = config.MaxPageSize
	}
	return p
}
