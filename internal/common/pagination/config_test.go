package pagination_test

import (
	"testing"

	"cmsdesk/internal/common/pagination"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	if config.DefaultPage != 1 {
		t.Errorf("DefaultConfig() DefaultPage = %d, want 1", config.DefaultPage)
	}
	if config.PageSize != 10 {
		t.Errorf("DefaultConfig() PageSize = %d, want 10", config.PageSize)
	}
	if config.MaxPageSize != 100 {
		t.Errorf("DefaultConfig() MaxPageSize = %d, want 100", config.MaxPageSize)
	}
}
