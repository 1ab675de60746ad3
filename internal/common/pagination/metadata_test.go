package pagination_test

import (
	"testing"

	"cmsdesk/internal/common/pagination"
)

func TestMetadata_Navigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		meta     pagination.Metadata
		wantPrev bool
		wantNext bool
	}{
		{name: "single page", meta: pagination.Metadata{Page: 1, PageSize: 10, PageCount: 1, Total: 4}},
		{name: "empty result", meta: pagination.Metadata{Page: 1, PageSize: 10, PageCount: 0, Total: 0}},
		{name: "first of three", meta: pagination.Metadata{Page: 1, PageCount: 3}, wantNext: true},
		{name: "middle", meta: pagination.Metadata{Page: 2, PageCount: 3}, wantPrev: true, wantNext: true},
		{name: "last", meta: pagination.Metadata{Page: 3, PageCount: 3}, wantPrev: true},
		{name: "beyond last", meta: pagination.Metadata{Page: 9, PageCount: 3}, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.meta.HasPrev(); got != tt.wantPrev {
				t.Errorf("HasPrev() = %v, want %v", got, tt.wantPrev)
			}
			if got := tt.meta.HasNext(); got != tt.wantNext {
				t.Errorf("HasNext() = %v, want %v", got, tt.wantNext)
			}
		})
	}
}

func TestNewResponse(t *testing.T) {
	t.Parallel()

	meta := pagination.Metadata{Page: 2, PageSize: 2, PageCount: 5, Total: 9}
	resp := pagination.NewResponse([]string{"a", "b"}, meta)

	if len(resp.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(resp.Data))
	}
	if resp.Pagination != meta {
		t.Errorf("Pagination = %+v, want %+v", resp.Pagination, meta)
	}
}
