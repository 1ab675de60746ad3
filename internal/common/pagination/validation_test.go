package pagination_test

import (
	"testing"

	"cmsdesk/internal/common/pagination"
)

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name    string
		params  pagination.Params
		wantErr bool
	}{
		{name: "valid", params: pagination.Params{Page: 1, PageSize: 10}},
		{name: "max size", params: pagination.Params{Page: 7, PageSize: 100}},
		{name: "zero page", params: pagination.Params{Page: 0, PageSize: 10}, wantErr: true},
		{name: "zero size", params: pagination.Params{Page: 1, PageSize: 0}, wantErr: true},
		{name: "size over max", params: pagination.Params{Page: 1, PageSize: 101}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate(config)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParams_WithDefaults(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name   string
		params pagination.Params
		want   pagination.Params
	}{
		{name: "all zero", params: pagination.Params{}, want: pagination.Params{Page: 1, PageSize: 10}},
		{name: "keeps valid values", params: pagination.Params{Page: 4, PageSize: 6}, want: pagination.Params{Page: 4, PageSize: 6}},
		{name: "caps size", params: pagination.Params{Page: 2, PageSize: 500}, want: pagination.Params{Page: 2, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.params.WithDefaults(config); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
