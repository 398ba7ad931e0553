package dto_test

import (
	"net/http/httptest"
	"testing"

	"gearbase/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  dto.QueryParams
	}{
		{
			name:  "defaults when nothing is supplied",
			query: "",
			want:  dto.QueryParams{Page: 1, Limit: 20},
		},
		{
			name:  "explicit page and limit",
			query: "page=3&limit=50",
			want:  dto.QueryParams{Page: 3, Limit: 50},
		},
		{
			name:  "limit is clamped to the maximum",
			query: "limit=5000",
			want:  dto.QueryParams{Page: 1, Limit: 200},
		},
		{
			name:  "zero and negative values fall back to defaults",
			query: "page=0&limit=-5",
			want:  dto.QueryParams{Page: 1, Limit: 20},
		},
		{
			name:  "unparseable values fall back to defaults",
			query: "page=abc&limit=xyz",
			want:  dto.QueryParams{Page: 1, Limit: 20},
		},
		{
			name:  "sort fields pass through with normalized direction",
			query: "sort_by=name&sort_dir=desc",
			want:  dto.QueryParams{Page: 1, Limit: 20, SortBy: "name", SortDir: dto.SortDirDesc},
		},
		{
			name:  "invalid sort direction is dropped",
			query: "sort_dir=sideways",
			want:  dto.QueryParams{Page: 1, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/gear?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(r)

			assert.Equal(t, tt.want, params)
		})
	}
}
