package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        ListParams
		wantPage  int
		wantLimit int
	}{
		{name: "zero values get defaults", in: ListParams{}, wantPage: 1, wantLimit: 10},
		{name: "negative values get defaults", in: ListParams{Page: -3, Limit: -1}, wantPage: 1, wantLimit: 10},
		{name: "valid values pass through", in: ListParams{Page: 4, Limit: 25}, wantPage: 4, wantLimit: 25},
		{name: "only page invalid", in: ListParams{Page: 0, Limit: 5}, wantPage: 1, wantLimit: 5},
		{name: "only limit invalid", in: ListParams{Page: 2, Limit: 0}, wantPage: 2, wantLimit: 10},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.in.Normalize()
			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, tc.wantLimit, got.Limit)
		})
	}
}

func TestListParamsOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ListParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, ListParams{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 15, ListParams{Page: 4, Limit: 5}.Offset())
}

func TestListParamsPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		total int
		want  int
	}{
		{name: "no rows means no pages", limit: 10, total: 0, want: 0},
		{name: "partial page counts as one", limit: 10, total: 3, want: 1},
		{name: "exact multiple", limit: 10, total: 20, want: 2},
		{name: "remainder adds a page", limit: 10, total: 25, want: 3},
		{name: "limit one", limit: 1, total: 7, want: 7},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := ListParams{Page: 1, Limit: tc.limit}
			assert.Equal(t, tc.want, p.Pages(tc.total))
		})
	}
}
