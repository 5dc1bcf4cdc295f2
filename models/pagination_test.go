package models

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name              string
		page, limit, total int64
		wantPages         int64
	}{
		{"partial last page", 2, 10, 25, 3},
		{"empty collection", 1, 10, 0, 0},
		{"exact multiple", 1, 10, 30, 3},
		{"single record", 1, 10, 1, 1},
		{"limit larger than total", 1, 100, 7, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NewPagination(c.page, c.limit, c.total)
			if got.Pages != c.wantPages {
				t.Errorf("pages: expected %d, got %d", c.wantPages, got.Pages)
			}
			if got.Page != c.page || got.Limit != c.limit || got.Total != c.total {
				t.Errorf("metadata echoed wrong: %+v", got)
			}
		})
	}
}
