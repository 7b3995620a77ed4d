package utils

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		page, limit    int
		total          int64
		wantTotalPages int
	}{
		{1, 10, 0, 0},
		{1, 10, 1, 1},
		{1, 10, 10, 1},
		{1, 10, 11, 2},
		{3, 5, 42, 9},
	}
	for _, c := range cases {
		p := NewPagination(c.page, c.limit, c.total)
		if p.TotalPages != c.wantTotalPages {
			t.Errorf("NewPagination(%d, %d, %d).TotalPages = %d, want %d",
				c.page, c.limit, c.total, p.TotalPages, c.wantTotalPages)
		}
		if p.Page != c.page || p.Limit != c.limit || p.Total != c.total {
			t.Errorf("NewPagination(%d, %d, %d) did not echo inputs: %+v",
				c.page, c.limit, c.total, p)
		}
	}
}
