package utils

import (
	"testing"
	"time"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int
		want   string
	}{
		{0, "Rp 0"},
		{50000, "Rp 50.000"},
		{3585000, "Rp 3.585.000"},
		{1000000000, "Rp 1.000.000.000"},
	}
	for _, c := range cases {
		if got := FormatRupiah(c.amount); got != c.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{59 * time.Minute, "59 minutes ago"},
		{time.Hour, "1 hour ago"},
		{23 * time.Hour, "23 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{72 * time.Hour, "3 days ago"},
	}
	for _, c := range cases {
		if got := TimeAgo(now.Add(-c.age), now); got != c.want {
			t.Errorf("TimeAgo(now-%v) = %q, want %q", c.age, got, c.want)
		}
	}
}
