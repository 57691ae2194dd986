package ui

import "testing"

func TestFormatPriceJPY(t *testing.T) {
	cases := []struct {
		price int
		want  string
	}{
		{0, "¥0"},
		{500, "¥500"},
		{5000, "¥5,000"},
		{50000, "¥50,000"},
		{150000, "¥150,000"},
		{1234567, "¥1,234,567"},
	}

	for _, tc := range cases {
		if got := FormatPriceJPY(tc.price); got != tc.want {
			t.Errorf("FormatPriceJPY(%d) = %q, want %q", tc.price, got, tc.want)
		}
	}
}

func TestCoercePrice(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"abc", 0},
		{"150", 150},
		{"-20", 0},
		{"12.5", 0},
		{"5000", 5000},
	}

	for _, tc := range cases {
		if got := CoercePrice(tc.raw); got != tc.want {
			t.Errorf("CoercePrice(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestAvatarOrDefault(t *testing.T) {
	if got := AvatarOrDefault("", "fallback"); got != "fallback" {
		t.Errorf("empty URL should fall back, got %q", got)
	}
	if got := AvatarOrDefault("https://example.com/a.png", "fallback"); got != "https://example.com/a.png" {
		t.Errorf("set URL should win, got %q", got)
	}
}
