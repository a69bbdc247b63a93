package fetcher

import "testing"

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT1M30S", "1:30"},
		{"PT4M13S", "4:13"},
		{"PT1H2M30S", "1:02:30"},
		{"PT2H", "2:00:00"},
		{"PT45S", "0:45"},
		{"PT10M", "10:00"},
		{"PT1H5S", "1:00:05"},
		{"", "0:00"},
		{"garbage", "0:00"},
		{"P1DT2H", "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseISODuration(tt.in); got != tt.want {
				t.Errorf("ParseISODuration(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{45, "0:45"},
		{90, "1:30"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
