package model

import "testing"

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"youtube", PlatformYouTube, false},
		{"tiktok", PlatformTikTok, false},
		{"twitter", PlatformTwitter, false},
		{"instagram", "", true},
		{"YouTube", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePlatform(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlatform(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePlatform(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAllPlatformsCovered(t *testing.T) {
	if len(AllPlatforms) != 3 {
		t.Fatalf("AllPlatforms has %d entries, want 3", len(AllPlatforms))
	}
	for _, p := range AllPlatforms {
		if _, err := ParsePlatform(string(p)); err != nil {
			t.Errorf("ParsePlatform rejects listed platform %q: %v", p, err)
		}
	}
}
