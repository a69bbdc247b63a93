package service

import (
	"strings"
	"testing"

	"viral-daily/fetcher"
	"viral-daily/model"
)

func TestSlotCount(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{1, 0},
		{5, 0},
		{6, 1},
		{11, 1},
		{12, 2},
		{40, 6},
		{50, 8},
	}

	for _, tt := range tests {
		if got := SlotCount(tt.limit); got != tt.want {
			t.Errorf("SlotCount(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestAppendSponsored(t *testing.T) {
	ads := NewAdService(fetcher.NewMockSource(1))

	organic := []model.Video{
		{ID: "v1", Platform: model.PlatformTikTok, ViralScore: 90},
		{ID: "v2", Platform: model.PlatformTikTok, ViralScore: 80},
	}

	out := ads.AppendSponsored(organic, model.PlatformTikTok, 2)

	if len(out) != 4 {
		t.Fatalf("got %d videos, want 4", len(out))
	}
	for i, v := range out[2:] {
		if !v.IsSponsored {
			t.Errorf("appended video %d not marked sponsored", i)
		}
		if v.Platform != model.PlatformTikTok {
			t.Errorf("sponsored video %d has platform %s, want tiktok", i, v.Platform)
		}
		if !strings.Contains(v.URL, "/video/") {
			t.Errorf("sponsored video %d URL %q does not match tiktok shape", i, v.URL)
		}
		if v.Thumbnail == "" {
			t.Errorf("sponsored video %d has empty thumbnail", i)
		}
		if v.ViralScore != 0 {
			t.Errorf("sponsored video %d has score %f, want 0", i, v.ViralScore)
		}
	}
}

func TestAppendSponsoredZeroCount(t *testing.T) {
	ads := NewAdService(fetcher.NewMockSource(1))
	organic := []model.Video{{ID: "v1", Platform: model.PlatformYouTube}}

	out := ads.AppendSponsored(organic, model.PlatformYouTube, 0)
	if len(out) != 1 {
		t.Errorf("got %d videos, want 1 (no ads appended)", len(out))
	}
}

func TestAppendSponsoredUnknownPlatformDefaultsToYouTube(t *testing.T) {
	ads := NewAdService(fetcher.NewMockSource(1))

	out := ads.AppendSponsored(nil, model.Platform(""), 1)
	if len(out) != 1 {
		t.Fatalf("got %d videos, want 1", len(out))
	}
	if out[0].Platform != model.PlatformYouTube {
		t.Errorf("got platform %s, want youtube", out[0].Platform)
	}
	if !strings.Contains(out[0].URL, "/watch?v=") {
		t.Errorf("URL %q does not match youtube shape", out[0].URL)
	}
}
