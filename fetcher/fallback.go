package fetcher

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"viral-daily/model"
)

// MockSource generates plausible platform data locally when a live API is
// unavailable. It is seeded so tests can pin its output exactly.
type MockSource struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewMockSource(seed int64) *MockSource {
	return &MockSource{
		rng: rand.New(rand.NewSource(seed)),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// NewMockSourceAt fixes the clock as well as the seed, for tests.
func NewMockSourceAt(seed int64, now func() time.Time) *MockSource {
	return &MockSource{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

type youtubeSeed struct {
	id      string
	title   string
	channel string
	views   int64
	likes   int64
}

var youtubeSeeds = []youtubeSeed{
	{"dQw4w9WgXcQ", "Rick Astley - Never Gonna Give You Up (Official Video)", "Rick Astley", 1400000000, 15000000},
	{"9bZkp7q19f0", "PSY - GANGNAM STYLE(강남스타일) M/V", "officialpsy", 4900000000, 24000000},
	{"kJQP7kiw5Fk", "Luis Fonsi - Despacito ft. Daddy Yankee", "LuisFonsiVEVO", 8200000000, 48000000},
	{"fJ9rUzIMcZQ", "Queen - Bohemian Rhapsody (Official Video Remastered)", "Queen Official", 1800000000, 12000000},
	{"YQHsXMglC9A", "Adele - Hello (Official Music Video)", "AdeleVEVO", 3100000000, 18000000},
	{"JGwWNGJdvx8", "Ed Sheeran - Shape of You (Official Video)", "Ed Sheeran", 5700000000, 32000000},
	{"hTWKbfoikeg", "Nirvana - Smells Like Teen Spirit (Official Music Video)", "Nirvana", 1500000000, 11000000},
	{"60ItHLz5WEA", "Alan Walker - Faded", "Alan Walker", 3300000000, 19000000},
}

type tiktokSeed struct {
	username string
	title    string
	views    int64
	likes    int64
}

var tiktokSeeds = []tiktokSeed{
	{"khaby.lame", "This transition hit different 🔥", 47300000, 8900000},
	{"charlidamelio", "Teaching my mom this dance 💃", 35800000, 6700000},
	{"addisonre", "POV: You're the main character ✨", 28400000, 5200000},
	{"zachking", "Magic tricks that will blow your mind 🪄", 41200000, 7800000},
	{"bellapoarch", "This sound is everywhere now 🎵", 52600000, 9100000},
	{"dixiedamelio", "Trying viral TikTok hacks part 47", 22100000, 4300000},
	{"spencerx", "Beatboxing to viral sounds 🎤", 18700000, 3600000},
	{"mrbeast", "I Gave $100,000 To Random TikTokers", 89200000, 12400000},
}

type twitterSeed struct {
	username string
	tweetID  string
	title    string
	views    int64
	likes    int64
}

var twitterSeeds = []twitterSeed{
	{"MrBeast", "1816797864340054018", "I'm giving away $1,000,000 to random followers! 💰", 12800000, 2100000},
	{"elonmusk", "1815736731766399436", "Mars colony update: We're closer than you think 🚀", 45200000, 3800000},
	{"TheRock", "1814567890123456789", "The grind never stops. What's your Monday motivation? 💪", 8900000, 1200000},
	{"RyanReynolds", "1813456789012345678", "Blake told me to tweet this. I don't know why. 🤷‍♂️", 6700000, 890000},
	{"justinbieber", "1812345678901234567", "New music dropping soon! Thanks for all the love ❤️", 15600000, 2800000},
	{"ArianaGrande", "1811234567890123456", "thank u, next (but make it a tweet) ✨", 11400000, 1900000},
	{"taylorswift13", "1810123456789012345", "The vault has secrets... 🔐 #TaylorSwift", 28900000, 4200000},
	{"rihanna", "1809012345678901234", "Fenty Beauty x Savage X Fenty collab coming 👑", 9800000, 1500000},
}

// YouTubeVideos generates fallback YouTube records rotating through well
// known videos with jittered metrics.
func (m *MockSource) YouTubeVideos(limit int) []model.Video {
	m.mu.Lock()
	defer m.mu.Unlock()

	limit = clampLimit(limit)
	now := m.now()
	videos := make([]model.Video, 0, limit)

	for i := 0; i < limit; i++ {
		seed := youtubeSeeds[i%len(youtubeSeeds)]

		views := seed.views + m.rng.Int63n(100000001) - 50000000
		likes := seed.likes + m.rng.Int63n(200001) - 100000
		duration := fmt.Sprintf("%d:%02d", 2+m.rng.Intn(4), 10+m.rng.Intn(50))

		videos = append(videos, model.Video{
			ID:          fmt.Sprintf("yt_mock_%s_%d", seed.id, i),
			Title:       seed.title,
			URL:         fmt.Sprintf("https://www.youtube.com/watch?v=%s", seed.id),
			Thumbnail:   fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", seed.id),
			Platform:    model.PlatformYouTube,
			Views:       views,
			Likes:       likes,
			Author:      seed.channel,
			Duration:    duration,
			ViralScore:  85.0 + m.rng.Float64()*10.0,
			PublishedAt: now.Add(-time.Duration(1+m.rng.Intn(48)) * time.Hour),
			FetchedAt:   now,
		})
	}
	return videos
}

// TikTokVideos generates fallback TikTok records with realistic 19-digit
// video IDs and placeholder thumbnails.
func (m *MockSource) TikTokVideos(limit int) []model.Video {
	m.mu.Lock()
	defer m.mu.Unlock()

	limit = clampLimit(limit)
	now := m.now()
	videos := make([]model.Video, 0, limit)

	for i := 0; i < limit; i++ {
		seed := tiktokSeeds[i%len(tiktokSeeds)]

		videoID := 7000000000000000000 + m.rng.Int63n(899999999999999999) + 100000000000000000
		score := 82.0 + m.rng.Float64()*10.0

		videos = append(videos, model.Video{
			ID:          fmt.Sprintf("tt_mock_%d", videoID),
			Title:       seed.title,
			URL:         fmt.Sprintf("https://www.tiktok.com/@%s/video/%d", seed.username, videoID),
			Thumbnail:   m.PlatformThumbnail(model.PlatformTikTok, score, seed.title),
			Platform:    model.PlatformTikTok,
			Views:       seed.views + m.rng.Int63n(4000001) - 2000000,
			Likes:       seed.likes + m.rng.Int63n(200001) - 100000,
			Author:      "@" + seed.username,
			Duration:    fmt.Sprintf("0:%02d", 15+m.rng.Intn(45)),
			ViralScore:  score,
			PublishedAt: now.Add(-time.Duration(1+m.rng.Intn(72)) * time.Hour),
			FetchedAt:   now,
		})
	}
	return videos
}

// TwitterVideos generates fallback Twitter records from well known accounts.
func (m *MockSource) TwitterVideos(limit int) []model.Video {
	m.mu.Lock()
	defer m.mu.Unlock()

	limit = clampLimit(limit)
	now := m.now()
	videos := make([]model.Video, 0, limit)

	for i := 0; i < limit; i++ {
		seed := twitterSeeds[i%len(twitterSeeds)]
		score := 75.0 + m.rng.Float64()*13.0

		videos = append(videos, model.Video{
			ID:          fmt.Sprintf("tw_mock_%s_%d", seed.tweetID, i),
			Title:       seed.title,
			URL:         fmt.Sprintf("https://twitter.com/%s/status/%s", seed.username, seed.tweetID),
			Thumbnail:   m.PlatformThumbnail(model.PlatformTwitter, score, seed.title),
			Platform:    model.PlatformTwitter,
			Views:       seed.views + m.rng.Int63n(1000001) - 500000,
			Likes:       seed.likes + m.rng.Int63n(100001) - 50000,
			Shares:      10000 + m.rng.Int63n(90001),
			Author:      "@" + seed.username,
			Duration:    "0:30",
			ViralScore:  score,
			PublishedAt: now.Add(-time.Duration(1+m.rng.Intn(96)) * time.Hour),
			FetchedAt:   now,
		})
	}
	return videos
}

// Videos dispatches to the platform-specific generator.
func (m *MockSource) Videos(platform model.Platform, limit int) []model.Video {
	switch platform {
	case model.PlatformTikTok:
		return m.TikTokVideos(limit)
	case model.PlatformTwitter:
		return m.TwitterVideos(limit)
	default:
		return m.YouTubeVideos(limit)
	}
}

type thumbnailStyle struct {
	color string
	icon  string
	label string
}

var thumbnailStyles = map[model.Platform]thumbnailStyle{
	model.PlatformTikTok:  {"#000000", "🎵", "TIKTOK"},
	model.PlatformTwitter: {"#1DA1F2", "🐦", "TWITTER"},
	model.PlatformYouTube: {"#FF0000", "📺", "YOUTUBE"},
}

// PlatformThumbnail renders an inline SVG data-URI placeholder for platforms
// whose APIs expose no usable thumbnail. Every record must carry a non-empty
// thumbnail, so this is the terminal fallback.
func (m *MockSource) PlatformThumbnail(platform model.Platform, viralScore float64, title string) string {
	style, ok := thumbnailStyles[platform]
	if !ok {
		style = thumbnailStyle{"#6B7280", "🎬", "VIDEO"}
	}

	displayTitle := title
	if len([]rune(displayTitle)) > 30 {
		displayTitle = string([]rune(displayTitle)[:30]) + "..."
	}

	svg := fmt.Sprintf(`<svg width="400" height="225" xmlns="http://www.w3.org/2000/svg">`+
		`<rect width="400" height="225" fill="%s"/>`+
		`<text x="200" y="80" text-anchor="middle" fill="white" font-size="40" font-weight="bold">%s</text>`+
		`<text x="200" y="110" text-anchor="middle" fill="white" font-size="20" font-weight="bold">%s</text>`+
		`<text x="200" y="135" text-anchor="middle" fill="white" font-size="16" opacity="0.9">Viral Score: %d</text>`+
		`<text x="200" y="160" text-anchor="middle" fill="white" font-size="12" opacity="0.7">VIRAL DAILY</text>`+
		`<text x="200" y="207" text-anchor="middle" fill="white" font-size="11" opacity="0.8">%s</text>`+
		`</svg>`,
		style.color, style.icon, style.label, int(viralScore), escapeXML(displayTitle))

	return "data:image/svg+xml;charset=utf-8," + url.PathEscape(svg)
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
