package fetcher

import (
	"fmt"
	"regexp"
	"strconv"
)

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts a YouTube ISO-8601 duration like "PT1H2M30S"
// into a display string ("1:02:30", "2:30", "0:45"). Unparseable input
// renders as "0:00".
func ParseISODuration(duration string) string {
	if duration == "" {
		return "0:00"
	}

	m := isoDurationRe.FindStringSubmatch(duration)
	if m == nil {
		return "0:00"
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatSeconds renders a duration in whole seconds as "M:SS" or "H:MM:SS".
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
