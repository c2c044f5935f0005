package schema

import (
	"fmt"
	"strings"
	"time"
)

// SameDay reports whether two instants fall on the same calendar date in
// their respective locations. Cache freshness and the "today" bucket both
// hinge on this, so both times must already be in the consumer's zone.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BucketFor classifies a contest start against now: same calendar day is
// today, the next calendar day is tomorrow, anything after that is later.
func BucketFor(start, now time.Time) DayBucket {
	start = start.In(now.Location())
	if SameDay(start, now) {
		return TodayBucket
	}
	if SameDay(start, now.AddDate(0, 0, 1)) {
		return TomorrowBucket
	}
	return LaterBucket
}

// FormatDuration renders a contest duration as "2d 4h", "1h 30m" or "45m".
// Days and hours appear whenever nonzero; minutes appear only when the
// duration is under a day. Negative durations render as an empty string.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return ""
	}

	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	// Minutes only matter for durations under a day
	if minutes > 0 && days == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	return strings.Join(parts, " ")
}

// FormatDelta renders a rating delta with an explicit sign for gains.
func FormatDelta(delta int) string {
	if delta > 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}
