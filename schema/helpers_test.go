package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"same day different hour", base, base.Add(13 * time.Hour), true},
		{"midnight boundary", base, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), false},
		{"one minute before midnight", time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC), base, true},
		{"previous day", base, base.AddDate(0, 0, -1), false},
		{"same day number different month", base, time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC), false},
		{"same day number different year", base, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b), "SameDay(%v, %v)", tt.a, tt.b)
		})
	}
}

func TestBucketFor(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  DayBucket
	}{
		{"earlier today", time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), TodayBucket},
		{"later today", time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC), TodayBucket},
		{"tomorrow morning", time.Date(2025, 3, 16, 1, 0, 0, 0, time.UTC), TomorrowBucket},
		{"day after tomorrow", time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), LaterBucket},
		{"next week", now.AddDate(0, 0, 7), LaterBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketFor(tt.start, now), "BucketFor(%v)", tt.start)
		})
	}
}

func TestBucketForCrossesZones(t *testing.T) {
	// A start just past midnight UTC is still "today" for a viewer several
	// hours behind UTC. The bucket follows the viewer's calendar.
	behind := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2025, 3, 15, 20, 0, 0, 0, behind)
	start := time.Date(2025, 3, 16, 1, 30, 0, 0, time.UTC) // 20:30 on the 15th in UTC-5

	assert.Equal(t, TodayBucket, BucketFor(start, now), "start should bucket in the viewer's zone")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"minutes only", 23 * time.Minute, "23m"},
		{"hours and minutes", 90 * time.Minute, "1h 30m"},
		{"day and hour", 25 * time.Hour, "1d 1h"},
		{"exact hours", 2 * time.Hour, "2h"},
		{"days and hours", 52 * time.Hour, "2d 4h"},
		{"days drop minutes", 24*time.Hour + 30*time.Minute, "1d"},
		{"exact day", 24 * time.Hour, "1d"},
		{"zero", 0, ""},
		{"negative", -time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d), "FormatDuration(%v)", tt.d)
		})
	}
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+42", FormatDelta(42), "gains carry an explicit sign")
	assert.Equal(t, "-17", FormatDelta(-17), "losses keep the minus sign")
	assert.Equal(t, "0", FormatDelta(0), "zero renders without a sign")
}
