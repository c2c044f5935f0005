package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContestDuration(t *testing.T) {
	start := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	c := Contest{Start: start, End: start.Add(2 * time.Hour)}
	assert.Equal(t, 2*time.Hour, c.Duration(), "normal contest length")

	// A feed glitch placing the end before the start clamps to zero.
	inverted := Contest{Start: start, End: start.Add(-time.Hour)}
	assert.Equal(t, time.Duration(0), inverted.Duration(), "inverted range clamps to zero")
}

func TestSessionClaimsExpired(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   bool
	}{
		{"future expiry", now.Add(time.Hour), false},
		{"past expiry", now.Add(-time.Hour), true},
		{"exactly now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := SessionClaims{Expiry: tt.expiry}
			assert.Equal(t, tt.want, claims.Expired(now), "Expired at %v", tt.expiry)
		})
	}
}

func TestPlatformDisplayName(t *testing.T) {
	assert.Equal(t, "Codeforces", Codeforces.DisplayName(), "known platform maps to its display name")
	assert.Equal(t, "hackerrank.com", Platform("hackerrank.com").DisplayName(), "unknown platform falls back to the raw domain")
}

func TestAllPlatformsCovered(t *testing.T) {
	// Every platform in the feed iteration order must have a display name,
	// and there must be no duplicates.
	seen := make(map[Platform]struct{}, len(AllPlatforms))
	for _, p := range AllPlatforms {
		assert.Contains(t, DisplayNames, p, "platform %s should have a display name", p)
		assert.NotContains(t, seen, p, "platform %s should appear once", p)
		seen[p] = struct{}{}
	}
	assert.Len(t, AllPlatforms, len(DisplayNames), "feed order should cover every named platform")
}

func TestValidityMaps(t *testing.T) {
	assert.Contains(t, ValidOutputModes, TextOut, "text is a valid output mode")
	assert.NotContains(t, ValidOutputModes, OutputMode("yaml"), "yaml is not a valid output mode")

	assert.Contains(t, ValidDatabaseBackends, SQLiteBackend, "sqlite is a valid backend")
	assert.Contains(t, ValidDatabaseBackends, NoneBackend, "none is a valid backend")
	assert.NotContains(t, ValidDatabaseBackends, DatabaseBackend("oracle"), "oracle is not a valid backend")
}
