package iocache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
)

// CurrentCacheVersion defines the version of the cache payload schema.
const CurrentCacheVersion = 1

// Cache keys for the day-bounded store.
const (
	KeyTodayContests    = "codescout_todays_contests"
	KeyUpcomingContests = "codescout_contests"
	KeyPerformance      = "codescout_performance"
	KeySolvedProblems   = "codescout_solved_problems"
)

// UserKey scopes a cache key to a user so distinct accounts never share entries.
func UserKey(base, userID string) string {
	return base + "_" + userID
}

// FetchFunc produces a fresh payload when the cache cannot serve one.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// GetOrFetch returns the cached payload for key if it was stored on the same
// calendar day as now, otherwise it calls fetch and overwrites the entry.
// A failed fetch surfaces its error and leaves any prior entry in place.
// The second return value reports whether the payload came from the cache.
func GetOrFetch[T any](ctx context.Context, store contract.CacheStore, key string, now time.Time, fetch FetchFunc[T]) (T, bool, error) {
	if store != nil {
		if cached, ok := checkDayHit[T](store, key, now); ok {
			return cached, true, nil
		}
	}
	return fetchAndStore(ctx, store, key, now, fetch)
}

// Refresh bypasses the freshness check and always calls fetch, overwriting
// the cached entry on success.
func Refresh[T any](ctx context.Context, store contract.CacheStore, key string, now time.Time, fetch FetchFunc[T]) (T, error) {
	result, _, err := fetchAndStore(ctx, store, key, now, fetch)
	return result, err
}

// checkDayHit attempts to retrieve and validate a cached result.
func checkDayHit[T any](store contract.CacheStore, key string, now time.Time) (T, bool) {
	var zero T
	data, version, ts, err := store.Get(key)
	if err != nil {
		return zero, false // Cache miss
	}

	// Validate version and same-day freshness
	if version == CurrentCacheVersion && schema.SameDay(time.Unix(ts, 0), now) {
		var result T
		if err := json.Unmarshal(data, &result); err == nil {
			return result, true // Cache hit
		}
	}

	return zero, false // Cache miss (stale or version mismatch)
}

// fetchAndStore fetches the result and stores it in the cache.
func fetchAndStore[T any](ctx context.Context, store contract.CacheStore, key string, now time.Time, fetch FetchFunc[T]) (T, bool, error) {
	result, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	if store != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = store.Set(key, data, CurrentCacheVersion, now.Unix())
		}
	}

	return result, false, nil
}
