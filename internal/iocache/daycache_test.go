package iocache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakePayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestGetOrFetchSameDayHit(t *testing.T) {
	store := &MockCacheStore{}
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	stored := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC) // same day, earlier

	data, _ := json.Marshal(fakePayload{Name: "cached", Count: 3})
	store.On("Get", "codescout_contests").Return(data, CurrentCacheVersion, stored.Unix(), nil)

	result, fromCache, err := GetOrFetch(context.Background(), store, KeyUpcomingContests, now,
		func(ctx context.Context) (fakePayload, error) {
			t.Fatal("fetch should not run on a same-day hit")
			return fakePayload{}, nil
		})

	assert.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, "cached", result.Name)
	store.AssertExpectations(t)
}

func TestGetOrFetchStaleEntryRefetches(t *testing.T) {
	store := &MockCacheStore{}
	now := time.Date(2025, 3, 14, 0, 30, 0, 0, time.UTC)
	stored := time.Date(2025, 3, 13, 23, 30, 0, 0, time.UTC) // an hour ago, but yesterday

	data, _ := json.Marshal(fakePayload{Name: "stale"})
	store.On("Get", "codescout_contests").Return(data, CurrentCacheVersion, stored.Unix(), nil)
	store.On("Set", "codescout_contests", mock.Anything, CurrentCacheVersion, now.Unix()).Return(nil)

	result, fromCache, err := GetOrFetch(context.Background(), store, KeyUpcomingContests, now,
		func(ctx context.Context) (fakePayload, error) {
			return fakePayload{Name: "fresh"}, nil
		})

	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "fresh", result.Name)
	store.AssertExpectations(t)
}

func TestGetOrFetchVersionMismatchRefetches(t *testing.T) {
	store := &MockCacheStore{}
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	data, _ := json.Marshal(fakePayload{Name: "old-format"})
	store.On("Get", "codescout_contests").Return(data, CurrentCacheVersion+1, now.Unix(), nil)
	store.On("Set", "codescout_contests", mock.Anything, CurrentCacheVersion, now.Unix()).Return(nil)

	result, fromCache, err := GetOrFetch(context.Background(), store, KeyUpcomingContests, now,
		func(ctx context.Context) (fakePayload, error) {
			return fakePayload{Name: "fresh"}, nil
		})

	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "fresh", result.Name)
}

func TestGetOrFetchMissThenFetchError(t *testing.T) {
	store := &MockCacheStore{}
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	store.On("Get", "codescout_contests").Return([]byte(nil), 0, int64(0), sql.ErrNoRows)

	fetchErr := errors.New("provider unavailable")
	_, fromCache, err := GetOrFetch(context.Background(), store, KeyUpcomingContests, now,
		func(ctx context.Context) (fakePayload, error) {
			return fakePayload{}, fetchErr
		})

	assert.ErrorIs(t, err, fetchErr)
	assert.False(t, fromCache)
	// A failed fetch must never overwrite the stored entry
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshBypassesFreshEntry(t *testing.T) {
	store := &MockCacheStore{}
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	store.On("Set", "codescout_contests", mock.Anything, CurrentCacheVersion, now.Unix()).Return(nil)

	result, err := Refresh(context.Background(), store, KeyUpcomingContests, now,
		func(ctx context.Context) (fakePayload, error) {
			return fakePayload{Name: "forced"}, nil
		})

	assert.NoError(t, err)
	assert.Equal(t, "forced", result.Name)
	store.AssertNotCalled(t, "Get", mock.Anything)
	store.AssertExpectations(t)
}

func TestGetOrFetchNilStore(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	result, fromCache, err := GetOrFetch(context.Background(), nil, KeyUpcomingContests, now,
		func(ctx context.Context) (fakePayload, error) {
			return fakePayload{Name: "direct"}, nil
		})

	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "direct", result.Name)
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "codescout_performance_42", UserKey(KeyPerformance, "42"))
	assert.Equal(t, "codescout_solved_problems_42", UserKey(KeySolvedProblems, "42"))
}
