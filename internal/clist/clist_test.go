package clist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codescout/codescout/schema"
	"github.com/stretchr/testify/assert"
)

func TestFetchUpcoming(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "clister", q.Get("username"))
		assert.Equal(t, "secret", q.Get("api_key"))
		assert.Equal(t, "codeforces.com", q.Get("resource"))
		assert.Equal(t, "true", q.Get("upcoming"))
		assert.Equal(t, "json", q.Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"objects": [
				{
					"id": 101,
					"resource": "codeforces.com",
					"event": "Codeforces Round 999",
					"start": "2025-03-14T17:35:00",
					"end": "2025-03-14T19:35:00",
					"href": "https://codeforces.com/contests/999"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "clister", "secret")
	contests, err := client.FetchUpcoming(context.Background(), schema.Codeforces)
	assert.NoError(t, err)
	assert.Len(t, contests, 1)

	contest := contests[0]
	assert.Equal(t, int64(101), contest.ID)
	assert.Equal(t, schema.Codeforces, contest.Resource)
	assert.Equal(t, "Codeforces Round 999", contest.Event)
	// Feed timestamps carry no zone and are pinned to UTC
	assert.Equal(t, time.Date(2025, 3, 14, 17, 35, 0, 0, time.UTC), contest.Start)
	assert.Equal(t, 2*time.Hour, contest.Duration())
}

func TestFetchUpcomingEmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"objects": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "clister", "secret")
	contests, err := client.FetchUpcoming(context.Background(), schema.AtCoder)
	assert.NoError(t, err)
	assert.Empty(t, contests)
}

func TestFetchUpcomingServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "clister", "secret")
	_, err := client.FetchUpcoming(context.Background(), schema.LeetCode)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestParseFeedTime(t *testing.T) {
	parsed, err := parseFeedTime("2025-06-01T09:00:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), parsed)

	// Explicit zone is honored
	parsed, err = parseFeedTime("2025-06-01T09:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), parsed)

	_, err = parseFeedTime("yesterday")
	assert.Error(t, err)
}
