package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransportAttachesBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	now := time.Now()
	store := NewStore(tempSessionPath(t))
	raw := makeToken(t, "user-1", "ada@example.com", now.Add(time.Hour))
	assert.NoError(t, store.SetSession(raw))

	client := &http.Client{Transport: NewTransport(store, nil)}
	resp, err := client.Get(server.URL)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "Bearer "+raw, gotAuth)
	assert.True(t, store.Active())
}

func TestTransportSkipsHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewStore(tempSessionPath(t))
	client := &http.Client{Transport: NewTransport(store, nil)}
	resp, err := client.Get(server.URL)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Empty(t, gotAuth)
}

func TestTransportDropsSessionOnUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	now := time.Now()
	store := NewStore(tempSessionPath(t))
	raw := makeToken(t, "user-1", "ada@example.com", now.Add(time.Hour))
	assert.NoError(t, store.SetSession(raw))

	client := &http.Client{Transport: NewTransport(store, nil)}
	resp, err := client.Get(server.URL)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// The rejection propagates to the caller
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// And the local session is gone, with the notice raised
	assert.False(t, store.Active())
	assert.Equal(t, ExpiredNotice, store.TakeNotice())
}
