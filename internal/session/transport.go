package session

import "net/http"

// Transport is an http.RoundTripper that attaches the bearer credential to
// outgoing account API requests and reacts to rejection. A 401 response
// drops the local session and raises the expired notice, then the response
// still propagates so the caller can surface the failure.
type Transport struct {
	Store *Store
	Base  http.RoundTripper
}

// NewTransport wraps base with session handling. A nil base falls back to
// http.DefaultTransport.
func NewTransport(store *Store, base http.RoundTripper) *Transport {
	return &Transport{Store: store, Base: base}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone before mutating; RoundTrippers must not modify the original
	out := req.Clone(req.Context())
	if token, err := t.Store.Token(); err == nil {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.Store.Active() {
		t.Store.expire()
	}
	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
