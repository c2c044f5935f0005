// Package schema has configs, models and global variables for all parts of codescout.
package schema

import "time"

// Contest represents a single upcoming contest from the feed API.
type Contest struct {
	ID       int64     `json:"id"`
	Resource Platform  `json:"resource"` // Source platform resource domain
	Event    string    `json:"event"`    // Contest title
	Start    time.Time `json:"start"`    // Start instant (UTC from the feed)
	End      time.Time `json:"end"`      // End instant (UTC from the feed)
	Href     string    `json:"href"`     // Link to the contest page
}

// Duration returns the contest length, or zero if the feed supplied an
// end before the start.
func (c Contest) Duration() time.Duration {
	d := c.End.Sub(c.Start)
	if d < 0 {
		return 0
	}
	return d
}

// ContestBuckets partitions upcoming contests by start day relative to the
// instant the bucketing ran. Every input contest appears in exactly one
// bucket and each bucket is sorted ascending by start.
type ContestBuckets struct {
	Today    []Contest `json:"today"`
	Tomorrow []Contest `json:"tomorrow"`
	Later    []Contest `json:"later"`
}

// RatingSnapshot is one platform's rating state for a user at fetch time.
// No history is retained beyond the delta against the immediately preceding
// contest, which comes from the provider's own history.
type RatingSnapshot struct {
	Platform     Platform `json:"platform"`
	PlatformName string   `json:"platform_name"`
	Handle       string   `json:"handle"`
	Rating       int      `json:"rating"`
	RatingDelta  int      `json:"rating_delta"`
	RankLabel    string   `json:"rank_label"`
	Color        string   `json:"color"` // Hex display color for the rank label
}

// RatingReport is the outcome of one rating aggregation pass. Provider
// failures do not abort the pass; they are collected in Errors instead.
type RatingReport struct {
	Snapshots []RatingSnapshot `json:"snapshots"`
	Errors    []ProviderError  `json:"errors,omitempty"`
}

// ProviderError names a provider whose fetch failed during aggregation.
type ProviderError struct {
	Platform Platform `json:"platform"`
	Message  string   `json:"message"`
}

// PlatformLink pairs a judge platform with the user's handle on it.
type PlatformLink struct {
	PlatformURL Platform `json:"platformUrl"`
	Username    string   `json:"username"`
}

// Profile holds the account fields editable through the settings flow.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SessionClaims are the identity claims decoded from the bearer credential.
// The token is treated as opaque except for these fields; no signature
// verification happens on the client.
type SessionClaims struct {
	UserID string
	Email  string
	Expiry time.Time
}

// Expired reports whether the claims' expiry is at or before now.
func (c SessionClaims) Expired(now time.Time) bool {
	return !c.Expiry.After(now)
}

// Problem is one entry in the static practice sheet.
type Problem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Judge      Platform `json:"judge"`
	Link       string   `json:"link"`
	Difficulty int      `json:"difficulty"`
}

// Ladder groups practice problems by target rating.
type Ladder struct {
	Rating   int       `json:"rating"`
	Problems []Problem `json:"problems"`
}
