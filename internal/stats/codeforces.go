package stats

import (
	"context"
	"fmt"
	"net/url"

	"github.com/codescout/codescout/schema"
)

// CodeforcesClient reads the official Codeforces API.
type CodeforcesClient struct {
	clientBase
}

// NewCodeforcesClient creates a Codeforces stat client.
func NewCodeforcesClient(baseURL string, opts ...Option) *CodeforcesClient {
	return &CodeforcesClient{newClientBase(baseURL, opts...)}
}

// Platform implements the Provider interface.
func (c *CodeforcesClient) Platform() schema.Platform {
	return schema.Codeforces
}

// FetchSnapshot returns the user's current rating from their contest
// history. The rating is the newRating of the latest entry; the delta is
// against the entry before it.
func (c *CodeforcesClient) FetchSnapshot(ctx context.Context, handle string) (schema.RatingSnapshot, error) {
	var result struct {
		Status  string `json:"status"`
		Comment string `json:"comment"`
		Result  []struct {
			NewRating int `json:"newRating"`
			OldRating int `json:"oldRating"`
		} `json:"result"`
	}

	endpoint := c.baseURL + "/user.rating?handle=" + url.QueryEscape(handle)
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return schema.RatingSnapshot{}, err
	}

	if result.Status != "OK" {
		return schema.RatingSnapshot{}, fmt.Errorf("codeforces API rejected the request: %s", result.Comment)
	}
	if len(result.Result) == 0 {
		return schema.RatingSnapshot{}, ErrNoData
	}

	n := len(result.Result)
	last := result.Result[n-1]
	delta := 0
	if n > 1 {
		delta = last.NewRating - result.Result[n-2].NewRating
	}

	rank := CodeforcesRank(last.NewRating)
	return schema.RatingSnapshot{
		Platform:     schema.Codeforces,
		PlatformName: schema.Codeforces.DisplayName(),
		Handle:       handle,
		Rating:       last.NewRating,
		RatingDelta:  delta,
		RankLabel:    rank,
		Color:        CodeforcesColor(rank),
	}, nil
}
