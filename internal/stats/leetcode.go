package stats

import (
	"context"
	"fmt"
	"net/url"

	"github.com/codescout/codescout/schema"
)

// LeetCodeClient reads the community LeetCode stats API.
type LeetCodeClient struct {
	clientBase
}

// NewLeetCodeClient creates a LeetCode stat client.
func NewLeetCodeClient(baseURL string, opts ...Option) *LeetCodeClient {
	return &LeetCodeClient{newClientBase(baseURL, opts...)}
}

// Platform implements the Provider interface.
func (c *LeetCodeClient) Platform() schema.Platform {
	return schema.LeetCode
}

// FetchSnapshot returns the user's contest rating. The API reports ratings
// as floats; they are truncated for display. The rank label is the user's
// global percentile.
func (c *LeetCodeClient) FetchSnapshot(ctx context.Context, handle string) (schema.RatingSnapshot, error) {
	var result struct {
		ContestRating        float64 `json:"contestRating"`
		ContestGlobalRanking any     `json:"contestGlobalRanking"`
		ContestParticipation []struct {
			Rating float64 `json:"rating"`
		} `json:"contestParticipation"`
	}

	endpoint := c.baseURL + "/" + url.PathEscape(handle) + "/contest"
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return schema.RatingSnapshot{}, err
	}

	if len(result.ContestParticipation) == 0 {
		return schema.RatingSnapshot{}, ErrNoData
	}

	n := len(result.ContestParticipation)
	delta := 0
	if n >= 2 {
		delta = int(result.ContestParticipation[n-1].Rating) - int(result.ContestParticipation[n-2].Rating)
	}

	return schema.RatingSnapshot{
		Platform:     schema.LeetCode,
		PlatformName: schema.LeetCode.DisplayName(),
		Handle:       handle,
		Rating:       int(result.ContestRating),
		RatingDelta:  delta,
		RankLabel:    fmt.Sprintf("Top %v%%", result.ContestGlobalRanking),
		Color:        leetcodeColor,
	}, nil
}
