package stats

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/codescout/codescout/schema"
)

// CodeChefClient reads the community CodeChef stats API.
type CodeChefClient struct {
	clientBase
}

// NewCodeChefClient creates a CodeChef stat client.
func NewCodeChefClient(baseURL string, opts ...Option) *CodeChefClient {
	return &CodeChefClient{newClientBase(baseURL, opts...)}
}

// Platform implements the Provider interface.
func (c *CodeChefClient) Platform() schema.Platform {
	return schema.CodeChef
}

// FetchSnapshot returns the user's current rating and star rank. The API
// exposes no rating history, so the delta is always zero.
func (c *CodeChefClient) FetchSnapshot(ctx context.Context, handle string) (schema.RatingSnapshot, error) {
	var result struct {
		Success       bool            `json:"success"`
		Profile       json.RawMessage `json:"profile"`
		CurrentRating int             `json:"current_rating"`
		Stars         string          `json:"stars"`
	}

	endpoint := c.baseURL + "/" + url.PathEscape(handle)
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return schema.RatingSnapshot{}, err
	}

	if !result.Success || len(result.Profile) == 0 {
		return schema.RatingSnapshot{}, ErrNoData
	}

	return schema.RatingSnapshot{
		Platform:     schema.CodeChef,
		PlatformName: schema.CodeChef.DisplayName(),
		Handle:       handle,
		Rating:       result.CurrentRating,
		RatingDelta:  0,
		RankLabel:    result.Stars,
		Color:        codechefColor,
	}, nil
}
