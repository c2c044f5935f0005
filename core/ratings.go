package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/iocache"
	"github.com/codescout/codescout/internal/stats"
	"github.com/codescout/codescout/schema"
)

// GetRatingReport aggregates rating snapshots across the user's linked
// platforms. Unlike the contest pass, providers are queried one at a time
// and a failed provider never aborts the pass; its failure lands in the
// report's Errors instead. Cached per user, day-bounded.
func GetRatingReport(ctx context.Context, cfg *contract.Config, providers []stats.Provider, links []schema.PlatformLink, userID string, mgr contract.StoreManager, now time.Time) (*schema.RatingReport, bool, error) {
	store := mgr.GetCacheStore()
	key := iocache.UserKey(iocache.KeyPerformance, userID)

	// Provider failures are transient; only the snapshots are cached
	var provErrs []schema.ProviderError
	fetch := func(ctx context.Context) ([]schema.RatingSnapshot, error) {
		snapshots, errs := fetchAllRatings(ctx, providers, links, mgr.GetRunsStore())
		provErrs = errs
		return snapshots, nil
	}

	var snapshots []schema.RatingSnapshot
	var fromCache bool
	var err error
	if cfg.Refresh {
		snapshots, err = iocache.Refresh(ctx, store, key, now, fetch)
	} else {
		snapshots, fromCache, err = iocache.GetOrFetch(ctx, store, key, now, fetch)
	}
	if err != nil {
		return nil, false, err
	}

	return &schema.RatingReport{Snapshots: snapshots, Errors: provErrs}, fromCache, nil
}

// fetchAllRatings queries each linked platform's provider in order. Links
// without a provider or without a handle are skipped, as are handles the
// provider has no rating data for.
func fetchAllRatings(ctx context.Context, providers []stats.Provider, links []schema.PlatformLink, runs contract.RunsStore) ([]schema.RatingSnapshot, []schema.ProviderError) {
	var runID int64
	if runs != nil {
		var err error
		runID, err = runs.BeginRun(schema.RatingRefresh, time.Now())
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	byPlatform := make(map[schema.Platform]stats.Provider, len(providers))
	for _, p := range providers {
		byPlatform[p.Platform()] = p
	}

	snapshots := make([]schema.RatingSnapshot, 0, len(links))
	var provErrs []schema.ProviderError
	for _, link := range links {
		provider, ok := byPlatform[link.PlatformURL]
		if !ok || link.Username == "" {
			continue
		}

		snap, err := provider.FetchSnapshot(ctx, link.Username)
		if errors.Is(err, stats.ErrNoData) {
			// No rated contests is not a failure
			recordOutcome(runs, runID, link.PlatformURL, nil, 0)
			continue
		}
		if err != nil {
			recordOutcome(runs, runID, link.PlatformURL, err, 0)
			provErrs = append(provErrs, schema.ProviderError{
				Platform: link.PlatformURL,
				Message:  fmt.Sprintf("Failed to fetch data for %s. The API may be down or the handle is incorrect.", link.PlatformURL),
			})
			continue
		}

		recordOutcome(runs, runID, link.PlatformURL, nil, 1)
		snapshots = append(snapshots, snap)
	}

	endRun(runs, runID, len(snapshots))
	return snapshots, provErrs
}
