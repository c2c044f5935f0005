// Package core implements the contest and rating aggregation passes.
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/iocache"
	"github.com/codescout/codescout/schema"
)

// ContestFeed fetches upcoming contests for one platform. Implemented by
// the clist client.
type ContestFeed interface {
	FetchUpcoming(ctx context.Context, platform schema.Platform) ([]schema.Contest, error)
}

// GetUpcomingContests returns the upcoming contests across all platforms,
// bucketed by start day. Served from the day-bounded cache when fresh;
// cfg.Refresh forces a refetch. The second return value reports whether the
// buckets came from the cache.
func GetUpcomingContests(ctx context.Context, cfg *contract.Config, feed ContestFeed, mgr contract.StoreManager, now time.Time) (*schema.ContestBuckets, bool, error) {
	store := mgr.GetCacheStore()
	fetch := func(ctx context.Context) (schema.ContestBuckets, error) {
		contests, err := fetchAllContests(ctx, feed, mgr.GetRunsStore())
		if err != nil {
			return schema.ContestBuckets{}, err
		}
		return bucketContests(contests, now), nil
	}

	if cfg.Refresh {
		buckets, err := iocache.Refresh(ctx, store, iocache.KeyUpcomingContests, now, fetch)
		if err != nil {
			return nil, false, err
		}
		return &buckets, false, nil
	}

	buckets, fromCache, err := iocache.GetOrFetch(ctx, store, iocache.KeyUpcomingContests, now, fetch)
	if err != nil {
		return nil, false, err
	}
	return &buckets, fromCache, nil
}

// GetTodayContests returns only the contests starting today, cached under
// their own key so the dashboard view stays cheap.
func GetTodayContests(ctx context.Context, cfg *contract.Config, feed ContestFeed, mgr contract.StoreManager, now time.Time) ([]schema.Contest, bool, error) {
	store := mgr.GetCacheStore()
	fetch := func(ctx context.Context) ([]schema.Contest, error) {
		contests, err := fetchAllContests(ctx, feed, mgr.GetRunsStore())
		if err != nil {
			return nil, err
		}
		today := make([]schema.Contest, 0)
		for _, c := range contests {
			if schema.BucketFor(c.Start, now) == schema.TodayBucket {
				today = append(today, c)
			}
		}
		sortByStart(today)
		return today, nil
	}

	if cfg.Refresh {
		today, err := iocache.Refresh(ctx, store, iocache.KeyTodayContests, now, fetch)
		if err != nil {
			return nil, false, err
		}
		return today, false, nil
	}

	return iocache.GetOrFetch(ctx, store, iocache.KeyTodayContests, now, fetch)
}

// fetchAllContests queries every platform feed concurrently. One failed
// platform aborts the whole pass; partial schedules are never shown.
func fetchAllContests(ctx context.Context, feed ContestFeed, runs contract.RunsStore) ([]schema.Contest, error) {
	var runID int64
	if runs != nil {
		var err error
		runID, err = runs.BeginRun(schema.ContestRefresh, time.Now())
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	results := make([][]schema.Contest, len(schema.AllPlatforms))
	errs := make([]error, len(schema.AllPlatforms))

	var wg sync.WaitGroup
	for i, platform := range schema.AllPlatforms {
		idx, p := i, platform // Capture loop variables for goroutine
		wg.Go(func() {
			// Each goroutine writes to a *unique* index, which is safe.
			results[idx], errs[idx] = feed.FetchUpcoming(ctx, p)
		})
	}
	wg.Wait()

	// Merge in platform order so equal start times keep a stable tie-break
	var all []schema.Contest
	for i, platform := range schema.AllPlatforms {
		recordOutcome(runs, runID, platform, errs[i], len(results[i]))
		if errs[i] != nil {
			errs[i] = fmt.Errorf("%s: %w", platform, errs[i])
			continue
		}
		all = append(all, results[i]...)
	}

	if err := errors.Join(errs...); err != nil {
		endRun(runs, runID, 0)
		return nil, fmt.Errorf("contest fetch aborted: %w", err)
	}

	endRun(runs, runID, len(all))
	return all, nil
}

// bucketContests partitions contests by start day relative to now, each
// bucket sorted ascending by start.
func bucketContests(contests []schema.Contest, now time.Time) schema.ContestBuckets {
	var buckets schema.ContestBuckets
	for _, c := range contests {
		switch schema.BucketFor(c.Start, now) {
		case schema.TodayBucket:
			buckets.Today = append(buckets.Today, c)
		case schema.TomorrowBucket:
			buckets.Tomorrow = append(buckets.Tomorrow, c)
		default:
			buckets.Later = append(buckets.Later, c)
		}
	}
	sortByStart(buckets.Today)
	sortByStart(buckets.Tomorrow)
	sortByStart(buckets.Later)
	return buckets
}

func sortByStart(contests []schema.Contest) {
	sort.SliceStable(contests, func(i, j int) bool {
		return contests[i].Start.Before(contests[j].Start)
	})
}

func recordOutcome(runs contract.RunsStore, runID int64, platform schema.Platform, fetchErr error, count int) {
	if runs == nil || runID == 0 {
		return
	}
	outcome := schema.ProviderOutcomeRecord{
		RunID:      runID,
		Platform:   platform,
		FetchTime:  time.Now(),
		Succeeded:  fetchErr == nil,
		EntryCount: int32(count),
	}
	if fetchErr != nil {
		msg := fetchErr.Error()
		outcome.ErrorMessage = &msg
		outcome.EntryCount = 0
	}
	if err := runs.RecordProviderOutcome(runID, platform, outcome); err != nil {
		contract.LogWarn("Failed to record provider outcome", err)
	}
}

func endRun(runs contract.RunsStore, runID int64, entryCount int) {
	if runs == nil || runID == 0 {
		return
	}
	if err := runs.EndRun(runID, time.Now(), entryCount); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}
