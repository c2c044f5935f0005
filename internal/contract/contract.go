// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/codescout/codescout/schema"
)

// StoreManager defines the interface for managing local stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetCacheStore() CacheStore
	GetRunsStore() RunsStore
}

// CacheStore defines the interface for durable key/value cache storage.
// Values are opaque envelopes; the timestamp is the capture instant in
// Unix seconds used for the day-bounded freshness check.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	Delete(key string) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RunsStore defines the interface for tracking remote refresh runs.
type RunsStore interface {
	// BeginRun creates a new refresh run and returns its unique ID
	BeginRun(kind schema.RefreshKind, startTime time.Time) (int64, error)

	// EndRun updates the refresh run with completion data
	EndRun(runID int64, endTime time.Time, entryCount int) error

	// RecordProviderOutcome stores one provider's result within a run
	RecordProviderOutcome(runID int64, platform schema.Platform, outcome schema.ProviderOutcomeRecord) error

	// GetAllRefreshRuns retrieves all refresh runs from the store
	GetAllRefreshRuns() ([]schema.RefreshRunRecord, error)

	// GetAllProviderOutcomes retrieves all provider outcomes from the store
	GetAllProviderOutcomes() ([]schema.ProviderOutcomeRecord, error)

	// GetStatus returns status information about the runs store
	GetStatus() (schema.RunsStatus, error)

	// Close closes the underlying connection
	Close() error
}
