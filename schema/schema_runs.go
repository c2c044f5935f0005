package schema

import "time"

// RefreshRunRecord represents a row from the codescout_refresh_runs table.
// Runs are operational metadata about remote refreshes; they never hold
// rating history.
type RefreshRunRecord struct {
	RunID         int64
	Kind          RefreshKind
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	EntryCount    int32
}

// ProviderOutcomeRecord represents a row from the codescout_provider_outcomes
// table: one provider's result within a refresh run.
type ProviderOutcomeRecord struct {
	RunID        int64
	Platform     Platform
	FetchTime    time.Time
	Succeeded    bool
	ErrorMessage *string
	EntryCount   int32
}
