// Package parquet provides data structures and functions for exporting
// refresh-run and contest data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/codescout/codescout/schema"
	"github.com/parquet-go/parquet-go"
)

// RefreshRun represents a single remote refresh run with metadata.
// This struct maps to the codescout_refresh_runs database table.
type RefreshRun struct {
	// RunID is the unique identifier for this refresh run
	RunID int64 `parquet:"run_id,snappy"`

	// Kind indicates whether contests or ratings were refreshed
	Kind string `parquet:"run_kind,snappy"`

	// StartTime is when the refresh began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the refresh completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the refresh in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// EntryCount is the number of entries fetched in this run
	EntryCount int32 `parquet:"entry_count,snappy"`
}

// ProviderOutcome represents one provider's result within a refresh run.
// This struct maps to the codescout_provider_outcomes database table.
type ProviderOutcome struct {
	// RunID references the parent refresh run
	RunID int64 `parquet:"run_id,snappy"`

	// Platform is the provider host identifier
	Platform string `parquet:"platform,snappy"`

	// FetchTime is when this provider was queried
	FetchTime time.Time `parquet:"fetch_time,snappy"`

	// Succeeded reports whether the provider call completed
	Succeeded bool `parquet:"succeeded,snappy"`

	// ErrorMessage holds the failure detail (nullable)
	ErrorMessage *string `parquet:"error_message,optional,snappy"`

	// EntryCount is the number of entries this provider returned
	EntryCount int32 `parquet:"entry_count,snappy"`
}

// Contest represents one contest row for Parquet output.
type Contest struct {
	ID       int64     `parquet:"id,snappy"`
	Platform string    `parquet:"platform,snappy"`
	Event    string    `parquet:"event,snappy"`
	Start    time.Time `parquet:"start,snappy"`
	End      time.Time `parquet:"end,snappy"`
	Href     string    `parquet:"href,snappy"`
}

// RatingSnapshot represents one rating row for Parquet output.
type RatingSnapshot struct {
	Platform    string `parquet:"platform,snappy"`
	Handle      string `parquet:"handle,snappy"`
	Rating      int32  `parquet:"rating,snappy"`
	RatingDelta int32  `parquet:"rating_delta,snappy"`
	RankLabel   string `parquet:"rank_label,snappy"`
}

// writeParquet writes records to a Parquet file using struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the struct tags
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRefreshRunsParquet writes a slice of RefreshRun structs to a Parquet file.
func WriteRefreshRunsParquet(data []RefreshRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteProviderOutcomesParquet writes a slice of ProviderOutcome structs to a Parquet file.
func WriteProviderOutcomesParquet(data []ProviderOutcome, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteContestsParquet writes a slice of Contest structs to a Parquet file.
func WriteContestsParquet(data []Contest, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRatingSnapshotsParquet writes a slice of RatingSnapshot structs to a Parquet file.
func WriteRatingSnapshotsParquet(data []RatingSnapshot, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRefreshRunRecords converts schema.RefreshRunRecord to RefreshRun for Parquet export.
func ConvertRefreshRunRecords(records []schema.RefreshRunRecord) []RefreshRun {
	result := make([]RefreshRun, len(records))
	for i, record := range records {
		result[i] = RefreshRun{
			RunID:         record.RunID,
			Kind:          string(record.Kind),
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			EntryCount:    record.EntryCount,
		}
	}
	return result
}

// ConvertProviderOutcomeRecords converts schema.ProviderOutcomeRecord to ProviderOutcome for Parquet export.
func ConvertProviderOutcomeRecords(records []schema.ProviderOutcomeRecord) []ProviderOutcome {
	result := make([]ProviderOutcome, len(records))
	for i, record := range records {
		result[i] = ProviderOutcome{
			RunID:        record.RunID,
			Platform:     string(record.Platform),
			FetchTime:    record.FetchTime,
			Succeeded:    record.Succeeded,
			ErrorMessage: record.ErrorMessage,
			EntryCount:   record.EntryCount,
		}
	}
	return result
}

// ConvertContests converts schema.Contest to Contest for Parquet export.
func ConvertContests(contests []schema.Contest) []Contest {
	result := make([]Contest, len(contests))
	for i, c := range contests {
		result[i] = Contest{
			ID:       c.ID,
			Platform: string(c.Resource),
			Event:    c.Event,
			Start:    c.Start,
			End:      c.End,
			Href:     c.Href,
		}
	}
	return result
}

// ConvertRatingSnapshots converts schema.RatingSnapshot to RatingSnapshot for Parquet export.
func ConvertRatingSnapshots(snapshots []schema.RatingSnapshot) []RatingSnapshot {
	result := make([]RatingSnapshot, len(snapshots))
	for i, s := range snapshots {
		result[i] = RatingSnapshot{
			Platform:    string(s.Platform),
			Handle:      s.Handle,
			Rating:      int32(s.Rating),
			RatingDelta: int32(s.RatingDelta),
			RankLabel:   s.RankLabel,
		}
	}
	return result
}
