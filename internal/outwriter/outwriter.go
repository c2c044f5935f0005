// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteContests prints bucketed upcoming contests using the configured output format.
func (ow *OutWriter) WriteContests(buckets *schema.ContestBuckets, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	return PrintContestBuckets(buckets, cfg, fromCache, duration)
}

// WriteTodayContests prints the contests starting today using the configured output format.
func (ow *OutWriter) WriteTodayContests(contests []schema.Contest, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	return PrintTodayContests(contests, cfg, fromCache, duration)
}

// WriteRatings prints a rating report using the configured output format.
func (ow *OutWriter) WriteRatings(report *schema.RatingReport, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	return PrintRatingReport(report, cfg, fromCache, duration)
}

// WritePractice prints the practice sheet with solve marks using the configured output format.
func (ow *OutWriter) WritePractice(ladders []schema.Ladder, solved map[string]struct{}, cfg *contract.Config) error {
	return PrintPracticeSheet(ladders, solved, cfg)
}
