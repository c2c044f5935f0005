package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/codescout/codescout/schema"
)

// writeJSONResultsForContests marshals the contest buckets to JSON and writes them.
func writeJSONResultsForContests(w io.Writer, buckets *schema.ContestBuckets) error {
	// 1. Prepare the data structure for JSON with the bucket made explicit
	type JSONContest struct {
		Bucket schema.DayBucket `json:"bucket"`
		schema.Contest
	}

	var output []JSONContest
	appendBucket := func(bucket schema.DayBucket, contests []schema.Contest) {
		for _, c := range contests {
			output = append(output, JSONContest{Bucket: bucket, Contest: c})
		}
	}
	appendBucket(schema.TodayBucket, buckets.Today)
	appendBucket(schema.TomorrowBucket, buckets.Tomorrow)
	appendBucket(schema.LaterBucket, buckets.Later)

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// contestCSVHeader names the columns emitted by writeCSVResultsForContests.
var contestCSVHeader = []string{
	"bucket",
	"platform",
	"event",
	"start",
	"end",
	"duration_seconds",
	"href",
}

// writeCSVResultsForContests writes the contest rows to a CSV writer. The
// header comes from writeCSVWithHeader.
func writeCSVResultsForContests(w *csv.Writer, buckets *schema.ContestBuckets) error {
	// Write data rows in bucket order
	writeBucket := func(bucket schema.DayBucket, contests []schema.Contest) error {
		for _, c := range contests {
			row := []string{
				string(bucket),                            // Bucket
				string(c.Resource),                        // Platform resource domain
				c.Event,                                   // Contest title
				c.Start.Format(time.RFC3339),              // Start instant
				c.End.Format(time.RFC3339),                // End instant
				strconv.Itoa(int(c.Duration().Seconds())), // Length in seconds
				c.Href, // Contest page link
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeBucket(schema.TodayBucket, buckets.Today); err != nil {
		return err
	}
	if err := writeBucket(schema.TomorrowBucket, buckets.Tomorrow); err != nil {
		return err
	}
	return writeBucket(schema.LaterBucket, buckets.Later)
}
