package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/parquet"
	"github.com/codescout/codescout/schema"
)

// startTimeFormat renders contest start instants in the viewer's zone.
const startTimeFormat = "Mon Jan 02 15:04"

// PrintContestBuckets outputs the bucketed contest schedule, dispatching
// based on the output format configured.
func PrintContestBuckets(buckets *schema.ContestBuckets, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForContests(buckets, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForContests(buckets, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForContests(buckets, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printContestTable(buckets, cfg, fromCache, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// PrintTodayContests outputs only the contests starting today, dispatching
// based on the output format configured.
func PrintTodayContests(contests []schema.Contest, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	buckets := &schema.ContestBuckets{Today: contests}
	return PrintContestBuckets(buckets, cfg, fromCache, duration)
}

// printJSONResultsForContests handles opening the file and calling the JSON writer.
func printJSONResultsForContests(buckets *schema.ContestBuckets, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForContests(w, buckets)
	}, "Wrote JSON")
}

// printCSVResultsForContests handles opening the file and calling the CSV writer.
func printCSVResultsForContests(buckets *schema.ContestBuckets, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, contestCSVHeader, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForContests(csvWriter, buckets)
		})
	}, "Wrote CSV")
}

// printParquetResultsForContests flattens the buckets and writes a Parquet file.
func printParquetResultsForContests(buckets *schema.ContestBuckets, cfg *contract.Config) error {
	if err := requireOutputFile(cfg, "parquet"); err != nil {
		return err
	}
	flat := flattenBuckets(buckets)
	if err := parquet.WriteContestsParquet(parquet.ConvertContests(flat), cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// printContestTable prints the schedule in the bucket-ordered table format,
// using the tablewriter API.
func printContestTable(buckets *schema.ContestBuckets, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	// 1. Define Headers
	headers := []string{"When", "Platform", "Contest", "Start", "Length"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	// 3. Prepare Data Rows in bucket order
	maxEventWidth := GetMaxTableEventWidth(cfg)
	var data [][]string
	appendRows := func(bucket schema.DayBucket, contests []schema.Contest) {
		for _, c := range contests {
			when := bucketLabel(bucket)
			if cfg.UseColors && bucket == schema.TodayBucket {
				when = contract.HotColor.Sprint(when)
			}
			data = append(data, []string{
				when,
				c.Resource.DisplayName(),
				contract.TruncateText(c.Event, maxEventWidth),
				c.Start.Local().Format(startTimeFormat),
				schema.FormatDuration(c.Duration()),
			})
		}
	}
	appendRows(schema.TodayBucket, buckets.Today)
	appendRows(schema.TomorrowBucket, buckets.Tomorrow)
	appendRows(schema.LaterBucket, buckets.Later)

	if len(data) == 0 {
		fmt.Println("No upcoming contests found.")
		return nil
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	total := len(buckets.Today) + len(buckets.Tomorrow) + len(buckets.Later)
	fmt.Printf("Showing %d contests (%d today, %d tomorrow, %d later)\n",
		total, len(buckets.Today), len(buckets.Tomorrow), len(buckets.Later))
	fmt.Printf("Fetched in %v (%s). Cache backend: %s\n", duration, sourceLabel(fromCache), cfg.CacheBackend)
	return nil
}

// flattenBuckets lists all contests in display order for export formats.
func flattenBuckets(buckets *schema.ContestBuckets) []schema.Contest {
	flat := make([]schema.Contest, 0, len(buckets.Today)+len(buckets.Tomorrow)+len(buckets.Later))
	flat = append(flat, buckets.Today...)
	flat = append(flat, buckets.Tomorrow...)
	flat = append(flat, buckets.Later...)
	return flat
}

func bucketLabel(bucket schema.DayBucket) string {
	switch bucket {
	case schema.TodayBucket:
		return "Today"
	case schema.TomorrowBucket:
		return "Tomorrow"
	default:
		return "Later"
	}
}

func sourceLabel(fromCache bool) string {
	if fromCache {
		return "cached"
	}
	return "live"
}
