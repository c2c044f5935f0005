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

// PrintRatingReport outputs the rating aggregation results, dispatching
// based on the output format configured.
func PrintRatingReport(report *schema.RatingReport, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRatings(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRatings(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForRatings(report, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printRatingTable(report, cfg, fromCache, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForRatings handles opening the file and calling the JSON writer.
func printJSONResultsForRatings(report *schema.RatingReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRatings(w, report)
	}, "Wrote JSON")
}

// printCSVResultsForRatings handles opening the file and calling the CSV writer.
func printCSVResultsForRatings(report *schema.RatingReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, ratingCSVHeader, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForRatings(csvWriter, report.Snapshots)
		})
	}, "Wrote CSV")
}

// printParquetResultsForRatings writes the snapshots to a Parquet file.
func printParquetResultsForRatings(report *schema.RatingReport, cfg *contract.Config) error {
	if err := requireOutputFile(cfg, "parquet"); err != nil {
		return err
	}
	if err := parquet.WriteRatingSnapshotsParquet(parquet.ConvertRatingSnapshots(report.Snapshots), cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// printRatingTable prints the snapshots in the rating table format, using
// the tablewriter API. Provider failures render as a banner below the table
// so a flaky stat API never hides the platforms that did answer.
func printRatingTable(report *schema.RatingReport, cfg *contract.Config, fromCache bool, duration time.Duration) error {
	if len(report.Snapshots) == 0 && len(report.Errors) == 0 {
		fmt.Println("No linked platforms with rating data. Link a handle first.")
		return nil
	}

	if len(report.Snapshots) > 0 {
		table := tablewriter.NewWriter(os.Stdout)

		// 1. Define Headers
		headers := []string{"Platform", "Handle", "Rating", "Delta", "Rank"}
		table.Header(headers)

		// 2. Configure Alignment
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		// 3. Prepare Data Rows
		var data [][]string
		for _, s := range report.Snapshots {
			delta := schema.FormatDelta(s.RatingDelta)
			if cfg.UseColors {
				delta = contract.ColorDelta(delta, s.RatingDelta)
			}
			data = append(data, []string{
				s.Platform.DisplayName(),
				s.Handle,
				fmt.Sprintf("%d", s.Rating),
				delta,
				s.RankLabel,
			})
		}

		// 4. Render the table
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	for _, provErr := range report.Errors {
		if cfg.UseColors {
			contract.ErrColor.Println(provErr.Message)
		} else {
			fmt.Println(provErr.Message)
		}
	}

	// Compute summary stats
	fmt.Printf("Showing %d platforms (%d failed)\n", len(report.Snapshots), len(report.Errors))
	fmt.Printf("Fetched in %v (%s). Cache backend: %s\n", duration, sourceLabel(fromCache), cfg.CacheBackend)
	return nil
}
