package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
)

// PrintPracticeSheet outputs the practice sheet with solve marks,
// dispatching based on the output format configured.
func PrintPracticeSheet(ladders []schema.Ladder, solved map[string]struct{}, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForPractice(ladders, solved, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForPractice(ladders, solved, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		// The sheet is static reference data; there is no columnar consumer.
		return fmt.Errorf("parquet output is not supported for practice")
	default:
		// Default to human-readable table
		if err := printPracticeTable(ladders, solved, cfg); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForPractice handles opening the file and calling the JSON writer.
func printJSONResultsForPractice(ladders []schema.Ladder, solved map[string]struct{}, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForPractice(w, ladders, solved)
	}, "Wrote JSON")
}

// printCSVResultsForPractice handles opening the file and calling the CSV writer.
func printCSVResultsForPractice(ladders []schema.Ladder, solved map[string]struct{}, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, practiceCSVHeader, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForPractice(csvWriter, ladders, solved)
		})
	}, "Wrote CSV")
}

// printPracticeTable prints the sheet grouped by rating, using the
// tablewriter API.
func printPracticeTable(ladders []schema.Ladder, solved map[string]struct{}, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	// 1. Define Headers
	headers := []string{"Rating", "ID", "Problem", "Judge", "Solved"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	// 3. Prepare Data Rows
	solvedCount := 0
	total := 0
	var data [][]string
	for _, ladder := range ladders {
		for _, p := range ladder.Problems {
			total++
			mark := " "
			if _, ok := solved[p.ID]; ok {
				solvedCount++
				mark = "x"
				if cfg.UseColors {
					mark = contract.GainColor.Sprint(mark)
				}
			}
			data = append(data, []string{
				strconv.Itoa(ladder.Rating),
				p.ID,
				p.Name,
				p.Judge.DisplayName(),
				mark,
			})
		}
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	fmt.Printf("Solved %d of %d problems across %d ladders\n", solvedCount, total, len(ladders))
	return nil
}
