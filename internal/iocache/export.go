package iocache

import (
	"errors"
	"fmt"

	"github.com/codescout/codescout/internal/parquet"
)

// ExecuteRunsExport performs the actual export of refresh-run data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunsStore()
	if store == nil {
		return errors.New("run tracking is not configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get runs status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no refresh-run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total refresh runs: %d\n", status.TotalRuns)
	fmt.Printf("Total provider outcomes: %d\n", status.TableSizes[providerOutcomesTable])

	// Retrieve all refresh runs
	refreshRuns, err := store.GetAllRefreshRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve refresh runs: %w", err)
	}

	// Retrieve all provider outcomes
	outcomes, err := store.GetAllProviderOutcomes()
	if err != nil {
		return fmt.Errorf("failed to retrieve provider outcomes: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRefreshRunRecords(refreshRuns)
	parquetOutcomes := parquet.ConvertProviderOutcomeRecords(outcomes)

	// Write refresh runs to Parquet
	runsFile := outputFile + ".refresh_runs.parquet"
	if err := parquet.WriteRefreshRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write refresh runs: %w", err)
	}
	fmt.Printf("Exported %d refresh runs to: %s\n", len(parquetRuns), runsFile)

	// Write provider outcomes to Parquet
	outcomesFile := outputFile + ".provider_outcomes.parquet"
	if err := parquet.WriteProviderOutcomesParquet(parquetOutcomes, outcomesFile); err != nil {
		return fmt.Errorf("failed to write provider outcomes: %w", err)
	}
	fmt.Printf("Exported %d provider outcomes to: %s\n", len(parquetOutcomes), outcomesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
