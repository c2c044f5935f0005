package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codescout/codescout/schema"
)

func TestRefreshRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(RefreshRun))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"run_id",
		"run_kind",
		"start_time",
		"end_time",
		"run_duration_ms",
		"entry_count",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestProviderOutcomeStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(ProviderOutcome))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"run_id",
		"platform",
		"fetch_time",
		"succeeded",
		"error_message",
		"entry_count",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteRefreshRunsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "refresh_runs.parquet")

	end := time.Now().UTC().Truncate(time.Millisecond)
	durMs := int32(1250)
	data := []RefreshRun{
		{RunID: 1, Kind: "contests", StartTime: end.Add(-2 * time.Second), EndTime: &end, RunDurationMs: &durMs, EntryCount: 12},
		{RunID: 2, Kind: "ratings", StartTime: end.Add(-time.Second), EntryCount: 3}, // still running, nullable fields unset
	}

	err := WriteRefreshRunsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err, "Should be able to open output file")
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[RefreshRun](file)
	defer func() { _ = reader.Close() }()

	readData := make([]RefreshRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	assert.Equal(t, len(data), n, "Should read all records")

	assert.Equal(t, int64(1), readData[0].RunID)
	assert.Equal(t, "contests", readData[0].Kind)
	require.NotNil(t, readData[0].EndTime)
	assert.WithinDuration(t, end, *readData[0].EndTime, time.Nanosecond)
	require.NotNil(t, readData[0].RunDurationMs)
	assert.Equal(t, durMs, *readData[0].RunDurationMs)

	assert.Nil(t, readData[1].EndTime, "unfinished run keeps EndTime nil")
	assert.Nil(t, readData[1].RunDurationMs, "unfinished run keeps RunDurationMs nil")
}

func TestWriteContestsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "contests.parquet")

	start := time.Now().UTC().Truncate(time.Millisecond)
	data := []Contest{
		{ID: 101, Platform: "codeforces.com", Event: "Codeforces Round 900", Start: start, End: start.Add(2 * time.Hour), Href: "https://codeforces.com/contests/900"},
	}

	require.NoError(t, WriteContestsParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[Contest](file)
	defer func() { _ = reader.Close() }()

	readData := make([]Contest, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 1, n)
	assert.Equal(t, data[0].Event, readData[0].Event)
	assert.WithinDuration(t, data[0].Start, readData[0].Start, time.Nanosecond)
}

func TestConvertContests(t *testing.T) {
	start := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	contests := []schema.Contest{
		{ID: 7, Resource: schema.LeetCode, Event: "Weekly Contest 440", Start: start, End: start.Add(90 * time.Minute), Href: "https://leetcode.com/contest/weekly-440"},
	}

	got := ConvertContests(contests)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, "leetcode.com", got[0].Platform)
	assert.Equal(t, "Weekly Contest 440", got[0].Event)
}

func TestConvertRatingSnapshots(t *testing.T) {
	snapshots := []schema.RatingSnapshot{
		{Platform: schema.Codeforces, Handle: "tourist", Rating: 3850, RatingDelta: -12, RankLabel: "legendary grandmaster"},
	}

	got := ConvertRatingSnapshots(snapshots)
	require.Len(t, got, 1)
	assert.Equal(t, "codeforces.com", got[0].Platform)
	assert.Equal(t, int32(3850), got[0].Rating)
	assert.Equal(t, int32(-12), got[0].RatingDelta)
}

func TestConvertProviderOutcomeRecords(t *testing.T) {
	msg := "connection refused"
	records := []schema.ProviderOutcomeRecord{
		{RunID: 5, Platform: schema.CodeChef, FetchTime: time.Now(), Succeeded: false, ErrorMessage: &msg, EntryCount: 0},
		{RunID: 5, Platform: schema.AtCoder, FetchTime: time.Now(), Succeeded: true, EntryCount: 4},
	}

	got := ConvertProviderOutcomeRecords(records)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].ErrorMessage)
	assert.Equal(t, msg, *got[0].ErrorMessage)
	assert.Nil(t, got[1].ErrorMessage)
	assert.Equal(t, int32(4), got[1].EntryCount)
}
