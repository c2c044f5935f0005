package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codescout/codescout/schema"
)

func sampleBuckets() *schema.ContestBuckets {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return &schema.ContestBuckets{
		Today: []schema.Contest{
			{
				ID:       101,
				Resource: schema.Codeforces,
				Event:    "Codeforces Round 990",
				Start:    start,
				End:      start.Add(2 * time.Hour),
				Href:     "https://codeforces.com/contests/990",
			},
		},
		Tomorrow: []schema.Contest{
			{
				ID:       102,
				Resource: schema.LeetCode,
				Event:    "Weekly Contest 440",
				Start:    start.Add(24 * time.Hour),
				End:      start.Add(25*time.Hour + 30*time.Minute),
				Href:     "https://leetcode.com/contest/weekly-440",
			},
		},
	}
}

func TestWriteJSONResultsForContests(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForContests(&buf, sampleBuckets())
	require.NoError(t, err)

	// Parse the JSON to verify structure
	var result []map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "today", result[0]["bucket"])
	assert.Equal(t, "Codeforces Round 990", result[0]["event"])
	assert.Equal(t, "tomorrow", result[1]["bucket"])
	assert.Equal(t, "leetcode.com", result[1]["resource"])
}

func TestWriteCSVResultsForContests(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, contestCSVHeader, func(w *csv.Writer) error {
		return writeCSVResultsForContests(w, sampleBuckets())
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	// Check header
	assert.Contains(t, lines[0], "bucket")
	assert.Contains(t, lines[0], "duration_seconds")

	// Check rows keep bucket order and compute duration
	assert.Contains(t, lines[1], "today")
	assert.Contains(t, lines[1], "7200")
	assert.Contains(t, lines[2], "tomorrow")
	assert.Contains(t, lines[2], "5400")
}

func TestWriteJSONResultsForRatings(t *testing.T) {
	report := &schema.RatingReport{
		Snapshots: []schema.RatingSnapshot{
			{
				Platform:     schema.Codeforces,
				PlatformName: "Codeforces",
				Handle:       "tourist",
				Rating:       3857,
				RatingDelta:  12,
				RankLabel:    "Legendary Grandmaster",
				Color:        "#FF0000",
			},
		},
		Errors: []schema.ProviderError{
			{Platform: schema.LeetCode, Message: "Failed to fetch data for leetcode.com. The API may be down or the handle is incorrect."},
		},
	}

	var buf bytes.Buffer
	err := writeJSONResultsForRatings(&buf, report)
	require.NoError(t, err)

	var result map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	snapshots, ok := result["snapshots"].([]interface{})
	require.True(t, ok)
	require.Len(t, snapshots, 1)
	errors, ok := result["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errors, 1)
}

func TestWriteCSVResultsForRatings(t *testing.T) {
	snapshots := []schema.RatingSnapshot{
		{Platform: schema.CodeChef, Handle: "chef42", Rating: 1843, RatingDelta: 0, RankLabel: "3 Star", Color: "#d97706"},
	}

	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, ratingCSVHeader, func(w *csv.Writer) error {
		return writeCSVResultsForRatings(w, snapshots)
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // header + 1 row

	assert.Contains(t, lines[0], "platform")
	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[1], "codechef.com")
	assert.Contains(t, lines[1], "1843")
	assert.Contains(t, lines[1], "3 Star")
}

func TestWriteJSONResultsForPractice(t *testing.T) {
	ladders := []schema.Ladder{
		{
			Rating: 800,
			Problems: []schema.Problem{
				{ID: "CF4A", Name: "Watermelon", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/4/A", Difficulty: 800},
				{ID: "CF71A", Name: "Way Too Long Words", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/71/A", Difficulty: 800},
			},
		},
	}
	solved := map[string]struct{}{"CF4A": {}}

	var buf bytes.Buffer
	err := writeJSONResultsForPractice(&buf, ladders, solved)
	require.NoError(t, err)

	var result []map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	require.Len(t, result, 1)

	problems, ok := result[0]["problems"].([]interface{})
	require.True(t, ok)
	require.Len(t, problems, 2)
	first, ok := problems[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, first["solved"])
	second, ok := problems[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, second["solved"])
}

func TestWriteCSVResultsForPractice(t *testing.T) {
	ladders := []schema.Ladder{
		{
			Rating: 900,
			Problems: []schema.Problem{
				{ID: "CF580A", Name: "Kefa and First Steps", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/580/A", Difficulty: 900},
			},
		},
	}

	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, practiceCSVHeader, func(w *csv.Writer) error {
		return writeCSVResultsForPractice(w, ladders, map[string]struct{}{})
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2) // header + 1 row

	assert.Contains(t, lines[0], "judge")
	assert.Contains(t, lines[1], "CF580A")
	assert.Contains(t, lines[1], "false")
}

func TestFlattenBuckets(t *testing.T) {
	buckets := sampleBuckets()
	flat := flattenBuckets(buckets)
	require.Len(t, flat, 2)
	assert.Equal(t, int64(101), flat[0].ID)
	assert.Equal(t, int64(102), flat[1].ID)
}

func TestBucketLabel(t *testing.T) {
	assert.Equal(t, "Today", bucketLabel(schema.TodayBucket))
	assert.Equal(t, "Tomorrow", bucketLabel(schema.TomorrowBucket))
	assert.Equal(t, "Later", bucketLabel(schema.LaterBucket))
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t, "cached", sourceLabel(true))
	assert.Equal(t, "live", sourceLabel(false))
}
