package outwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
)

func TestPrintPracticeSheetRejectsParquet(t *testing.T) {
	ladders := []schema.Ladder{
		{
			Rating: 800,
			Problems: []schema.Problem{
				{ID: "CF4A", Name: "Watermelon", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/4/A", Difficulty: 800},
			},
		},
	}
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: "unused.parquet"}

	err := PrintPracticeSheet(ladders, map[string]struct{}{}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet output is not supported for practice")
}
