package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/codescout/codescout/schema"
)

// writeJSONResultsForPractice marshals the practice sheet to JSON and writes it.
func writeJSONResultsForPractice(w io.Writer, ladders []schema.Ladder, solved map[string]struct{}) error {
	// 1. Prepare the data structure for JSON with the solve mark added
	type JSONProblem struct {
		Solved bool `json:"solved"`
		schema.Problem
	}
	type JSONLadder struct {
		Rating   int           `json:"rating"`
		Problems []JSONProblem `json:"problems"`
	}

	output := make([]JSONLadder, len(ladders))
	for i, ladder := range ladders {
		problems := make([]JSONProblem, len(ladder.Problems))
		for j, p := range ladder.Problems {
			_, ok := solved[p.ID]
			problems[j] = JSONProblem{Solved: ok, Problem: p}
		}
		output[i] = JSONLadder{Rating: ladder.Rating, Problems: problems}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}

// practiceCSVHeader names the columns emitted by writeCSVResultsForPractice.
var practiceCSVHeader = []string{
	"rating",
	"id",
	"name",
	"judge",
	"link",
	"solved",
}

// writeCSVResultsForPractice writes the practice rows to a CSV writer. The
// header comes from writeCSVWithHeader.
func writeCSVResultsForPractice(w *csv.Writer, ladders []schema.Ladder, solved map[string]struct{}) error {
	for _, ladder := range ladders {
		for _, p := range ladder.Problems {
			_, ok := solved[p.ID]
			row := []string{
				strconv.Itoa(ladder.Rating), // Target rating
				p.ID,                        // Sheet ID
				p.Name,                      // Problem name
				string(p.Judge),             // Judge resource domain
				p.Link,                      // Problem page link
				strconv.FormatBool(ok),      // Solve mark
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
