package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/codescout/codescout/schema"
)

// writeJSONResultsForRatings marshals the rating report to JSON and writes it.
func writeJSONResultsForRatings(w io.Writer, report *schema.RatingReport) error {
	return writeJSON(w, report)
}

// ratingCSVHeader names the columns emitted by writeCSVResultsForRatings.
var ratingCSVHeader = []string{
	"platform",
	"handle",
	"rating",
	"delta",
	"rank",
	"color",
}

// writeCSVResultsForRatings writes the rating rows to a CSV writer. The
// header comes from writeCSVWithHeader.
func writeCSVResultsForRatings(w *csv.Writer, snapshots []schema.RatingSnapshot) error {
	for _, s := range snapshots {
		row := []string{
			string(s.Platform),          // Platform resource domain
			s.Handle,                    // Linked handle
			strconv.Itoa(s.Rating),      // Current rating
			strconv.Itoa(s.RatingDelta), // Delta vs previous contest
			s.RankLabel,                 // Rank label
			s.Color,                     // Display color
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
