package stats

// Codeforces rank thresholds, checked from highest to lowest.
var codeforcesRanks = []struct {
	minRating int
	label     string
}{
	{3000, "Int. Grandmaster"},
	{2400, "Grandmaster"},
	{2100, "Master"},
	{1900, "Candidate Master"},
	{1600, "Expert"},
	{1400, "Specialist"},
	{1200, "Pupil"},
}

// Hex display colors per Codeforces rank label.
var codeforcesColors = map[string]string{
	"Newbie":           "#9ca3af",
	"Pupil":            "#4ade80",
	"Specialist":       "#22d3ee",
	"Expert":           "#60a5fa",
	"Candidate Master": "#c084fc",
	"Master":           "#facc15",
	"Int. Grandmaster": "#f87171",
	"Grandmaster":      "#f87171",
}

// Display colors for the other providers.
const (
	leetcodeColor = "#facc15"
	codechefColor = "#d97706"
)

// CodeforcesRank returns the rank label for a rating.
func CodeforcesRank(rating int) string {
	for _, rank := range codeforcesRanks {
		if rating >= rank.minRating {
			return rank.label
		}
	}
	return "Newbie"
}

// CodeforcesColor returns the hex display color for a rank label.
func CodeforcesColor(rank string) string {
	if color, ok := codeforcesColors[rank]; ok {
		return color
	}
	return "#fff"
}
