package schema

// Custom string types for type safety.
type (
	// Platform identifies an external competitive-programming judge.
	Platform string

	// DayBucket represents a contest's start day relative to today.
	DayBucket string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for local storage.
	DatabaseBackend string

	// RefreshKind represents the kind of remote refresh being tracked.
	RefreshKind string
)

// All judge platforms supported. The values are the resource domains used
// by the contest feed API.
const (
	Codeforces Platform = "codeforces.com"
	LeetCode   Platform = "leetcode.com"
	CodeChef   Platform = "codechef.com"
	AtCoder    Platform = "atcoder.jp"
)

// All day buckets supported.
const (
	TodayBucket    DayBucket = "today"
	TomorrowBucket DayBucket = "tomorrow"
	LaterBucket    DayBucket = "later"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All storage backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All refresh kinds supported.
const (
	ContestRefresh RefreshKind = "contests"
	RatingRefresh  RefreshKind = "ratings"
)

// AllPlatforms lists every platform in feed iteration order. The order is
// load-bearing: merge results keep it as the tie-break for equal start times.
var AllPlatforms = []Platform{LeetCode, Codeforces, CodeChef, AtCoder}

// DisplayNames maps resource domains to human-readable platform names.
var DisplayNames = map[Platform]string{
	Codeforces: "Codeforces",
	LeetCode:   "LeetCode",
	CodeChef:   "CodeChef",
	AtCoder:    "AtCoder",
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid storage backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// DisplayName returns the human-readable name for a platform, falling back
// to the raw resource domain for anything unrecognized.
func (p Platform) DisplayName() string {
	if name, ok := DisplayNames[p]; ok {
		return name
	}
	return string(p)
}
