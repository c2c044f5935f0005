package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	GainColor = color.New(color.FgGreen)            // gainColor marks a positive rating delta.
	LossColor = color.New(color.FgRed)              // lossColor marks a negative rating delta.
	FlatColor = color.New(color.FgWhite)            // flatColor marks an unchanged rating.
	ErrColor  = color.New(color.FgYellow)           // errColor marks provider failure banners.
	HotColor  = color.New(color.FgCyan, color.Bold) // hotColor marks contests starting today.
)

// ColorDelta returns a colored rendering of a rating delta for table output.
func ColorDelta(formatted string, delta int) string {
	switch {
	case delta > 0:
		return GainColor.Sprint(formatted)
	case delta < 0:
		return LossColor.Sprint(formatted)
	default:
		return FlatColor.Sprint(formatted)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".codescout_cache.db"
	}
	return filepath.Join(homeDir, ".codescout_cache.db")
}

// GetRunsDBFilePath returns the path to the SQLite DB file for runs storage.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".codescout_runs.db"
	}
	return filepath.Join(homeDir, ".codescout_runs.db")
}

// GetSessionFilePath returns the path to the persisted session credential.
func GetSessionFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".codescout_session"
	}
	return filepath.Join(homeDir, ".codescout_session")
}

// TruncateText truncates a string to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for both content and the "...".
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
