package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codescout/codescout/core"
	"github.com/codescout/codescout/internal/contract"
)

// contestsCmd lists upcoming contests across all platforms.
var contestsCmd = &cobra.Command{
	Use:   "contests",
	Short: "Show upcoming contests across all platforms",
	Long: `List upcoming contests on LeetCode, Codeforces, CodeChef and AtCoder.

Contests come from the clist.by feed and are bucketed by start day
(today, tomorrow, later). If any platform's feed fails, nothing is shown;
a partial schedule is worse than none.

Results are cached for the rest of the calendar day. Use --refresh to
force a refetch.

Requires: clist.by credentials (contest-username and contest-api-key).

Examples:
  # Full upcoming schedule
  codescout contests

  # Only today's contests
  codescout contests --today

  # Force a refetch and export to CSV
  codescout contests --refresh --output csv --output-file contests.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := cfg.RequireContestCredentials(); err != nil {
			contract.LogFatal("Cannot fetch contests", err)
		}

		feed := newContestFeed()
		now := time.Now()
		start := now

		if viper.GetBool("today") {
			contests, fromCache, err := core.GetTodayContests(rootCtx, cfg, feed, storeManager, now)
			if err != nil {
				contract.LogFatal("Failed to fetch contests. The API might be down", err)
			}
			if err := outWriter.WriteTodayContests(contests, cfg, fromCache, time.Since(start)); err != nil {
				contract.LogFatal("Cannot write contest output", err)
			}
			return
		}

		buckets, fromCache, err := core.GetUpcomingContests(rootCtx, cfg, feed, storeManager, now)
		if err != nil {
			contract.LogFatal("Failed to fetch contests. The API might be down", err)
		}
		if err := outWriter.WriteContests(buckets, cfg, fromCache, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write contest output", err)
		}
	},
}
