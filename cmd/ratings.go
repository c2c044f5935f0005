package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/codescout/codescout/core"
	"github.com/codescout/codescout/internal/contract"
)

// ratingsCmd aggregates the logged-in user's contest ratings.
var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Show your contest ratings across linked platforms",
	Long: `Fetch current contest ratings for every platform handle linked to your
account.

For each linked platform this shows the current rating, the delta against
your previous contest, and the platform's rank label. A platform whose
stat API is down is reported below the table without hiding the others.

Results are cached per user for the rest of the calendar day. Use
--refresh to force a refetch.

Requires: an active login (codescout login) with linked handles
(codescout account link).

Examples:
  # Current ratings
  codescout ratings

  # Force a refetch and export to JSON
  codescout ratings --refresh --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		claims, err := requireLogin()
		if err != nil {
			contract.LogFatal("Cannot fetch ratings", err)
		}

		client := newAccountClient()
		links, err := client.GetPlatforms(rootCtx, claims.UserID)
		if err != nil {
			contract.LogFatal("Cannot fetch linked platforms", err)
		}

		start := time.Now()
		report, fromCache, err := core.GetRatingReport(rootCtx, cfg, newStatProviders(), links, claims.UserID, storeManager, start)
		if err != nil {
			contract.LogFatal("Cannot fetch ratings", err)
		}
		if err := outWriter.WriteRatings(report, cfg, fromCache, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write rating output", err)
		}
	},
}
