package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codescout/codescout/core"
	"github.com/codescout/codescout/internal/contract"
)

// practiceCmd shows the rating-laddered practice sheet.
var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Show the practice sheet with your solve marks",
	Long: `Display the practice sheet: curated problems grouped by target rating.

When logged in, problems you have marked solved show a check mark; the
marks persist across machines through the configured cache backend.
Without a login the sheet is shown unmarked.

Examples:
  # Show the sheet
  codescout practice

  # Mark a problem solved (or unmark it)
  codescout practice solve CF71A`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		solved := make(map[string]struct{})
		if claims, err := requireLogin(); err == nil {
			solved, err = core.GetSolvedProblems(storeManager, claims.UserID)
			if err != nil {
				contract.LogFatal("Cannot load solved problems", err)
			}
		}

		if err := outWriter.WritePractice(core.Ladders(), solved, cfg); err != nil {
			contract.LogFatal("Cannot write practice output", err)
		}
	},
}

// practiceSolveCmd toggles a problem's solved state.
var practiceSolveCmd = &cobra.Command{
	Use:   "solve <problem-id>",
	Short: "Toggle a problem's solved mark",
	Long: `Flip the solved mark on a practice problem.

Problem IDs are shown in the 'codescout practice' table (e.g. CF71A).
Toggling a solved problem clears its mark.

Requires: an active login (codescout login).

Examples:
  codescout practice solve CF71A`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		claims, err := requireLogin()
		if err != nil {
			contract.LogFatal("Cannot update solved problems", err)
		}

		nowSolved, err := core.ToggleProblem(storeManager, claims.UserID, args[0], time.Now())
		if err != nil {
			contract.LogFatal("Cannot update solved problems", err)
		}
		if nowSolved {
			fmt.Printf("Marked %s as solved.\n", args[0])
		} else {
			fmt.Printf("Cleared the solved mark on %s.\n", args[0])
		}

		// Show where the affected ladder stands now
		problem, _ := core.FindProblem(args[0])
		solved, err := core.GetSolvedProblems(storeManager, claims.UserID)
		if err != nil {
			return
		}
		for _, p := range core.ProgressByLadder(solved) {
			if p.Rating == problem.Difficulty {
				fmt.Printf("Ladder %d: %d of %d solved.\n", p.Rating, p.Solved, p.Total)
			}
		}
	},
}
