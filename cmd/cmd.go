// Package cmd defines the command-line interface for codescout.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(contestsCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the practice subcommands to the parent practice command
	practiceCmd.AddCommand(practiceSolveCmd)

	// Add the account subcommands to the parent account command
	accountCmd.AddCommand(accountProfileCmd)
	accountCmd.AddCommand(accountPlatformsCmd)
	accountCmd.AddCommand(accountUpdateCmd)
	accountCmd.AddCommand(accountLinkCmd)
	accountCmd.AddCommand(accountDeleteCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the CodeScout account API")
	rootCmd.PersistentFlags().String("contest-api-url", "", "Base URL of the clist.by contest feed")
	rootCmd.PersistentFlags().String("contest-username", "", "clist.by username for the contest feed")
	rootCmd.PersistentFlags().String("contest-api-key", "", "clist.by API key for the contest feed")
	rootCmd.PersistentFlags().String("codeforces-api-url", "", "Base URL of the Codeforces API")
	rootCmd.PersistentFlags().String("leetcode-api-url", "", "Base URL of the LeetCode stats API")
	rootCmd.PersistentFlags().String("codechef-api-url", "", "Base URL of the CodeChef stats API")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("timeout", "30s", "Per-request HTTP timeout")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("runs-backend", "", "Refresh run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of contestsCmd to Viper
	contestsCmd.Flags().Bool("today", false, "Only show contests starting today")
	contestsCmd.Flags().Bool("refresh", false, "Bypass the day-bounded cache and refetch")
	if err := viper.BindPFlags(contestsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding contests flags", err)
	}

	// Bind all flags of ratingsCmd to Viper
	ratingsCmd.Flags().Bool("refresh", false, "Bypass the day-bounded cache and refetch")
	if err := viper.BindPFlags(ratingsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding ratings flags", err)
	}

	// Bind all flags of loginCmd to Viper
	loginCmd.Flags().String("token", "", "Log in with a bearer token instead of email/password (OAuth flows)")
	if err := viper.BindPFlags(loginCmd.Flags()); err != nil {
		contract.LogFatal("Error binding login flags", err)
	}

	// Bind all flags of accountDeleteCmd to Viper
	accountDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	if err := viper.BindPFlags(accountDeleteCmd.Flags()); err != nil {
		contract.LogFatal("Error binding account delete flags", err)
	}

	// Bind all flags of accountUpdateCmd to Viper
	accountUpdateCmd.Flags().String("first-name", "", "New first name")
	accountUpdateCmd.Flags().String("last-name", "", "New last name")
	accountUpdateCmd.Flags().String("email", "", "New email address")
	if err := viper.BindPFlags(accountUpdateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding account update flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
