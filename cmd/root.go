package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codescout/codescout/core"
	"github.com/codescout/codescout/internal/account"
	"github.com/codescout/codescout/internal/clist"
	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/iocache"
	"github.com/codescout/codescout/internal/outwriter"
	"github.com/codescout/codescout/internal/session"
	"github.com/codescout/codescout/internal/stats"
	"github.com/codescout/codescout/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// storeManager is the global persistence manager instance.
var storeManager contract.StoreManager

// sessionStore holds the persisted login credential across commands.
var sessionStore *session.Store

// outWriter renders results in the configured output format.
var outWriter = outwriter.NewOutWriter()

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "codescout",
	Short:              "Track contests, ratings and practice across competitive programming platforms.",
	Long:               `CodeScout pulls upcoming contests, contest ratings and a practice checklist for LeetCode, Codeforces, CodeChef and AtCoder into one terminal dashboard.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".codescout") // Name of config file (without extension)
		viper.SetConfigType("yaml")       // We'll use YAML format
		viper.AddConfigPath(".")          // Look in the current directory
		viper.AddConfigPath("$HOME")      // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("CODESCOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("runs-backend", "")
	viper.SetDefault("runs-db-connect", "")
}

// sharedSetup unmarshals config, runs validation, and brings up stores and session.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	color.NoColor = !cfg.UseColors

	// 4. Initialize persistence layer with validated config
	if err := iocache.InitStores(cfg.CacheBackend, cfg.CacheDBConnect, cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}
	if storeManager == nil {
		storeManager = iocache.Manager
	}

	// 5. Bring up the persisted session. A missing or expired credential is
	// not an error here; commands that need a login check for one themselves.
	sessionStore = session.NewStore(contract.GetSessionFilePath())
	if err := sessionStore.Bootstrap(time.Now()); err != nil {
		if !errors.Is(err, session.ErrNoSession) && !errors.Is(err, session.ErrSessionExpired) {
			return fmt.Errorf("failed to load session: %w", err)
		}
	}
	if notice := sessionStore.TakeNotice(); notice != "" {
		fmt.Fprintln(os.Stderr, notice)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	// Handle config file
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".codescout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// requireLogin returns the active session claims or an actionable error.
func requireLogin() (schema.SessionClaims, error) {
	claims, err := sessionStore.Claims()
	if err != nil {
		return schema.SessionClaims{}, fmt.Errorf("not logged in. Run 'codescout login' first")
	}
	return claims, nil
}

// newAccountClient builds the account API client bound to the session store.
func newAccountClient() *account.Client {
	return account.NewClient(cfg.APIURL, sessionStore, account.WithTimeout(cfg.Timeout))
}

// newContestFeed builds the clist.by feed client from the validated config.
func newContestFeed() core.ContestFeed {
	return clist.NewClient(cfg.ContestAPIURL, cfg.ContestUsername, cfg.ContestAPIKey, clist.WithTimeout(cfg.Timeout))
}

// newStatProviders builds the per-platform rating providers.
func newStatProviders() []stats.Provider {
	return []stats.Provider{
		stats.NewLeetCodeClient(cfg.LeetCodeAPIURL, stats.WithTimeout(cfg.Timeout)),
		stats.NewCodeforcesClient(cfg.CodeforcesAPIURL, stats.WithTimeout(cfg.Timeout)),
		stats.NewCodeChefClient(cfg.CodeChefAPIURL, stats.WithTimeout(cfg.Timeout)),
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetStoreManager sets the global store manager.
func SetStoreManager(mgr contract.StoreManager) {
	storeManager = mgr
}
