package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/codescout/codescout/schema"
)

// Default values for configuration.
const (
	DefaultTimeout = 30 * time.Second
	MinTimeout     = time.Second
	MaxTimeout     = 5 * time.Minute
)

// DefaultAPIURL points at the hosted CodeScout account API.
const DefaultAPIURL = "https://api.codescout.app/api"

// Default endpoints for the third-party contest and stat providers.
const (
	DefaultContestAPIURL    = "https://clist.by/api/v4/contest/"
	DefaultCodeforcesAPIURL = "https://codeforces.com/api"
	DefaultLeetCodeAPIURL   = "https://alfa-leetcode-api.onrender.com"
	DefaultCodeChefAPIURL   = "https://codechef-api.vercel.app"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the CLI.
// This struct remains the "final, validated" config.
type Config struct {
	APIURL string

	ContestAPIURL   string
	ContestAPIKey   string
	ContestUsername string

	CodeforcesAPIURL string
	LeetCodeAPIURL   string
	CodeChefAPIURL   string

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Timeout time.Duration // Per-request HTTP timeout
	Refresh bool          // Bypass the day-bounded cache entirely

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	APIURL           string `mapstructure:"api-url"`
	ContestAPIURL    string `mapstructure:"contest-api-url"`
	ContestAPIKey    string `mapstructure:"contest-api-key"`
	ContestUsername  string `mapstructure:"contest-username"`
	CodeforcesAPIURL string `mapstructure:"codeforces-api-url"`
	LeetCodeAPIURL   string `mapstructure:"leetcode-api-url"`
	CodeChefAPIURL   string `mapstructure:"codechef-api-url"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	Timeout          string `mapstructure:"timeout"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	RunsBackend      string `mapstructure:"runs-backend"`
	RunsDBConnect    string `mapstructure:"runs-db-connect"`

	// --- Fields from per-command flags ---
	Refresh bool `mapstructure:"refresh"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate turns the raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processEndpoints(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-endpoint fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Refresh = input.Refresh

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- Timeout Validation ---
	timeout := DefaultTimeout
	if input.Timeout != "" {
		timeout, err = time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout value %q: %w", input.Timeout, err)
		}
	}
	if timeout < MinTimeout || timeout > MaxTimeout {
		return fmt.Errorf("timeout must be between %s and %s (received %s)", MinTimeout, MaxTimeout, timeout)
	}
	cfg.Timeout = timeout

	return nil
}

// processEndpoints validates the remote endpoints, falling back to the
// hosted defaults when unset.
func processEndpoints(cfg *Config, input *ConfigRawInput) error {
	cfg.APIURL = strings.TrimSuffix(valueOrDefault(input.APIURL, DefaultAPIURL), "/")
	cfg.ContestAPIURL = valueOrDefault(input.ContestAPIURL, DefaultContestAPIURL)
	cfg.CodeforcesAPIURL = strings.TrimSuffix(valueOrDefault(input.CodeforcesAPIURL, DefaultCodeforcesAPIURL), "/")
	cfg.LeetCodeAPIURL = strings.TrimSuffix(valueOrDefault(input.LeetCodeAPIURL, DefaultLeetCodeAPIURL), "/")
	cfg.CodeChefAPIURL = strings.TrimSuffix(valueOrDefault(input.CodeChefAPIURL, DefaultCodeChefAPIURL), "/")

	// The feed credentials have no usable default; commands that hit the
	// contest feed fail fast instead of sending an unauthenticated request.
	cfg.ContestAPIKey = input.ContestAPIKey
	cfg.ContestUsername = input.ContestUsername

	return nil
}

// RequireContestCredentials fails when the clist.by credential pair is absent.
func (c *Config) RequireContestCredentials() error {
	if c.ContestUsername == "" || c.ContestAPIKey == "" {
		return fmt.Errorf("contest feed credentials missing: set contest-username and contest-api-key " +
			"(flags, config file, or CODESCOUT_CONTEST_USERNAME / CODESCOUT_CONTEST_API_KEY)")
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and runs backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Runs Backend Validation ---
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if cfg.RunsBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
			return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
		}
		cfg.RunsDBConnect = input.RunsDBConnect
		if err := ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
			return err
		}

		// Cache and runs storage must not share a database
		if cfg.CacheBackend == cfg.RunsBackend && cfg.CacheBackend != schema.NoneBackend {
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				runsDBPath := cfg.RunsDBConnect
				if runsDBPath == "" {
					runsDBPath = GetRunsDBFilePath()
				}
				if cacheDBPath == runsDBPath {
					return fmt.Errorf("cache and runs storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

// valueOrDefault returns fallback when value is empty.
func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
