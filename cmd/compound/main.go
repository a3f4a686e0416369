// Package main is the entry point for Compound, a terminal browser for
// advisors, their client accounts and the holdings inside them.
//
// Subcommands:
//   - (root) runs the interactive browser, optionally against the built-in fixture API
//   - serve runs the fixture API on its own
//   - fetch prints one endpoint's decoded payload as JSON
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aristath/compound/internal/config"
	"github.com/aristath/compound/internal/network"
	"github.com/aristath/compound/internal/repository"
	"github.com/aristath/compound/pkg/logger"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "compound",
	Short: "Browse advisors, accounts and holdings",
	Long: `Compound is a read-only terminal browser for an advisors API.
It lists advisors, drills into their client accounts and shows each
account's holdings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return applyFlags(cmd, cfg)
	},
	RunE: runBrowser,
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides COMPOUND_API_URL)")
	rootCmd.PersistentFlags().String("env", "", "environment: development or production (overrides COMPOUND_ENV)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file (overrides COMPOUND_LOG_FILE)")
	rootCmd.PersistentFlags().String("sort", "name", "advisor ordering: name or total_assets")

	rootCmd.Flags().Bool("mock", false, "serve the built-in fixtures locally and browse them")
	rootCmd.Flags().Int("fail-first", -1, "with --mock, answer the first N requests per route with HTTP 500")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "compound %s (%s)\n", version, commit)
	},
}

// applyFlags lets explicitly set flags win over environment configuration
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("api-url") {
		c.APIBaseURL, _ = flags.GetString("api-url")
	}
	if flags.Changed("env") {
		c.Environment, _ = flags.GetString("env")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		c.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Lookup("fail-first") != nil && flags.Changed("fail-first") {
		c.Fixture.FailFirst, _ = flags.GetInt("fail-first")
	}

	return c.Validate()
}

// newLogger writes to the configured log file, or to fallback when none is set
func newLogger(c *config.Config, fallback io.Writer) (zerolog.Logger, func(), error) {
	out := fallback
	closer := func() {}
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	}

	log := logger.New(logger.Config{
		Level:  c.LogLevel,
		Pretty: c.LogFile == "" && out == os.Stderr,
		Output: out,
	})
	logger.SetGlobalLogger(log)
	return log, closer, nil
}

// environment selects the request environment for c
func environment(c *config.Config) network.Environment {
	if c.IsProduction() {
		return network.Production(c.APIBaseURL)
	}
	return network.Development(c.APIBaseURL)
}

func newRepository(c *config.Config, env network.Environment, log zerolog.Logger) *repository.Repository {
	client := &http.Client{Timeout: c.RequestTimeout}
	return repository.New(network.NewSession(env, client, log), log)
}
