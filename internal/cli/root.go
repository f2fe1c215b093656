package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/config"
	"github.com/dshills/triad/internal/providers"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitFindings     = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

// lookuper is the environment every command reads configuration and
// backend credentials from.
var lookuper envconfig.Lookuper = envconfig.OsLookuper()

// cfg is the effective configuration, loaded before any command runs.
var cfg config.Config

// Global flags
var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "triad",
	Short: "Three-agent code analysis",
	Long: "Triad sends a code snippet to a language-model backend as three agents: " +
		"a Builder that refactors it, a Reviewer that critiques it, and an Explainer " +
		"that walks through the changes.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadWith(cmd.Context(), lookuper, buildOverrides())
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		cmd.SetContext(clog.WithLogger(cmd.Context(), logger))
		return nil
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(providerCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// exitCodeFor classifies an analysis error.
func exitCodeFor(err error) int {
	var ve *analysis.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ve):
		return ExitUsageError
	case providers.IsConfigurationError(err), providers.IsAuthError(err):
		return ExitAuthError
	default:
		return ExitRuntimeError
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print triad version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "triad version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")
}
