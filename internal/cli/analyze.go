package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/config"
	"github.com/dshills/triad/internal/output"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Analyze flags
var (
	flagFile    string
	flagLang    string
	flagOut     string
	flagNoColor bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a code snippet from a file or stdin",
	Example: "  triad analyze --file app.py --lang python\n" +
		"  cat main.go | triad analyze --lang go --format markdown --out review.md",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := readInput(flagFile, os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if flagNoColor {
			color.NoColor = true
		}
		exitCode = runAnalyze(cmd.Context(), cfg, code, flagLang, flagOut)
		return nil
	},
}

// readInput returns the contents of path, or of stdin when path is empty
// or "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// runAnalyze validates, analyzes and renders one snippet and returns the
// process exit code.
func runAnalyze(ctx context.Context, c config.Config, code, lang, outPath string) int {
	if _, err := output.GetWriter(c.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsageError
	}
	if !analysis.ValidThreshold(c.FailOn) {
		fmt.Fprintf(os.Stderr, "Error: invalid --fail-on %q (none, suggestion, warning, critical)\n", c.FailOn)
		return ExitUsageError
	}

	req := analysis.Request{Code: code, Language: analysis.Language(lang)}
	if err := req.Validate(c.MaxCodeLength); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	if !c.Privacy.RedactSecrets {
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}

	start := time.Now()
	gw := newGateway(c)
	result, err := newOrchestrator(c, gw).Analyze(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	report := output.NewReport(req.Language, gw.Info(ctx), result, time.Since(start).Milliseconds())
	if err := output.WriteReport(report, c.Format, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		return ExitRuntimeError
	}

	if analysis.MeetsThreshold(result.HighestSeverity(), c.FailOn) {
		clog.FromContext(ctx).With("highest", result.HighestSeverity(), "fail_on", c.FailOn).
			Debug("Issues at or above threshold")
		return ExitFindings
	}
	return ExitSuccess
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Source file to analyze (default: stdin)")
	analyzeCmd.Flags().StringVarP(&flagLang, "lang", "l", "", "Language of the snippet (default: other)")
	analyzeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	analyzeCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Exit 1 on issues at or above severity (none, suggestion, warning, critical)")
	analyzeCmd.Flags().IntVar(&flagMaxCodeLength, "max-code-length", 0, "Maximum snippet length in characters")
	analyzeCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Completion token cap per agent")
	analyzeCmd.Flags().IntVar(&flagTimeout, "backend-timeout", 0, "Backend request timeout in seconds")
	analyzeCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	analyzeCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored text output")
}
