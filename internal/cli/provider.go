package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/triad/internal/config"
	"github.com/dshills/triad/internal/providers"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var flagBackend string

var providerCmd = &cobra.Command{
	Use:   "provider",
	Short: "Language-model backend introspection",
}

var providerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the backend that would serve the next analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := newGateway(cfg).Info(cmd.Context())
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var providerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backends in selection order",
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses, err := newGateway(cfg).Statuses(cmd.Context())
		if err != nil {
			return err
		}
		printStatuses(os.Stdout, statuses)
		return nil
	},
}

func printStatuses(w io.Writer, statuses []providers.Status) {
	green := color.New(color.FgGreen, color.Bold)
	for _, s := range statuses {
		marker := " "
		if s.Selected {
			marker = green.Sprint("*")
		}
		state := "not configured"
		if s.Configured {
			state = "configured"
		}
		tier := "paid"
		if s.IsFree {
			tier = "free"
		}
		fmt.Fprintf(w, "%s %-10s %-14s %-28s %-5s %s\n", marker, s.ID, s.Name, s.Model, tier, state)
	}
}

var providerDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that configured backends accept their credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		exitCode = runDoctor(cmd.Context(), cfg, flagBackend, os.Stdout)
		return nil
	},
}

// runDoctor sends a one-token ping to each configured backend, or only to
// backend when it is set, and returns the process exit code.
func runDoctor(ctx context.Context, c config.Config, backend string, w io.Writer) int {
	gw := newGateway(c)
	statuses, err := gw.Statuses(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}

	var only providers.BackendID
	if backend != "" {
		id, ok := providers.ParseBackend(backend)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown backend %q (groq, gemini, openai, anthropic)\n", backend)
			return ExitUsageError
		}
		only = id
	}

	checked := 0
	code := ExitSuccess
	for _, s := range statuses {
		if only != "" && s.ID != only {
			continue
		}
		if !s.Configured {
			if only != "" {
				fmt.Fprintf(w, "FAIL: %s has no API key\n", s.Name)
				return ExitAuthError
			}
			continue
		}
		checked++
		fmt.Fprintf(w, "Checking %s (%s)...\n", s.Name, s.Model)

		pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := gw.Check(pingCtx, s.ID)
		cancel()
		if err != nil {
			fmt.Fprintf(w, "FAIL: %v\n", err)
			if providers.IsAuthError(err) {
				code = max(code, ExitAuthError)
			} else {
				code = max(code, ExitRuntimeError)
			}
			continue
		}
		fmt.Fprintf(w, "OK: %s is configured and responding\n", s.Name)
	}

	if checked == 0 {
		fmt.Fprintf(w, "FAIL: %v\n", &providers.ConfigurationError{})
		return ExitAuthError
	}
	return code
}

func init() {
	providerCmd.AddCommand(providerShowCmd)
	providerCmd.AddCommand(providerListCmd)
	providerCmd.AddCommand(providerDoctorCmd)
	providerDoctorCmd.Flags().StringVar(&flagBackend, "backend", "", "Check only this backend (groq, gemini, openai, anthropic)")
}
