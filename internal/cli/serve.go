package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/dshills/triad/internal/config"
	"github.com/dshills/triad/internal/orchestrator"
	"github.com/dshills/triad/internal/providers"
	"github.com/dshills/triad/internal/server"
	"github.com/spf13/cobra"
)

// newGateway builds the backend gateway for c.
func newGateway(c config.Config) *providers.Gateway {
	return providers.NewGateway(
		providers.WithLookuper(lookuper),
		providers.WithTimeout(time.Duration(c.BackendTimeoutSeconds)*time.Second),
	)
}

// newOrchestrator builds the three-agent pipeline over gw.
func newOrchestrator(c config.Config, gw *providers.Gateway) *orchestrator.Orchestrator {
	return orchestrator.New(gw,
		orchestrator.WithRedaction(c.Privacy.RedactSecrets),
		orchestrator.WithMaxTokens(c.MaxTokens),
	)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		gw := newGateway(cfg)
		h := server.NewHandlers(newOrchestrator(cfg, gw), gw, cfg.MaxCodeLength)

		info := gw.Info(ctx)
		clog.FromContext(ctx).With("backend", info.Name, "model", info.Model, "free", info.IsFree).
			Info("Default backend for new analyses")
		if !cfg.Privacy.RedactSecrets {
			clog.FromContext(ctx).Warn("Secret redaction is disabled")
		}

		if err := server.Run(ctx, cfg.Addr, server.NewMux(h)); err != nil {
			clog.FromContext(ctx).With("error", err).Error("Server failed")
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().IntVar(&flagMaxCodeLength, "max-code-length", 0, "Maximum snippet length in characters")
	serveCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Completion token cap per agent")
	serveCmd.Flags().IntVar(&flagTimeout, "backend-timeout", 0, "Backend request timeout in seconds")
	serveCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}
