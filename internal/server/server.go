package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shutdownTimeout bounds graceful shutdown; in-flight analyses may take this long.
const shutdownTimeout = 30 * time.Second

// NewMux routes the API onto a ServeMux wrapped in the request-ID middleware.
func NewMux(h *Handlers) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /analyze", instrument("/analyze", http.HandlerFunc(h.HandleAnalyze)))
	mux.Handle("GET /provider", instrument("/provider", http.HandlerFunc(h.HandleProvider)))
	mux.Handle("GET /healthz", instrument("/healthz", http.HandlerFunc(h.HandleHealth)))
	mux.Handle("GET /metrics", promhttp.Handler())
	return withRequestID(mux)
}

// Run serves handler on addr until ctx is done, then shuts down gracefully.
// The logger in ctx becomes the base logger of every request.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	log := clog.FromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		log.With("addr", addr).Info("Starting triad server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
