package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/dshills/triad/internal/analysis"
	"github.com/dshills/triad/internal/providers"
)

// maxBodyBytes bounds the request body; it comfortably fits the largest
// accepted snippet after JSON escaping.
const maxBodyBytes = 1 << 20

// Analyzer runs one analysis.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
}

// InfoSource reports the backend that would serve the next request.
type InfoSource interface {
	Info(ctx context.Context) providers.Info
}

// Handlers contains HTTP handlers for the analysis API.
type Handlers struct {
	analyzer      Analyzer
	info          InfoSource
	maxCodeLength int
}

// NewHandlers creates a new handlers instance. maxCodeLength <= 0 selects
// analysis.DefaultMaxCodeLength.
func NewHandlers(analyzer Analyzer, info InfoSource, maxCodeLength int) *Handlers {
	return &Handlers{
		analyzer:      analyzer,
		info:          info,
		maxCodeLength: maxCodeLength,
	}
}

// HandleAnalyze handles POST /analyze.
func (h *Handlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	// A disconnecting client must not abort backend calls already dispatched.
	ctx := context.WithoutCancel(r.Context())
	log := clog.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var body analyzeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		analyses.WithLabelValues("validation_error").Inc()
		h.fail(ctx, w, start, http.StatusBadRequest, ErrorBody{Code: CodeValidation, Message: "Request body must be a JSON object"})
		return
	}

	req, err := body.request()
	if err == nil {
		err = req.Validate(h.maxCodeLength)
	}
	var ve *analysis.ValidationError
	if errors.As(err, &ve) {
		analyses.WithLabelValues("validation_error").Inc()
		h.fail(ctx, w, start, http.StatusBadRequest, ErrorBody{Code: CodeValidation, Message: ve.Message})
		return
	}

	result, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		if providers.IsConfigurationError(err) {
			analyses.WithLabelValues("configuration_error").Inc()
			log.Warn("Analysis requested with no backend configured")
			h.fail(ctx, w, start, http.StatusInternalServerError, ErrorBody{Code: CodeConfiguration, Message: err.Error()})
			return
		}
		analyses.WithLabelValues("internal_error").Inc()
		log.With("error", err).Error("Analysis failed")
		h.fail(ctx, w, start, http.StatusInternalServerError, ErrorBody{
			Code:    CodeInternal,
			Message: "Failed to analyze code",
			Details: err.Error(),
		})
		return
	}

	analyses.WithLabelValues("success").Inc()
	h.json(ctx, w, http.StatusOK, AnalyzeResponse{
		Success:          true,
		Data:             result,
		Timestamp:        timestamp(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// HandleProvider handles GET /provider.
func (h *Handlers) HandleProvider(w http.ResponseWriter, r *http.Request) {
	h.json(r.Context(), w, http.StatusOK, ProviderResponse{
		Success:  true,
		Provider: h.info.Info(r.Context()),
	})
}

// HandleHealth handles health check requests
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.json(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *Handlers) fail(ctx context.Context, w http.ResponseWriter, start time.Time, status int, body ErrorBody) {
	h.json(ctx, w, status, AnalyzeResponse{
		Success:          false,
		Error:            &body,
		Timestamp:        timestamp(),
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

func (h *Handlers) json(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		clog.FromContext(ctx).With("error", err).Error("Failed to encode response")
	}
}

// timestamp formats the current time as RFC 3339 UTC with milliseconds.
func timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
