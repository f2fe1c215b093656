// Package server exposes the analysis pipeline over HTTP.
//
// Routes:
//
//	POST /analyze   validate a snippet and run the three agents
//	GET  /provider  report the backend that would serve the next request
//	GET  /healthz   liveness
//	GET  /metrics   Prometheus exposition
//
// Every response carries an X-Request-ID header. Analyze responses use a
// {success, data|error, timestamp, processingTimeMs} envelope; validation
// failures are 400 VALIDATION_ERROR and never reach a backend.
package server
