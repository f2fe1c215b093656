package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triad_backend_requests_total",
			Help: "Total number of completion requests sent to a language-model backend",
		},
		[]string{"backend", "outcome"},
	)

	backendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triad_backend_request_duration_seconds",
			Help:    "Latency of completion requests per backend",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80, 120},
		},
		[]string{"backend"},
	)

	backendTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triad_backend_tokens_total",
			Help: "Total tokens reported by backends",
		},
		[]string{"backend"},
	)
)

func recordCall(id BackendID, start time.Time, tokens int64, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	backendRequests.WithLabelValues(string(id), outcome).Inc()
	backendDuration.WithLabelValues(string(id)).Observe(time.Since(start).Seconds())
	if tokens > 0 {
		backendTokens.WithLabelValues(string(id)).Add(float64(tokens))
	}
}
