package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triad_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triad_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by route",
			Buckets: prometheus.ExponentialBuckets(0.005, 4, 10),
		},
		[]string{"route"},
	)

	analyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triad_analyses_total",
			Help: "Total number of analysis requests by outcome",
		},
		[]string{"outcome"},
	)
)
