package artic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts listing requests by outcome
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artic_requests_total",
			Help: "Total number of artwork API requests",
		},
		[]string{"outcome"}, // "ok", "transport", "status", "decode"
	)

	// RequestDuration tracks artwork API latency
	RequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "artic_request_duration_seconds",
			Help:    "Artwork API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
