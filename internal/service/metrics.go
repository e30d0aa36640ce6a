package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh and cache metrics, exposed on the server's /metrics endpoint.
var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orbitwatch",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Cache hits by collection key.",
	}, []string{"key"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orbitwatch",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Cache misses by collection key.",
	}, []string{"key"})

	refreshErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orbitwatch",
		Subsystem: "refresh",
		Name:      "errors_total",
		Help:      "Failed collection refreshes by key.",
	}, []string{"key"})

	refreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orbitwatch",
		Subsystem: "refresh",
		Name:      "duration_seconds",
		Help:      "Collection refresh latency by key.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"key"})
)
