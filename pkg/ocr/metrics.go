package ocr

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	engineAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slip_ocr_engine_attempts_total",
		Help: "Recognition attempts per engine and outcome (accepted, below_floor, error).",
	}, []string{"engine", "outcome"})

	analyzeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slip_analyze_duration_seconds",
		Help:    "End-to-end bet slip analysis latency.",
		Buckets: prometheus.DefBuckets,
	})

	fallbackLegs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slip_fallback_legs_total",
		Help: "Slips where no pick or matchup could be parsed.",
	})
)
