package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRuns counts matching-engine invocations by trigger (fresh|cached).
	RecommendationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "empowerher_recommendation_runs_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"source"},
	)

	// SyntheticScholarships counts scholarship records fabricated by the engine.
	SyntheticScholarships = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "empowerher_synthetic_scholarships_total",
			Help: "Total number of AI-generated scholarship records",
		},
	)

	// StreakMilestones counts five-day streak milestones reached across all users.
	StreakMilestones = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "empowerher_streak_milestones_total",
			Help: "Total number of streak milestones celebrated",
		},
	)

	// ActiveSessions tracks user state stores currently held in memory.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "empowerher_active_sessions",
			Help: "Number of hydrated user sessions",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "empowerher_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
