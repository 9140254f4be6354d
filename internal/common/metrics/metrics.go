// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_recommendations_generated_total",
			Help: "Total number of career recommendation sets produced",
		},
		[]string{"mode", "region"},
	)

	ReferenceDataFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_reference_data_fallbacks_total",
			Help: "Reference tables that fell back to built-in defaults at load",
		},
		[]string{"table"},
	)

	TipCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_tip_cache_hits_total",
			Help: "Daily tip lookups served from cache versus computed",
		},
		[]string{"result"},
	)
)
