// Package metrics exposes prometheus instrumentation for job processing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsProcessed counts successfully processed jobs by kind ("final"/"live").
	JobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "killfeed",
		Name:      "jobs_processed_total",
		Help:      "Jobs processed successfully, by job kind.",
	}, []string{"kind"})

	// JobsFailed counts jobs returned to the queue for retry.
	JobsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "killfeed",
		Name:      "jobs_failed_total",
		Help:      "Jobs that failed and were handed back for retry, by job kind.",
	}, []string{"kind"})

	// JobsSkipped counts jobs dropped without processing (unknown match).
	JobsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "killfeed",
		Name:      "jobs_skipped_total",
		Help:      "Jobs skipped because the match was not found.",
	})

	// JobsStale counts live results discarded by the poll-sequence guard.
	JobsStale = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "killfeed",
		Name:      "jobs_stale_total",
		Help:      "Live results discarded because a newer poll already published.",
	})

	// JobDuration tracks end-to-end job processing time.
	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "killfeed",
		Name:      "job_duration_seconds",
		Help:      "End-to-end job processing duration, by job kind.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})
)
