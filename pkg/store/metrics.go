package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for store operations.
var (
	snapshotSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "store_snapshot_saves_total",
		Help: "Total catalog snapshots saved to the store",
	})

	checksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "store_checks_total",
		Help: "Total successful store connectivity checks",
	})

	storeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "store_errors_total",
		Help: "Total store operation errors by operation",
	}, []string{"operation"})
)
