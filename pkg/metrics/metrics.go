// Package metrics documents the Prometheus metrics exposed by this module.
// All metrics are defined in their respective packages (catalog, store) via
// promauto to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the catalog client.
// All metrics are automatically registered via promauto in their packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/catalog):
//   - catalog_requests_total{status} (Counter): Requests by HTTP status,
//     plus the synthetic "transport_error" status for failed connections
//   - catalog_request_duration_seconds (Histogram): Request duration
//   - catalog_errors_total{class} (Counter): Fetch errors by class
//     (transport, remote, malformed)
//   - catalog_pages_fetched_total (Counter): Pages fetched and decoded
//   - catalog_records_fetched_total (Counter): Records normalized
//
// Store Metrics (pkg/store):
//   - store_snapshot_saves_total (Counter): Snapshots saved
//   - store_checks_total (Counter): Successful connectivity checks
//   - store_errors_total{operation} (Counter): Redis operation errors
//
// Example Prometheus Queries:
//
//   # Request error rate
//   rate(catalog_errors_total[5m])
//
//   # P95 request latency
//   histogram_quantile(0.95, rate(catalog_request_duration_seconds_bucket[5m]))
//
//   # Average records per page
//   rate(catalog_records_fetched_total[5m]) / rate(catalog_pages_fetched_total[5m])
