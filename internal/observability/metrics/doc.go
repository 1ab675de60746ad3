// Package metrics provides centralized Prometheus metrics for the application.
//
// Metrics are grouped into:
//   - Backend client metrics: request counts, latency and response sizes per resource
//   - Console metrics: mutation outcomes, list fetch outcomes, stale list responses
//
// All collectors are registered on the default registry through promauto, so a
// promhttp.Handler() mounted by the console exposes them.
package metrics
