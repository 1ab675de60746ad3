// Package observability groups the console's logging, metrics and tracing.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors for backend calls, mutations and list fetches
//   - tracing: OpenTelemetry client spans for outbound backend requests
package observability
