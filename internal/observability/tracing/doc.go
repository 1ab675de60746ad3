// Package tracing provides OpenTelemetry tracing for outbound backend calls.
//
// The Transport round-tripper starts a client span per request and propagates
// the trace context in W3C format, so backend traces can be joined with the
// console's. Without a configured TracerProvider the global no-op provider is
// used and spans cost nothing.
package tracing
