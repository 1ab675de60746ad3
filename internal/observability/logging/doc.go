// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Request ID propagation for outbound backend calls
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	logger := logging.New(os.Getenv("LOG_FORMAT"))
//	logger.Info("console started", slog.String("base_url", cfg.CMS.BaseURL))
package logging
