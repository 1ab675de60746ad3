package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a page request with structured fields.
func LogRequest(logger *slog.Logger, resource string, params Params) {
	logger.Debug("paginated request",
		slog.String("resource", resource),
		slog.Int("page", params.Page),
		slog.Int("page_size", params.PageSize))
}

// LogResponse logs a page response with duration.
func LogResponse(logger *slog.Logger, resource string, meta Metadata, returnedCount int, duration time.Duration) {
	logger.Debug("paginated response",
		slog.String("resource", resource),
		slog.Int("page", meta.Page),
		slog.Int("page_count", meta.PageCount),
		slog.Int64("total", meta.Total),
		slog.Int("returned_count", returnedCount),
		slog.Int64("duration_ms", duration.Milliseconds()))
}

// LogError logs a page fetch error.
func LogError(logger *slog.Logger, resource string, params Params, err error) {
	logger.Error("paginated request failed",
		slog.String("resource", resource),
		slog.Int("page", params.Page),
		slog.Int("page_size", params.PageSize),
		slog.Any("error", err))
}
