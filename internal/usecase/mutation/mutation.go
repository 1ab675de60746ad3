// Package mutation holds the outcome handling shared by every write use case:
// notify the user, record metrics, and resynchronize the affected list by a
// full re-fetch after a successful write.
package mutation

import (
	"context"
	"log/slog"

	"cmsdesk/internal/controller/listing"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/observability/logging"
	"cmsdesk/internal/observability/metrics"
)

// Reporter reports the outcome of a mutation. The zero value is usable:
// notifications are dropped and nothing is refreshed.
type Reporter struct {
	Notifier  notifier.Notifier
	Refresher listing.Refresher
	Logger    *slog.Logger
}

// Succeeded notifies success and re-fetches the list. A failed re-fetch
// does not undo the write; it is only logged, and the list keeps its
// previous contents.
func (r Reporter) Succeeded(ctx context.Context, resource, action, title, message string) {
	metrics.RecordMutation(resource, action, true)
	r.logger(ctx).Info("mutation succeeded",
		slog.String("resource", resource),
		slog.String("action", action))

	if r.Refresher != nil {
		if err := r.Refresher.Refresh(ctx); err != nil {
			r.logger(ctx).Warn("refresh after mutation failed",
				slog.String("resource", resource),
				slog.String("action", action),
				slog.Any("error", err))
		}
	}
	r.notify(ctx, notifier.Success(title, message))
}

// Failed notifies and logs err and returns it. Nothing is refreshed.
func (r Reporter) Failed(ctx context.Context, resource, action, title string, err error) error {
	metrics.RecordMutation(resource, action, false)
	r.logger(ctx).Error("mutation failed",
		slog.String("resource", resource),
		slog.String("action", action),
		slog.Any("error", err))
	r.notify(ctx, notifier.Error(title, err))
	return err
}

// Rejected notifies a client-side validation failure. No request was sent,
// so nothing is counted as a backend mutation.
func (r Reporter) Rejected(ctx context.Context, title string, err error) error {
	r.logger(ctx).Debug("form rejected", slog.Any("error", err))
	r.notify(ctx, notifier.Error(title, err))
	return err
}

// Notify forwards an arbitrary notification.
func (r Reporter) Notify(ctx context.Context, n notifier.Notification) {
	r.notify(ctx, n)
}

func (r Reporter) notify(ctx context.Context, n notifier.Notification) {
	if r.Notifier != nil {
		r.Notifier.Notify(ctx, n)
	}
}

func (r Reporter) logger(ctx context.Context) *slog.Logger {
	logger := r.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	return logging.WithRequestID(ctx, logger)
}
