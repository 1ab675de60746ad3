package notifier

import "context"

// NoOpNotifier discards every notification.
// It is used when output is machine-readable and notifications would corrupt it.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// Notify does nothing.
func (n *NoOpNotifier) Notify(context.Context, Notification) {}
