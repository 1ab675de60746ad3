package listing

import (
	"context"
	"log/slog"
	"sync"

	"cmsdesk/internal/observability/metrics"
)

// FetchFunc loads every item of a flat list.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection holds a flat list that is always replaced wholesale.
type Collection[T any] struct {
	name   string
	fetch  FetchFunc[T]
	logger *slog.Logger

	mu      sync.RWMutex
	items   []T
	loaded  bool
	lastErr error
}

// NewCollection creates an empty collection. name labels logs and metrics.
func NewCollection[T any](name string, fetch FetchFunc[T], logger *slog.Logger) *Collection[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collection[T]{
		name:   name,
		fetch:  fetch,
		logger: logger.With(slog.String("list", name)),
	}
}

// Refresh replaces the items with a fresh fetch. On failure the previous
// items are kept and the error is returned.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	items, err := c.fetch(ctx)
	metrics.RecordListFetch(c.name, err == nil)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		c.logger.Error("list fetch failed", slog.Any("error", err))
		return err
	}
	c.items = items
	c.loaded = true
	c.lastErr = nil
	return nil
}

// Items returns a copy of the current items.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loaded reports whether at least one fetch has succeeded.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// LastError returns the error of the most recent failed fetch, or nil if
// the most recent fetch succeeded.
func (c *Collection[T]) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}
