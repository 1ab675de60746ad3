package mutation

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmsdesk/internal/controller/listing"
	"cmsdesk/internal/infra/notifier"
	"cmsdesk/internal/observability/metrics"
)

func TestReporter_Succeeded(t *testing.T) {
	rec := notifier.NewRecorder()
	refreshed := 0
	r := Reporter{
		Notifier: rec,
		Refresher: listing.RefresherFunc(func(context.Context) error {
			refreshed++
			return nil
		}),
	}

	counter := metrics.MutationsTotal.WithLabelValues("widgets", "create", "success")
	before := testutil.ToFloat64(counter)

	r.Succeeded(context.Background(), "widgets", "create", "Widget created", "w-1")

	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notifier.LevelSuccess, last.Level)
	assert.Equal(t, "Widget created", last.Title)
}

func TestReporter_SucceededRefreshFailureIsNotFatal(t *testing.T) {
	rec := notifier.NewRecorder()
	r := Reporter{
		Notifier: rec,
		Refresher: listing.RefresherFunc(func(context.Context) error {
			return errors.New("backend unavailable")
		}),
	}

	r.Succeeded(context.Background(), "widgets", "update", "Widget updated", "")

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notifier.LevelSuccess, last.Level)
}

func TestReporter_Failed(t *testing.T) {
	rec := notifier.NewRecorder()
	refreshed := false
	r := Reporter{
		Notifier: rec,
		Refresher: listing.RefresherFunc(func(context.Context) error {
			refreshed = true
			return nil
		}),
	}
	boom := errors.New("boom")

	counter := metrics.MutationsTotal.WithLabelValues("widgets", "delete", "failure")
	before := testutil.ToFloat64(counter)

	err := r.Failed(context.Background(), "widgets", "delete", "Failed to delete widget", boom)

	assert.Same(t, boom, err)
	assert.False(t, refreshed)
	assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
	last, _ := rec.Last()
	assert.Equal(t, notifier.Notification{Level: notifier.LevelError, Title: "Failed to delete widget", Message: "boom"}, last)
}

func TestReporter_ZeroValue(t *testing.T) {
	var r Reporter
	r.Succeeded(context.Background(), "widgets", "create", "ok", "")
	err := r.Rejected(context.Background(), "bad form", errors.New("invalid"))
	assert.EqualError(t, err, "invalid")
}
