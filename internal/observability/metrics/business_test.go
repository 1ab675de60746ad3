package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := h.(prometheus.Metric)
	require.True(t, ok, "observer is not a metric")

	var m dto.Metric
	require.NoError(t, metric.Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestRecordClientRequest(t *testing.T) {
	before := testutil.ToFloat64(ClientRequestsTotal.WithLabelValues("articles", "GET", "200"))

	RecordClientRequest("articles", "GET", "200", 120*time.Millisecond, 2048)

	after := testutil.ToFloat64(ClientRequestsTotal.WithLabelValues("articles", "GET", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordClientRequest_Histograms(t *testing.T) {
	duration := ClientRequestDuration.WithLabelValues("categories", "PUT")
	size := ClientResponseSize.WithLabelValues("categories")
	durationBefore := sampleCount(t, duration)
	sizeBefore := sampleCount(t, size)

	RecordClientRequest("categories", "PUT", "200", 40*time.Millisecond, 512)

	assert.Equal(t, durationBefore+1, sampleCount(t, duration))
	assert.Equal(t, sizeBefore+1, sampleCount(t, size))
}

func TestRecordClientRequest_ZeroSize(t *testing.T) {
	size := ClientResponseSize.WithLabelValues("comments")
	before := sampleCount(t, size)

	RecordClientRequest("comments", "DELETE", "204", time.Millisecond, 0)

	assert.Equal(t, before, sampleCount(t, size))
}

func TestRecordMutation(t *testing.T) {
	tests := []struct {
		name    string
		success bool
		label   string
	}{
		{name: "success", success: true, label: "success"},
		{name: "failure", success: false, label: "failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := MutationsTotal.WithLabelValues("categories", "delete", tt.label)
			before := testutil.ToFloat64(counter)

			RecordMutation("categories", "delete", tt.success)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordListFetch(t *testing.T) {
	counter := ListFetchesTotal.WithLabelValues("articles", "failure")
	before := testutil.ToFloat64(counter)

	RecordListFetch("articles", false)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordStaleResponse(t *testing.T) {
	counter := ListStaleResponsesTotal.WithLabelValues("articles")
	before := testutil.ToFloat64(counter)

	RecordStaleResponse("articles")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
