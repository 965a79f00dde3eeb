package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpload(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	o.ObserveUpload("s3", "stored", 2048, 120*time.Millisecond)
	o.ObserveUpload("s3", "stored", 1024, 80*time.Millisecond)
	o.ObserveUpload("s3", "bad_request", 99, time.Millisecond)
	o.ObserveUpload("local", "forbidden", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(o.uploads.WithLabelValues("s3", "stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.uploads.WithLabelValues("s3", "bad_request")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.uploads.WithLabelValues("local", "forbidden")))
	assert.Equal(t, 3072.0, testutil.ToFloat64(o.uploadBytes.WithLabelValues("s3")))
	assert.Equal(t, 2, testutil.CollectAndCount(o.uploadDuration))
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewPrometheusObserver("", reg)
	require.NoError(t, err)

	o.ObserveRequest("GET", "/api/artworks/:id", 200, 5*time.Millisecond)
	o.ObserveRequest("GET", "", 404, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() == "artfolio_http_request_duration_seconds" {
			found = true
			assert.Len(t, mf.GetMetric(), 2)
		}
	}
	assert.True(t, found)
}

func TestNewPrometheusObserver_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPrometheusObserver("dup", reg)
	require.NoError(t, err)
	second, err := NewPrometheusObserver("dup", reg)
	require.NoError(t, err)

	second.ObserveUpload("s3", "stored", 1, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(first.uploads.WithLabelValues("s3", "stored")))
}

func TestNilObserverIsSafe(t *testing.T) {
	var o *PrometheusObserver
	assert.NotPanics(t, func() {
		o.ObserveUpload("s3", "stored", 1, time.Second)
		o.ObserveRequest("GET", "/", 200, time.Second)
	})
}
