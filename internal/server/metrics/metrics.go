// Package metrics exports upload and HTTP request telemetry to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "artfolio"

// PrometheusObserver records image ingestion and HTTP request metrics.
// It satisfies ingest.Observer.
type PrometheusObserver struct {
	uploadDuration  *prometheus.HistogramVec
	uploads         *prometheus.CounterVec
	uploadBytes     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusObserver registers the collectors on reg (the default
// registerer when nil). Registering twice on the same registry reuses the
// existing collectors.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &PrometheusObserver{
		uploadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Time spent validating, normalizing and storing an upload.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"backend"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Uploads by backend and outcome.",
		}, []string{"backend", "outcome"}),
		uploadBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploaded_bytes_total",
			Help:      "Received payload size of successful uploads.",
		}, []string{"backend"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	var err error
	if o.uploadDuration, err = register(reg, o.uploadDuration); err != nil {
		return nil, err
	}
	if o.uploads, err = register(reg, o.uploads); err != nil {
		return nil, err
	}
	if o.uploadBytes, err = register(reg, o.uploadBytes); err != nil {
		return nil, err
	}
	if o.requestDuration, err = register(reg, o.requestDuration); err != nil {
		return nil, err
	}
	return o, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

// ObserveUpload implements ingest.Observer.
func (o *PrometheusObserver) ObserveUpload(backend, outcome string, size int, elapsed time.Duration) {
	if o == nil {
		return
	}
	o.uploadDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
	o.uploads.WithLabelValues(backend, outcome).Inc()
	if outcome == "stored" {
		o.uploadBytes.WithLabelValues(backend).Add(float64(size))
	}
}

// ObserveRequest records one served HTTP request. route is the matched
// pattern, not the raw path, to keep cardinality bounded.
func (o *PrometheusObserver) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if o == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	o.requestDuration.WithLabelValues(method, route, fmt.Sprint(status)).Observe(elapsed.Seconds())
}
