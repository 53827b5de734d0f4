// Package metrics records per-operation call counts and latencies with prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// llamafi_client_requests_total
	//
	// counter of completed calls
	//
	// Has the following labels:
	// * operation - the logical operation name, e.g. historical-prices
	// * outcome - success, failure (non-200) or error (no response)
	RequestsMetricName = "llamafi_client_requests_total"

	// llamafi_client_request_duration_seconds
	//
	// histogram of round trip durations for calls that got a response
	//
	// Has the following labels:
	// * operation - the logical operation name
	RequestDurationMetricName = "llamafi_client_request_duration_seconds"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// Metrics holds the client collectors. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg. If an identical
// collector is already registered (two clients sharing a registry), the
// existing one is reused.
func New(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: RequestsMetricName,
			Help: "counter of completed llamafi client calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    RequestDurationMetricName,
			Help:    "histogram of llamafi client round trip durations by operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &Metrics{requests: requests, duration: duration}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe records one call.
func (m *Metrics) Observe(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	if outcome != OutcomeError {
		m.duration.WithLabelValues(operation).Observe(d.Seconds())
	}
}
