package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "radarmock"

// DefaultBuckets are the latency buckets, in seconds, of the duration histogram.
var DefaultBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Collector bundles the engine's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	Requests         *prometheus.CounterVec
	Durations        *prometheus.HistogramVec
	InjectedFailures *prometheus.CounterVec
	Passthrough      prometheus.Counter
	Records          *prometheus.GaugeVec
}

// NewCollector registers the engine metrics against reg, defaulting to the
// global registry when nil. Registering twice against the same registry
// returns the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of dispatched mock requests, labeled by method, route and response status.",
	}, []string{"method", "route", "status"}))
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Mock dispatch latency in seconds, excluding simulated latency.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route"}))
	if err != nil {
		return nil, err
	}

	injected, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "injected_failures_total",
		Help:      "Failures returned by the failure-injection wrapper, labeled by route and status.",
	}, []string{"route", "status"}))
	if err != nil {
		return nil, err
	}

	passthrough, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "passthrough_total",
		Help:      "Requests that matched no mock route and were forwarded upstream.",
	}))
	if err != nil {
		return nil, err
	}

	records, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "records",
		Help:      "Current number of records in the in-memory store, by resource.",
	}, []string{"resource"}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		Requests:         requests,
		Durations:        durations,
		InjectedFailures: injected,
		Passthrough:      passthrough,
		Records:          records,
	}, nil
}

// ObserveRequest records one dispatched request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.Durations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// InjectedFailure records a failure returned by the chaos wrapper.
func (c *Collector) InjectedFailure(route string, status int) {
	if c == nil {
		return
	}
	c.InjectedFailures.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// PassedThrough records a request forwarded to the upstream.
func (c *Collector) PassedThrough() {
	if c == nil {
		return
	}
	c.Passthrough.Inc()
}

// SetRecords updates the per-resource record gauges.
func (c *Collector) SetRecords(counts map[string]int) {
	if c == nil {
		return
	}
	for name, n := range counts {
		c.Records.WithLabelValues(name).Set(float64(n))
	}
}

// Handler exposes the gathered metrics in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
			var zero C
			return zero, fmt.Errorf("collector already registered with incompatible type: %w", err)
		}
		var zero C
		return zero, err
	}
	return c, nil
}
