// Package metrics provides Prometheus metrics for the request layer.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

const namespace = "codemasterpiece"

// Collector records request outcomes. It implements ports.Observer.
type Collector struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec
	ShapeMismatches  *prometheus.CounterVec

	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
}

// New registers a collector on the default registry.
func New() *Collector {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers a collector on reg.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of API requests by outcome code",
			},
			[]string{"name", "method", "code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"name", "status"},
		),
		RequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of API requests awaiting a response",
			},
			[]string{"name"},
		),
		ShapeMismatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shape_mismatches_total",
				Help:      "Responses rejected because their body did not match the declared shape",
			},
			[]string{"name"},
		),
		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reloads_total",
				Help:      "Total number of successful configuration reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "config_reload_errors_total",
				Help:      "Total number of failed configuration reloads",
			},
		),
	}
}

// RequestStarted marks a request in flight.
func (c *Collector) RequestStarted(name string) {
	c.RequestsInFlight.WithLabelValues(name).Inc()
}

// RequestFinished records the outcome of a request started with RequestStarted.
func (c *Collector) RequestFinished(o ports.RequestOutcome) {
	c.RequestsInFlight.WithLabelValues(o.Name).Dec()
	c.RequestsTotal.WithLabelValues(o.Name, o.Method, CodeLabel(o.Code)).Inc()
	c.RequestDuration.WithLabelValues(o.Name, StatusClass(o.Status)).Observe(o.Duration.Seconds())
	if o.Code == result.CodeShapeMismatch {
		c.ShapeMismatches.WithLabelValues(o.Name).Inc()
	}
}

// ConfigReloaded counts a configuration reload attempt.
func (c *Collector) ConfigReloaded(err error) {
	if err != nil {
		c.ConfigReloadErrors.Inc()
		return
	}
	c.ConfigReloads.Inc()
}

var _ ports.Observer = (*Collector)(nil)

// CodeLabel maps an outcome code to a label value; success is "ok".
func CodeLabel(code result.Code) string {
	if code == "" {
		return "ok"
	}
	return string(code)
}

// StatusClass buckets an HTTP status ("2xx", "4xx"). Exchanges that never
// got a response are "none".
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "none"
	}
	return strconv.Itoa(status/100) + "xx"
}
