// Package metrics exposes dispatch and model-call counters in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doeshing/vyra-go/internal/ports"
)

var durationBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}

// Recorder implements ports.MetricsRecorder on a private registry.
type Recorder struct {
	registry      *prometheus.Registry
	dispatches    *prometheus.CounterVec
	providerCalls *prometheus.CounterVec
	providerTime  *prometheus.HistogramVec
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vyra",
			Name:      "commands_total",
			Help:      "Commands answered, by dispatch path.",
		}, []string{"path"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vyra",
			Name:      "model_calls_total",
			Help:      "Model calls, by provider and outcome.",
		}, []string{"provider", "ok"}),
		providerTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vyra",
			Name:      "model_call_duration_seconds",
			Help:      "Model call latency.",
			Buckets:   durationBuckets,
		}, []string{"provider"}),
	}
	r.registry.MustRegister(r.dispatches, r.providerCalls, r.providerTime)
	return r
}

// ObserveDispatch counts one answered command.
func (r *Recorder) ObserveDispatch(path string) {
	r.dispatches.WithLabelValues(path).Inc()
}

// ObserveProviderCall counts one model call and records its latency.
func (r *Recorder) ObserveProviderCall(provider string, ok bool, seconds float64) {
	r.providerCalls.WithLabelValues(provider, strconv.FormatBool(ok)).Inc()
	r.providerTime.WithLabelValues(provider).Observe(seconds)
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

var _ ports.MetricsRecorder = (*Recorder)(nil)
