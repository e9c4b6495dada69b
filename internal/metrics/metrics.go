// Package metrics records chat turn and assistant call metrics with Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is what the chat service reports to.
type Recorder interface {
	ObserveTurn(step string)
	ObserveAssistant(provider, model, status string, duration time.Duration)
}

type PrometheusRecorder struct {
	turnsTotal        *prometheus.CounterVec
	assistantTotal    *prometheus.CounterVec
	assistantDuration *prometheus.HistogramVec
}

func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		turnsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guidechat_turns_total",
				Help: "Chat turns by the step they produced",
			},
			[]string{"step"},
		),
		assistantTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guidechat_assistant_requests_total",
				Help: "Assistant requests by provider, model and outcome",
			},
			[]string{"provider", "model", "status"},
		),
		assistantDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "guidechat_assistant_request_duration_seconds",
				Help:    "Duration of assistant requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "model"},
		),
	}
}

func (p *PrometheusRecorder) ObserveTurn(step string) {
	p.turnsTotal.WithLabelValues(step).Inc()
}

func (p *PrometheusRecorder) ObserveAssistant(provider, model, status string, duration time.Duration) {
	p.assistantTotal.WithLabelValues(provider, model, status).Inc()
	p.assistantDuration.WithLabelValues(provider, model).Observe(duration.Seconds())
}

// Nop discards everything.
type Nop struct{}

func (Nop) ObserveTurn(string)                                     {}
func (Nop) ObserveAssistant(string, string, string, time.Duration) {}
