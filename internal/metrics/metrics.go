// Package metrics provides the centralized Prometheus metrics registry for
// the EV calculator.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	EvaluationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ev_calculator",
		Name:      "evaluations_total",
		Help:      "Total number of odds expressions evaluated",
	})
	EvaluationErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ev_calculator",
		Name:      "evaluation_errors_total",
		Help:      "Total number of evaluations that returned an error",
	})
	ParseErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ev_calculator",
		Name:      "parse_errors_total",
		Help:      "Total number of odds expressions that failed to parse",
	})
	DevigFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ev_calculator",
		Name:      "devig_fallbacks_total",
		Help:      "Total number of devig calls that fell back to the worst-case method",
	}, []string{"method"})
)

// Histogram metrics
var (
	EvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ev_calculator",
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of odds expression evaluation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(EvaluationsTotal)
		registry.MustRegister(EvaluationErrorsTotal)
		registry.MustRegister(ParseErrorsTotal)
		registry.MustRegister(DevigFallbacksTotal)
		registry.MustRegister(EvaluationDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler for an embedding service.
// The CLI itself never serves it.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordEvaluation records a completed evaluation.
func RecordEvaluation(durationSeconds float64) {
	EvaluationsTotal.Inc()
	EvaluationDuration.Observe(durationSeconds)
}

// RecordEvaluationError records a failed evaluation.
func RecordEvaluationError() {
	EvaluationErrorsTotal.Inc()
}

// RecordParseError records an odds expression that failed to parse.
func RecordParseError() {
	ParseErrorsTotal.Inc()
}

// RecordDevigFallback records a devig call recovered by the worst-case method.
func RecordDevigFallback(method string) {
	DevigFallbacksTotal.WithLabelValues(method).Inc()
}
