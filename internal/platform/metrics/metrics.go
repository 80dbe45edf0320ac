// Package metrics defines the Prometheus instruments recorded by the game and
// alphabet services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "daybe"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the application's instruments. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	roundsTotal     *prometheus.CounterVec
	roundDuration   *prometheus.HistogramVec
	answersTotal    *prometheus.CounterVec
	speechTotal     *prometheus.CounterVec
	sessionsCreated prometheus.Counter
	sessionsEvicted prometheus.Counter
	sessionsActive  prometheus.Gauge
}

// New registers all instruments with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		roundsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rounds_generated_total",
				Help:      "Total number of round generation attempts, partitioned by category, outcome and failure kind.",
			},
			[]string{"category", "outcome", "failure_kind"},
		),
		roundDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "round_generation_duration_seconds",
				Help:      "Duration of round generation including both remote calls.",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
			},
			[]string{"category", "outcome"},
		),
		answersTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "answers_total",
				Help:      "Total number of accepted answers, partitioned by result status.",
			},
			[]string{"status"},
		),
		speechTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "speech_requests_total",
				Help:      "Total number of letter pronunciation requests, partitioned by result.",
			},
			[]string{"result"},
		),
		sessionsCreated: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_created_total",
				Help:      "Total number of game sessions created.",
			},
		),
		sessionsEvicted: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_evicted_total",
				Help:      "Total number of idle game sessions evicted.",
			},
		),
		sessionsActive: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_active",
				Help:      "Number of game sessions held in memory after the last sweep.",
			},
		),
	}
}

// ObserveRound records one round generation attempt. failureKind is empty on
// success.
func (m *Metrics) ObserveRound(category string, failureKind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if failureKind != "" {
		outcome = OutcomeFailure
	}
	m.roundsTotal.WithLabelValues(category, outcome, failureKind).Inc()
	m.roundDuration.WithLabelValues(category, outcome).Observe(elapsed.Seconds())
}

// IncAnswer records an accepted answer with its resulting status.
func (m *Metrics) IncAnswer(status string) {
	if m == nil {
		return
	}
	m.answersTotal.WithLabelValues(status).Inc()
}

// IncSpeech records a pronunciation request. result is one of "audio",
// "unavailable" or "failed".
func (m *Metrics) IncSpeech(result string) {
	if m == nil {
		return
	}
	m.speechTotal.WithLabelValues(result).Inc()
}

// IncSessionsCreated records a new session.
func (m *Metrics) IncSessionsCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}

// AddSessionsEvicted records n idle sessions removed by a sweep.
func (m *Metrics) AddSessionsEvicted(n int) {
	if m == nil {
		return
	}
	m.sessionsEvicted.Add(float64(n))
}

// SetSessionsActive records the number of sessions currently stored.
func (m *Metrics) SetSessionsActive(n int) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(float64(n))
}
