// Package metrics exposes prometheus counters for the conversation engine.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "daybook"

// Metrics holds the engine counters
type Metrics struct {
	events        *prometheus.CounterVec
	routingMisses prometheus.Counter
	dialogs       *prometheus.CounterVec
	validation    *prometheus.CounterVec
	sessions      prometheus.GaugeFunc
}

// New registers the counters on reg. sessionCount, when non-nil, backs the
// active sessions gauge.
func New(reg prometheus.Registerer, sessionCount func() int) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Inbound events by kind and identifier category",
		}, []string{"kind", "category"}),
		routingMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "routing_misses_total",
			Help:      "Button identifiers that matched no route",
		}),
		dialogs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dialogs_total",
			Help:      "Dialog outcomes by dialog state and outcome",
		}, []string{"dialog", "outcome"}),
		validation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Rejected free-text input by dialog state",
		}, []string{"dialog"}),
	}
	reg.MustRegister(m.events, m.routingMisses, m.dialogs, m.validation)

	if sessionCount != nil {
		m.sessions = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Users with a session in memory",
		}, func() float64 { return float64(sessionCount()) })
		reg.MustRegister(m.sessions)
	}
	return m
}

// Dialog outcomes
const (
	OutcomeStarted   = "started"
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

func (m *Metrics) Event(kind, category string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind, category).Inc()
}

func (m *Metrics) RoutingMiss() {
	if m == nil {
		return
	}
	m.routingMisses.Inc()
}

func (m *Metrics) Dialog(dialog, outcome string) {
	if m == nil {
		return
	}
	m.dialogs.WithLabelValues(dialog, outcome).Inc()
}

func (m *Metrics) ValidationError(dialog string) {
	if m == nil {
		return
	}
	m.validation.WithLabelValues(dialog).Inc()
}

// Handler serves the registry in the prometheus text format
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
