// Package metrics exposes termfolio counters in the prometheus format
package metrics

import (
	"net/http"

	"github.com/kcaldas/termfolio/pkg/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Reader serves collected metrics
type Reader interface {
	HTTPHandler() http.Handler
}

// Metrics counts what happens on the event bus
type Metrics struct {
	registry *prometheus.Registry

	commands     *prometheus.CounterVec
	themes       *prometheus.CounterVec
	sessions     prometheus.Gauge
	closed       *prometheus.CounterVec
	outputs      prometheus.Counter
	outputClears prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "termfolio",
			Name:      "commands_total",
			Help:      "Submitted command lines by resolved command.",
		}, []string{"command"}),
		themes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "termfolio",
			Name:      "theme_changes_total",
			Help:      "Theme switches by target theme.",
		}, []string{"theme"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "termfolio",
			Name:      "sessions",
			Help:      "Live sessions.",
		}),
		closed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "termfolio",
			Name:      "sessions_closed_total",
			Help:      "Closed sessions by reason.",
		}, []string{"reason"}),
		outputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "termfolio",
			Name:      "output_entries_total",
			Help:      "Entries appended to session output logs.",
		}),
		outputClears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "termfolio",
			Name:      "output_clears_total",
			Help:      "Bulk clears of session output logs.",
		}),
	}

	m.registry.MustRegister(m.commands, m.themes, m.sessions, m.closed, m.outputs, m.outputClears)

	return m
}

// Subscribe hooks the collectors onto the bus
func (m *Metrics) Subscribe(sub events.Subscriber) {
	sub.Subscribe(events.TopicCommandExecuted, func(e interface{}) {
		if ev, ok := e.(events.CommandExecutedEvent); ok {
			m.commands.WithLabelValues(ev.Command).Inc()
		}
	})
	sub.Subscribe(events.TopicThemeChanged, func(e interface{}) {
		if ev, ok := e.(events.ThemeChangedEvent); ok {
			m.themes.WithLabelValues(ev.Theme).Inc()
		}
	})
	sub.Subscribe(events.TopicSessionCreated, func(e interface{}) {
		m.sessions.Inc()
	})
	sub.Subscribe(events.TopicSessionClosed, func(e interface{}) {
		m.sessions.Dec()
		if ev, ok := e.(events.SessionClosedEvent); ok {
			m.closed.WithLabelValues(ev.Reason).Inc()
		}
	})
	sub.Subscribe(events.TopicOutputAppended, func(e interface{}) {
		m.outputs.Inc()
	})
	sub.Subscribe(events.TopicOutputCleared, func(e interface{}) {
		m.outputClears.Inc()
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
