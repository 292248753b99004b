// Package metrics exposes Prometheus counters for scenario activity.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vsinha/pricesim/pkg/infrastructure/events"
)

// Recorder counts scenario events by type and tracks the draft state
type Recorder struct {
	registry       *prometheus.Registry
	events         *prometheus.CounterVec
	simulations    prometheus.Counter
	discarded      prometheus.Counter
	simulationMode prometheus.Gauge
}

// NewRecorder creates a recorder registered on its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pricesim",
			Name:      "scenario_events_total",
			Help:      "Scenario store events by type.",
		}, []string{"type"}),
		simulations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricesim",
			Name:      "simulations_started_total",
			Help:      "Simulations started.",
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricesim",
			Name:      "discarded_drafts_total",
			Help:      "Exits and resets that threw away draft edits.",
		}),
		simulationMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pricesim",
			Name:      "simulation_mode",
			Help:      "1 while a simulation is active.",
		}),
	}
	r.registry.MustRegister(r.events, r.simulations, r.discarded, r.simulationMode)
	return r
}

var _ events.EventHandler = (*Recorder)(nil)

// Registry returns the registry holding the recorder's collectors
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Attach subscribes the recorder to every scenario event type
func (r *Recorder) Attach(store events.EventStore) error {
	return store.Subscribe(events.AllEventTypes, r)
}

// CanHandle reports whether eventType is a scenario store event
func (r *Recorder) CanHandle(eventType string) bool {
	for _, t := range events.AllEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// Handle updates counters for a single event
func (r *Recorder) Handle(event events.Event) error {
	r.events.WithLabelValues(event.Type()).Inc()
	switch event.Type() {
	case events.SimulationStartedEvent:
		r.simulations.Inc()
		r.simulationMode.Set(1)
	case events.SimulationExitedEvent:
		r.simulationMode.Set(0)
		if exited, ok := events.Payload[events.SimulationExited](event); ok && exited.DiscardedChanges {
			r.discarded.Inc()
		}
	case events.ScenarioResetEvent:
		if reset, ok := events.Payload[events.ScenarioReset](event); ok && reset.DiscardedChanges {
			r.discarded.Inc()
		}
	}
	return nil
}

// Counts returns the event counters keyed by event type
func (r *Recorder) Counts() (map[string]float64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]float64)
	for _, family := range families {
		if !strings.HasSuffix(family.GetName(), "scenario_events_total") {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "type" {
					counts[label.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}
	return counts, nil
}
