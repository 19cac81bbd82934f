// Package metrics instruments a pivot.Machine with Prometheus counters.
// The collector hangs off the machine's lifecycle hooks, so the engine
// itself stays free of metrics concerns; registration and transport
// (promhttp or otherwise) are left to the host application.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/pivot"
)

// Collector counts machine activity: committed transitions, enter/exit
// hook invocations, and events the current state declined.
type Collector[S any, E any] struct {
	transitions *prometheus.CounterVec
	hookCalls   *prometheus.CounterVec
	unhandled   *prometheus.CounterVec
}

// NewCollector creates a collector for one machine. The machine name
// becomes a const label so several instrumented machines can share a
// registry.
func NewCollector[S any, E any](machine string) *Collector[S, E] {
	constLabels := prometheus.Labels{"machine": machine}
	return &Collector[S, E]{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "pivot",
			Name:        "transitions_total",
			Help:        "Committed state transitions, by source and target state.",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		hookCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "pivot",
			Name:        "hook_calls_total",
			Help:        "Enter/exit hook invocations, by state and hook kind.",
			ConstLabels: constLabels,
		}, []string{"state", "hook"}),
		unhandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "pivot",
			Name:        "unhandled_events_total",
			Help:        "Events the current state declined to handle.",
			ConstLabels: constLabels,
		}, []string{"state", "event"}),
	}
}

// Hooks adapts the collector onto a machine:
//
//	m := pivot.New[S, E, C](initial, ctx).WithHooks(collector.Hooks())
func (c *Collector[S, E]) Hooks() pivot.Hooks[S, E] {
	return pivot.Hooks[S, E]{
		OnTransition: func(from, to S) {
			c.transitions.WithLabelValues(label(from), label(to)).Inc()
		},
		OnEnter: func(s S) {
			c.hookCalls.WithLabelValues(label(s), "enter").Inc()
		},
		OnExit: func(s S) {
			c.hookCalls.WithLabelValues(label(s), "exit").Inc()
		},
		OnUnhandled: func(s S, event E) {
			c.unhandled.WithLabelValues(label(s), label(event)).Inc()
		},
	}
}

// Describe implements prometheus.Collector.
func (c *Collector[S, E]) Describe(ch chan<- *prometheus.Desc) {
	c.transitions.Describe(ch)
	c.hookCalls.Describe(ch)
	c.unhandled.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector[S, E]) Collect(ch chan<- prometheus.Metric) {
	c.transitions.Collect(ch)
	c.hookCalls.Collect(ch)
	c.unhandled.Collect(ch)
}

// Transitions exposes the transition counter for a (from, to) pair,
// mainly for tests and ad-hoc inspection.
func (c *Collector[S, E]) Transitions(from, to S) prometheus.Counter {
	return c.transitions.WithLabelValues(label(from), label(to))
}

// Unhandled exposes the unhandled-event counter for a (state, event) pair.
func (c *Collector[S, E]) Unhandled(state S, event E) prometheus.Counter {
	return c.unhandled.WithLabelValues(label(state), label(event))
}

// HookCalls exposes the hook counter for a state and hook kind
// ("enter" or "exit").
func (c *Collector[S, E]) HookCalls(state S, hook string) prometheus.Counter {
	return c.hookCalls.WithLabelValues(label(state), hook)
}

// label renders a state or event value as a metric label. Types with a
// String method get their own representation.
func label(v any) string {
	return fmt.Sprintf("%v", v)
}
