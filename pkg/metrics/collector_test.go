package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/aretw0/pivot"
	"github.com/aretw0/pivot/pkg/metrics"
)

type gate int

const (
	closed gate = iota
	open
)

func (g gate) String() string {
	if g == open {
		return "open"
	}
	return "closed"
}

type gateEvent int

const (
	badge gateEvent = iota
	timeout
	tailgate
)

func (e gateEvent) String() string {
	switch e {
	case badge:
		return "badge"
	case timeout:
		return "timeout"
	}
	return "tailgate"
}

type gateCtx struct{ entries int }

func (g gate) Handle(ev gateEvent, ctx *gateCtx) (gate, bool) {
	switch {
	case g == closed && ev == badge:
		return open, true
	case g == open && ev == timeout:
		return closed, true
	}
	return g, false
}

func (g gate) Enter(ctx *gateCtx) {
	if g == open {
		ctx.entries++
	}
}

func TestCollector_CountsMachineActivity(t *testing.T) {
	c := metrics.NewCollector[gate, gateEvent]("gate")
	m := pivot.NewDefault[gate, gateEvent, gateCtx](closed).WithHooks(c.Hooks())

	m.Handle(badge)    // closed -> open
	m.Handle(timeout)  // open -> closed
	m.Handle(badge)    // closed -> open
	m.Handle(tailgate) // declined

	if got := testutil.ToFloat64(c.Transitions(closed, open)); got != 2 {
		t.Errorf("expected 2 closed->open transitions, got %v", got)
	}
	if got := testutil.ToFloat64(c.Transitions(open, closed)); got != 1 {
		t.Errorf("expected 1 open->closed transition, got %v", got)
	}
	if got := testutil.ToFloat64(c.Unhandled(open, tailgate)); got != 1 {
		t.Errorf("expected 1 unhandled tailgate, got %v", got)
	}
	if got := testutil.ToFloat64(c.HookCalls(open, "enter")); got != 2 {
		t.Errorf("expected 2 enter hooks on open, got %v", got)
	}
	if got := testutil.ToFloat64(c.HookCalls(closed, "exit")); got != 2 {
		t.Errorf("expected 2 exit hooks on closed, got %v", got)
	}
}

func TestCollector_RegistersCleanly(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector[gate, gateEvent]("gate")

	if err := reg.Register(c); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	// Two collectors for different machines can share a registry thanks
	// to the machine const label.
	other := metrics.NewCollector[gate, gateEvent]("backdoor")
	if err := reg.Register(other); err != nil {
		t.Fatalf("second Register() failed: %v", err)
	}
}

func TestCollector_MetricNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector[gate, gateEvent]("gate")
	reg.MustRegister(c)

	m := pivot.NewDefault[gate, gateEvent, gateCtx](closed).WithHooks(c.Hooks())
	m.Handle(badge)

	names := []string{
		"pivot_transitions_total",
		"pivot_hook_calls_total",
	}
	got, err := testutil.GatherAndCount(reg, names...)
	if err != nil {
		t.Fatalf("GatherAndCount() failed: %v", err)
	}
	if got == 0 {
		t.Error("expected samples under the pivot_* metric names")
	}
}
