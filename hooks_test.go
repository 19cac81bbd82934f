package pivot_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/pivot"
)

func TestHooks_OrderingAroundTheProtocol(t *testing.T) {
	m := pivot.New[lightState, lightEvent, lightCtx](red, lightCtx{})

	// State hooks and engine hooks append to the same log: the machine's
	// own Exit/Enter go through the context, the observability callbacks
	// through the closure.
	m.WithHooks(pivot.Hooks[lightState, lightEvent]{
		OnExit: func(s lightState) {
			m.Context().calls = append(m.Context().calls, "on-exit:"+s.String())
		},
		OnTransition: func(from, to lightState) {
			m.Context().calls = append(m.Context().calls, "on-transition:"+from.String()+"->"+to.String())
		},
		OnEnter: func(s lightState) {
			m.Context().calls = append(m.Context().calls, "on-enter:"+s.String())
		},
	})

	m.Handle(tick)

	assert.Equal(t, []string{
		"exit:red",
		"on-exit:red",
		"on-transition:red->green",
		"enter:green",
		"on-enter:green",
	}, m.Context().calls)
}

func TestHooks_OnUnhandled(t *testing.T) {
	var declined []string
	m := pivot.New[lightState, lightEvent, lightCtx](red, lightCtx{}).
		WithHooks(pivot.Hooks[lightState, lightEvent]{
			OnUnhandled: func(s lightState, ev lightEvent) {
				declined = append(declined, s.String())
			},
			OnTransition: func(from, to lightState) {
				t.Errorf("unexpected transition %v -> %v", from, to)
			},
		})

	m.Handle(powerCut)

	assert.Equal(t, []string{"red"}, declined)
}

func TestHooks_NilCallbacksAreSkipped(t *testing.T) {
	m := pivot.New[lightState, lightEvent, lightCtx](red, lightCtx{}).
		WithHooks(pivot.Hooks[lightState, lightEvent]{})

	// Must not panic with an empty hook set.
	m.Handle(tick)
	m.Handle(powerCut)

	assert.Equal(t, green, m.Current())
}

func TestWithLogger_LogsTransitionsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	m := pivot.New[lightState, lightEvent, lightCtx](red, lightCtx{}).
		WithLogger(logger)

	m.Handle(tick)     // red -> green
	m.Handle(powerCut) // declined

	out := buf.String()
	assert.True(t, strings.Contains(out, "msg=transition"), "expected a transition log line, got: %s", out)
	assert.True(t, strings.Contains(out, "from=red"), "expected from=red, got: %s", out)
	assert.True(t, strings.Contains(out, "msg=\"event unhandled\""), "expected an unhandled log line, got: %s", out)
}

func TestWithLogger_NilKeepsNopLogger(t *testing.T) {
	m := pivot.New[lightState, lightEvent, lightCtx](red, lightCtx{}).
		WithLogger(nil)

	// Must not panic.
	m.Handle(tick)
	assert.Equal(t, green, m.Current())
}
