package pivot

import (
	"log/slog"

	"github.com/aretw0/pivot/internal/logging"
)

// Machine owns exactly one current state value and one context value and
// enforces the exit, commit, enter protocol on every state-driven
// transition.
//
// A Machine is single-threaded by design: every operation runs to
// completion before returning and there is no internal locking. Drive one
// instance from one goroutine, or serialize access externally. Calling
// back into the same machine from inside Handle, Enter or Exit is not
// supported.
type Machine[S Behavior[S, E, C], E any, C any] struct {
	state  S
	ctx    C
	hooks  Hooks[S, E]
	logger *slog.Logger
}

// New creates a machine with the given initial state and context. No hooks
// fire during construction: installing the initial state does not count as
// a transition, so callers needing entry side effects run them explicitly
// (or start from a sentinel state and Transition out of it).
func New[S Behavior[S, E, C], E any, C any](initial S, ctx C) *Machine[S, E, C] {
	return &Machine[S, E, C]{
		state:  initial,
		ctx:    ctx,
		logger: logging.NewNop(),
	}
}

// NewDefault creates a machine whose context starts at the zero value of C.
func NewDefault[S Behavior[S, E, C], E any, C any](initial S) *Machine[S, E, C] {
	var ctx C
	return New[S, E, C](initial, ctx)
}

// WithHooks installs observability callbacks and returns the machine for
// chaining. Hooks observe the protocol; they cannot veto or reorder it.
func (m *Machine[S, E, C]) WithHooks(h Hooks[S, E]) *Machine[S, E, C] {
	m.hooks = h
	return m
}

// WithLogger attaches a structured logger. Transitions and unhandled
// events are logged at Debug level.
func (m *Machine[S, E, C]) WithLogger(logger *slog.Logger) *Machine[S, E, C] {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// Current returns a copy of the current state.
func (m *Machine[S, E, C]) Current() S {
	return m.state
}

// Context lends the machine's context. The pointer stays valid for the
// machine's lifetime; it must not be shared across goroutines while the
// machine is being driven.
func (m *Machine[S, E, C]) Context() *C {
	return &m.ctx
}

// Transition moves the machine to next under the full protocol: Exit on
// the old state, commit, then Enter on the new state, all against the one
// shared context. Both hooks fire even when next equals the current state.
// Use it when the caller, rather than the current state's Handle, decides
// the successor.
func (m *Machine[S, E, C]) Transition(next S) {
	m.transition(next)
}

// ForceState overwrites the current state without running Enter or Exit.
// Meant for seeding and diagnostics; the caller is responsible for keeping
// the context consistent with the installed state.
func (m *Machine[S, E, C]) ForceState(next S) {
	m.state = next
}

// Handle delivers one event to the current state. If the state decides on
// a successor the full transition protocol runs exactly as in Transition;
// otherwise the machine is left as-is beyond whatever Handle itself
// mutated on the context.
func (m *Machine[S, E, C]) Handle(event E) {
	next, ok := m.state.Handle(event, &m.ctx)
	if !ok {
		m.logger.Debug("event unhandled",
			slog.Any("state", m.state),
			slog.Any("event", event))
		if m.hooks.OnUnhandled != nil {
			m.hooks.OnUnhandled(m.state, event)
		}
		return
	}
	m.transition(next)
}

// transition runs the protocol. The sequence is strict: the old state's
// Exit sees the pre-commit state as current, the new state's Enter sees
// the post-commit state.
func (m *Machine[S, E, C]) transition(next S) {
	old := m.state

	if ex, ok := any(old).(Exiter[C]); ok {
		ex.Exit(&m.ctx)
	}
	if m.hooks.OnExit != nil {
		m.hooks.OnExit(old)
	}

	m.state = next
	if m.hooks.OnTransition != nil {
		m.hooks.OnTransition(old, next)
	}

	if en, ok := any(next).(Enterer[C]); ok {
		en.Enter(&m.ctx)
	}
	if m.hooks.OnEnter != nil {
		m.hooks.OnEnter(next)
	}

	m.logger.Debug("transition",
		slog.Any("from", old),
		slog.Any("to", next))
}
