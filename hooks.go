package pivot

// Hooks are optional callbacks the machine fires around the transition
// protocol, for logging, metrics and tracing. Nil callbacks are skipped.
// Callbacks receive copies of state and event values and no context
// access: observation only.
//
// Ordering within one transition: OnExit after the old state's Exit,
// OnTransition right after the commit, OnEnter after the new state's
// Enter. OnUnhandled fires instead when Handle declines the event.
type Hooks[S any, E any] struct {
	OnTransition func(from, to S)
	OnEnter      func(s S)
	OnExit       func(s S)
	OnUnhandled  func(s S, event E)
}
