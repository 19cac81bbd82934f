package pivot

// Behavior is the contract a state type implements to take part in a
// Machine. The type parameter S is the state type itself, E the event type
// and C the context type shared by all states of one machine.
//
// Handle inspects the event and decides the successor state. The boolean
// reports whether a transition should occur; false means the event is a
// no-op for this state. A missing (state, event) mapping is a defined
// outcome, not an error, which lets states ignore events that do not
// concern them. Handle may mutate the context whether or not it decides
// to transition.
//
// The engine never compares state values itself (a self-transition fires
// hooks like any other), so S carries no comparability requirement here;
// consumers comparing states do so on their own terms.
type Behavior[S any, E any, C any] interface {
	Handle(event E, ctx *C) (S, bool)
}

// Enterer is an optional capability. State types implementing it have
// Enter invoked exactly once when they become current through a
// state-driven transition. States without it behave as if Enter were a
// no-op.
type Enterer[C any] interface {
	Enter(ctx *C)
}

// Exiter is the counterpart of Enterer: Exit runs exactly once when the
// state stops being current, strictly before the state value is
// overwritten and before the successor's Enter.
type Exiter[C any] interface {
	Exit(ctx *C)
}
