/*
Package pivot is a small, typed finite-state-machine runtime. It separates
the per-state decision logic (the Behavior contract) from the engine that
owns the current state and the shared context (the Machine), and it
guarantees a strict exit, commit, enter protocol around every state-driven
transition.

# Concept

A machine owns exactly one current state and one mutable context. States
are values of a closed set the consumer declares; events are values the
consumer delivers. The engine never inspects either shape: it asks the
current state to interpret the event, and if the state names a successor,
the engine brackets the change with the old state's Exit and the new
state's Enter, both run against the one shared context. An event the
current state does not care about is a defined no-op, never an error.

# Key properties

  - Deterministic ordering: Exit runs before the state value is
    overwritten, Enter strictly after, with no interleaving.
  - One source of truth: the context is owned by the machine and lent as a
    mutable pointer to exactly one of Handle, Enter or Exit at a time.
  - Total dispatch: unmatched (state, event) pairs resolve to "no
    transition", so states ignore irrelevant events for free.
  - Single-threaded: no internal locking; one goroutine per instance, or
    external serialization.

# Usage

States implement Behavior on themselves; Enter and Exit are optional
capabilities discovered at transition time.

	package main

	import "github.com/aretw0/pivot"

	type DoorState int

	const (
		Closed DoorState = iota
		Open
	)

	type DoorEvent int

	const (
		Push DoorEvent = iota
		Pull
	)

	type DoorContext struct {
		Cycles int
	}

	func (s DoorState) Handle(ev DoorEvent, ctx *DoorContext) (DoorState, bool) {
		switch {
		case s == Closed && ev == Pull:
			return Open, true
		case s == Open && ev == Push:
			return Closed, true
		}
		return s, false
	}

	func (s DoorState) Enter(ctx *DoorContext) {
		if s == Open {
			ctx.Cycles++
		}
	}

	func main() {
		door := pivot.NewDefault[DoorState, DoorEvent, DoorContext](Closed)
		door.Handle(Pull) // Closed -> Open, Enter(Open) bumps Cycles
		door.Handle(Push) // Open -> Closed
		door.Handle(Push) // no mapping: stays Closed, context untouched
	}

Machines that prefer declarative wiring can keep the decision table in
data (package rules), describe whole machines in YAML (package schema),
or generate the Go boilerplate from such a description (the pivot CLI).
*/
package pivot
