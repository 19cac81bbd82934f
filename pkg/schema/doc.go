/*
Package schema holds the declarative description of a state machine: its
closed state and event sets, the typed context record with defaults, and
the decision table mapping (state, event) pairs to successors.

A Definition is what the pivot CLI validates, visualizes and turns into Go
source. It deliberately describes only the closed-set, data-free part of a
machine; states carrying payloads or computing transitions at runtime are
written by hand against the core Behavior contract instead.
*/
package schema
