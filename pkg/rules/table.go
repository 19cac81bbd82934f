// Package rules keeps a machine's decision table in data instead of a
// switch. A state type whose logic is pure table dispatch builds a Table
// once and delegates its Handle to Table.Next.
package rules

import "fmt"

// Table is an immutable (state, event) to successor lookup with optional
// context actions attached to each row.
type Table[S comparable, E comparable, C any] struct {
	rows map[key[S, E]]row[S, C]
}

type key[S comparable, E comparable] struct {
	from S
	on   E
}

type row[S comparable, C any] struct {
	to      S
	actions []func(*C)
}

// Next looks up the successor for (state, event). On a hit it runs the
// row's actions against the context in declaration order and returns the
// successor with true. On a miss it returns the state unchanged with
// false and leaves the context alone, matching the Behavior contract.
func (t *Table[S, E, C]) Next(state S, event E, ctx *C) (S, bool) {
	r, ok := t.rows[key[S, E]{from: state, on: event}]
	if !ok {
		return state, false
	}
	for _, action := range r.actions {
		action(ctx)
	}
	return r.to, true
}

// Len reports the number of rows in the table.
func (t *Table[S, E, C]) Len() int {
	return len(t.rows)
}

// Builder assembles a Table row by row.
type Builder[S comparable, E comparable, C any] struct {
	rules []*Rule[S, E, C]
}

// New creates an empty builder.
func New[S comparable, E comparable, C any]() *Builder[S, E, C] {
	return &Builder[S, E, C]{}
}

// When starts a new row for the given source state.
func (b *Builder[S, E, C]) When(from S) *Rule[S, E, C] {
	r := &Rule[S, E, C]{from: from}
	b.rules = append(b.rules, r)
	return r
}

// Rule is one row under construction.
type Rule[S comparable, E comparable, C any] struct {
	from    S
	on      E
	onSet   bool
	to      S
	toSet   bool
	actions []func(*C)
}

// On sets the triggering event.
func (r *Rule[S, E, C]) On(event E) *Rule[S, E, C] {
	r.on = event
	r.onSet = true
	return r
}

// To sets the successor state.
func (r *Rule[S, E, C]) To(next S) *Rule[S, E, C] {
	r.to = next
	r.toSet = true
	return r
}

// Do appends a context action to run when this row fires. Actions are the
// table analogue of mutating the context inside a hand-written Handle.
func (r *Rule[S, E, C]) Do(action func(*C)) *Rule[S, E, C] {
	if action != nil {
		r.actions = append(r.actions, action)
	}
	return r
}

// Build freezes the builder into a Table. Incomplete rows and duplicate
// (from, on) pairs are errors, keeping the table a function.
func (b *Builder[S, E, C]) Build() (*Table[S, E, C], error) {
	rows := make(map[key[S, E]]row[S, C], len(b.rules))
	for i, r := range b.rules {
		if !r.onSet {
			return nil, fmt.Errorf("rule %d: missing On(event)", i)
		}
		if !r.toSet {
			return nil, fmt.Errorf("rule %d: missing To(state)", i)
		}
		k := key[S, E]{from: r.from, on: r.on}
		if _, dup := rows[k]; dup {
			return nil, fmt.Errorf("rule %d: duplicate mapping for (%v, %v)", i, r.from, r.on)
		}
		rows[k] = row[S, C]{to: r.to, actions: r.actions}
	}
	return &Table[S, E, C]{rows: rows}, nil
}
