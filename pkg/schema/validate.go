package schema

import "fmt"

// Validate checks the structural integrity of the definition and returns
// an AggregateError listing every failure found. A nil return means the
// definition is safe to visualize or generate from.
func (d *Definition) Validate() error {
	var errs []error

	fail := func(key, reason string, value any) {
		errs = append(errs, &ValidationError{Key: key, Reason: reason, Value: value})
	}

	if d.Name == "" {
		fail("name", "required", nil)
	}
	if len(d.States) == 0 {
		fail("states", "at least one state is required", nil)
	}

	states := make(map[string]State, len(d.States))
	for i, s := range d.States {
		key := fmt.Sprintf("states[%d]", i)
		if s.ID == "" {
			fail(key, "state id is required", nil)
			continue
		}
		if _, dup := states[s.ID]; dup {
			fail(key, "duplicate state id", s.ID)
			continue
		}
		states[s.ID] = s
	}

	events := make(map[string]struct{}, len(d.Events))
	for i, e := range d.Events {
		key := fmt.Sprintf("events[%d]", i)
		if e.ID == "" {
			fail(key, "event id is required", nil)
			continue
		}
		if _, dup := events[e.ID]; dup {
			fail(key, "duplicate event id", e.ID)
			continue
		}
		events[e.ID] = struct{}{}
	}

	if d.Initial != "" {
		if _, ok := states[d.Initial]; !ok {
			fail("initial", "unknown state", d.Initial)
		}
	}

	type pair struct{ from, on string }
	seen := make(map[pair]struct{}, len(d.Table))
	for i, r := range d.Table {
		key := fmt.Sprintf("table[%d]", i)
		from, knownFrom := states[r.From]
		if !knownFrom {
			fail(key+".from", "unknown state", r.From)
		}
		if _, ok := events[r.On]; !ok {
			fail(key+".on", "unknown event", r.On)
		}
		if _, ok := states[r.To]; !ok {
			fail(key+".to", "unknown state", r.To)
		}
		if knownFrom && from.Terminal {
			fail(key, "terminal state cannot have outgoing rules", r.From)
		}
		p := pair{r.From, r.On}
		if _, dup := seen[p]; dup {
			fail(key, "duplicate (from, on) pair", fmt.Sprintf("%s/%s", r.From, r.On))
		}
		seen[p] = struct{}{}
	}

	fields := make(map[string]struct{}, len(d.Context))
	for i, f := range d.Context {
		key := fmt.Sprintf("context[%d]", i)
		if f.Name == "" {
			fail(key, "field name is required", nil)
			continue
		}
		if _, dup := fields[f.Name]; dup {
			fail(key, "duplicate field name", f.Name)
		}
		fields[f.Name] = struct{}{}

		typ, ok := TypeOf(f.Type)
		if !ok {
			fail(key+".type", "unknown type", f.Type)
			continue
		}
		if f.Default != nil {
			if err := typ.Validate(f.Default); err != nil {
				fail(key+".default", err.Error(), f.Default)
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
