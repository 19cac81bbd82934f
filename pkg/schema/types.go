package schema

// Definition describes one state machine.
//
// The first entry of States is the initial state unless Initial names
// another one. Field defaults become the generated context constructor.
type Definition struct {
	Name    string  `json:"name" yaml:"name" mapstructure:"name"`
	Initial string  `json:"initial,omitempty" yaml:"initial,omitempty" mapstructure:"initial"`
	States  []State `json:"states" yaml:"states" mapstructure:"states"`
	Events  []Event `json:"events" yaml:"events" mapstructure:"events"`
	Context []Field `json:"context,omitempty" yaml:"context,omitempty" mapstructure:"context"`
	Table   []Rule  `json:"table" yaml:"table" mapstructure:"table"`
}

// State declares one member of the closed state set.
type State struct {
	ID string `json:"id" yaml:"id" mapstructure:"id"`

	// Terminal marks an absorbing state: no table row may leave it.
	Terminal bool `json:"terminal,omitempty" yaml:"terminal,omitempty" mapstructure:"terminal"`
}

// Event declares one member of the closed event set.
type Event struct {
	ID string `json:"id" yaml:"id" mapstructure:"id"`
}

// Field declares one context record member with its type and default.
type Field struct {
	Name    string `json:"name" yaml:"name" mapstructure:"name"`
	Type    string `json:"type" yaml:"type" mapstructure:"type"`
	Default any    `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
}

// Rule is one decision-table row: when the machine is in From and receives
// On, it moves to To. Pairs absent from the table are no-ops by contract.
type Rule struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	On   string `json:"on" yaml:"on" mapstructure:"on"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`
}

// InitialState resolves the machine's starting state ID.
func (d *Definition) InitialState() string {
	if d.Initial != "" {
		return d.Initial
	}
	if len(d.States) > 0 {
		return d.States[0].ID
	}
	return ""
}

// StateIDs returns the declared state IDs in order.
func (d *Definition) StateIDs() []string {
	ids := make([]string, 0, len(d.States))
	for _, s := range d.States {
		ids = append(ids, s.ID)
	}
	return ids
}

// EventIDs returns the declared event IDs in order.
func (d *Definition) EventIDs() []string {
	ids := make([]string, 0, len(d.Events))
	for _, e := range d.Events {
		ids = append(ids, e.ID)
	}
	return ids
}
