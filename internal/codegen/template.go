package codegen

import "text/template"

var fileTemplate = template.Must(template.New("machine").Parse(`// Code generated by "pivot generate"; DO NOT EDIT.

// Package {{.Package}} contains the {{.Machine}} state machine scaffolding.
package {{.Package}}

// State is the closed state set of the {{.Machine}} machine.
type State int

const (
{{- range $i, $s := .States}}
	{{$s.Const}}{{if eq $i 0}} State = iota{{end}}
{{- end}}
)

// Initial is the machine's starting state.
const Initial = {{.Initial}}

// String returns the definition identifier of the state.
func (s State) String() string {
	switch s {
{{- range .States}}
	case {{.Const}}:
		return "{{.ID}}"
{{- end}}
	}
	return "invalid"
}

// Event is the closed event set of the {{.Machine}} machine.
type Event int

const (
{{- range $i, $e := .Events}}
	{{$e.Const}}{{if eq $i 0}} Event = iota{{end}}
{{- end}}
)

// String returns the definition identifier of the event.
func (e Event) String() string {
	switch e {
{{- range .Events}}
	case {{.Const}}:
		return "{{.ID}}"
{{- end}}
	}
	return "invalid"
}

// Context is the shared mutable record for one machine instance.
type Context struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}

// NewContext returns a context populated with the declared defaults.
func NewContext() Context {
	return Context{
{{- range .Fields}}{{if .Default}}
		{{.Name}}: {{.Default}},
{{- end}}{{end}}
	}
}

// Handle implements the decision table. Pairs absent from the table
// resolve to no transition.
func (s State) Handle(event Event, ctx *Context) (State, bool) {
	switch s {
{{- range .Switch}}
	case {{.Const}}:
		switch event {
{{- range .Rows}}
		case {{.Event}}:
			return {{.To}}, true
{{- end}}
		}
{{- end}}
	}
	return s, false
}
`))
