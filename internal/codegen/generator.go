// Package codegen turns a validated schema.Definition into a compilable
// Go file: state and event enums, the context struct with its defaults
// constructor, and a decision-table Handle satisfying pivot.Behavior.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode"

	"github.com/aretw0/pivot/pkg/schema"
)

// Generate renders the Go source for a definition into the given package.
// The definition must already be valid; Generate re-validates and refuses
// broken input rather than emitting code that will not compile. Output is
// deterministic and gofmt-formatted.
func Generate(def *schema.Definition, pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	data, err := buildFileData(def, pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		// A formatting failure means the template produced bad Go.
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

type fileData struct {
	Package string
	Machine string
	Initial string
	States  []ident
	Events  []ident
	Fields  []fieldData
	Switch  []dispatchState
}

type ident struct {
	Const string // Go constant name, e.g. StateSmall
	ID    string // definition id, e.g. small
}

type fieldData struct {
	Name    string // Go field name
	Type    string // Go type
	Default string // Go literal, empty when the zero value applies
}

type dispatchState struct {
	Const string
	Rows  []dispatchRow
}

type dispatchRow struct {
	Event string
	To    string
}

func buildFileData(def *schema.Definition, pkg string) (*fileData, error) {
	data := &fileData{
		Package: pkg,
		Machine: goName(def.Name),
	}

	// Distinct definition IDs may normalize to the same Go identifier
	// ("foo_bar" and "foo-bar" both become FooBar). Each kind has its own
	// namespace in the output, so collisions are tracked per kind.
	owner := make(map[string]string)
	claim := func(kind, goIdent, id string) error {
		key := kind + ":" + goIdent
		if prev, dup := owner[key]; dup {
			return fmt.Errorf("%ss %q and %q map to the same Go identifier %s", kind, prev, id, goIdent)
		}
		owner[key] = id
		return nil
	}

	stateConst := make(map[string]string, len(def.States))
	for _, s := range def.States {
		c := "State" + goName(s.ID)
		if err := claim("state", c, s.ID); err != nil {
			return nil, err
		}
		stateConst[s.ID] = c
		data.States = append(data.States, ident{Const: c, ID: s.ID})
	}
	data.Initial = stateConst[def.InitialState()]

	eventConst := make(map[string]string, len(def.Events))
	for _, e := range def.Events {
		c := "Event" + goName(e.ID)
		if err := claim("event", c, e.ID); err != nil {
			return nil, err
		}
		eventConst[e.ID] = c
		data.Events = append(data.Events, ident{Const: c, ID: e.ID})
	}

	for _, f := range def.Context {
		fd := fieldData{Name: goName(f.Name)}
		if err := claim("field", fd.Name, f.Name); err != nil {
			return nil, err
		}
		switch f.Type {
		case "string":
			fd.Type = "string"
		case "int":
			fd.Type = "int"
		case "float":
			fd.Type = "float64"
		case "bool":
			fd.Type = "bool"
		default:
			return nil, fmt.Errorf("field %s: unknown type %q", f.Name, f.Type)
		}
		if f.Default != nil {
			fd.Default = fmt.Sprintf("%#v", f.Default)
		}
		data.Fields = append(data.Fields, fd)
	}

	// Group table rows by source state, preserving declaration order for
	// both states and rows.
	rowsByState := make(map[string][]dispatchRow, len(def.States))
	for _, r := range def.Table {
		rowsByState[r.From] = append(rowsByState[r.From], dispatchRow{
			Event: eventConst[r.On],
			To:    stateConst[r.To],
		})
	}
	for _, s := range def.States {
		rows := rowsByState[s.ID]
		if len(rows) == 0 {
			continue
		}
		data.Switch = append(data.Switch, dispatchState{
			Const: stateConst[s.ID],
			Rows:  rows,
		})
	}

	return data, nil
}

// goName converts a definition identifier to an exported Go identifier:
// "get_consumable" becomes "GetConsumable".
func goName(id string) string {
	var b strings.Builder
	upper := true
	for _, r := range id {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
