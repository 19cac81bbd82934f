// Package graph renders machine definitions as Mermaid diagrams.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/pivot/pkg/schema"
)

// Overlay carries dynamic state to highlight on the diagram, typically the
// state a live machine is currently in.
type Overlay struct {
	Current string
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) from a machine
// definition, with semantic shapes:
//   - initial state: ((circle))
//   - terminal state: [[subroutine]]
//   - other states: [rectangle]
//
// Arrows carry the triggering event as their label. When an overlay is
// given, the current state gets a highlight class.
func GenerateMermaid(def *schema.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	initial := def.InitialState()
	for _, s := range def.States {
		safeID := sanitizeMermaidID(s.ID)

		opener, closer := "[", "]"
		switch {
		case s.ID == initial:
			opener, closer = "((", "))"
		case s.Terminal:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, s.ID, closer))
	}

	for _, r := range def.Table {
		safeFrom := sanitizeMermaidID(r.From)
		safeTo := sanitizeMermaidID(r.To)

		arrow := "-->"
		if r.On != "" {
			// Escape double quotes for the Mermaid label.
			safeOn := strings.ReplaceAll(r.On, "\"", "'")
			arrow = fmt.Sprintf("-- \"%s\" -->", safeOn)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeFrom, arrow, safeTo))
	}

	if overlay != nil && overlay.Current != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text for contrast regardless of theme.
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.Current)))
	}

	return sb.String()
}

// sanitizeMermaidID makes a definition ID safe as a Mermaid node ID.
func sanitizeMermaidID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
