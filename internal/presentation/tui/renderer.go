// Package tui renders human-facing output for the pivot CLI.
package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown for the terminal
// using glamour. The word-wrap width follows the terminal, and dumb
// terminals (no color support) fall back to the plain ASCII style so
// piped output stays clean.
func NewRenderer() func(string) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(renderWidth()),
	}
	if termenv.EnvColorProfile() == termenv.Ascii {
		opts = append(opts, glamour.WithStandardStyle("ascii"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		// Degrade to raw markdown rather than failing the command.
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

func renderWidth() int {
	const fallback = 80
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	if w > 120 {
		return 120
	}
	return w
}
