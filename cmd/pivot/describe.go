package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/pivot/internal/presentation/tui"
	"github.com/aretw0/pivot/pkg/schema"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <definition.yaml>",
	Short: "Print a readable summary of a machine definition",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, err := schema.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewRenderer()
		out, err := render(describeMarkdown(def))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func describeMarkdown(def *schema.Definition) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", def.Name)
	fmt.Fprintf(&sb, "Initial state: `%s`\n\n", def.InitialState())

	sb.WriteString("## States\n\n")
	for _, s := range def.States {
		if s.Terminal {
			fmt.Fprintf(&sb, "- `%s` (terminal)\n", s.ID)
		} else {
			fmt.Fprintf(&sb, "- `%s`\n", s.ID)
		}
	}

	sb.WriteString("\n## Events\n\n")
	for _, e := range def.Events {
		fmt.Fprintf(&sb, "- `%s`\n", e.ID)
	}

	if len(def.Context) > 0 {
		sb.WriteString("\n## Context\n\n")
		sb.WriteString("| Field | Type | Default |\n|---|---|---|\n")
		for _, f := range def.Context {
			dflt := ""
			if f.Default != nil {
				dflt = fmt.Sprintf("%v", f.Default)
			}
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", f.Name, f.Type, dflt)
		}
	}

	if len(def.Table) > 0 {
		sb.WriteString("\n## Decision table\n\n")
		sb.WriteString("| From | On | To |\n|---|---|---|\n")
		for _, r := range def.Table {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", r.From, r.On, r.To)
		}
	}

	return sb.String()
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
