package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pivot/internal/presentation/graph"
	"github.com/aretw0/pivot/pkg/schema"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <definition.yaml>",
	Short: "Export the machine graph visualization",
	Long:  `Reads a machine definition and outputs a Mermaid diagram (graph TD) of its states and decision table.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, err := schema.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := def.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if current, _ := cmd.Flags().GetString("current"); current != "" {
			overlay = &graph.Overlay{Current: current}
		}

		fmt.Print(graph.GenerateMermaid(def, overlay))
	},
}

func init() {
	graphCmd.Flags().String("current", "", "Highlight this state as current")
	rootCmd.AddCommand(graphCmd)
}
