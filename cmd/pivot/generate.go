package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pivot/internal/codegen"
	"github.com/aretw0/pivot/pkg/schema"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <definition.yaml>",
	Short: "Generate Go scaffolding from a machine definition",
	Long: `Emits a Go file containing the state and event enums, the context
struct with its defaults constructor, and a decision-table Handle wired to
the pivot runtime. Output goes to stdout unless --out is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, err := schema.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		pkg, _ := cmd.Flags().GetString("package")
		src, err := codegen.Generate(def, pkg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			os.Stdout.Write(src)
			return
		}
		if err := os.WriteFile(out, src, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("generated machine", "machine", def.Name, "file", out)
	},
}

func init() {
	generateCmd.Flags().String("package", "machine", "Package name for the generated file")
	generateCmd.Flags().String("out", "", "Output file (default stdout)")
	rootCmd.AddCommand(generateCmd)
}
