package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pivot/pkg/schema"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <definition.yaml>",
	Short: "Check a machine definition for structural errors",
	Long:  `Parses a machine definition and reports every structural problem found: unknown state or event references, duplicate identifiers, rows leaving terminal states, and defaults that do not match their declared type.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		def, err := schema.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := def.Validate(); err != nil {
			if errs := schema.ValidationErrors(err); errs != nil {
				fmt.Fprintf(os.Stderr, "%s: %d problem(s) found\n", args[0], len(errs))
				for _, e := range errs {
					fmt.Fprintf(os.Stderr, "  - %v\n", e)
				}
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		logger.Debug("definition valid",
			"machine", def.Name,
			"states", len(def.States),
			"events", len(def.Events),
			"rules", len(def.Table))
		fmt.Printf("%s: ok (%d states, %d events, %d rules)\n",
			def.Name, len(def.States), len(def.Events), len(def.Table))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
