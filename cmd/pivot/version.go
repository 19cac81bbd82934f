package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/pivot"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pivot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pivot version %s\n", strings.TrimSpace(pivot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
