package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/pivot/internal/logging"
)

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "pivot",
	Short: "Pivot is a typed state machine toolkit",
	Long:  `Pivot validates, visualizes and generates Go code for state machines described in simple YAML definitions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		logger = logging.New(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
