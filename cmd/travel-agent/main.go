package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

// Flags shared by all subcommands
var (
	modelOverride    string
	logLevelOverride string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "travel-agent",
		Short:         "Travel Agent - turns a free-form trip request into a day-by-day itinerary",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&modelOverride, "model", "", "generation model as provider:model (overrides GENERATION_MODEL)")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "log level (overrides LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
