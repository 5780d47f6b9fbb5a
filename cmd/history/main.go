// Command history replays lifecycle events into a bounded history and
// prints the events it retained.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "history",
		Short:        "Keep the most recent lifecycle events in a fixed-size history",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every insertion")
	rootCmd.AddCommand(newReplayCmd(&verbose))
	return rootCmd
}
