// Command advisor is the terminal companion to the MCP server: the same
// prediction and retrieval pipeline, runnable without an MCP client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "advisor",
		Short: "Fantasy Premier League advisory toolkit",
		Long: `Train the points model, rank predictions, classify questions and answer
them with cited context, all against the public FPL API.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	root.AddCommand(newTrainCmd())
	root.AddCommand(newPredictCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newAskCmd())
	return root
}
