package main

import (
	"github.com/spf13/cobra"

	"github.com/aatrey56/fpl-advisor/internal/intent"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <query>",
		Short: "Show which intent a question routes to",
		Long: `Classify a question against the built-in intent examples and print the
matched intent with its cosine similarity. An empty intent means no
route cleared the similarity threshold.

Examples:
  advisor classify "who should i captain"
  advisor classify "show me differentials"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, intent.Default().Classify(args[0]))
		},
	}
}
