package main

import (
	"github.com/spf13/cobra"
)

func newPredictCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predicted top performers for the next gameweek",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline()
			if err != nil {
				return err
			}
			fctx, err := p.gameContext(cmd.Context())
			if err != nil {
				return err
			}
			bundle, err := p.bundle(cmd.Context(), fctx, false)
			if err != nil {
				return err
			}
			out := bundle.Top
			if top > 0 && len(out) > top {
				out = out[:top]
			}
			return printJSON(cmd, out)
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "how many players to show")
	return cmd
}
