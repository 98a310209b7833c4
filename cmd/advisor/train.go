package main

import (
	"github.com/spf13/cobra"
)

func newTrainCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the points regressor over recent player history",
		Long: `Fetch per-player match history for the in-form shortlist, build sliding
training windows, and fit the linear regressor. The fitted parameters are
saved in the cache directory and reused by later runs.

Examples:
  advisor train
  advisor train --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline()
			if err != nil {
				return err
			}
			fctx, err := p.gameContext(cmd.Context())
			if err != nil {
				return err
			}
			bundle, err := p.bundle(cmd.Context(), fctx, force)
			if err != nil {
				return err
			}
			top := bundle.Top
			if len(top) > 10 {
				top = top[:10]
			}
			return printJSON(cmd, map[string]any{
				"model":          bundle.ModelName,
				"samples":        bundle.TrainedSamples,
				"history_window": bundle.Window,
				"top":            top,
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "retrain even if a saved model exists")
	return cmd
}
