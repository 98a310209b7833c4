package main

import (
	"github.com/spf13/cobra"

	"github.com/aatrey56/fpl-advisor/internal/insights"
	"github.com/aatrey56/fpl-advisor/internal/intent"
	"github.com/aatrey56/fpl-advisor/internal/rag"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <query>",
		Short: "Answer a question from player, team and model context",
		Long: `Classify the question, build a knowledge base over current players,
teams and model predictions, and answer with cited sources. Squad- and
league-specific questions need the MCP server, which knows entry ids.

Examples:
  advisor ask "who are the best differentials right now"
  advisor ask "which defenders have good fixtures"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline()
			if err != nil {
				return err
			}
			fctx, err := p.gameContext(cmd.Context())
			if err != nil {
				return err
			}

			query := args[0]
			result := intent.Default().Classify(query)

			in := rag.CorpusInput{
				Ctx:         fctx,
				PlayerLimit: p.cfg.PlayerLimit,
				Predictions: insights.Predictions(fctx),
			}
			// Model context is best-effort: thin history just means the
			// answer leans on player and team documents.
			if bundle, err := p.bundle(cmd.Context(), fctx, false); err == nil {
				in.AI = bundle
			}

			kb := rag.BuildKnowledgeBase(in)
			docs := rag.Retrieve(query, kb, p.cfg.TopK)
			answer := rag.Compose(query, docs)

			return printJSON(cmd, map[string]any{
				"intent":       result.Intent,
				"intent_score": result.Score,
				"answer":       answer,
			})
		},
	}
}
