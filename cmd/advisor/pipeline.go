package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aatrey56/fpl-advisor/internal/ai"
	"github.com/aatrey56/fpl-advisor/internal/config"
	"github.com/aatrey56/fpl-advisor/internal/fetch"
	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/rag"
	"github.com/aatrey56/fpl-advisor/internal/store"
)

var errInsufficientHistory = errors.New("not enough player history to train")

// pipeline is the CLI's wiring: config, disk cache, API client. Each command
// builds one, runs, and exits, so there is no snapshot caching here beyond
// what the disk store provides.
type pipeline struct {
	cfg    *config.Config
	store  *store.JSONStore
	client *fetch.Client
}

func newPipeline() (*pipeline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	st := store.NewJSONStore(cfg.CacheDir, cfg.CacheTTL)
	return &pipeline{
		cfg:    cfg,
		store:  st,
		client: fetch.NewClient(st, cfg.BaseURL, cfg.UserAgent, cfg.RequestTimeout),
	}, nil
}

func (p *pipeline) gameContext(ctx context.Context) (*fpl.Context, error) {
	bootstrap, err := p.client.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	fixtures, err := p.client.Fixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	return fpl.NewContext(bootstrap, fixtures), nil
}

// bundle loads the saved model or trains a fresh one, then scores the
// shortlist for the upcoming gameweek.
func (p *pipeline) bundle(ctx context.Context, fctx *fpl.Context, force bool) (*rag.AIBundle, error) {
	window := p.cfg.HistoryWindow

	shortlist := fctx.ActivePlayers()
	sort.SliceStable(shortlist, func(i, j int) bool {
		return shortlist[i].Form > shortlist[j].Form
	})
	if len(shortlist) > p.cfg.PlayerLimit {
		shortlist = shortlist[:p.cfg.PlayerLimit]
	}
	histories, err := p.client.Histories(ctx, shortlist, p.cfg.FetchWorkers)
	if err != nil {
		return nil, err
	}

	var model *ai.Model
	if !force {
		if m, err := ai.LoadModel(p.store); err == nil && len(m.Weights) == ai.FeatureCount {
			model = m
		}
	}
	if model == nil {
		eligible := 0
		for _, h := range histories {
			if len(h.Matches) > window {
				eligible++
			}
		}
		if eligible < p.cfg.MinHistories {
			return nil, fmt.Errorf("%w: %d eligible players, need %d", errInsufficientHistory, eligible, p.cfg.MinHistories)
		}
		model, err = ai.Train(histories, window)
		if err != nil {
			return nil, err
		}
		if err := ai.SaveModel(p.store, model); err != nil {
			return nil, fmt.Errorf("save model: %w", err)
		}
	}

	predictions := ai.PredictUpcoming(model, histories, window)
	bundle := &rag.AIBundle{
		ModelName:      model.Name,
		TrainedSamples: model.Samples,
		Window:         window,
		Top:            make([]rag.AIPrediction, 0, len(predictions)),
		PredictionMap:  make(map[int]float64, len(predictions)),
	}
	for _, pr := range predictions {
		bundle.PredictionMap[pr.Player.ID] = pr.Predicted
		bundle.Top = append(bundle.Top, rag.AIPrediction{
			PlayerID:  pr.Player.ID,
			Name:      pr.Player.Name(),
			Team:      fctx.TeamName(pr.Player.Team),
			Position:  fctx.PositionName(pr.Player.ElementType),
			Predicted: pr.Predicted,
			AvgPoints: pr.AvgPoints,
			Form:      pr.Player.Form.Float(),
		})
	}
	return bundle, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
	return nil
}
