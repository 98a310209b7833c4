package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/aatrey56/fpl-advisor/internal/ai"
	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/rag"
)

var ErrInsufficientHistory = errors.New("not enough player history to train")

// aiBundle returns the model-backed predictions, training at most once per
// process. A model saved by an earlier run is reused unless force is set.
func (a *app) aiBundle(ctx context.Context, fctx *fpl.Context, force bool) (*rag.AIBundle, error) {
	a.modelMu.Lock()
	defer a.modelMu.Unlock()

	if a.bundle != nil && !force {
		return a.bundle, nil
	}

	window := a.cfg.HistoryWindow
	histories, err := a.fetchHistories(ctx, fctx)
	if err != nil {
		return nil, err
	}

	var model *ai.Model
	if !force {
		if m, err := ai.LoadModel(a.store); err == nil && len(m.Weights) == ai.FeatureCount {
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
		if eligible < a.cfg.MinHistories {
			return nil, fmt.Errorf("%w: %d eligible players, need %d", ErrInsufficientHistory, eligible, a.cfg.MinHistories)
		}
		model, err = ai.Train(histories, window)
		if err != nil {
			return nil, err
		}
		if err := ai.SaveModel(a.store, model); err != nil {
			a.log.Warn("could not persist model", zap.Error(err))
		}
		a.log.Info("trained points model",
			zap.String("model", model.Name),
			zap.Int("samples", model.Samples),
			zap.Int("players", eligible))
	}

	predictions := ai.PredictUpcoming(model, histories, window)

	bundle := &rag.AIBundle{
		ModelName:      model.Name,
		TrainedSamples: model.Samples,
		Window:         window,
		Top:            make([]rag.AIPrediction, 0, len(predictions)),
		PredictionMap:  make(map[int]float64, len(predictions)),
	}
	for _, p := range predictions {
		bundle.PredictionMap[p.Player.ID] = p.Predicted
		bundle.Top = append(bundle.Top, rag.AIPrediction{
			PlayerID:  p.Player.ID,
			Name:      p.Player.Name(),
			Team:      fctx.TeamName(p.Player.Team),
			Position:  fctx.PositionName(p.Player.ElementType),
			Predicted: p.Predicted,
			AvgPoints: p.AvgPoints,
			Form:      p.Player.Form.Float(),
		})
	}

	a.bundle = bundle
	return bundle, nil
}

// fetchHistories pulls element summaries for the form-ranked shortlist.
func (a *app) fetchHistories(ctx context.Context, fctx *fpl.Context) ([]ai.PlayerHistory, error) {
	shortlist := fctx.ActivePlayers()
	sort.SliceStable(shortlist, func(i, j int) bool {
		return shortlist[i].Form > shortlist[j].Form
	})
	if len(shortlist) > a.cfg.PlayerLimit {
		shortlist = shortlist[:a.cfg.PlayerLimit]
	}
	return a.client.Histories(ctx, shortlist, a.cfg.FetchWorkers)
}
