package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aatrey56/fpl-advisor/internal/config"
	"github.com/aatrey56/fpl-advisor/internal/fetch"
	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/intent"
	"github.com/aatrey56/fpl-advisor/internal/rag"
	"github.com/aatrey56/fpl-advisor/internal/store"
)

// app holds the shared server state. The game snapshot and the model bundle
// are both lazy: nothing talks to the FPL API until the first tool call.
type app struct {
	cfg        *config.Config
	log        *zap.Logger
	store      *store.JSONStore
	client     *fetch.Client
	classifier *intent.Classifier

	mu         sync.Mutex
	snapshot   *fpl.Context
	snapshotAt time.Time

	modelMu sync.Mutex
	bundle  *rag.AIBundle
}

func newApp(cfg *config.Config, log *zap.Logger) (*app, error) {
	st := store.NewJSONStore(cfg.CacheDir, cfg.CacheTTL)
	classifier, err := intent.New(intent.DefaultExamples, cfg.IntentThreshold)
	if err != nil {
		return nil, fmt.Errorf("fit intent classifier: %w", err)
	}
	return &app{
		cfg:        cfg,
		log:        log,
		store:      st,
		client:     fetch.NewClient(st, cfg.BaseURL, cfg.UserAgent, cfg.RequestTimeout),
		classifier: classifier,
	}, nil
}

// gameContext returns the league-wide snapshot, refetching once the TTL has
// passed. Callers share one snapshot per window, so bootstrap-static is
// decoded at most once per TTL.
func (a *app) gameContext(ctx context.Context) (*fpl.Context, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.snapshot != nil && time.Since(a.snapshotAt) < a.cfg.CacheTTL {
		return a.snapshot, nil
	}

	bootstrap, err := a.client.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	fixtures, err := a.client.Fixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}

	a.snapshot = fpl.NewContext(bootstrap, fixtures)
	a.snapshotAt = time.Now()
	a.log.Info("refreshed game snapshot",
		zap.Int("gameweek", a.snapshot.CurrentGameweek),
		zap.Int("players", len(a.snapshot.Players)))
	return a.snapshot, nil
}

// squad fetches a manager's entry and their picks for the current gameweek.
func (a *app) squad(ctx context.Context, fctx *fpl.Context, entryID int) (*fpl.EntryPicks, *fpl.Entry, error) {
	entry, err := a.client.Entry(ctx, entryID)
	if err != nil {
		return nil, nil, fmt.Errorf("entry %d: %w", entryID, err)
	}
	picks, err := a.client.EntryPicks(ctx, entryID, fctx.CurrentGameweek)
	if err != nil {
		return nil, nil, fmt.Errorf("picks for entry %d gw %d: %w", entryID, fctx.CurrentGameweek, err)
	}
	return picks, entry, nil
}
