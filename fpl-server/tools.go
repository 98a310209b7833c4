package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/insights"
	"github.com/aatrey56/fpl-advisor/internal/points"
	"github.com/aatrey56/fpl-advisor/internal/rag"
)

// predictionsFor prefers model-backed scores and falls back to the form and
// fixture heuristic when the model cannot be trained (early season, thin
// history, API trouble).
func (a *app) predictionsFor(ctx context.Context, fctx *fpl.Context) map[int]float64 {
	bundle, err := a.aiBundle(ctx, fctx, false)
	if err != nil {
		if !errors.Is(err, ErrInsufficientHistory) {
			a.log.Warn("model predictions unavailable", zap.Error(err))
		}
		return insights.Predictions(fctx)
	}
	return bundle.PredictionMap
}

type trainReport struct {
	Model   string             `json:"model"`
	Samples int                `json:"samples"`
	Window  int                `json:"history_window"`
	Top     []rag.AIPrediction `json:"top_predictions"`
}

func (a *app) trainModel(ctx context.Context, force bool) (*trainReport, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	bundle, err := a.aiBundle(ctx, fctx, force)
	if err != nil {
		return nil, err
	}
	top := bundle.Top
	if len(top) > 10 {
		top = top[:10]
	}
	return &trainReport{
		Model:   bundle.ModelName,
		Samples: bundle.TrainedSamples,
		Window:  bundle.Window,
		Top:     top,
	}, nil
}

func (a *app) aiPredictions(ctx context.Context) (*rag.AIBundle, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	return a.aiBundle(ctx, fctx, false)
}

func (a *app) captaincy(ctx context.Context, entryID int) ([]insights.CaptainPick, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	picks, _, err := a.squad(ctx, fctx, entryID)
	if err != nil {
		return nil, err
	}
	return insights.RankCaptaincy(fctx, picks, a.predictionsFor(ctx, fctx)), nil
}

func (a *app) transferSuggestion(ctx context.Context, entryID int) (*insights.TransferSuggestion, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	picks, entry, err := a.squad(ctx, fctx, entryID)
	if err != nil {
		return nil, err
	}
	return insights.SuggestTransfer(fctx, picks, entry)
}

func (a *app) chipAdvice(ctx context.Context, entryID int) (*insights.ChipAdvice, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	picks, entry, err := a.squad(ctx, fctx, entryID)
	if err != nil {
		return nil, err
	}
	return insights.AdviseChips(fctx, picks, entry, a.predictionsFor(ctx, fctx))
}

type squadRow struct {
	Element    int     `json:"element"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Team       string  `json:"team"`
	Price      float64 `json:"price"`
	Form       float64 `json:"form"`
	Multiplier int     `json:"multiplier"`
	IsCaptain  bool    `json:"is_captain,omitempty"`
	IsVice     bool    `json:"is_vice_captain,omitempty"`
}

type teamSummary struct {
	EntryID    int            `json:"entry_id"`
	Manager    string         `json:"manager"`
	Gameweek   int            `json:"gameweek"`
	Bank       float64        `json:"bank"`
	Squad      []squadRow     `json:"squad"`
	LivePoints *points.Result `json:"live_points,omitempty"`
}

func (a *app) teamSummary(ctx context.Context, entryID int) (*teamSummary, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	picks, entry, err := a.squad(ctx, fctx, entryID)
	if err != nil {
		return nil, err
	}

	out := &teamSummary{
		EntryID:  entryID,
		Manager:  fmt.Sprintf("%s %s", entry.PlayerFirstName, entry.PlayerLastName),
		Gameweek: fctx.CurrentGameweek,
		Bank:     float64(entry.LastDeadlineBank) / 10.0,
		Squad:    make([]squadRow, 0, len(picks.Picks)),
	}
	names := make(map[int]string, len(picks.Picks))
	for _, p := range picks.Picks {
		el, ok := fctx.Players[p.Element]
		if !ok {
			continue
		}
		names[p.Element] = el.Name()
		out.Squad = append(out.Squad, squadRow{
			Element:    p.Element,
			Name:       el.Name(),
			Position:   fctx.PositionName(el.ElementType),
			Team:       fctx.TeamName(el.Team),
			Price:      el.Price(),
			Form:       el.Form.Float(),
			Multiplier: p.Multiplier,
			IsCaptain:  p.IsCaptain,
			IsVice:     p.IsViceCaptain,
		})
	}

	// Live points are best-effort: a pre-deadline gameweek has no live feed.
	if live, err := a.client.EventLive(ctx, fctx.CurrentGameweek); err == nil {
		liveByElement := make(map[int]points.LiveStats, len(live.Elements))
		for _, el := range live.Elements {
			liveByElement[el.ID] = points.LiveStats{
				Minutes:     el.Stats.Minutes,
				TotalPoints: el.Stats.TotalPoints,
			}
		}
		out.LivePoints = points.BuildResult(entryID, fctx.CurrentGameweek, picks, names, liveByElement)
	}
	return out, nil
}

type leagueProjection struct {
	LeagueID int                          `json:"league_id"`
	League   string                       `json:"league"`
	Gameweek int                          `json:"gameweek"`
	Managers []insights.ManagerProjection `json:"managers"`
}

func (a *app) leagueProjection(ctx context.Context, leagueID int) (*leagueProjection, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	standings, err := a.client.LeagueStandings(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	predictions := a.predictionsFor(ctx, fctx)
	picksFor := func(entryID, gw int) (*fpl.EntryPicks, error) {
		return a.client.EntryPicks(ctx, entryID, gw)
	}
	return &leagueProjection{
		LeagueID: leagueID,
		League:   standings.League.Name,
		Gameweek: fctx.CurrentGameweek + 1,
		Managers: insights.ProjectLeague(fctx, standings, predictions, picksFor),
	}, nil
}

func (a *app) leagueStandings(ctx context.Context, leagueID int) (*fpl.LeagueStandings, error) {
	return a.client.LeagueStandings(ctx, leagueID)
}

func (a *app) differentials(ctx context.Context, sortBy string) ([]insights.Differential, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	return insights.Differentials(fctx, sortBy)
}

func (a *app) injuryRisks(ctx context.Context) ([]insights.InjuryRisk, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	return insights.InjuryRisks(fctx), nil
}

func (a *app) dreamTeam(ctx context.Context) (*insights.DreamTeam, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	return insights.OptimizeDreamTeam(fctx, a.predictionsFor(ctx, fctx)), nil
}

func (a *app) quadrantAnalysis(ctx context.Context) (*insights.QuadrantReport, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}
	return insights.AnalyzeQuadrants(fctx), nil
}
