package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/insights"
	"github.com/aatrey56/fpl-advisor/internal/rag"
)

type askResponse struct {
	Intent string     `json:"intent,omitempty"`
	Score  float64    `json:"intent_score"`
	Answer rag.Answer `json:"answer"`
}

// answerQuery is the full ask pipeline: classify the question, assemble the
// corpus sections that intent needs, retrieve, compose. Section builders that
// fail (no entry id given, no model yet, league fetch failed) are skipped so
// the answer degrades to whatever context is available.
func (a *app) answerQuery(ctx context.Context, args AskArgs) (*askResponse, error) {
	fctx, err := a.gameContext(ctx)
	if err != nil {
		return nil, err
	}

	result := a.classifier.Classify(args.Query)
	a.log.Info("classified query",
		zap.String("intent", result.Intent),
		zap.Float64("score", result.Score))

	in := rag.CorpusInput{
		Ctx:         fctx,
		PlayerLimit: a.cfg.PlayerLimit,
		Predictions: insights.Predictions(fctx),
	}

	switch result.Intent {
	case "my-team-summary", "ai-team-performance", "smart-captaincy", "current-captain":
		a.attachSquadSections(ctx, fctx, args.EntryID, &in)
		a.attachAI(ctx, fctx, &in)
	case "chip-advice":
		a.attachSquadSections(ctx, fctx, args.EntryID, &in)
	case "transfer-suggester":
		a.attachTransfer(ctx, fctx, args.EntryID, &in)
	case "ai-predictions", "predicted-top-performers", "dream-team",
		"quadrant-analysis", "differential-hunter", "injury-risk":
		a.attachAI(ctx, fctx, &in)
	case "league-head-to-head", "league-predictions":
		a.attachLeagueProjection(ctx, fctx, args.LeagueID, &in)
	case "league-current":
		a.attachStandings(ctx, args.LeagueID, &in)
	default:
		a.attachAI(ctx, fctx, &in)
	}

	kb := rag.BuildKnowledgeBase(in)
	docs := rag.Retrieve(args.Query, kb, a.cfg.TopK)
	answer := rag.Compose(args.Query, docs)

	return &askResponse{Intent: result.Intent, Score: result.Score, Answer: answer}, nil
}

func (a *app) attachAI(ctx context.Context, fctx *fpl.Context, in *rag.CorpusInput) {
	bundle, err := a.aiBundle(ctx, fctx, false)
	if err != nil {
		a.log.Debug("skipping model section", zap.Error(err))
		return
	}
	in.AI = bundle
}

func (a *app) attachSquadSections(ctx context.Context, fctx *fpl.Context, entryID int, in *rag.CorpusInput) {
	if entryID == 0 {
		return
	}
	picks, entry, err := a.squad(ctx, fctx, entryID)
	if err != nil {
		a.log.Debug("skipping squad sections", zap.Error(err))
		return
	}
	predictions := a.predictionsFor(ctx, fctx)
	in.Projection = insights.ProjectSquad(fctx, picks, predictions, insights.Predictions(fctx))
	if advice, err := insights.AdviseChips(fctx, picks, entry, predictions); err == nil {
		in.Chips = advice
	}
}

func (a *app) attachTransfer(ctx context.Context, fctx *fpl.Context, entryID int, in *rag.CorpusInput) {
	if entryID == 0 {
		return
	}
	picks, entry, err := a.squad(ctx, fctx, entryID)
	if err != nil {
		a.log.Debug("skipping transfer section", zap.Error(err))
		return
	}
	suggestion, err := insights.SuggestTransfer(fctx, picks, entry)
	if err != nil {
		a.log.Debug("no transfer suggestion", zap.Error(err))
		return
	}
	in.Transfer = suggestion
}

func (a *app) attachLeagueProjection(ctx context.Context, fctx *fpl.Context, leagueID int, in *rag.CorpusInput) {
	if leagueID == 0 {
		return
	}
	standings, err := a.client.LeagueStandings(ctx, leagueID)
	if err != nil {
		a.log.Debug("skipping league section", zap.Error(err))
		return
	}
	predictions := a.predictionsFor(ctx, fctx)
	picksFor := func(entryID, gw int) (*fpl.EntryPicks, error) {
		return a.client.EntryPicks(ctx, entryID, gw)
	}
	in.LeagueID = leagueID
	in.LeagueName = standings.League.Name
	in.HeadToHead = insights.ProjectLeague(fctx, standings, predictions, picksFor)
}

func (a *app) attachStandings(ctx context.Context, leagueID int, in *rag.CorpusInput) {
	if leagueID == 0 {
		return
	}
	standings, err := a.client.LeagueStandings(ctx, leagueID)
	if err != nil {
		a.log.Debug("skipping standings section", zap.Error(err))
		return
	}
	in.LeagueID = leagueID
	in.LeagueName = standings.League.Name
	in.Standings = standings.Standings.Results
}
