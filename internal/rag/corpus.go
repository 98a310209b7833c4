package rag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/insights"
)

// DefaultPlayerLimit caps how many player documents enter the corpus.
const DefaultPlayerLimit = 200

// aiDocLimit and aiOverviewLimit bound the model-prediction documents.
const (
	aiDocLimit      = 30
	aiOverviewLimit = 10
)

const standingsLimit = 20

// AIPrediction is one trained-model output enriched with display names.
type AIPrediction struct {
	PlayerID  int     `json:"player_id"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Position  string  `json:"position"`
	Predicted float64 `json:"predicted"`
	AvgPoints float64 `json:"avg_points"`
	Form      float64 `json:"form"`
}

// AIBundle carries everything the corpus needs from a trained model pass.
type AIBundle struct {
	ModelName      string          `json:"model"`
	TrainedSamples int             `json:"trained_samples"`
	Window         int             `json:"history_window"`
	Top            []AIPrediction  `json:"predictions"`
	PredictionMap  map[int]float64 `json:"-"`
}

// CorpusInput is the contextual data a knowledge base is built from. Every
// field beyond Ctx is optional: a nil section is simply skipped, so a
// partial corpus is always valid.
type CorpusInput struct {
	Ctx         *fpl.Context
	PlayerLimit int
	Predictions map[int]float64 // heuristic per-player next-gameweek scores

	AI         *AIBundle
	Transfer   *insights.TransferSuggestion
	Projection *insights.SquadProjection
	Chips      *insights.ChipAdvice

	HeadToHead []insights.ManagerProjection
	LeagueID   int
	LeagueName string
	Standings  []fpl.StandingRow
}

// BuildKnowledgeBase assembles the per-request corpus: one document per
// eligible player, one per team, the model-prediction documents when a
// trained model is in scope, and the squad/league documents when those are.
func BuildKnowledgeBase(in CorpusInput) *KnowledgeBase {
	limit := in.PlayerLimit
	if limit <= 0 {
		limit = DefaultPlayerLimit
	}

	var documents []Document
	documents = append(documents, buildPlayerDocs(in.Ctx, in.Predictions, limit)...)
	documents = append(documents, buildTeamDocs(in.Ctx)...)

	if in.AI != nil {
		documents = append(documents, buildAIDocs(in.AI)...)
	}
	if in.Transfer != nil {
		documents = append(documents, buildTransferDoc(in.Transfer))
	}
	if in.Projection != nil {
		documents = append(documents, buildProjectionDoc(in.Projection))
	}
	if in.Chips != nil {
		documents = append(documents, buildChipDoc(in.Chips))
	}
	if len(in.HeadToHead) > 0 {
		documents = append(documents, buildHeadToHeadDoc(in.LeagueID, in.LeagueName, in.HeadToHead))
	}
	if len(in.Standings) > 0 {
		documents = append(documents, buildStandingsDoc(in.LeagueID, in.LeagueName, in.Standings))
	}

	return NewKnowledgeBase(documents)
}

func buildPlayerDocs(ctx *fpl.Context, predictions map[int]float64, limit int) []Document {
	active := ctx.ActivePlayers()
	sort.SliceStable(active, func(i, j int) bool { return active[i].Form > active[j].Form })
	if len(active) > limit {
		active = active[:limit]
	}

	docs := make([]Document, 0, len(active))
	for _, player := range active {
		teamName := ctx.TeamName(player.Team)
		position := ctx.PositionName(player.ElementType)
		prediction := predictions[player.ID]

		var fixtureText string
		if opponentID, home, ok := ctx.NextFixture(player.Team, ctx.CurrentGameweek); ok {
			venue := "away"
			if home {
				venue = "home"
			}
			fixtureText = fmt.Sprintf("faces %s (%s)", ctx.TeamName(opponentID), venue)
		} else {
			fixtureText = "has no scheduled fixture"
		}

		injuryText := ""
		chance := player.ChanceOfPlayingNextRound
		if player.Status != fpl.StatusAvailable || (chance != nil && *chance < 100) {
			chanceText := "flagged"
			if chance != nil {
				chanceText = fmt.Sprintf("%d%% chance", *chance)
			}
			injuryText = strings.TrimSpace(fmt.Sprintf(". Availability: %s. %s", chanceText, player.News))
		}

		docText := fmt.Sprintf(
			"%s is a %s for %s. Current form %.1f, total points %d, ICT index %.1f. Price £%.1fm. "+
				"Predicted points next GW %.2f. Next %s%s.",
			player.Name(), position, teamName, player.Form.Float(), player.TotalPoints,
			player.ICTIndex.Float(), player.Price(), prediction, fixtureText, injuryText,
		)

		docs = append(docs, NewDocument(
			fmt.Sprintf("player-%d", player.ID),
			fmt.Sprintf("%s (%s)", player.Name(), teamName),
			docText,
			PlayerMeta{
				PlayerID:    player.ID,
				Team:        teamName,
				Position:    position,
				Price:       player.Price(),
				Prediction:  prediction,
				Form:        player.Form.Float(),
				TotalPoints: player.TotalPoints,
				Fixture:     fixtureText,
				InjuryNote:  injuryText,
			},
		))
	}
	return docs
}

func buildTeamDocs(ctx *fpl.Context) []Document {
	docs := make([]Document, 0, len(ctx.Bootstrap.Teams))
	for _, team := range ctx.Bootstrap.Teams {
		docText := fmt.Sprintf(
			"%s have scored %d attack strength at home and %d away. Defence strength home %d, away %d.",
			team.Name, team.StrengthAttackHome, team.StrengthAttackAway,
			team.StrengthDefenceHome, team.StrengthDefenceAway,
		)
		docs = append(docs, NewDocument(
			fmt.Sprintf("team-%d", team.ID),
			fmt.Sprintf("Team outlook: %s", team.Name),
			docText,
			TeamMeta{TeamID: team.ID},
		))
	}
	return docs
}

func buildAIDocs(bundle *AIBundle) []Document {
	top := bundle.Top
	if len(top) > aiDocLimit {
		top = top[:aiDocLimit]
	}

	docs := make([]Document, 0, len(top)+1)
	summaries := make([]string, 0, len(top))
	for _, entry := range top {
		summary := fmt.Sprintf("%s (%s) predicted %.2f pts, avg last 5 %.2f, form %.1f.",
			entry.Name, entry.Team, entry.Predicted, entry.AvgPoints, entry.Form)
		summaries = append(summaries, summary)

		docs = append(docs, NewDocument(
			fmt.Sprintf("ai-player-%d", entry.PlayerID),
			fmt.Sprintf("AI prediction: %s", entry.Name),
			summary,
			AIPlayerMeta{
				PlayerID:  entry.PlayerID,
				Team:      entry.Team,
				Position:  entry.Position,
				Predicted: entry.Predicted,
				AvgPoints: entry.AvgPoints,
				Form:      entry.Form,
			},
		))
	}

	if len(summaries) > aiOverviewLimit {
		summaries = summaries[:aiOverviewLimit]
	}
	docs = append(docs, NewDocument(
		"ai-overview",
		"AI Top Performer Overview",
		"Top AI predictions: "+strings.Join(summaries, " "),
		AIOverviewMeta{Model: bundle.ModelName, TrainedSamples: bundle.TrainedSamples},
	))
	return docs
}

func buildTransferDoc(suggestion *insights.TransferSuggestion) Document {
	recommendation := fmt.Sprintf(
		"Transferring out %s for %s is a potential upgrade.",
		suggestion.Out.Name, suggestion.In.Name,
	)
	if !suggestion.Upgrade {
		recommendation = "HOLD transfer. No clear upgrade found within budget."
	}
	docText := fmt.Sprintf(
		"Transfer out %s (%s, %s): score %.2f, price £%.1fm, avg FDR %.2f. "+
			"Transfer in %s (%s, %s): score %.2f, price £%.1fm, avg FDR %.2f. %s",
		suggestion.Out.Name, suggestion.Out.Team, suggestion.Out.Position,
		suggestion.Out.Score, suggestion.Out.Price, suggestion.Out.AvgFDR,
		suggestion.In.Name, suggestion.In.Team, suggestion.In.Position,
		suggestion.In.Score, suggestion.In.Price, suggestion.In.AvgFDR,
		recommendation,
	)
	return NewDocument("transfer-suggestion", "Recommended transfer", docText,
		TransferMeta{Suggestion: suggestion})
}

func buildProjectionDoc(projection *insights.SquadProjection) Document {
	lines := []string{
		fmt.Sprintf("Predicted squad total for GW %d: %.2f points.", projection.Gameweek, projection.PredictedTotal),
		"Starters:",
	}
	for _, detail := range projection.Starters {
		note := ""
		if detail.IsCaptain {
			note = " (C)"
		} else if detail.IsViceCaptain {
			note = " (V)"
		}
		multiplierText := ""
		if detail.Multiplier > 1 {
			multiplierText = fmt.Sprintf(" x%d", detail.Multiplier)
		}
		lines = append(lines, fmt.Sprintf("- %s (%s, %s)%s: %.2f pts%s",
			detail.Name, detail.Team, detail.Position, note, detail.Predicted, multiplierText))
	}
	if len(projection.Bench) > 0 {
		lines = append(lines, "Bench:")
		for _, detail := range projection.Bench {
			lines = append(lines, fmt.Sprintf("- %s (%s, %s): %.2f pts",
				detail.Name, detail.Team, detail.Position, detail.Predicted))
		}
	}

	return NewDocument(
		"team-projection",
		fmt.Sprintf("Squad projection GW %d", projection.Gameweek),
		strings.Join(lines, "\n"),
		TeamProjectionMeta{Projection: projection},
	)
}

func buildChipDoc(advice *insights.ChipAdvice) Document {
	lines := []string{fmt.Sprintf("Chip strategy for GW %d:", advice.Gameweek)}
	for _, v := range advice.Verdicts {
		lines = append(lines, fmt.Sprintf("%s (%s): %s", v.Chip, v.Verdict, v.Note))
	}
	lines = append(lines, fmt.Sprintf("Bank: £%.1fm, free transfers: %d.", advice.Bank, advice.FreeTransfers))
	return NewDocument("chip-advice", "Chip strategy advice", strings.Join(lines, "\n"),
		ChipMeta{Verdicts: advice.Verdicts})
}

func buildHeadToHeadDoc(leagueID int, leagueName string, results []insights.ManagerProjection) Document {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%d. %s predicted %.2f pts", r.Rank, r.Manager, r.Predicted))
	}
	docText := "Predicted league standings: " + strings.Join(lines, "; ")
	return NewDocument("league-head-to-head", "Upcoming league predictions", docText,
		HeadToHeadMeta{LeagueID: leagueID, LeagueName: leagueName, Results: results})
}

func buildStandingsDoc(leagueID int, leagueName string, standings []fpl.StandingRow) Document {
	if len(standings) > standingsLimit {
		standings = standings[:standingsLimit]
	}
	lines := make([]string, 0, len(standings))
	for _, row := range standings {
		lines = append(lines, fmt.Sprintf("#%d %s (%s): %d pts", row.Rank, row.PlayerName, row.EntryName, row.Total))
	}
	docText := "Current standings: " + strings.Join(lines, "; ")
	return NewDocument("league-current-standings", "Current league standings", docText,
		LeagueCurrentMeta{LeagueID: leagueID, LeagueName: leagueName, Standings: standings})
}
