package insights

import (
	"errors"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// ErrNoReplacements is returned when no affordable same-position replacement
// exists for the squad's weakest player.
var ErrNoReplacements = errors.New("no suitable replacements within budget")

// TransferCandidate is one side of a suggested transfer.
type TransferCandidate struct {
	PlayerID int     `json:"player_id"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Position string  `json:"position"`
	Price    float64 `json:"price"`
	Score    float64 `json:"score"`
	Form     float64 `json:"form"`
	ICTIndex float64 `json:"ict_index"`
	AvgFDR   float64 `json:"avg_fdr"`
}

// TransferSuggestion recommends swapping the squad's weakest link for the
// best affordable replacement. Upgrade is false when holding is the better
// play.
type TransferSuggestion struct {
	Out     TransferCandidate `json:"out"`
	In      TransferCandidate `json:"in"`
	Upgrade bool              `json:"upgrade"`
	Bank    float64           `json:"bank"`
}

// desirability scores a player for transfer decisions: form 50%, ICT 40%,
// fixture run 10% (inverted FDR so easier fixtures score higher).
func desirability(ctx *fpl.Context, player fpl.Element) float64 {
	fdrScore := (5 - AvgFDR(ctx, player.Team, 5)) * 5
	return player.Form.Float()*0.5 + player.ICTIndex.Float()*0.4 + fdrScore*0.1
}

// SuggestTransfer finds the weakest player in the squad and the strongest
// same-position replacement within price plus bank.
func SuggestTransfer(ctx *fpl.Context, picks *fpl.EntryPicks, entry *fpl.Entry) (*TransferSuggestion, error) {
	if len(picks.Picks) == 0 {
		return nil, errors.New("squad is empty")
	}

	inSquad := make(map[int]bool, len(picks.Picks))
	for _, p := range picks.Picks {
		inSquad[p.Element] = true
	}

	var weakest fpl.Element
	weakestScore := 0.0
	first := true
	for _, p := range picks.Picks {
		player, ok := ctx.Players[p.Element]
		if !ok {
			continue
		}
		score := desirability(ctx, player)
		if first || score < weakestScore {
			weakest = player
			weakestScore = score
			first = false
		}
	}
	if first {
		return nil, errors.New("no squad players resolvable against bootstrap")
	}

	bank := float64(entry.LastDeadlineBank) / 10.0
	budget := weakest.NowCost + entry.LastDeadlineBank

	var best fpl.Element
	bestScore := 0.0
	found := false
	for _, candidate := range ctx.Bootstrap.Elements {
		if candidate.ElementType != weakest.ElementType ||
			inSquad[candidate.ID] ||
			candidate.NowCost > budget ||
			candidate.Status != fpl.StatusAvailable {
			continue
		}
		score := desirability(ctx, candidate)
		if !found || score > bestScore {
			best = candidate
			bestScore = score
			found = true
		}
	}
	if !found {
		return nil, ErrNoReplacements
	}

	return &TransferSuggestion{
		Out:     candidateFor(ctx, weakest, weakestScore),
		In:      candidateFor(ctx, best, bestScore),
		Upgrade: bestScore > weakestScore,
		Bank:    bank,
	}, nil
}

func candidateFor(ctx *fpl.Context, player fpl.Element, score float64) TransferCandidate {
	return TransferCandidate{
		PlayerID: player.ID,
		Name:     player.Name(),
		Team:     ctx.TeamName(player.Team),
		Position: ctx.PositionName(player.ElementType),
		Price:    player.Price(),
		Score:    score,
		Form:     player.Form.Float(),
		ICTIndex: player.ICTIndex.Float(),
		AvgFDR:   AvgFDR(ctx, player.Team, 5),
	}
}
