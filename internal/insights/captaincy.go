package insights

import (
	"sort"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// CaptainPick is one squad member ranked for the armband.
type CaptainPick struct {
	PlayerID  int     `json:"player_id"`
	Name      string  `json:"name"`
	Team      string  `json:"team"`
	Predicted float64 `json:"predicted"`
	Pick      string  `json:"pick,omitempty"` // captain | vice
}

// RankCaptaincy orders the squad by predicted score, marking the top two as
// the suggested captain and vice-captain. Ties keep squad order.
func RankCaptaincy(ctx *fpl.Context, picks *fpl.EntryPicks, predictions map[int]float64) []CaptainPick {
	ranked := make([]CaptainPick, 0, len(picks.Picks))
	for _, p := range picks.Picks {
		player, ok := ctx.Players[p.Element]
		if !ok {
			continue
		}
		ranked = append(ranked, CaptainPick{
			PlayerID:  p.Element,
			Name:      player.Name(),
			Team:      ctx.TeamName(player.Team),
			Predicted: predictions[p.Element],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Predicted > ranked[j].Predicted
	})
	if len(ranked) > 0 {
		ranked[0].Pick = "captain"
	}
	if len(ranked) > 1 {
		ranked[1].Pick = "vice"
	}
	return ranked
}

// CurrentCaptain reports who currently wears the armband.
func CurrentCaptain(ctx *fpl.Context, picks *fpl.EntryPicks) (captain, vice string) {
	for _, p := range picks.Picks {
		name := ctx.PlayerMap[p.Element]
		if p.IsCaptain {
			captain = name
		}
		if p.IsViceCaptain {
			vice = name
		}
	}
	return captain, vice
}
