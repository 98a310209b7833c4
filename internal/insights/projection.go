package insights

import "github.com/aatrey56/fpl-advisor/internal/fpl"

// ProjectedPick is one squad slot with its predicted score attached.
type ProjectedPick struct {
	PlayerID      int     `json:"player_id"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	Position      string  `json:"position"`
	Predicted     float64 `json:"predicted"`
	Multiplier    int     `json:"multiplier"`
	IsCaptain     bool    `json:"is_captain"`
	IsViceCaptain bool    `json:"is_vice_captain"`
}

// SquadProjection is a full starter/bench forecast for the next gameweek.
// PredictedTotal is multiplier-adjusted, so the captain counts double.
type SquadProjection struct {
	Gameweek       int             `json:"gameweek"`
	PredictedTotal float64         `json:"predicted_total"`
	Starters       []ProjectedPick `json:"starters"`
	Bench          []ProjectedPick `json:"bench"`
}

// ProjectSquad forecasts a squad using the trained model's per-player map
// where available, falling back to the heuristic predictions for players the
// model never saw.
func ProjectSquad(ctx *fpl.Context, picks *fpl.EntryPicks, modelPredictions, fallback map[int]float64) *SquadProjection {
	projection := &SquadProjection{Gameweek: ctx.CurrentGameweek}

	for _, pick := range picks.Picks {
		player, ok := ctx.Players[pick.Element]
		if !ok {
			continue
		}
		predicted, ok := modelPredictions[pick.Element]
		if !ok {
			predicted = fallback[pick.Element]
		}

		detail := ProjectedPick{
			PlayerID:      pick.Element,
			Name:          player.Name(),
			Team:          ctx.TeamName(player.Team),
			Position:      ctx.PositionName(player.ElementType),
			Predicted:     predicted,
			Multiplier:    pick.Multiplier,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
		}

		if pick.Multiplier > 0 {
			projection.PredictedTotal += predicted * float64(pick.Multiplier)
			projection.Starters = append(projection.Starters, detail)
		} else {
			projection.Bench = append(projection.Bench, detail)
		}
	}

	return projection
}
