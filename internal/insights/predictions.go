// Package insights implements the heuristic advisory layer: quick
// form/fixture scoring, captaincy and transfer suggestions, chip strategy,
// squad and league projections. Everything here is pure computation over a
// context snapshot — callers supply picks, entries and standings.
package insights

import "github.com/aatrey56/fpl-advisor/internal/fpl"

// Predictions produces a {player id: predicted score} map for the next
// gameweek using the lightweight form/ICT/strength heuristic. It is the
// fallback prediction source when no trained model is available, and also
// feeds the chip, captaincy and league projections directly.
func Predictions(ctx *fpl.Context) map[int]float64 {
	nextGameweek := ctx.CurrentGameweek + 1

	type strength struct{ attack, defence int }
	teamStrength := make(map[int]strength, len(ctx.Bootstrap.Teams))
	for _, t := range ctx.Bootstrap.Teams {
		teamStrength[t.ID] = strength{
			attack:  t.StrengthAttackHome + t.StrengthAttackAway,
			defence: t.StrengthDefenceHome + t.StrengthDefenceAway,
		}
	}

	type opponent struct {
		id     int
		isHome bool
	}
	nextOpponents := make(map[int]opponent)
	for _, f := range ctx.Fixtures {
		if f.Event == nil || *f.Event != nextGameweek {
			continue
		}
		nextOpponents[f.TeamH] = opponent{id: f.TeamA, isHome: true}
		nextOpponents[f.TeamA] = opponent{id: f.TeamH, isHome: false}
	}

	predictions := make(map[int]float64)
	for _, player := range ctx.Bootstrap.Elements {
		if player.Status != fpl.StatusAvailable {
			continue
		}
		fixture, ok := nextOpponents[player.Team]
		if !ok {
			continue
		}

		baseScore := player.Form.Float()*0.6 + player.ICTIndex.Float()*0.1
		attackModifier := float64(teamStrength[player.Team].attack-teamStrength[fixture.id].defence) / 200
		homeAdvantage := 0.0
		if fixture.isHome {
			homeAdvantage = 0.25
		}

		prediction := baseScore + attackModifier + homeAdvantage
		if prediction < 0 {
			prediction = 0
		}
		predictions[player.ID] = prediction
	}
	return predictions
}
