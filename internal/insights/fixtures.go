package insights

import "github.com/aatrey56/fpl-advisor/internal/fpl"

// neutralFDR is returned when a team has no upcoming fixtures to average.
const neutralFDR = 3.0

// AvgFDR is the mean fixture difficulty rating across a team's next n games
// from the current gameweek onward.
func AvgFDR(ctx *fpl.Context, teamID int, n int) float64 {
	if n <= 0 {
		n = 5
	}

	total := 0
	count := 0
	for _, f := range ctx.Fixtures {
		if f.Event == nil || *f.Event < ctx.CurrentGameweek {
			continue
		}
		switch teamID {
		case f.TeamH:
			total += f.TeamHDifficulty
		case f.TeamA:
			total += f.TeamADifficulty
		default:
			continue
		}
		count++
		if count == n {
			break
		}
	}

	if count == 0 {
		return neutralFDR
	}
	return float64(total) / float64(count)
}

// CountBlankPlayers counts squad members whose club has no fixture scheduled
// from the current gameweek onward. Feeds the free-hit verdict.
func CountBlankPlayers(ctx *fpl.Context, elementIDs []int) int {
	teamsWithFixtures := make(map[int]bool)
	for _, f := range ctx.Fixtures {
		if f.Event == nil || *f.Event < ctx.CurrentGameweek {
			continue
		}
		teamsWithFixtures[f.TeamH] = true
		teamsWithFixtures[f.TeamA] = true
	}

	blanks := 0
	for _, id := range elementIDs {
		player, ok := ctx.Players[id]
		if !ok {
			continue
		}
		if !teamsWithFixtures[player.Team] {
			blanks++
		}
	}
	return blanks
}
