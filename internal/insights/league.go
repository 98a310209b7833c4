package insights

import (
	"sort"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// maxProjectedManagers caps how many managers get a picks fetch per
// projection pass.
const maxProjectedManagers = 15

// ManagerProjection is one manager's predicted score for the next gameweek.
type ManagerProjection struct {
	Rank      int     `json:"rank"`
	Manager   string  `json:"manager"`
	EntryID   int     `json:"entry_id"`
	Predicted float64 `json:"predicted_score"`
}

// PicksFunc resolves a manager's picks for a gameweek. Kept as a function
// value so the projection stays pure and testable.
type PicksFunc func(entryID, gw int) (*fpl.EntryPicks, error)

// ProjectLeague predicts every manager's next-gameweek score from their
// current starting XI, with the captain's score counted twice, and ranks the
// results. Managers whose picks cannot be fetched are skipped.
func ProjectLeague(ctx *fpl.Context, standings *fpl.LeagueStandings, predictions map[int]float64, picksFor PicksFunc) []ManagerProjection {
	rows := standings.Standings.Results
	if len(rows) > maxProjectedManagers {
		rows = rows[:maxProjectedManagers]
	}

	projections := make([]ManagerProjection, 0, len(rows))
	for _, manager := range rows {
		picks, err := picksFor(manager.Entry, ctx.CurrentGameweek)
		if err != nil {
			continue
		}

		total := 0.0
		captainID := 0
		startingIDs := make(map[int]bool)
		for _, p := range picks.Picks {
			if p.Multiplier > 0 {
				startingIDs[p.Element] = true
				total += predictions[p.Element]
			}
			if p.IsCaptain {
				captainID = p.Element
			}
		}
		if startingIDs[captainID] {
			total += predictions[captainID]
		}

		projections = append(projections, ManagerProjection{
			Manager:   manager.PlayerName,
			EntryID:   manager.Entry,
			Predicted: total,
		})
	}

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].Predicted > projections[j].Predicted
	})
	for i := range projections {
		projections[i].Rank = i + 1
	}
	return projections
}
