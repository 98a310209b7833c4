package points

import (
	"time"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

type LiveStats struct {
	Minutes     int `json:"minutes"`
	TotalPoints int `json:"total_points"`
}

type PlayerPoints struct {
	Element       int    `json:"element"`
	Name          string `json:"name"`
	Minutes       int    `json:"minutes"`
	Points        int    `json:"points"`
	Multiplier    int    `json:"multiplier"`
	Total         int    `json:"total"`
	IsCaptain     bool   `json:"is_captain,omitempty"`
	IsViceCaptain bool   `json:"is_vice_captain,omitempty"`
}

type Result struct {
	EntryID        int            `json:"entry_id"`
	Gameweek       int            `json:"gameweek"`
	GeneratedAtUTC string         `json:"generated_at_utc"`
	Starters       []PlayerPoints `json:"starters"`
	Bench          []PlayerPoints `json:"bench"`
	TotalPoints    int            `json:"total_points"`
}

// BuildResult scores a classic-FPL squad against live gameweek stats.
// Classic picks carry multipliers: the captain doubles (or triples), and
// bench players sit at multiplier 0 and contribute nothing to the total.
// Missing live stats default to 0 points.
func BuildResult(entryID int, gw int, picks *fpl.EntryPicks, names map[int]string, liveByElement map[int]LiveStats) *Result {
	starters := make([]PlayerPoints, 0, 11)
	bench := make([]PlayerPoints, 0, 4)
	total := 0

	for _, p := range picks.Picks {
		live := liveByElement[p.Element]
		name := names[p.Element]
		if name == "" {
			name = "Unknown"
		}
		pp := PlayerPoints{
			Element:       p.Element,
			Name:          name,
			Minutes:       live.Minutes,
			Points:        live.TotalPoints,
			Multiplier:    p.Multiplier,
			Total:         live.TotalPoints * p.Multiplier,
			IsCaptain:     p.IsCaptain,
			IsViceCaptain: p.IsViceCaptain,
		}
		if p.Multiplier > 0 {
			starters = append(starters, pp)
			total += pp.Total
		} else {
			bench = append(bench, pp)
		}
	}

	return &Result{
		EntryID:        entryID,
		Gameweek:       gw,
		GeneratedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Starters:       starters,
		Bench:          bench,
		TotalPoints:    total,
	}
}
