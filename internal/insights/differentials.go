package insights

import (
	"fmt"
	"sort"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// DifferentialOwnershipThreshold is the ownership ceiling (percent) below
// which a player counts as a differential.
const DifferentialOwnershipThreshold = 5.0

const differentialLimit = 20

// Differential is one low-ownership player row.
type Differential struct {
	PlayerID    int     `json:"player_id"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	Price       float64 `json:"price"`
	Ownership   float64 `json:"ownership"`
	Form        float64 `json:"form"`
	TotalPoints int     `json:"total_points"`
	ICTIndex    float64 `json:"ict_index"`
}

// Differentials lists the top low-ownership players sorted by the requested
// metric: form, total_points or ict_index.
func Differentials(ctx *fpl.Context, sortBy string) ([]Differential, error) {
	if sortBy == "" {
		sortBy = "form"
	}
	var less func(a, b fpl.Element) bool
	switch sortBy {
	case "form":
		less = func(a, b fpl.Element) bool { return a.Form > b.Form }
	case "total_points":
		less = func(a, b fpl.Element) bool { return a.TotalPoints > b.TotalPoints }
	case "ict_index":
		less = func(a, b fpl.Element) bool { return a.ICTIndex > b.ICTIndex }
	default:
		return nil, fmt.Errorf("invalid sort key: %q", sortBy)
	}

	var pool []fpl.Element
	for _, p := range ctx.Bootstrap.Elements {
		if p.SelectedByPercent.Float() < DifferentialOwnershipThreshold {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return less(pool[i], pool[j]) })
	if len(pool) > differentialLimit {
		pool = pool[:differentialLimit]
	}

	out := make([]Differential, 0, len(pool))
	for _, p := range pool {
		out = append(out, Differential{
			PlayerID:    p.ID,
			Name:        p.Name(),
			Team:        ctx.TeamName(p.Team),
			Position:    ctx.PositionName(p.ElementType),
			Price:       p.Price(),
			Ownership:   p.SelectedByPercent.Float(),
			Form:        p.Form.Float(),
			TotalPoints: p.TotalPoints,
			ICTIndex:    p.ICTIndex.Float(),
		})
	}
	return out, nil
}
