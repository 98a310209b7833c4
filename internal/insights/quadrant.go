package insights

import (
	"sort"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

const quadrantShowLimit = 5

// QuadrantPlayer is one categorized player row.
type QuadrantPlayer struct {
	PlayerID int     `json:"player_id"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Form     float64 `json:"form"`
	AvgFDR   float64 `json:"avg_fdr"`
}

// QuadrantReport splits active players into four strategic quadrants around
// the population-average form and fixture difficulty.
type QuadrantReport struct {
	AvgForm        float64          `json:"avg_form"`
	AvgFDR         float64          `json:"avg_fdr"`
	PrimeTargets   []QuadrantPlayer `json:"prime_targets"`    // high form, easy fixtures
	FormTraps      []QuadrantPlayer `json:"form_traps"`       // high form, hard fixtures
	FutureGems     []QuadrantPlayer `json:"future_gems"`      // low form, easy fixtures
	PlayersToAvoid []QuadrantPlayer `json:"players_to_avoid"` // low form, hard fixtures
}

// AnalyzeQuadrants categorizes every active player by form versus upcoming
// fixture difficulty, returning the top rows of each quadrant by form.
func AnalyzeQuadrants(ctx *fpl.Context) *QuadrantReport {
	players := ctx.ActivePlayers()
	if len(players) == 0 {
		return &QuadrantReport{}
	}

	var formSum, fdrSum float64
	fdrByPlayer := make(map[int]float64, len(players))
	for _, p := range players {
		formSum += p.Form.Float()
		fdr := AvgFDR(ctx, p.Team, 5)
		fdrByPlayer[p.ID] = fdr
		fdrSum += fdr
	}
	report := &QuadrantReport{
		AvgForm: formSum / float64(len(players)),
		AvgFDR:  fdrSum / float64(len(players)),
	}

	for _, p := range players {
		row := QuadrantPlayer{
			PlayerID: p.ID,
			Name:     p.Name(),
			Team:     ctx.TeamName(p.Team),
			Form:     p.Form.Float(),
			AvgFDR:   fdrByPlayer[p.ID],
		}
		highForm := row.Form >= report.AvgForm
		easyRun := row.AvgFDR <= report.AvgFDR
		switch {
		case highForm && easyRun:
			report.PrimeTargets = append(report.PrimeTargets, row)
		case highForm:
			report.FormTraps = append(report.FormTraps, row)
		case easyRun:
			report.FutureGems = append(report.FutureGems, row)
		default:
			report.PlayersToAvoid = append(report.PlayersToAvoid, row)
		}
	}

	for _, quadrant := range []*[]QuadrantPlayer{
		&report.PrimeTargets, &report.FormTraps, &report.FutureGems, &report.PlayersToAvoid,
	} {
		sort.SliceStable(*quadrant, func(i, j int) bool { return (*quadrant)[i].Form > (*quadrant)[j].Form })
		if len(*quadrant) > quadrantShowLimit {
			*quadrant = (*quadrant)[:quadrantShowLimit]
		}
	}
	return report
}
