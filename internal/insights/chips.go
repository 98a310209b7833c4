package insights

import (
	"errors"
	"fmt"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// ChipVerdict is the recommendation for a single chip.
type ChipVerdict struct {
	Chip    string `json:"chip"`
	Verdict string `json:"verdict"` // play | consider | hold
	Note    string `json:"note"`
}

// ChipAdvice is the full chip-strategy report for one squad.
type ChipAdvice struct {
	Gameweek      int           `json:"gameweek"`
	TripleCaptain ChipVerdict   `json:"triple_captain"`
	BenchBoost    ChipVerdict   `json:"bench_boost"`
	Wildcard      ChipVerdict   `json:"wildcard"`
	FreeHit       ChipVerdict   `json:"free_hit"`
	Bank          float64       `json:"bank"`
	FreeTransfers int           `json:"free_transfers"`
	Verdicts      []ChipVerdict `json:"-"`
}

// AdviseChips applies the banded heuristics for each chip to the squad's
// predicted scores and flag counts.
func AdviseChips(ctx *fpl.Context, picks *fpl.EntryPicks, entry *fpl.Entry, predictions map[int]float64) (*ChipAdvice, error) {
	type squadEntry struct {
		player    fpl.Element
		predicted float64
	}
	var starters, bench []squadEntry
	flagged := 0
	elementIDs := make([]int, 0, len(picks.Picks))

	for _, pick := range picks.Picks {
		player, ok := ctx.Players[pick.Element]
		if !ok {
			continue
		}
		entry := squadEntry{player: player, predicted: predictions[pick.Element]}
		if pick.Multiplier > 0 {
			starters = append(starters, entry)
		} else {
			bench = append(bench, entry)
		}
		if player.Status != fpl.StatusAvailable {
			flagged++
		}
		elementIDs = append(elementIDs, pick.Element)
	}

	if len(starters) == 0 {
		return nil, errors.New("squad could not be evaluated: no starters resolved")
	}

	advice := &ChipAdvice{
		Gameweek:      ctx.CurrentGameweek,
		Bank:          float64(entry.LastDeadlineBank) / 10.0,
		FreeTransfers: entry.LastDeadlineTotalTransfers,
	}

	// Triple captain: does anyone project a standout week?
	best := starters[0]
	for _, s := range starters[1:] {
		if s.predicted > best.predicted {
			best = s
		}
	}
	bestLabel := fmt.Sprintf("%s (%s)", best.player.Name(), ctx.TeamName(best.player.Team))
	switch {
	case best.predicted >= 7.5:
		advice.TripleCaptain = ChipVerdict{Chip: "triple_captain", Verdict: "play",
			Note: fmt.Sprintf("%s projects %.2f points; strong week for an aggressive play", bestLabel, best.predicted)}
	case best.predicted >= 6.0:
		advice.TripleCaptain = ChipVerdict{Chip: "triple_captain", Verdict: "consider",
			Note: fmt.Sprintf("%s sits around %.2f predicted points; solid, but a double gameweek may serve better", bestLabel, best.predicted)}
	default:
		advice.TripleCaptain = ChipVerdict{Chip: "triple_captain", Verdict: "hold",
			Note: fmt.Sprintf("no standout option this week (top projection %.2f)", best.predicted)}
	}

	// Bench boost: aggregate bench projection.
	benchTotal := 0.0
	for _, b := range bench {
		benchTotal += b.predicted
	}
	switch {
	case benchTotal >= 16:
		advice.BenchBoost = ChipVerdict{Chip: "bench_boost", Verdict: "play",
			Note: fmt.Sprintf("bench projects %.2f points; very healthy boost week", benchTotal)}
	case benchTotal >= 12:
		advice.BenchBoost = ChipVerdict{Chip: "bench_boost", Verdict: "consider",
			Note: fmt.Sprintf("bench projects %.2f points; decent if a chip is needed soon", benchTotal)}
	default:
		advice.BenchBoost = ChipVerdict{Chip: "bench_boost", Verdict: "hold",
			Note: fmt.Sprintf("bench projects only %.2f points", benchTotal)}
	}

	// Wildcard: flagged-player ratio.
	flaggedRatio := float64(flagged) / float64(len(starters)+len(bench))
	switch {
	case flaggedRatio >= 0.3:
		advice.Wildcard = ChipVerdict{Chip: "wildcard", Verdict: "play",
			Note: "over 30% of the squad is flagged; strong case to reset"}
	case flaggedRatio >= 0.2:
		advice.Wildcard = ChipVerdict{Chip: "wildcard", Verdict: "consider",
			Note: "injuries piling up; wildcard if future fixtures are poor"}
	default:
		advice.Wildcard = ChipVerdict{Chip: "wildcard", Verdict: "hold",
			Note: "squad health is solid; save it unless planning for doubles"}
	}

	// Free hit: upcoming blank counts.
	blanks := CountBlankPlayers(ctx, elementIDs)
	switch {
	case blanks >= 6:
		advice.FreeHit = ChipVerdict{Chip: "free_hit", Verdict: "play",
			Note: fmt.Sprintf("%d players projected to blank soon; free hit could stabilise that gameweek", blanks)}
	case blanks >= 4:
		advice.FreeHit = ChipVerdict{Chip: "free_hit", Verdict: "consider",
			Note: fmt.Sprintf("%d players may blank soon; keep it in mind if transfers won't cover it", blanks)}
	default:
		advice.FreeHit = ChipVerdict{Chip: "free_hit", Verdict: "hold",
			Note: "no major blank warning"}
	}

	advice.Verdicts = []ChipVerdict{advice.TripleCaptain, advice.BenchBoost, advice.Wildcard, advice.FreeHit}
	return advice, nil
}
