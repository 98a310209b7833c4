package insights

import (
	"testing"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

func TestAnalyzeQuadrants(t *testing.T) {
	ctx := testContext()

	got := AnalyzeQuadrants(ctx)

	// Population: Saka (form 7.5, FDR 2), Palmer (6.0, 4), Cheapo (2.0, 4),
	// Gem (4.5, 2). Averages: form 5.0, FDR 3.0.
	if got.AvgForm != 5.0 {
		t.Errorf("AvgForm = %v, want 5.0", got.AvgForm)
	}
	if got.AvgFDR != 3.0 {
		t.Errorf("AvgFDR = %v, want 3.0", got.AvgFDR)
	}

	find := func(quadrant []QuadrantPlayer, id int) bool {
		for _, p := range quadrant {
			if p.PlayerID == id {
				return true
			}
		}
		return false
	}
	if !find(got.PrimeTargets, 101) {
		t.Error("Saka (high form, easy run) should be a prime target")
	}
	if !find(got.FormTraps, 102) {
		t.Error("Palmer (high form, hard run) should be a form trap")
	}
	if !find(got.FutureGems, 104) {
		t.Error("Gem (low form, easy run) should be a future gem")
	}
	if !find(got.PlayersToAvoid, 103) {
		t.Error("Cheapo (low form, hard run) should be avoided")
	}
}

func TestAnalyzeQuadrants_EmptyLeague(t *testing.T) {
	ctx := fpl.NewContext(&fpl.Bootstrap{}, nil)

	got := AnalyzeQuadrants(ctx)

	if got.AvgForm != 0 || len(got.PrimeTargets) != 0 {
		t.Errorf("empty league report = %+v, want zero report", got)
	}
}
