package insights

import (
	"math"
	"testing"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

func TestAvgFDR(t *testing.T) {
	ctx := testContext()

	// Arsenal's remaining home fixtures carry difficulty 2.
	if got := AvgFDR(ctx, 1, 5); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("AvgFDR(Arsenal) = %v, want 2.0", got)
	}
	if got := AvgFDR(ctx, 2, 5); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("AvgFDR(Chelsea) = %v, want 4.0", got)
	}
}

func TestAvgFDR_PastFixturesIgnored(t *testing.T) {
	ctx := testContext()

	// GW 2's reversed difficulties are behind us and must not dilute the
	// average.
	if got := AvgFDR(ctx, 1, 5); got != 2.0 {
		t.Errorf("AvgFDR = %v, want 2.0 (future fixtures only)", got)
	}
}

func TestAvgFDR_NoFixturesIsNeutral(t *testing.T) {
	ctx := testContext()

	if got := AvgFDR(ctx, 99, 5); got != 3.0 {
		t.Errorf("AvgFDR(unknown team) = %v, want neutral 3.0", got)
	}
}

func TestAvgFDR_WindowCap(t *testing.T) {
	ctx := testContext()

	// Only the first upcoming fixture counts with n = 1.
	if got := AvgFDR(ctx, 2, 1); got != 4.0 {
		t.Errorf("AvgFDR(n=1) = %v, want 4.0", got)
	}
}

func TestCountBlankPlayers(t *testing.T) {
	ctx := testContext()

	// Add a clubless player: their team has no fixtures at all.
	ctx.Players[200] = fpl.Element{ID: 200, WebName: "Stranded", Team: 9}

	got := CountBlankPlayers(ctx, []int{101, 102, 200})
	if got != 1 {
		t.Errorf("CountBlankPlayers = %d, want 1", got)
	}
}

func TestCountBlankPlayers_UnknownElementsSkipped(t *testing.T) {
	ctx := testContext()

	if got := CountBlankPlayers(ctx, []int{999}); got != 0 {
		t.Errorf("CountBlankPlayers = %d, want 0 for unresolvable element", got)
	}
}
