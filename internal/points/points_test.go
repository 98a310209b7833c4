package points

import (
	"testing"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

// makePicks builds EntryPicks from (element, multiplier) pairs.
func makePicks(picks ...struct{ elem, mult int }) *fpl.EntryPicks {
	ps := make([]fpl.Pick, 0, len(picks))
	for i, p := range picks {
		ps = append(ps, fpl.Pick{Element: p.elem, Position: i + 1, Multiplier: p.mult})
	}
	return &fpl.EntryPicks{Picks: ps}
}

func TestBuildResult_BasicPoints(t *testing.T) {
	picks := makePicks(
		struct{ elem, mult int }{10, 1},
		struct{ elem, mult int }{20, 1},
	)
	live := map[int]LiveStats{
		10: {Minutes: 90, TotalPoints: 6},
		20: {Minutes: 90, TotalPoints: 4},
	}

	r := BuildResult(1, 2, picks, map[int]string{10: "Salah", 20: "Saka"}, live)

	if r.TotalPoints != 10 {
		t.Errorf("TotalPoints = %d, want 10", r.TotalPoints)
	}
	if len(r.Starters) != 2 {
		t.Errorf("Starters len = %d, want 2", len(r.Starters))
	}
}

func TestBuildResult_CaptainDoubled(t *testing.T) {
	picks := &fpl.EntryPicks{Picks: []fpl.Pick{
		{Element: 10, Position: 1, Multiplier: 2, IsCaptain: true},
		{Element: 20, Position: 2, Multiplier: 1},
	}}
	live := map[int]LiveStats{
		10: {Minutes: 90, TotalPoints: 6},
		20: {Minutes: 90, TotalPoints: 3},
	}

	r := BuildResult(1, 1, picks, nil, live)

	if r.TotalPoints != 15 {
		t.Errorf("TotalPoints = %d, want 15 (captain doubled)", r.TotalPoints)
	}
	for _, p := range r.Starters {
		if p.Element == 10 && p.Total != 12 {
			t.Errorf("captain Total = %d, want 12", p.Total)
		}
		if p.Element == 10 && p.Points != 6 {
			t.Errorf("captain Points = %d, want 6 (raw, before multiplier)", p.Points)
		}
	}
}

func TestBuildResult_BenchExcluded(t *testing.T) {
	// Multiplier 0 marks a bench player; bench points never count.
	picks := &fpl.EntryPicks{Picks: []fpl.Pick{
		{Element: 10, Position: 1, Multiplier: 1},
		{Element: 99, Position: 12, Multiplier: 0},
	}}
	live := map[int]LiveStats{
		10: {Minutes: 90, TotalPoints: 6},
		99: {Minutes: 90, TotalPoints: 8},
	}

	r := BuildResult(1, 1, picks, nil, live)

	if r.TotalPoints != 6 {
		t.Errorf("TotalPoints = %d, want 6 (bench excluded)", r.TotalPoints)
	}
	if len(r.Bench) != 1 {
		t.Fatalf("Bench len = %d, want 1", len(r.Bench))
	}
	if r.Bench[0].Points != 8 {
		t.Errorf("bench Points = %d, want 8 (recorded but not totalled)", r.Bench[0].Points)
	}
}

func TestBuildResult_MissingLiveStatsDefaultZero(t *testing.T) {
	picks := makePicks(struct{ elem, mult int }{10, 1})

	r := BuildResult(1, 1, picks, nil, map[int]LiveStats{})

	if r.TotalPoints != 0 {
		t.Errorf("TotalPoints = %d, want 0", r.TotalPoints)
	}
	if r.Starters[0].Name != "Unknown" {
		t.Errorf("Name = %q, want Unknown fallback", r.Starters[0].Name)
	}
}

func TestBuildResult_TripleCaptain(t *testing.T) {
	picks := &fpl.EntryPicks{Picks: []fpl.Pick{
		{Element: 10, Position: 1, Multiplier: 3, IsCaptain: true},
	}}
	live := map[int]LiveStats{10: {Minutes: 90, TotalPoints: 7}}

	r := BuildResult(1, 1, picks, nil, live)

	if r.TotalPoints != 21 {
		t.Errorf("TotalPoints = %d, want 21 (triple captain)", r.TotalPoints)
	}
}
