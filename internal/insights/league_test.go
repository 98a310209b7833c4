package insights

import (
	"errors"
	"testing"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

func standingsOf(rows ...fpl.StandingRow) *fpl.LeagueStandings {
	s := &fpl.LeagueStandings{}
	s.League.ID = 77
	s.League.Name = "Work League"
	s.Standings.Results = rows
	return s
}

func TestProjectLeague_CaptainCountedTwice(t *testing.T) {
	ctx := testContext()
	standings := standingsOf(
		fpl.StandingRow{Rank: 1, Entry: 1001, PlayerName: "Alex"},
		fpl.StandingRow{Rank: 2, Entry: 1002, PlayerName: "Sam"},
	)
	predictions := map[int]float64{101: 6.0, 102: 4.0}

	picksFor := func(entryID, gw int) (*fpl.EntryPicks, error) {
		switch entryID {
		case 1001: // Saka captained
			return squadPicks(
				fpl.Pick{Element: 101, Multiplier: 2, IsCaptain: true},
				fpl.Pick{Element: 102, Multiplier: 1},
			), nil
		default: // no captain bonus
			return squadPicks(
				fpl.Pick{Element: 101, Multiplier: 1},
				fpl.Pick{Element: 102, Multiplier: 1},
			), nil
		}
	}

	got := ProjectLeague(ctx, standings, predictions, picksFor)

	if len(got) != 2 {
		t.Fatalf("projections len = %d, want 2", len(got))
	}
	if got[0].Manager != "Alex" || got[0].Predicted != 16.0 {
		t.Errorf("got[0] = %+v, want Alex at 16.0 (captain doubled)", got[0])
	}
	if got[1].Predicted != 10.0 {
		t.Errorf("got[1].Predicted = %v, want 10.0", got[1].Predicted)
	}
	if got[0].Rank != 1 || got[1].Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", got[0].Rank, got[1].Rank)
	}
}

func TestProjectLeague_BenchExcluded(t *testing.T) {
	ctx := testContext()
	standings := standingsOf(fpl.StandingRow{Rank: 1, Entry: 1001, PlayerName: "Alex"})
	predictions := map[int]float64{101: 6.0, 102: 9.0}

	picksFor := func(entryID, gw int) (*fpl.EntryPicks, error) {
		return squadPicks(
			fpl.Pick{Element: 101, Multiplier: 1},
			fpl.Pick{Element: 102, Multiplier: 0}, // benched
		), nil
	}

	got := ProjectLeague(ctx, standings, predictions, picksFor)

	if got[0].Predicted != 6.0 {
		t.Errorf("Predicted = %v, want 6.0 (bench excluded)", got[0].Predicted)
	}
}

func TestProjectLeague_FailedFetchSkipped(t *testing.T) {
	ctx := testContext()
	standings := standingsOf(
		fpl.StandingRow{Rank: 1, Entry: 1001, PlayerName: "Alex"},
		fpl.StandingRow{Rank: 2, Entry: 1002, PlayerName: "Sam"},
	)

	picksFor := func(entryID, gw int) (*fpl.EntryPicks, error) {
		if entryID == 1001 {
			return nil, errors.New("picks unavailable")
		}
		return squadPicks(fpl.Pick{Element: 101, Multiplier: 1}), nil
	}

	got := ProjectLeague(ctx, standings, map[int]float64{101: 5}, picksFor)

	if len(got) != 1 {
		t.Fatalf("projections len = %d, want 1", len(got))
	}
	if got[0].Manager != "Sam" {
		t.Errorf("Manager = %q, want Sam", got[0].Manager)
	}
}

func TestProjectLeague_ManagerCap(t *testing.T) {
	ctx := testContext()
	rows := make([]fpl.StandingRow, 0, 20)
	for i := 1; i <= 20; i++ {
		rows = append(rows, fpl.StandingRow{Rank: i, Entry: 1000 + i, PlayerName: "M"})
	}

	calls := 0
	picksFor := func(entryID, gw int) (*fpl.EntryPicks, error) {
		calls++
		return squadPicks(fpl.Pick{Element: 101, Multiplier: 1}), nil
	}

	ProjectLeague(ctx, standingsOf(rows...), nil, picksFor)

	if calls != maxProjectedManagers {
		t.Errorf("picks fetched %d times, want %d", calls, maxProjectedManagers)
	}
}
