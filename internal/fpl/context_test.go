package fpl

import "testing"

func intp(n int) *int { return &n }

func testBootstrap() *Bootstrap {
	return &Bootstrap{
		Events: []Event{{ID: 1}, {ID: 2, IsCurrent: true}, {ID: 3}},
		Teams: []Team{
			{ID: 1, Name: "Arsenal", ShortName: "ARS"},
			{ID: 2, Name: "Chelsea", ShortName: "CHE"},
		},
		ElementTypes: []ElementType{{ID: 1, SingularNameShort: "GKP"}},
		Elements: []Element{
			{ID: 10, WebName: "Raya", Team: 1, ElementType: 1, Status: "a", Minutes: 900},
			{ID: 11, WebName: "Backup", Team: 1, ElementType: 1, Status: "a", Minutes: 0},
			{ID: 12, WebName: "Crocked", Team: 2, ElementType: 1, Status: "i", Minutes: 500},
		},
	}
}

func TestNewContext_Lookups(t *testing.T) {
	ctx := NewContext(testBootstrap(), nil)

	if ctx.CurrentGameweek != 2 {
		t.Errorf("CurrentGameweek = %d, want 2", ctx.CurrentGameweek)
	}
	if got := ctx.TeamName(1); got != "ARS" {
		t.Errorf("TeamName(1) = %q, want ARS", got)
	}
	if got := ctx.TeamName(99); got != "Unknown" {
		t.Errorf("TeamName(99) = %q, want Unknown", got)
	}
	if got := ctx.PositionName(1); got != "GKP" {
		t.Errorf("PositionName(1) = %q, want GKP", got)
	}
	if got := ctx.PositionName(9); got != "UNK" {
		t.Errorf("PositionName(9) = %q, want UNK", got)
	}
	if ctx.PlayerMap[10] != "Raya" {
		t.Errorf("PlayerMap[10] = %q, want Raya", ctx.PlayerMap[10])
	}
}

func TestActivePlayers(t *testing.T) {
	ctx := NewContext(testBootstrap(), nil)

	got := ctx.ActivePlayers()

	// Zero minutes and non-available statuses are both excluded.
	if len(got) != 1 || got[0].ID != 10 {
		t.Errorf("ActivePlayers = %+v, want only Raya", got)
	}
}

func TestNextFixture(t *testing.T) {
	fixtures := []Fixture{
		{Event: intp(1), TeamH: 1, TeamA: 2}, // past
		{Event: intp(4), TeamH: 2, TeamA: 1}, // later
		{Event: intp(3), TeamH: 1, TeamA: 2}, // earliest upcoming
		{Event: nil, TeamH: 1, TeamA: 2},     // unscheduled
	}
	ctx := NewContext(testBootstrap(), fixtures)

	opponent, home, ok := ctx.NextFixture(1, ctx.CurrentGameweek)
	if !ok {
		t.Fatal("expected an upcoming fixture")
	}
	if opponent != 2 || !home {
		t.Errorf("NextFixture = (%d, home=%v), want (2, home=true)", opponent, home)
	}

	// The away side of the same fixture.
	opponent, home, ok = ctx.NextFixture(2, ctx.CurrentGameweek)
	if !ok || opponent != 1 || home {
		t.Errorf("NextFixture(away) = (%d, %v, %v), want (1, false, true)", opponent, home, ok)
	}

	if _, _, ok := ctx.NextFixture(99, ctx.CurrentGameweek); ok {
		t.Error("unknown team should have no fixture")
	}
}
