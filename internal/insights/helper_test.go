package insights

import "github.com/aatrey56/fpl-advisor/internal/fpl"

func gw(id int) *int { return &id }

// testContext is a two-club league in gameweek 3. Arsenal host Chelsea in
// GW 3 and GW 4; Arsenal's fixtures are easy (FDR 2), Chelsea's hard (4).
func testContext() *fpl.Context {
	bootstrap := &fpl.Bootstrap{
		Events: []fpl.Event{{ID: 2}, {ID: 3, IsCurrent: true}, {ID: 4}},
		Teams: []fpl.Team{
			{ID: 1, Name: "Arsenal", ShortName: "ARS", StrengthAttackHome: 1350, StrengthAttackAway: 1300, StrengthDefenceHome: 1320, StrengthDefenceAway: 1280},
			{ID: 2, Name: "Chelsea", ShortName: "CHE", StrengthAttackHome: 1200, StrengthAttackAway: 1150, StrengthDefenceHome: 1180, StrengthDefenceAway: 1140},
		},
		ElementTypes: []fpl.ElementType{
			{ID: 1, SingularNameShort: "GKP"},
			{ID: 2, SingularNameShort: "DEF"},
			{ID: 3, SingularNameShort: "MID"},
			{ID: 4, SingularNameShort: "FWD"},
		},
		Elements: []fpl.Element{
			{ID: 101, WebName: "Saka", Team: 1, ElementType: 3, Status: "a", Minutes: 900, Form: 7.5, ICTIndex: 110, NowCost: 95, TotalPoints: 60, SelectedByPercent: 45},
			{ID: 102, WebName: "Palmer", Team: 2, ElementType: 3, Status: "a", Minutes: 850, Form: 6.0, ICTIndex: 100, NowCost: 105, TotalPoints: 55, SelectedByPercent: 30},
			{ID: 103, WebName: "Cheapo", Team: 2, ElementType: 3, Status: "a", Minutes: 400, Form: 2.0, ICTIndex: 20, NowCost: 45, TotalPoints: 12, SelectedByPercent: 2.5},
			{ID: 104, WebName: "Gem", Team: 1, ElementType: 4, Status: "a", Minutes: 500, Form: 4.5, ICTIndex: 60, NowCost: 60, TotalPoints: 30, SelectedByPercent: 1.2},
		},
	}
	fixtures := []fpl.Fixture{
		{Event: gw(2), TeamH: 2, TeamA: 1, TeamHDifficulty: 4, TeamADifficulty: 2},
		{Event: gw(3), TeamH: 1, TeamA: 2, TeamHDifficulty: 2, TeamADifficulty: 4},
		{Event: gw(4), TeamH: 1, TeamA: 2, TeamHDifficulty: 2, TeamADifficulty: 4},
	}
	return fpl.NewContext(bootstrap, fixtures)
}

func squadPicks(p ...fpl.Pick) *fpl.EntryPicks {
	return &fpl.EntryPicks{Picks: p}
}
