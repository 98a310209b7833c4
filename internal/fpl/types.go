// Package fpl holds the wire types for the classic Fantasy Premier League
// API and the read-only context snapshot the advisory layers consume.
package fpl

// StatusAvailable is the element status for a fully fit player.
const StatusAvailable = "a"

// Element is one player row from bootstrap-static.
type Element struct {
	ID                       int    `json:"id"`
	WebName                  string `json:"web_name"`
	FirstName                string `json:"first_name"`
	SecondName               string `json:"second_name"`
	Team                     int    `json:"team"`
	ElementType              int    `json:"element_type"`
	Status                   string `json:"status"`
	News                     string `json:"news"`
	NowCost                  int    `json:"now_cost"`
	TotalPoints              int    `json:"total_points"`
	Minutes                  int    `json:"minutes"`
	Form                     Stat   `json:"form"`
	ICTIndex                 Stat   `json:"ict_index"`
	SelectedByPercent        Stat   `json:"selected_by_percent"`
	ChanceOfPlayingNextRound *int   `json:"chance_of_playing_next_round"`
}

// Price is the player's cost in millions.
func (e Element) Price() float64 { return float64(e.NowCost) / 10.0 }

// Name prefers web_name and falls back to the full name.
func (e Element) Name() string {
	if e.WebName != "" {
		return e.WebName
	}
	return e.FirstName + " " + e.SecondName
}

// Team is one club row from bootstrap-static.
type Team struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	StrengthAttackHome  int    `json:"strength_attack_home"`
	StrengthAttackAway  int    `json:"strength_attack_away"`
	StrengthDefenceHome int    `json:"strength_defence_home"`
	StrengthDefenceAway int    `json:"strength_defence_away"`
}

// ElementType is a position row (GKP/DEF/MID/FWD).
type ElementType struct {
	ID                int    `json:"id"`
	SingularNameShort string `json:"singular_name_short"`
}

// Event is one gameweek row from bootstrap-static.
type Event struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
}

// Bootstrap is the bootstrap-static payload.
type Bootstrap struct {
	Events       []Event       `json:"events"`
	Teams        []Team        `json:"teams"`
	Elements     []Element     `json:"elements"`
	ElementTypes []ElementType `json:"element_types"`
}

// Fixture is one row from the fixtures endpoint. Event is nil for
// unscheduled fixtures.
type Fixture struct {
	ID              int  `json:"id"`
	Event           *int `json:"event"`
	TeamH           int  `json:"team_h"`
	TeamA           int  `json:"team_a"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
}

// MatchStat is one element-summary history entry: a player's line for a
// single finished match. Every tracked column is a Stat so malformed values
// degrade to 0 instead of erroring.
type MatchStat struct {
	Round       int  `json:"round"`
	Minutes     Stat `json:"minutes"`
	TotalPoints Stat `json:"total_points"`
	GoalsScored Stat `json:"goals_scored"`
	Assists     Stat `json:"assists"`
	CleanSheets Stat `json:"clean_sheets"`
	Bonus       Stat `json:"bonus"`
	Influence   Stat `json:"influence"`
	Creativity  Stat `json:"creativity"`
	Threat      Stat `json:"threat"`
	ICTIndex    Stat `json:"ict_index"`
}

// ElementSummary is the element-summary payload; only history is used.
type ElementSummary struct {
	History []MatchStat `json:"history"`
}

// Pick is one slot in a manager's squad for a gameweek.
type Pick struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"`
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}

// EntryPicks is the entry/{id}/event/{gw}/picks payload.
type EntryPicks struct {
	Picks []Pick `json:"picks"`
}

// Entry is the general entry payload (bank and transfer counts are in
// tenths of a million / raw counts at the last deadline).
type Entry struct {
	ID                         int    `json:"id"`
	PlayerFirstName            string `json:"player_first_name"`
	PlayerLastName             string `json:"player_last_name"`
	LastDeadlineBank           int    `json:"last_deadline_bank"`
	LastDeadlineTotalTransfers int    `json:"last_deadline_total_transfers"`
}

// StandingRow is one manager row in classic league standings.
type StandingRow struct {
	Rank       int    `json:"rank"`
	Entry      int    `json:"entry"`
	PlayerName string `json:"player_name"`
	EntryName  string `json:"entry_name"`
	Total      int    `json:"total"`
}

// LeagueStandings is the leagues-classic standings payload.
type LeagueStandings struct {
	League struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Standings struct {
		Results []StandingRow `json:"results"`
	} `json:"standings"`
}

// LiveElement is one player's live line for a gameweek.
type LiveElement struct {
	ID    int `json:"id"`
	Stats struct {
		Minutes     int `json:"minutes"`
		TotalPoints int `json:"total_points"`
	} `json:"stats"`
}

// EventLive is the event/{gw}/live payload.
type EventLive struct {
	Elements []LiveElement `json:"elements"`
}
