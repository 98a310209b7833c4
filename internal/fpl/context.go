package fpl

// Context is the read-only snapshot of league state every advisory pass works
// from. It is assembled once per request from cached API payloads and never
// mutated afterwards.
type Context struct {
	Bootstrap       *Bootstrap
	Fixtures        []Fixture
	CurrentGameweek int

	TeamMap     map[int]string // team id -> short name
	PositionMap map[int]string // element type id -> GKP/DEF/MID/FWD
	PlayerMap   map[int]string // element id -> web name
	Players     map[int]Element
}

// NewContext derives the lookup maps and current gameweek from raw payloads.
func NewContext(bootstrap *Bootstrap, fixtures []Fixture) *Context {
	ctx := &Context{
		Bootstrap:   bootstrap,
		Fixtures:    fixtures,
		TeamMap:     make(map[int]string, len(bootstrap.Teams)),
		PositionMap: make(map[int]string, len(bootstrap.ElementTypes)),
		PlayerMap:   make(map[int]string, len(bootstrap.Elements)),
		Players:     make(map[int]Element, len(bootstrap.Elements)),
	}
	for _, t := range bootstrap.Teams {
		ctx.TeamMap[t.ID] = t.ShortName
	}
	for _, p := range bootstrap.ElementTypes {
		ctx.PositionMap[p.ID] = p.SingularNameShort
	}
	for _, e := range bootstrap.Elements {
		ctx.PlayerMap[e.ID] = e.WebName
		ctx.Players[e.ID] = e
	}
	for _, gw := range bootstrap.Events {
		if gw.IsCurrent {
			ctx.CurrentGameweek = gw.ID
			break
		}
	}
	return ctx
}

// TeamName resolves a team id, falling back to "Unknown".
func (c *Context) TeamName(id int) string {
	if name, ok := c.TeamMap[id]; ok {
		return name
	}
	return "Unknown"
}

// PositionName resolves an element type id, falling back to "UNK".
func (c *Context) PositionName(id int) string {
	if name, ok := c.PositionMap[id]; ok {
		return name
	}
	return "UNK"
}

// ActivePlayers returns players who are available and have played minutes
// this season — the eligibility rule shared by the corpus builder and the
// model shortlist.
func (c *Context) ActivePlayers() []Element {
	out := make([]Element, 0, len(c.Bootstrap.Elements))
	for _, e := range c.Bootstrap.Elements {
		if e.Status == StatusAvailable && e.Minutes > 0 {
			out = append(out, e)
		}
	}
	return out
}

// NextFixture finds a team's next scheduled fixture at or after gw. The
// second return is false when the team has no upcoming fixture.
func (c *Context) NextFixture(teamID int, gw int) (opponentID int, home bool, ok bool) {
	best := -1
	for _, f := range c.Fixtures {
		if f.Event == nil || *f.Event < gw {
			continue
		}
		if f.TeamH != teamID && f.TeamA != teamID {
			continue
		}
		if best == -1 || *f.Event < best {
			best = *f.Event
			if f.TeamH == teamID {
				opponentID, home = f.TeamA, true
			} else {
				opponentID, home = f.TeamH, false
			}
			ok = true
		}
	}
	return opponentID, home, ok
}
