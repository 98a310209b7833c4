package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aatrey56/fpl-advisor/internal/ai"
	"github.com/aatrey56/fpl-advisor/internal/fpl"
)

func fetchInto[T any](ctx context.Context, c *Client, urlPath, relPath string) (*T, error) {
	raw, err := c.FetchRaw(ctx, urlPath, relPath)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", urlPath, err)
	}
	return &out, nil
}

func (c *Client) Bootstrap(ctx context.Context) (*fpl.Bootstrap, error) {
	return fetchInto[fpl.Bootstrap](ctx, c, "/bootstrap-static/", "bootstrap.json")
}

func (c *Client) Fixtures(ctx context.Context) ([]fpl.Fixture, error) {
	raw, err := c.FetchRaw(ctx, "/fixtures/", "fixtures.json")
	if err != nil {
		return nil, err
	}
	var fixtures []fpl.Fixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("decode /fixtures/: %w", err)
	}
	return fixtures, nil
}

func (c *Client) Entry(ctx context.Context, entryID int) (*fpl.Entry, error) {
	urlPath := fmt.Sprintf("/entry/%d/", entryID)
	relPath := fmt.Sprintf("entry/%d.json", entryID)
	return fetchInto[fpl.Entry](ctx, c, urlPath, relPath)
}

func (c *Client) EntryPicks(ctx context.Context, entryID, gameweek int) (*fpl.EntryPicks, error) {
	urlPath := fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, gameweek)
	relPath := fmt.Sprintf("entry/%d_gw%d_picks.json", entryID, gameweek)
	return fetchInto[fpl.EntryPicks](ctx, c, urlPath, relPath)
}

func (c *Client) LeagueStandings(ctx context.Context, leagueID int) (*fpl.LeagueStandings, error) {
	urlPath := fmt.Sprintf("/leagues-classic/%d/standings/", leagueID)
	relPath := fmt.Sprintf("league/%d_standings.json", leagueID)
	return fetchInto[fpl.LeagueStandings](ctx, c, urlPath, relPath)
}

func (c *Client) EventLive(ctx context.Context, gameweek int) (*fpl.EventLive, error) {
	urlPath := fmt.Sprintf("/event/%d/live/", gameweek)
	relPath := fmt.Sprintf("live/gw%d.json", gameweek)
	return fetchInto[fpl.EventLive](ctx, c, urlPath, relPath)
}

func (c *Client) ElementSummary(ctx context.Context, playerID int) (*fpl.ElementSummary, error) {
	urlPath := fmt.Sprintf("/element-summary/%d/", playerID)
	relPath := fmt.Sprintf("element/%d.json", playerID)
	return fetchInto[fpl.ElementSummary](ctx, c, urlPath, relPath)
}

// Histories fans out element-summary requests for the shortlist with at most
// workers concurrent fetches. Players whose summary cannot be fetched are
// dropped rather than failing the whole batch.
func (c *Client) Histories(ctx context.Context, players []fpl.Element, workers int) ([]ai.PlayerHistory, error) {
	if workers <= 0 {
		workers = 4
	}

	var mu sync.Mutex
	histories := make([]ai.PlayerHistory, 0, len(players))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range players {
		player := p
		g.Go(func() error {
			summary, err := c.ElementSummary(gctx, player.ID)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				return nil
			}
			mu.Lock()
			histories = append(histories, ai.PlayerHistory{Player: player, Matches: summary.History})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return histories, nil
}
