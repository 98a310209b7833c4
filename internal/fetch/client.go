// Package fetch is the classic FPL API client. Every payload is cached as
// JSON on disk through the store so repeated advisory passes within the TTL
// never hit the network.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aatrey56/fpl-advisor/internal/store"
)

type Client struct {
	HTTP      *http.Client
	Store     *store.JSONStore
	BaseURL   string
	UserAgent string
	Sleep     time.Duration
	UseCache  bool
}

func NewClient(st *store.JSONStore, baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://fantasy.premierleague.com/api"
	}
	if userAgent == "" {
		userAgent = "fpl-advisor/1.0"
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		Store:     st,
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Sleep:     250 * time.Millisecond,
		UseCache:  true,
	}
}

// FetchRaw downloads urlPath (like "/bootstrap-static/") and caches it at
// relPath. Returns raw bytes from a fresh cache entry or from the network.
func (c *Client) FetchRaw(ctx context.Context, urlPath string, relPath string) ([]byte, error) {
	if c.UseCache && c.Store.Fresh(relPath) {
		return c.Store.ReadRaw(relPath)
	}

	if c.Sleep > 0 {
		time.Sleep(c.Sleep)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, string(body))
	}

	if err := c.Store.WriteRaw(relPath, body, false); err != nil {
		return nil, err
	}
	return body, nil
}
