package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aatrey56/fpl-advisor/internal/fpl"
	"github.com/aatrey56/fpl-advisor/internal/store"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	st := store.NewJSONStore(t.TempDir(), time.Hour)
	c := NewClient(st, srv.URL, "test-agent", 5*time.Second)
	c.Sleep = 0
	return c, srv
}

func TestFetchRaw_CachesOnDisk(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"ok":true}`))
	}))

	for i := 0; i < 3; i++ {
		body, err := c.FetchRaw(context.Background(), "/bootstrap-static/", "bootstrap.json")
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("body = %s", body)
		}
	}

	if hits != 1 {
		t.Errorf("origin hit %d times, want 1 (later reads from cache)", hits)
	}
}

func TestFetchRaw_CacheDisabled(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{}`))
	}))
	c.UseCache = false

	for i := 0; i < 2; i++ {
		if _, err := c.FetchRaw(context.Background(), "/fixtures/", "fixtures.json"); err != nil {
			t.Fatal(err)
		}
	}
	if hits != 2 {
		t.Errorf("origin hit %d times, want 2 with cache disabled", hits)
	}
}

func TestFetchRaw_Non2xx(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))

	if _, err := c.FetchRaw(context.Background(), "/bootstrap-static/", "bootstrap.json"); err == nil {
		t.Fatal("non-2xx should error")
	}
}

func TestFetchRaw_SendsHeaders(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q, want test-agent", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		w.Write([]byte(`{}`))
	}))

	if _, err := c.FetchRaw(context.Background(), "/entry/1/", "entry/1.json"); err != nil {
		t.Fatal(err)
	}
}

func TestBootstrap_Decodes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events":[{"id":3,"is_current":true}],"teams":[{"id":1,"short_name":"ARS"}],"elements":[{"id":10,"web_name":"Raya","form":"4.2"}],"element_types":[{"id":1,"singular_name_short":"GKP"}]}`))
	}))

	got, err := c.Bootstrap(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Elements) != 1 || got.Elements[0].Form.Float() != 4.2 {
		t.Errorf("Bootstrap elements = %+v", got.Elements)
	}
	if got.Events[0].ID != 3 {
		t.Errorf("Events = %+v", got.Events)
	}
}

func TestHistories_DropsFailedFetches(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/element-summary/2/" {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"history":[{"round":1,"minutes":90,"total_points":6}]}`))
	}))

	players := []fpl.Element{{ID: 1}, {ID: 2}, {ID: 3}}
	histories, err := c.Histories(context.Background(), players, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(histories) != 2 {
		t.Fatalf("histories len = %d, want 2 (404 dropped)", len(histories))
	}
	for _, h := range histories {
		if h.Player.ID == 2 {
			t.Error("failed player should have been dropped")
		}
		if len(h.Matches) != 1 || h.Matches[0].TotalPoints.Float() != 6 {
			t.Errorf("matches = %+v", h.Matches)
		}
	}
}
