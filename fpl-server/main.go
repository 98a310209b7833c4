package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/aatrey56/fpl-advisor/internal/config"
)

type AskArgs struct {
	Query    string `json:"query" jsonschema:"Question in plain English (required)"`
	EntryID  int    `json:"entry_id" jsonschema:"FPL entry id for squad questions (optional)"`
	LeagueID int    `json:"league_id" jsonschema:"Classic league id for league questions (optional)"`
}

type EntryArgs struct {
	EntryID int `json:"entry_id" jsonschema:"FPL entry id (required)"`
}

type LeagueArgs struct {
	LeagueID int `json:"league_id" jsonschema:"Classic league id (required)"`
}

type TrainArgs struct {
	Force bool `json:"force" jsonschema:"Retrain even if a saved model exists"`
}

type DifferentialsArgs struct {
	SortBy string `json:"sort_by" jsonschema:"Sort key: form|total_points|ict_index (default form)"`
}

type EmptyArgs struct{}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", ":8080", "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		cacheRoot   = flag.String("cache-root", "", "override FPL_CACHE_DIR")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via FPL_MCP_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if *cacheRoot != "" {
		cfg.CacheDir = *cacheRoot
	}

	app, err := newApp(cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fpl-advisor-mcp",
			Version: "0.3.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 16)

	addTool(server, &registry, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a fantasy question: classifies intent, retrieves relevant context, cites sources",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args AskArgs) (*mcp.CallToolResult, any, error) {
		if strings.TrimSpace(args.Query) == "" {
			return toolError(fmt.Errorf("query is required")), nil, nil
		}
		out, err := app.answerQuery(ctx, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "train_model",
		Description: "Train (or retrain) the points regressor over recent player history",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TrainArgs) (*mcp.CallToolResult, any, error) {
		out, err := app.trainModel(ctx, args.Force)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "ai_predictions",
		Description: "Model-predicted top performers for the next gameweek",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		out, err := app.aiPredictions(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "captaincy",
		Description: "Rank a squad's captaincy options for the next gameweek",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EntryArgs) (*mcp.CallToolResult, any, error) {
		if args.EntryID == 0 {
			return toolError(fmt.Errorf("entry_id is required")), nil, nil
		}
		out, err := app.captaincy(ctx, args.EntryID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "transfer_suggestion",
		Description: "Suggest selling the squad's weakest link for the best affordable upgrade",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EntryArgs) (*mcp.CallToolResult, any, error) {
		if args.EntryID == 0 {
			return toolError(fmt.Errorf("entry_id is required")), nil, nil
		}
		out, err := app.transferSuggestion(ctx, args.EntryID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "chip_advice",
		Description: "Play/consider/hold verdicts for triple captain, bench boost, wildcard and free hit",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EntryArgs) (*mcp.CallToolResult, any, error) {
		if args.EntryID == 0 {
			return toolError(fmt.Errorf("entry_id is required")), nil, nil
		}
		out, err := app.chipAdvice(ctx, args.EntryID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "team_summary",
		Description: "Current squad with prices, fixtures, captaincy and live gameweek points",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EntryArgs) (*mcp.CallToolResult, any, error) {
		if args.EntryID == 0 {
			return toolError(fmt.Errorf("entry_id is required")), nil, nil
		}
		out, err := app.teamSummary(ctx, args.EntryID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_projection",
		Description: "Predicted next-gameweek scores for every manager in a classic league",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		if args.LeagueID == 0 {
			return toolError(fmt.Errorf("league_id is required")), nil, nil
		}
		out, err := app.leagueProjection(ctx, args.LeagueID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_standings",
		Description: "Current classic league table",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LeagueArgs) (*mcp.CallToolResult, any, error) {
		if args.LeagueID == 0 {
			return toolError(fmt.Errorf("league_id is required")), nil, nil
		}
		out, err := app.leagueStandings(ctx, args.LeagueID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "differentials",
		Description: "In-form players under the ownership threshold",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DifferentialsArgs) (*mcp.CallToolResult, any, error) {
		out, err := app.differentials(ctx, args.SortBy)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "injury_risks",
		Description: "Players carrying injury flags or risky news, scored and ranked",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		out, err := app.injuryRisks(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "dream_team",
		Description: "Build the best predicted 15-man squad within budget and club limits",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		out, err := app.dreamTeam(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "quadrant_analysis",
		Description: "Split players into form/fixture quadrants against the population average",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args EmptyArgs) (*mcp.CallToolResult, any, error) {
		out, err := app.quadrantAnalysis(ctx)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolAny(out)
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("FPL_MCP_API_KEY"))
	if *requireAuth && apiKey == "" {
		logger.Fatal("FPL_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	logger.Info("MCP HTTP server listening",
		zap.String("addr", *addr),
		zap.String("path", *mcpPath),
		zap.Int("tools", len(registry)))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

func toolAny(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
