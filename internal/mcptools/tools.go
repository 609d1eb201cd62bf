// Package mcptools exposes the game pipeline as Model Context Protocol tools.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/albapepper/impostor-data/internal/api/handler"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// RandomFootballerArgs is the input schema for the random_footballer tool.
type RandomFootballerArgs struct{}

// CensusArgs is the input schema for the top5_census tool.
type CensusArgs struct{}

// ResolveClubArgs is the input schema for the resolve_club tool.
type ResolveClubArgs struct {
	Name string `json:"name" jsonschema:"Club name, e.g. Real Madrid (required)"`
}

// NewServer registers one tool per game operation.
func NewServer(g handler.Game) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "impostor-football",
			Version: Version,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "random_footballer",
		Description: "Random player from a famous club, with club and season",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RandomFootballerArgs) (*mcp.CallToolResult, any, error) {
		return randomFootballer(ctx, g)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "top5_census",
		Description: "Teams of the five major leagues and a top-5 membership check for one random club",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args CensusArgs) (*mcp.CallToolResult, any, error) {
		return census(ctx, g)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_club",
		Description: "Resolve a club name to its API-Football team id",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ResolveClubArgs) (*mcp.CallToolResult, any, error) {
		return resolveClub(ctx, g, args)
	})

	return server
}

// NewHandler serves the tools over streamable HTTP with plain JSON responses.
func NewHandler(g handler.Game) http.Handler {
	server := NewServer(g)
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func randomFootballer(ctx context.Context, g handler.Game) (*mcp.CallToolResult, any, error) {
	pick, err := g.RandomPlayer(ctx)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(handler.NewFootballerResponse(pick))
}

func census(ctx context.Context, g handler.Game) (*mcp.CallToolResult, any, error) {
	c, err := g.Census(ctx)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(c)
}

func resolveClub(ctx context.Context, g handler.Game, args ResolveClubArgs) (*mcp.CallToolResult, any, error) {
	name := strings.TrimSpace(args.Name)
	if name == "" {
		return toolError(fmt.Errorf("name is required")), nil, nil
	}
	res, err := g.ResolveClub(ctx, name)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(res)
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
