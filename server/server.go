// Package server exposes the myshows client as MCP tools over stdio.
//
// Every tool handler goes through one adapter that converts client errors
// into a {"error": "..."} result payload, so a failing call never surfaces
// as a protocol-level fault to the MCP host.
package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/s0up4200/myshows-mcp/myshows"
)

const serverName = "myshows-mcp"

// Server wraps an MCP server with the myshows tool catalog.
type Server struct {
	api    myshows.API
	logger zerolog.Logger
	mcp    *mcp.Server
}

// New creates an MCP server exposing the myshows tool catalog. The client
// is injected so tests can substitute a fake API.
func New(api myshows.API, version string, logger zerolog.Logger) *Server {
	s := &Server{
		api:    api,
		logger: logger,
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	s.registerTools()
	return s
}

// Run serves MCP over stdio until the context is cancelled or the host
// closes the stream. Log output goes to stderr; stdout is the MCP wire.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Msg("Starting MCP server on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to an arbitrary transport. Used in tests.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcp.Connect(ctx, t, nil)
}

// result is the single error adapter for all tools: a failed call becomes
// a {"error": "..."} payload with the error flag set, a successful call
// returns the raw JSON from the service.
func (s *Server) result(tool string, raw json.RawMessage, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("tool", tool).
			Msg("Tool call failed")

		payload, _ := json.Marshal(map[string]string{"error": err.Error()})
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		}, nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}
