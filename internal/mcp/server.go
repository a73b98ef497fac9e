// Package mcp exposes password generation as MCP tools over stdio, so agent
// frontends can request secrets without shelling out.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/avezina/passmith/internal/policy"
	"github.com/avezina/passmith/internal/profile"
)

// Config holds MCP server configuration.
type Config struct {
	// ConfigPath points at the defaults file; empty uses
	// ~/.passmith/config.yaml.
	ConfigPath string
	// ProfileName applies a named profile over the defaults.
	ProfileName string
}

// Server wraps the MCP SDK server around the generation engine. The seeded
// deterministic path is deliberately not exposed here: every tool call draws
// from the secure source.
type Server struct {
	mcpServer *mcpsdk.Server
	base      policy.Request
}

// New creates an MCP server with loaded defaults and tools.
func New(cfg Config) (*Server, error) {
	base, err := policy.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfg.ProfileName != "" {
		prof, err := profile.Load(cfg.ProfileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile %q: %w", cfg.ProfileName, err)
		}
		base = prof.Policy
	}

	s := &Server{base: base}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "passmith",
			Version: "0.3.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// registerTools adds all passmith tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "passmith_generate",
		Description: "Generate one or more passwords satisfying a composition policy. Unsatisfiable policies return an error with the reason.",
	}, s.handleGenerate)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "passmith_passphrase",
		Description: "Generate a word-based passphrase from the built-in word list.",
	}, s.handlePassphrase)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "passmith_estimate",
		Description: "Estimate the entropy of a policy without generating anything (dry-run).",
	}, s.handleEstimate)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "passmith_profiles",
		Description: "List available generation profiles (built-in and user).",
	}, s.handleProfiles)
}
