// Package mcp exposes the eqdomains pipeline over the Model Context
// Protocol so AI coding assistants can preview, resolve, and verify.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/eqdomains/eqdomains/internal/domain"
)

// NewEqdomainsMCPServer creates an MCP server with the eqdomains tools
// registered. cfg carries the upstream locations to use.
func NewEqdomainsMCPServer(cfg domain.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"eqdomains",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, cfg)

	return s
}
