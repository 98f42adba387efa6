package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/eqdomains/eqdomains/internal/adapters/outbound/fetcher"
	"github.com/eqdomains/eqdomains/internal/adapters/outbound/gitrev"
	"github.com/eqdomains/eqdomains/internal/application"
	"github.com/eqdomains/eqdomains/internal/domain"
)

// registerTools registers all eqdomains MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.Config) {
	// 1. eqdomains_preview
	s.AddTool(
		mcplib.NewTool("eqdomains_preview",
			mcplib.WithDescription("Build the global equivalent domains document from upstream and return it as JSON, without writing any file"),
			mcplib.WithString("revision",
				mcplib.Description("Branch, tag, or commit to fetch (defaults to the configured ref)"),
			),
		),
		handlePreview(cfg),
	)

	// 2. eqdomains_resolve_ref
	s.AddTool(
		mcplib.NewTool("eqdomains_resolve_ref",
			mcplib.WithDescription("Resolve a branch or tag name to the commit hash it points at on the upstream remote"),
			mcplib.WithString("revision",
				mcplib.Required(),
				mcplib.Description("Branch or tag name to resolve"),
			),
		),
		handleResolveRef(cfg),
	)

	// 3. eqdomains_verify
	s.AddTool(
		mcplib.NewTool("eqdomains_verify",
			mcplib.WithDescription("Compare an existing global domains JSON file with a fresh upstream build and report drift"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the JSON file to check"),
			),
			mcplib.WithString("revision",
				mcplib.Description("Branch, tag, or commit to compare against"),
			),
		),
		handleVerify(cfg),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices(cfg domain.Config) (*application.GenerateService, *application.VerifyService) {
	gen := application.NewGenerateService(fetcher.New(cfg.BaseURL, cfg.Timeout()), gitrev.New(), cfg)
	return gen, application.NewVerifyService(gen)
}

func handlePreview(cfg domain.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		ref, _ := request.GetArguments()["revision"].(string)

		gen, _ := newServices(cfg)
		res, err := gen.Build(ctx, ref, false)
		if err != nil {
			return errorResult(fmt.Sprintf("build failed: %v", err)), nil
		}
		return jsonResult(res.Records)
	}
}

func handleResolveRef(cfg domain.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		ref, err := request.RequireString("revision")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		sha, err := gitrev.New().Resolve(ctx, cfg.RemoteURL, ref)
		if err != nil {
			return errorResult(fmt.Sprintf("resolve failed: %v", err)), nil
		}

		return jsonResult(map[string]string{"revision": ref, "commit_sha": sha})
	}
}

func handleVerify(cfg domain.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		ref, _ := request.GetArguments()["revision"].(string)

		_, verify := newServices(cfg)
		report, err := verify.Verify(ctx, file, ref, false)
		if err != nil {
			return errorResult(fmt.Sprintf("verify failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
