package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/eqdomains/eqdomains/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the eqdomains MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the eqdomains MCP server (stdio)",
		Long: "Start the eqdomains MCP server using stdio transport. This lets AI\n" +
			"coding assistants preview the generated document, resolve upstream\n" +
			"revisions, and check files for drift.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(baseURL)
			if err != nil {
				return err
			}
			s := mcpadapter.NewEqdomainsMCPServer(cfg)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override the raw-content base URL (mirrors, forks)")

	return cmd
}
