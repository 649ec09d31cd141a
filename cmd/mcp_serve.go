package cmd

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes mood journal
tools over stdio transport. This allows MCP clients like Claude Desktop to
log and review your moods.

Available tools:
  - log_mood: Record today's mood (replaces today's entry if present)
  - list_entries: List entries, optionally within a date range
  - week_summary: This week's layout with average, best and worst weekday

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "moodctl": {
        "command": "/path/to/moodctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	policy, err := appConfig.WeekPolicy()
	if err != nil {
		return err
	}
	reduction, err := appConfig.Reduction()
	if err != nil {
		return err
	}

	server := mcptools.CreateMCPServer(store, mcptools.Options{
		DataDir:   appConfig.DataDir,
		Window:    policy,
		Reduction: reduction,
		Now:       nowFunc,
	})

	// The logger writes to stderr; stdout is reserved for the MCP protocol.
	logger.Info("starting MCP server (stdio transport)",
		zap.String("backend", appConfig.Storage),
		zap.String("data_dir", appConfig.DataDir))

	// Blocks until the transport is closed
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
