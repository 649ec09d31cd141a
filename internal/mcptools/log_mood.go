package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodctl/internal/daily"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/shell"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// LogMoodHandler returns the handler function for the log_mood MCP tool.
func LogMoodHandler(store *storage.EntryStore, opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input LogMoodInput) (*mcp.CallToolResult, LogMoodOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LogMoodInput) (*mcp.CallToolResult, LogMoodOutput, error) {
		token, err := mood.Parse(input.Mood)
		if err != nil {
			return nil, LogMoodOutput{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
		}

		e, created, err := daily.Save(ctx, store, token, input.Content, opts.now())
		if err != nil {
			return nil, LogMoodOutput{}, err
		}

		// Invalidate shell prompt cache (best-effort)
		if opts.DataDir != "" {
			_ = shell.InvalidateCache(opts.DataDir)
		}

		return nil, LogMoodOutput{
			ID:      e.ID,
			Date:    e.Date.Local().Format("2006-01-02"),
			Mood:    e.Mood,
			Created: created,
			Preview: e.Preview(200),
		}, nil
	}
}
