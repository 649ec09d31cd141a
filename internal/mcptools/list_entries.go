package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// ListEntriesHandler returns the handler function for the list_entries MCP tool.
func ListEntriesHandler(store *storage.EntryStore) func(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListEntriesInput) (*mcp.CallToolResult, ListEntriesOutput, error) {
		var start, end *time.Time
		if input.StartDate != "" {
			t, err := parseDate(input.StartDate)
			if err != nil {
				return nil, ListEntriesOutput{}, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", input.StartDate)
			}
			start = &t
		}
		if input.EndDate != "" {
			t, err := parseDate(input.EndDate)
			if err != nil {
				return nil, ListEntriesOutput{}, fmt.Errorf("invalid end_date %q, expected YYYY-MM-DD", input.EndDate)
			}
			end = &t
		}

		entries, err := store.LoadAll(ctx)
		if err != nil {
			return nil, ListEntriesOutput{}, err
		}

		results := []EntryResult{}
		for _, e := range entries {
			d := day.NormalizeDate(e.Date)
			if start != nil && d.Before(*start) {
				continue
			}
			if end != nil && d.After(*end) {
				continue
			}
			results = append(results, toResult(e))
			if input.Limit > 0 && len(results) >= input.Limit {
				break
			}
		}

		return nil, ListEntriesOutput{Entries: results}, nil
	}
}
