package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/week"
)

// Options configures the mood tools.
type Options struct {
	// DataDir is used for prompt cache invalidation after writes; "" skips it.
	DataDir string

	// Window and Reduction are the defaults for week_summary.
	Window    week.Policy
	Reduction stats.Reduction

	// Now returns the reference time; defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// NewMoodMCPServer creates an in-memory MCP server exposing mood tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(store *storage.EntryStore, opts Options) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, opts)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered mood tools.
func CreateMCPServer(store *storage.EntryStore, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodctl",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_mood",
		Description: "Record today's mood and journal text. Logging again on the same day replaces today's entry.",
	}, LogMoodHandler(store, opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_entries",
		Description: "List mood entries, newest first, optionally within a date range",
	}, ListEntriesHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "week_summary",
		Description: "Day-by-day mood layout of the current week with average, best and worst weekday",
	}, WeekSummaryHandler(store, opts))

	return server
}
