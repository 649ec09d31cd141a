package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/week"
)

// WeekSummaryHandler returns the handler function for the week_summary MCP tool.
func WeekSummaryHandler(store *storage.EntryStore, opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input WeekSummaryInput) (*mcp.CallToolResult, WeekSummaryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WeekSummaryInput) (*mcp.CallToolResult, WeekSummaryOutput, error) {
		policy := opts.Window
		if input.Window != "" {
			p, err := week.ParsePolicy(input.Window)
			if err != nil {
				return nil, WeekSummaryOutput{}, err
			}
			policy = p
		}
		reduction := opts.Reduction
		if input.Reduction != "" {
			r, err := stats.ParseReduction(input.Reduction)
			if err != nil {
				return nil, WeekSummaryOutput{}, err
			}
			reduction = r
		}
		if reduction == "" {
			reduction = stats.Mean
		}

		entries, err := store.LoadAll(ctx)
		if err != nil {
			return nil, WeekSummaryOutput{}, err
		}

		now := opts.now()
		win := week.Current(now, policy)
		inWeek := win.Filter(entries)
		summary := stats.AggregateByWeekday(inWeek, reduction)

		out := WeekSummaryOutput{
			Window:    string(win.Policy),
			Start:     win.Start.Format("2006-01-02"),
			End:       win.End.AddDate(0, 0, -1).Format("2006-01-02"),
			Average:   summary.Average,
			Reduction: string(reduction),
		}
		if summary.HasData() {
			out.Best = stats.WeekdayNames[summary.Best]
			out.Worst = stats.WeekdayNames[summary.Worst]
		}
		for _, d := range day.Layout(win.Days(), inWeek, now) {
			r := DayResult{
				Date:    d.Date.Format("2006-01-02"),
				Weekday: d.Date.Weekday().String(),
				Today:   d.Today,
				Missed:  d.Missed,
			}
			if d.Entry != nil {
				r.Mood = d.Entry.Mood
				r.Value = float64(mood.Scale(d.Entry.Mood))
				r.Preview = d.Entry.Preview(100)
			}
			out.Days = append(out.Days, r)
		}

		return nil, out, nil
	}
}
