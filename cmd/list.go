package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	dateFilter string
	listIDOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries",
	Long:  "List mood entries with preview, newest first.",
	Example: `  moodctl list
  moodctl list --date 2026-01-31
  moodctl list --id-only
  moodctl list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.Context(), os.Stdout, dateFilter, listIDOnly)
	},
}

func listRun(ctx context.Context, w io.Writer, date string, idOnly bool) error {
	entries := store.LoadAllOrEmpty(ctx)

	if date != "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date format (use YYYY-MM-DD): %s", date)
		}
		entries = filterDay(entries, t)
	}

	if idOnly {
		ui.FormatIDs(w, entries)
		return nil
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSummaries(entries))
	}

	var buf bytes.Buffer
	ui.FormatEntryList(&buf, entries)
	return ui.OutputOrPage(w, buf.String(), false, currentTheme())
}

func filterDay(entries []entry.Entry, date time.Time) []entry.Entry {
	out := []entry.Entry{}
	for _, e := range entries {
		if day.SameDay(e.Date, date) {
			out = append(out, e)
		}
	}
	return out
}

func init() {
	listCmd.Flags().StringVar(&dateFilter, "date", "", "filter by date (YYYY-MM-DD)")
	listCmd.Flags().BoolVar(&listIDOnly, "id-only", false, "print just entry IDs, one per line")
	rootCmd.AddCommand(listCmd)
}
