package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/daily"
	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var showContentOnly bool

var showCmd = &cobra.Command{
	Use:   "show <id|date>",
	Short: "Show a mood entry",
	Long:  "Display the full journal note and metadata of one entry, looked up by ID or by date (YYYY-MM-DD).",
	Example: `  moodctl show 0197a1c2-4d5e-7f00-8a9b-0c1d2e3f4a5b
  moodctl show 2026-01-31
  moodctl show 2026-01-31 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRun(cmd.Context(), os.Stdout, args[0], showContentOnly)
	},
}

func showRun(ctx context.Context, w io.Writer, ref string, contentOnly bool) error {
	entries, err := store.LoadAll(ctx)
	if err != nil {
		return err
	}

	e, ok := findEntry(entries, ref)
	if !ok {
		return fmt.Errorf("%w: entry %s", storage.ErrNotFound, ref)
	}

	if contentOnly {
		fmt.Fprintln(w, e.Content)
		return nil
	}
	if jsonOutput {
		return ui.FormatJSON(w, e)
	}

	var buf bytes.Buffer
	ui.FormatEntryFull(&buf, e, markdownStyle())
	return ui.OutputOrPage(w, buf.String(), false, currentTheme())
}

// findEntry resolves ref as an entry ID first, then as a calendar date.
func findEntry(entries []entry.Entry, ref string) (entry.Entry, bool) {
	for _, e := range entries {
		if e.ID == ref {
			return e, true
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", ref, time.Local); err == nil {
		return daily.FindDay(entries, t)
	}
	return entry.Entry{}, false
}

func init() {
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "print just the journal note")
	rootCmd.AddCommand(showCmd)
}
