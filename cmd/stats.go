package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/chris-regnier/moodctl/internal/week"
)

var (
	statsWindow    string
	statsReduction string
	statsAll       bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize mood by weekday",
	Long: `Summarize mood by weekday, Monday to Sunday, with a bar chart.

Moods score 😭=1 up to 😃=5. Each weekday's bar is the mean of its entries
(or the latest entry with --reduction latest). Best and worst days only
consider weekdays that have entries.

By default only this week is summarized; --all uses the whole journal.`,
	Example: `  moodctl stats
  moodctl stats --window rolling
  moodctl stats --all --reduction latest
  moodctl stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsRun(cmd.Context(), os.Stdout, statsWindow, statsReduction, statsAll)
	},
}

func statsRun(ctx context.Context, w io.Writer, window, reductionFlag string, all bool) error {
	policy, err := resolvePolicy(window)
	if err != nil {
		return err
	}
	reduction, err := resolveReduction(reductionFlag)
	if err != nil {
		return err
	}

	entries := store.LoadAllOrEmpty(ctx)
	title := "All time"
	if !all {
		win := week.Current(nowFunc(), policy)
		entries = win.Filter(entries)
		title = fmt.Sprintf("Week %s – %s", win.Start.Format("Jan 2"), win.End.AddDate(0, 0, -1).Format("Jan 2"))
	}
	summary := stats.AggregateByWeekday(entries, reduction)

	if jsonOutput {
		return ui.FormatJSON(w, ui.BuildStats(summary, reduction))
	}

	var buf bytes.Buffer
	ui.FormatStats(&buf, title, summary, currentTheme())
	return ui.OutputOrPage(w, buf.String(), false, currentTheme())
}

func init() {
	statsCmd.Flags().StringVar(&statsWindow, "window", "", "week window policy (iso|rolling)")
	statsCmd.Flags().StringVar(&statsReduction, "reduction", "", "weekday reduction (mean|latest)")
	statsCmd.Flags().BoolVar(&statsAll, "all", false, "summarize every entry, not just this week")
	rootCmd.AddCommand(statsCmd)
}
