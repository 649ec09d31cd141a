package cmd

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/chris-regnier/moodctl/internal/week"
)

var weekWindow string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week day by day",
	Long: `Show the current week one day per line: the mood logged that day,
a reminder for past days you missed, and a marker on today.

--window picks the week: iso (Monday to Sunday) or rolling (the last 7 days).`,
	Example: `  moodctl week
  moodctl week --window rolling
  moodctl week --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return weekRun(cmd.Context(), os.Stdout, weekWindow)
	},
}

// resolvePolicy returns the flag policy when set, the configured one otherwise.
func resolvePolicy(flag string) (week.Policy, error) {
	if flag != "" {
		return week.ParsePolicy(flag)
	}
	if appConfig == nil {
		return week.ISO, nil
	}
	return appConfig.WeekPolicy()
}

// resolveReduction returns the flag reduction when set, the configured one otherwise.
func resolveReduction(flag string) (stats.Reduction, error) {
	if flag != "" {
		return stats.ParseReduction(flag)
	}
	if appConfig == nil {
		return stats.Mean, nil
	}
	return appConfig.Reduction()
}

func weekRun(ctx context.Context, w io.Writer, window string) error {
	policy, err := resolvePolicy(window)
	if err != nil {
		return err
	}

	now := nowFunc()
	win := week.Current(now, policy)
	days := day.Layout(win.Days(), win.Filter(store.LoadAllOrEmpty(ctx)), now)

	if jsonOutput {
		return ui.FormatJSON(w, ui.BuildWeek(win, days))
	}

	var buf bytes.Buffer
	ui.FormatWeek(&buf, win, days, currentTheme())
	return ui.OutputOrPage(w, buf.String(), false, currentTheme())
}

func init() {
	weekCmd.Flags().StringVar(&weekWindow, "window", "", "week window policy (iso|rolling)")
	rootCmd.AddCommand(weekCmd)
}
