package cmd

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/daily"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's mood entry",
	Long: `Show a greeting and today's mood entry, if one has been logged.

This is also what moodctl prints when run without a subcommand.`,
	Example: `  moodctl today
  moodctl today --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return todayRun(cmd.Context(), os.Stdout)
	},
}

func todayRun(ctx context.Context, w io.Writer) error {
	now := nowFunc()
	e, ok := daily.Today(ctx, store, now)

	if jsonOutput {
		if !ok {
			return ui.FormatJSON(w, nil)
		}
		return ui.FormatJSON(w, e)
	}

	var buf bytes.Buffer
	ui.FormatToday(&buf, e, ok, now, markdownStyle())
	return ui.OutputOrPage(w, buf.String(), false, currentTheme())
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
