package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/ui"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every mood entry and habit",
	Long: `Delete every mood entry and habit from the configured storage.

This cannot be undone. You are asked to confirm unless --yes is given.`,
	Example: `  moodctl wipe
  moodctl wipe --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed := wipeYes
		if !confirmed {
			prompt := "Delete all mood entries and habits? This cannot be undone."
			if isInteractive() {
				ok, err := ui.Confirm(prompt, currentTheme())
				if err != nil {
					return fmt.Errorf("confirmation prompt: %w", err)
				}
				confirmed = ok
			} else {
				confirmed = ui.ConfirmLine(os.Stdin, os.Stdout, prompt)
			}
		}
		if !confirmed {
			fmt.Fprintln(os.Stdout, "Wipe cancelled.")
			return nil
		}
		return wipeRun(cmd.Context(), os.Stdout)
	},
	PostRunE: invalidateCachePostRun,
}

func wipeRun(ctx context.Context, w io.Writer) error {
	if err := store.Clear(ctx); err != nil {
		return err
	}
	if err := habits.Clear(ctx); err != nil {
		return err
	}
	logger.Info("journal wiped", zap.String("backend", appConfig.Storage))

	if jsonOutput {
		return ui.FormatJSON(w, map[string]string{"status": "wiped"})
	}
	fmt.Fprintln(w, "All mood entries and habits deleted.")
	return nil
}

func init() {
	wipeCmd.Flags().BoolVarP(&wipeYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(wipeCmd)
}
