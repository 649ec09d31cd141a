package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/chris-regnier/moodctl/internal/daily"
	"github.com/chris-regnier/moodctl/internal/editor"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	logMood string
	logEdit bool
)

var logCmd = &cobra.Command{
	Use:   "log [text...]",
	Short: "Record today's mood",
	Long: `Record today's mood with a short journal note.

There is at most one entry per day: logging again replaces today's entry
and keeps its ID. The mood is one of 😃 🙂 😐 😔 😭, or an alias
(great, good, okay, down, awful).

On a terminal, omitting --mood opens an interactive picker.`,
	Example: `  moodctl log --mood great "Shipped the release"
  moodctl log -m 😔 "Rainy and tired"
  moodctl log --mood okay --edit
  moodctl log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return logRun(cmd.Context(), os.Stdout, logMood, strings.Join(args, " "), logEdit)
	},
	PostRunE: invalidateCachePostRun,
}

func logRun(ctx context.Context, w io.Writer, moodArg, text string, edit bool) error {
	now := nowFunc()
	existing, hasToday := daily.Today(ctx, store, now)

	var token string
	if moodArg != "" {
		t, err := mood.Parse(moodArg)
		if err != nil {
			return err
		}
		token = t
	}

	if token == "" {
		if !isInteractive() {
			return fmt.Errorf("--mood is required when not running in a terminal (one of %s)",
				strings.Join(mood.All(), " "))
		}
		initial := text
		if initial == "" && hasToday {
			initial = existing.Content
		}
		askText := text == "" && !edit
		res, err := ui.PickMood(currentTheme(), now, existing.Mood, askText, initial)
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(w, "Cancelled; nothing saved.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("mood picker: %w", err)
		}
		token = res.Mood
		if askText {
			text = res.Content
		}
	}

	if edit {
		initial := text
		if initial == "" && hasToday {
			initial = existing.Content
		}
		header := editor.Header(token, now.Format("Monday, January 2"))
		content, changed, err := editor.Compose(ctx, editor.ResolveEditor(appConfig.Editor), header, initial)
		if err != nil {
			return fmt.Errorf("editor: %w", err)
		}
		if content == "" || (!changed && hasToday && token == existing.Mood && initial == existing.Content) {
			ui.FormatNoChanges(w)
			return nil
		}
		text = content
	}

	if text == "" && hasToday {
		// Changing only the mood keeps today's note.
		text = existing.Content
	}

	e, created, err := daily.Save(ctx, store, token, text, now)
	if err != nil {
		return err
	}
	logger.Info("mood logged", zap.String("id", e.ID), zap.String("mood", e.Mood), zap.Bool("created", created))

	if jsonOutput {
		return ui.FormatJSON(w, ui.SaveResult{Entry: e, Created: created})
	}
	ui.FormatEntrySaved(w, e, created)
	return nil
}

// isInteractive reports whether stdin and stdout are both terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	logCmd.Flags().StringVarP(&logMood, "mood", "m", "", "mood emoji or alias (great|good|okay|down|awful)")
	logCmd.Flags().BoolVarP(&logEdit, "edit", "e", false, "write the journal note in $EDITOR")
	rootCmd.AddCommand(logCmd)
}
