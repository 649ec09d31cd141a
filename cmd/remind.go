package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/daily"
	"github.com/chris-regnier/moodctl/internal/notify"
	"github.com/chris-regnier/moodctl/internal/shell"
)

var (
	remindWatch bool

	// sendNotification delivers reminders; tests replace it.
	sendNotification notify.Sender = notify.Desktop
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send a desktop reminder if today's mood isn't logged",
	Long: `Send a desktop notification when today's mood hasn't been logged yet.

With --watch, keeps running and checks at the configured reminder time
(reminder.time on reminder.days) until interrupted.`,
	Example: `  moodctl remind
  moodctl remind --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !remindWatch {
			_, err := remindRun(cmd.Context(), os.Stdout, sendNotification)
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		next := notify.NextAt(nowFunc(), appConfig.Reminder)
		fmt.Fprintf(os.Stdout, "Watching for reminders; next at %s\n", next.Format("Mon Jan 2 15:04"))
		notify.Watch(ctx, appConfig.Reminder, func(now time.Time) {
			if _, err := remindRun(ctx, os.Stdout, sendNotification); err != nil {
				logger.Warn("reminder failed", zap.Error(err))
			}
		})
		return nil
	},
}

// remindRun notifies once when today has no entry. It reports whether a
// notification was sent.
func remindRun(ctx context.Context, w io.Writer, send notify.Sender) (bool, error) {
	now := nowFunc()
	if _, ok := daily.Today(ctx, store, now); ok {
		fmt.Fprintln(w, "Today's mood is already logged.")
		return false, nil
	}

	// Streak of consecutive days up to yesterday, which today's entry would extend.
	streak := shell.ComputeStatus(store.LoadAllOrEmpty(ctx), now.AddDate(0, 0, -1)).Streak
	title, msg := notify.FormatReminder(streak)
	if err := send(title, msg); err != nil {
		return false, fmt.Errorf("sending notification: %w", err)
	}
	logger.Info("reminder sent", zap.Int("streak", streak))
	fmt.Fprintln(w, msg)
	return true, nil
}

func init() {
	remindCmd.Flags().BoolVar(&remindWatch, "watch", false, "keep running and remind at the configured time")
	rootCmd.AddCommand(remindCmd)
}
