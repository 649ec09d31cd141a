package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodctl/internal/ui"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage the habit checklist",
	Long:  "Add, list, check off and remove habits on a small checklist kept next to your mood journal.",
}

var habitAddCmd = &cobra.Command{
	Use:     "add <title...>",
	Short:   "Add a habit",
	Example: `  moodctl habit add Drink water`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return habitAddRun(cmd.Context(), os.Stdout, strings.Join(args, " "))
	},
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return habitListRun(cmd.Context(), os.Stdout)
	},
}

var habitToggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Aliases: []string{"done"},
	Short:   "Check or uncheck a habit",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return habitToggleRun(cmd.Context(), os.Stdout, args[0])
	},
}

var habitRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a habit",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return habitRemoveRun(cmd.Context(), os.Stdout, args[0])
	},
}

func habitAddRun(ctx context.Context, w io.Writer, title string) error {
	h, err := habits.Add(ctx, title)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, h)
	}
	fmt.Fprintf(w, "Added habit %s: %s\n", h.ID, h.Title)
	return nil
}

func habitListRun(ctx context.Context, w io.Writer) error {
	list := habits.List(ctx)
	if jsonOutput {
		return ui.FormatJSON(w, list)
	}
	ui.FormatHabits(w, list)
	return nil
}

func habitToggleRun(ctx context.Context, w io.Writer, id string) error {
	h, err := habits.Toggle(ctx, id)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, h)
	}
	state := "not done"
	if h.Completed {
		state = "done"
	}
	fmt.Fprintf(w, "Marked %s as %s\n", h.Title, state)
	return nil
}

func habitRemoveRun(ctx context.Context, w io.Writer, id string) error {
	if err := habits.Remove(ctx, id); err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, map[string]string{"id": id, "status": "removed"})
	}
	fmt.Fprintf(w, "Removed habit %s\n", id)
	return nil
}

func init() {
	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitToggleCmd, habitRemoveCmd)
	rootCmd.AddCommand(habitCmd)
}
