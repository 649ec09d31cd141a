package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/shell"
)

// statusData holds the template data for status formatting.
type statusData struct {
	HasToday   bool
	Mood       string
	TodayIcon  string
	Streak     int
	StreakIcon string
	Backend    string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mood prompt status",
	Long: `Show mood status for shell prompt integration.

Outputs today's mood (or a placeholder when nothing is logged yet) and the
streak of consecutive logged days. Reads from cache when fresh, queries
storage when stale.

Use --env to output shell environment variable assignments.
Use --refresh to force a cache refresh.
Use --format with a Go template for custom output.`,
	Example: `  moodctl status
  moodctl status --env
  moodctl status --refresh
  moodctl status --format "{{.TodayIcon}} {{.Streak}}{{.StreakIcon}}"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFlag, _ := cmd.Flags().GetBool("env")
		refreshFlag, _ := cmd.Flags().GetBool("refresh")
		formatFlag, _ := cmd.Flags().GetString("format")
		return statusRun(cmd.Context(), os.Stdout, envFlag, refreshFlag, formatFlag)
	},
}

func statusRun(ctx context.Context, w io.Writer, env, refresh bool, format string) error {
	now := nowFunc()
	cache := loadStatus(ctx, now, refresh)

	if env {
		shell.WriteEnv(w, cache.Status())
		return nil
	}

	data := buildStatusData(cache)
	if format != "" {
		return outputTemplate(w, data, format)
	}
	return outputDefault(w, data)
}

// loadStatus returns the cached prompt status, recomputing it from storage
// when the cache is stale or refresh is set.
func loadStatus(ctx context.Context, now time.Time, refresh bool) *shell.PromptCache {
	ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
	if err != nil {
		ttl = 5 * time.Minute
	}

	cache := shell.ReadCache(appConfig.DataDir)
	if !refresh && cache.IsFresh(now, ttl) {
		return cache
	}

	st := shell.ComputeStatus(store.LoadAllOrEmpty(ctx), now)
	cache = shell.NewPromptCache(st, appConfig.Storage, now)
	if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
		// A cache write failure shouldn't break the prompt.
		logger.Warn("could not write prompt cache", zap.Error(err))
	}
	return cache
}

func buildStatusData(cache *shell.PromptCache) statusData {
	icon := appConfig.Shell.NoTodayIcon
	if cache.Today {
		icon = cache.Mood
	}
	return statusData{
		HasToday:   cache.Today,
		Mood:       cache.Mood,
		TodayIcon:  icon,
		Streak:     cache.Streak,
		StreakIcon: appConfig.Shell.StreakIcon,
		Backend:    cache.StorageBackend,
	}
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	parts := []string{fmt.Sprintf("%s %d%s", data.TodayIcon, data.Streak, data.StreakIcon)}
	if appConfig.Shell.ShowBackend && data.Backend != "" {
		parts = append(parts, data.Backend)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	return nil
}

func init() {
	statusCmd.Flags().Bool("env", false, "output shell environment variable assignments")
	statusCmd.Flags().Bool("refresh", false, "force cache refresh")
	statusCmd.Flags().String("format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
