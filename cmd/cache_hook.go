package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/shell"
)

// invalidateCachePostRun is a PostRunE hook that invalidates the prompt cache
// after commands that change entries (log, wipe, seed).
func invalidateCachePostRun(cmd *cobra.Command, args []string) error {
	if appConfig == nil {
		return nil
	}
	// Best-effort: a stale prompt must never turn a successful command into a failure.
	if err := shell.InvalidateCache(appConfig.DataDir); err != nil {
		logger.Debug("invalidating prompt cache", zap.Error(err))
	}
	return nil
}
