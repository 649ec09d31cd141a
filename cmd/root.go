package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/habit"
	"github.com/chris-regnier/moodctl/internal/kv"
	"github.com/chris-regnier/moodctl/internal/kv/file"
	"github.com/chris-regnier/moodctl/internal/kv/memory"
	"github.com/chris-regnier/moodctl/internal/kv/sqlite"
	"github.com/chris-regnier/moodctl/internal/logging"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/ui"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	logLevel       string
	appConfig      *config.Config
	kvStore        kv.Store
	store          *storage.EntryStore
	habits         *habit.Store
	logger         = zap.NewNop()

	// nowFunc is the reference clock; tests pin it.
	nowFunc = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "A daily mood journal for the terminal",
	Long: `moodctl records one mood per day (😃 🙂 😐 😔 😭) with a short journal note,
and summarizes your week by weekday.

Run without a subcommand to see today's entry.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Flag overrides
		if storageBackend != "" {
			appConfig.Storage = strings.ToLower(storageBackend)
			if err := appConfig.Validate(); err != nil {
				return err
			}
		}
		if logLevel != "" {
			appConfig.Log.Level = logLevel
		}

		logger, err = logging.New(appConfig.Log.Level)
		if err != nil {
			return err
		}
		cmd.SetContext(logging.NewContext(cmd.Context(), logger))

		kvStore, err = openKV(appConfig)
		if err != nil {
			return err
		}
		store = storage.NewEntryStore(kvStore)
		habits = habit.NewStore(kvStore)

		logger.Debug("storage ready",
			zap.String("backend", appConfig.Storage),
			zap.String("data_dir", appConfig.DataDir))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		closeStore()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return todayRun(cmd.Context(), os.Stdout)
	},
}

// openKV initializes the configured kv backend.
func openKV(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case config.BackendFile:
		s, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing file storage: %w", err)
		}
		return s, nil
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

func closeStore() {
	if kvStore != nil {
		if err := kvStore.Close(); err != nil {
			logger.Warn("closing storage", zap.Error(err))
		}
		kvStore = nil
	}
	_ = logger.Sync()
}

// currentTheme resolves the configured theme, tolerating a missing config in tests.
func currentTheme() ui.Theme {
	if appConfig == nil {
		return ui.ResolveTheme(config.ThemeConfig{})
	}
	return ui.ResolveTheme(appConfig.Theme)
}

func markdownStyle() string {
	return currentTheme().MarkdownStyle
}

// Execute runs the root command.
func Execute() error {
	defer closeStore()
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (file|sqlite|memory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level (debug|info|warn|error)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
