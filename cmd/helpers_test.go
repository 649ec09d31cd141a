package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/habit"
	"github.com/chris-regnier/moodctl/internal/kv/memory"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// testNow is a Wednesday evening.
var testNow = time.Date(2024, 1, 17, 19, 0, 0, 0, time.Local)

func setupTestEnv(t *testing.T) {
	t.Helper()
	kvStore = memory.New()
	store = storage.NewEntryStore(kvStore)
	habits = habit.NewStore(kvStore)
	appConfig = &config.Config{
		Storage: config.BackendMemory,
		DataDir: t.TempDir(),
		Week:    config.WeekConfig{Window: "iso"},
		Stats:   config.StatsConfig{Reduction: "mean"},
		Shell: config.ShellConfig{
			CacheTTL:    "5m",
			NoTodayIcon: "·",
			StreakIcon:  "🔥",
		},
	}
	jsonOutput = false
	nowFunc = func() time.Time { return testNow }
	t.Cleanup(func() {
		nowFunc = time.Now
		jsonOutput = false
	})
}

func seedEntries(t *testing.T, entries ...entry.Entry) {
	t.Helper()
	if err := store.SaveAll(context.Background(), entries); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}
