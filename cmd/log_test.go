package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/shell"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/ui"
)

func TestLogRun_CreatesThenUpdates(t *testing.T) {
	setupTestEnv(t)
	ctx := context.Background()

	var buf bytes.Buffer
	if err := logRun(ctx, &buf, "great", "Shipped it", false); err != nil {
		t.Fatalf("first log: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Logged 😃 for 2024-01-17") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := logRun(ctx, &buf, "😔", "Then it broke", false); err != nil {
		t.Fatalf("second log: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Updated 😔 for 2024-01-17") {
		t.Errorf("output = %q", buf.String())
	}

	entries, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Mood != "😔" || entries[0].Content != "Then it broke" {
		t.Errorf("stored = %+v", entries[0])
	}
}

func TestLogRun_MoodOnlyKeepsNote(t *testing.T) {
	setupTestEnv(t)
	ctx := context.Background()

	if err := logRun(ctx, &bytes.Buffer{}, "good", "Nice lunch", false); err != nil {
		t.Fatalf("log: %v", err)
	}
	if err := logRun(ctx, &bytes.Buffer{}, "okay", "", false); err != nil {
		t.Fatalf("mood-only log: %v", err)
	}

	entries, _ := store.LoadAll(ctx)
	if len(entries) != 1 || entries[0].Mood != "😐" || entries[0].Content != "Nice lunch" {
		t.Errorf("stored = %+v", entries)
	}
}

func TestLogRun_Validation(t *testing.T) {
	setupTestEnv(t)
	ctx := context.Background()

	err := logRun(ctx, &bytes.Buffer{}, "great", "   ", false)
	if !errors.Is(err, storage.ErrValidation) {
		t.Errorf("empty content: err = %v, want ErrValidation", err)
	}

	if err := logRun(ctx, &bytes.Buffer{}, "ecstatic", "x", false); err == nil {
		t.Error("expected error for unknown mood")
	}

	entries, _ := store.LoadAll(ctx)
	if len(entries) != 0 {
		t.Errorf("nothing should be written, got %d entries", len(entries))
	}
}

func TestLogRun_RequiresMoodWithoutTerminal(t *testing.T) {
	setupTestEnv(t)
	if isInteractive() {
		t.Skip("test needs a non-terminal stdin")
	}
	err := logRun(context.Background(), &bytes.Buffer{}, "", "text", false)
	if err == nil || !strings.Contains(err.Error(), "--mood is required") {
		t.Errorf("err = %v", err)
	}
}

func TestLogRun_JSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true

	var buf bytes.Buffer
	if err := logRun(context.Background(), &buf, "good", "Walk in the park", false); err != nil {
		t.Fatalf("log: %v", err)
	}

	var res ui.SaveResult
	if err := json.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if !res.Created || res.Entry.Mood != "🙂" || res.Entry.ID == "" {
		t.Errorf("result = %+v", res)
	}
}

func TestLogRun_EditWithScriptedEditor(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()
	script := dir + "/fake-editor.sh"
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 'Written in the editor' >> \"$1\"\n"), 0755); err != nil {
		t.Fatalf("writing editor script: %v", err)
	}
	appConfig.Editor = script

	var buf bytes.Buffer
	if err := logRun(context.Background(), &buf, "good", "", true); err != nil {
		t.Fatalf("log --edit: %v", err)
	}
	entries, _ := store.LoadAll(context.Background())
	if len(entries) != 1 || entries[0].Content != "Written in the editor" {
		t.Errorf("stored = %+v", entries)
	}
}

func TestLogRun_InvalidatesPromptCache(t *testing.T) {
	setupTestEnv(t)
	cache := shell.NewPromptCache(shell.Status{}, "memory", testNow)
	if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
		t.Fatalf("WriteCache: %v", err)
	}

	if err := logCmd.PostRunE(logCmd, nil); err != nil {
		t.Fatalf("PostRunE: %v", err)
	}
	if shell.ReadCache(appConfig.DataDir) != nil {
		t.Error("prompt cache should be removed after logging")
	}
}

func TestFilterDay(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Mood: "😃", Content: "x", Date: testNow},
		{ID: "b", Mood: "😐", Content: "y", Date: daysAgo(1)},
	}
	got := filterDay(entries, daysAgo(1))
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("filterDay = %+v", got)
	}
}
