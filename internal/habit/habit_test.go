package habit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chris-regnier/moodctl/internal/habit"
	"github.com/chris-regnier/moodctl/internal/kv/memory"
	"github.com/chris-regnier/moodctl/internal/storage"
)

func TestNewID(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := habit.NewID()
		if err := habit.ValidateID(id); err != nil {
			t.Errorf("NewID() = %q: %v", id, err)
		}
		if ids[id] {
			t.Errorf("NewID() generated duplicate ID: %q", id)
		}
		ids[id] = true
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: "abc12345", wantErr: false},
		{name: "uppercase", id: "ABC12345", wantErr: true},
		{name: "too short", id: "abc1234", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := habit.ValidateID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if tt.wantErr && (!errors.Is(err, storage.ErrValidation) || !errors.Is(err, habit.ErrInvalidID)) {
				t.Errorf("ValidateID(%q) error = %v, want ErrValidation and ErrInvalidID", tt.id, err)
			}
		})
	}
}

func TestAddPrepends(t *testing.T) {
	habits, first, err := habit.Add(nil, "drink water")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	habits, second, err := habit.Add(habits, "  walk  ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(habits) != 2 || habits[0].ID != second.ID || habits[1].ID != first.ID {
		t.Errorf("unexpected order: %+v", habits)
	}
	if second.Title != "walk" || second.Completed {
		t.Errorf("second = %+v", second)
	}
}

func TestAddEmptyTitle(t *testing.T) {
	_, _, err := habit.Add(nil, "   ")
	if !errors.Is(err, storage.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestToggle(t *testing.T) {
	in := []habit.Habit{{ID: "aaaaaaaa", Title: "a"}, {ID: "bbbbbbbb", Title: "b"}}
	out, h, err := habit.Toggle(in, "bbbbbbbb")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !h.Completed || !out[1].Completed {
		t.Error("expected completed")
	}
	if in[1].Completed {
		t.Error("input must not be modified")
	}
	out, _, _ = habit.Toggle(out, "bbbbbbbb")
	if out[1].Completed {
		t.Error("second toggle should reset")
	}
	if _, _, err := habit.Toggle(in, "zzzzzzzz"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	in := []habit.Habit{{ID: "aaaaaaaa"}, {ID: "bbbbbbbb"}, {ID: "cccccccc"}}
	out, err := habit.Remove(in, "bbbbbbbb")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(out) != 2 || out[0].ID != "aaaaaaaa" || out[1].ID != "cccccccc" {
		t.Errorf("out = %+v", out)
	}
	if _, err := habit.Remove(in, "zzzzzzzz"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := habit.NewStore(memory.New())

	if got := s.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
	h, err := s.Add(ctx, "stretch")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	toggled, err := s.Toggle(ctx, h.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("Toggle = %+v, %v", toggled, err)
	}
	list := s.List(ctx)
	if len(list) != 1 || !list[0].Completed || list[0].Title != "stretch" {
		t.Errorf("List = %+v", list)
	}
	if err := s.Remove(ctx, h.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := s.List(ctx); len(got) != 0 {
		t.Errorf("expected empty after remove, got %+v", got)
	}
}

func TestStoreFailedMutationWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := habit.NewStore(memory.New())
	if _, err := s.Add(ctx, "read"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(ctx, ""); !errors.Is(err, storage.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := s.Remove(ctx, "nope0000"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := s.List(ctx); len(got) != 1 {
		t.Errorf("expected 1 habit, got %d", len(got))
	}
}

func TestStoreRejectsMalformedID(t *testing.T) {
	ctx := context.Background()
	s := habit.NewStore(memory.New())
	if _, err := s.Add(ctx, "read"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := s.Toggle(ctx, "Not-An-ID"); !errors.Is(err, storage.ErrValidation) {
		t.Errorf("Toggle: expected ErrValidation, got %v", err)
	}
	if err := s.Remove(ctx, "x"); !errors.Is(err, habit.ErrInvalidID) {
		t.Errorf("Remove: expected ErrInvalidID, got %v", err)
	}
	if got := s.List(ctx); len(got) != 1 || got[0].Completed {
		t.Errorf("habits changed: %+v", got)
	}
}
