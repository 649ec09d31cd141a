// Package habit provides the daily habit checklist kept next to the journal.
// Habits are a flat, ordered list persisted as one collection; newest first.
package habit

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chris-regnier/moodctl/internal/kv"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// Habit is one checklist item.
type Habit struct {
	// ID is an 8-character lowercase alphanumeric nanoid
	ID string `json:"id"`

	// Title is the text shown in the checklist (must be non-empty)
	Title string `json:"title"`

	// Completed marks the habit as done
	Completed bool `json:"completed"`
}

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

var (
	idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

	// ErrInvalidID indicates that a habit ID doesn't match the required format
	ErrInvalidID = errors.New("invalid habit ID: must be 8 lowercase alphanumeric characters")
)

// NewID generates a new habit ID.
// Panics if ID generation fails, which only happens with a broken alphabet.
func NewID() string {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		panic(fmt.Sprintf("critical: failed to generate habit ID: %v", err))
	}
	return id
}

// ValidateID checks whether id has the habit ID shape. The error wraps both
// storage.ErrValidation and ErrInvalidID.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %w", storage.ErrValidation, ErrInvalidID)
	}
	return nil
}

// Add prepends a new, uncompleted habit with the given title.
func Add(habits []Habit, title string) ([]Habit, Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, Habit{}, fmt.Errorf("%w: habit title must not be empty", storage.ErrValidation)
	}
	h := Habit{ID: NewID(), Title: title}
	out := make([]Habit, 0, len(habits)+1)
	out = append(out, h)
	out = append(out, habits...)
	return out, h, nil
}

// Toggle flips the completed flag of the habit with id.
func Toggle(habits []Habit, id string) ([]Habit, Habit, error) {
	out := make([]Habit, len(habits))
	copy(out, habits)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			return out, out[i], nil
		}
	}
	return nil, Habit{}, fmt.Errorf("%w: habit %s", storage.ErrNotFound, id)
}

// Remove deletes the habit with id.
func Remove(habits []Habit, id string) ([]Habit, error) {
	out := make([]Habit, 0, len(habits))
	found := false
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		out = append(out, h)
	}
	if !found {
		return nil, fmt.Errorf("%w: habit %s", storage.ErrNotFound, id)
	}
	return out, nil
}

// Store persists habits under storage.HabitsKey.
type Store struct {
	c *storage.Collection[Habit]
}

// NewStore returns the habit store backed by s.
func NewStore(s kv.Store) *Store {
	return &Store{c: storage.NewCollection[Habit](s, storage.HabitsKey)}
}

// List returns all habits. Load failures degrade to an empty list.
func (s *Store) List(ctx context.Context) []Habit {
	return s.c.LoadAllOrEmpty(ctx)
}

// Add creates a habit.
func (s *Store) Add(ctx context.Context, title string) (Habit, error) {
	var added Habit
	err := s.c.Update(ctx, func(habits []Habit) ([]Habit, error) {
		out, h, err := Add(habits, title)
		added = h
		return out, err
	})
	return added, err
}

// Toggle flips a habit's completed flag.
func (s *Store) Toggle(ctx context.Context, id string) (Habit, error) {
	if err := ValidateID(id); err != nil {
		return Habit{}, err
	}
	var toggled Habit
	err := s.c.Update(ctx, func(habits []Habit) ([]Habit, error) {
		out, h, err := Toggle(habits, id)
		toggled = h
		return out, err
	})
	return toggled, err
}

// Remove deletes a habit.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	return s.c.Update(ctx, func(habits []Habit) ([]Habit, error) {
		return Remove(habits, id)
	})
}

// Clear removes every habit.
func (s *Store) Clear(ctx context.Context) error {
	return s.c.Clear(ctx)
}
