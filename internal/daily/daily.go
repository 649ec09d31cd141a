package daily

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/logging"
	"github.com/chris-regnier/moodctl/internal/storage"
)

// Validate checks mood and content before anything is loaded or written.
func Validate(moodToken, content string) error {
	if err := entry.ValidateMood(moodToken); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	if err := entry.ValidateContent(content); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	return nil
}

// FindDay returns the entry logged on date's calendar day.
func FindDay(entries []entry.Entry, date time.Time) (entry.Entry, bool) {
	for _, e := range entries {
		if day.SameDay(e.Date, date) {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// UpsertToday computes the collection after saving mood and content for
// now's calendar day. An existing entry for that day keeps its ID and is
// replaced; otherwise a new entry is created. Either way the saved entry is
// moved to the front and every other entry keeps its relative order.
// Entries sharing the day are all removed so at most one remains.
func UpsertToday(entries []entry.Entry, moodToken, content string, now time.Time) ([]entry.Entry, entry.Entry, bool, error) {
	if err := Validate(moodToken, content); err != nil {
		return nil, entry.Entry{}, false, err
	}

	existing, found := FindDay(entries, now)

	var saved entry.Entry
	if found {
		saved = entry.Entry{
			ID:      existing.ID,
			Mood:    moodToken,
			Content: content,
			Date:    entry.Truncate(now),
		}
	} else {
		e, err := entry.New(moodToken, content, now)
		if err != nil {
			return nil, entry.Entry{}, false, err
		}
		saved = e
	}

	out := make([]entry.Entry, 0, len(entries)+1)
	out = append(out, saved)
	for _, e := range entries {
		if !day.SameDay(e.Date, now) {
			out = append(out, e)
		}
	}
	return out, saved, !found, nil
}

// Save validates, then upserts today's entry under the store's
// single-writer guard. It reports whether a new entry was created.
func Save(ctx context.Context, store *storage.EntryStore, moodToken, content string, now time.Time) (entry.Entry, bool, error) {
	if err := Validate(moodToken, content); err != nil {
		return entry.Entry{}, false, err
	}

	var saved entry.Entry
	var created bool
	err := store.Update(ctx, func(entries []entry.Entry) ([]entry.Entry, error) {
		out, e, c, err := UpsertToday(entries, moodToken, content, now)
		if err != nil {
			return nil, err
		}
		saved, created = e, c
		return out, nil
	})
	if err != nil {
		return entry.Entry{}, false, fmt.Errorf("saving today's entry: %w", err)
	}

	logging.FromContext(ctx).Debug("saved today's entry",
		zap.String("id", saved.ID),
		zap.Bool("created", created),
	)
	return saved, created, nil
}

// Today returns today's entry from the store, if one exists. It uses the
// degrade-to-empty load, so a storage fault reads as "nothing logged yet".
func Today(ctx context.Context, store *storage.EntryStore, now time.Time) (entry.Entry, bool) {
	return FindDay(store.LoadAllOrEmpty(ctx), now)
}
