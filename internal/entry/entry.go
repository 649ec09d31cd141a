package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the persisted form of Entry.Date: UTC with millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z"

// Entry is one mood and journal record for a single calendar day.
type Entry struct {
	ID      string    `json:"id"`
	Mood    string    `json:"mood"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

type wireEntry struct {
	ID      string `json:"id"`
	Mood    string `json:"mood"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// MarshalJSON writes Date in DateLayout.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEntry{
		ID:      e.ID,
		Mood:    e.Mood,
		Content: e.Content,
		Date:    e.Date.UTC().Format(DateLayout),
	})
}

// UnmarshalJSON accepts any RFC 3339 timestamp for Date.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d, err := time.Parse(time.RFC3339Nano, w.Date)
	if err != nil {
		return fmt.Errorf("entry %s: parsing date %q: %w", w.ID, w.Date, err)
	}
	*e = Entry{ID: w.ID, Mood: w.Mood, Content: w.Content, Date: d}
	return nil
}

// New builds an entry with a fresh ID. The date is truncated to milliseconds
// so it survives a save/load round trip unchanged.
func New(moodToken, content string, at time.Time) (Entry, error) {
	id, err := NewID()
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:      id,
		Mood:    moodToken,
		Content: content,
		Date:    Truncate(at),
	}, nil
}

// NewID returns a time-ordered UUIDv7 string.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating entry ID: %w", err)
	}
	return id.String(), nil
}

// Truncate drops precision below a millisecond.
func Truncate(t time.Time) time.Time {
	return t.Truncate(time.Millisecond)
}

// ValidateMood checks that a mood has been chosen.
func ValidateMood(moodToken string) error {
	if strings.TrimSpace(moodToken) == "" {
		return fmt.Errorf("a mood must be selected")
	}
	return nil
}

// ValidateContent checks whether content is non-empty.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("entry content must not be empty")
	}
	return nil
}

// Preview returns the first line of the content, truncated to maxLen runes.
func (e *Entry) Preview(maxLen int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(e.Content), "\n")
	runes := []rune(line)
	if len(runes) <= maxLen {
		return line
	}
	return string(runes[:maxLen-3]) + "..."
}
