package mcptools

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/mood"
)

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func toResult(e entry.Entry) EntryResult {
	return EntryResult{
		ID:      e.ID,
		Date:    e.Date.Local().Format("2006-01-02"),
		Mood:    e.Mood,
		Scale:   mood.Scale(e.Mood),
		Preview: e.Preview(100),
	}
}
