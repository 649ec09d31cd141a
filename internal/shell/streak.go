package shell

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/entry"
)

// Status is what the prompt shows: whether today is logged, with which mood,
// and how many consecutive days end today.
type Status struct {
	Today  bool   `json:"today"`
	Mood   string `json:"mood,omitempty"`
	Streak int    `json:"streak"`
}

// ComputeStatus derives the prompt status from the full entry list.
// The streak counts consecutive logged days backwards from today, so it is
// 0 until today has an entry.
func ComputeStatus(entries []entry.Entry, now time.Time) Status {
	today := day.NormalizeDate(now)

	daySet := make(map[string]string, len(entries))
	for _, e := range entries {
		key := day.NormalizeDate(e.Date).Format("2006-01-02")
		if _, ok := daySet[key]; !ok {
			daySet[key] = e.Mood
		}
	}

	var st Status
	st.Mood, st.Today = daySet[today.Format("2006-01-02")]

	for check := today; ; check = check.AddDate(0, 0, -1) {
		if _, ok := daySet[check.Format("2006-01-02")]; !ok {
			break
		}
		st.Streak++
	}
	return st
}
