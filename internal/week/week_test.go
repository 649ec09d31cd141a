package week

import (
	"fmt"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/entry"
)

func local(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.Local)
}

// entriesAround returns one entry per day from 20 days before to 20 days
// after ref, with varying times of day.
func entriesAround(ref time.Time) []entry.Entry {
	var out []entry.Entry
	for i := -20; i <= 20; i++ {
		d := day.NormalizeDate(ref).AddDate(0, 0, i)
		at := d.Add(time.Duration((i+40)%24)*time.Hour + 59*time.Minute)
		out = append(out, entry.Entry{ID: fmt.Sprintf("e%d", i), Mood: "🙂", Content: "x", Date: at})
	}
	return out
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{"": ISO, "iso": ISO, "ISO": ISO, " rolling ": Rolling} {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePolicy("fortnight"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestCurrentISOStartsMonday(t *testing.T) {
	// 2024-01-15 (Mon) .. 2024-01-21 (Sun)
	for d := 15; d <= 21; d++ {
		now := local(2024, 1, d, 13, 0)
		w := Current(now, ISO)
		if !w.Start.Equal(local(2024, 1, 15, 0, 0)) {
			t.Errorf("%s: start = %v", now.Weekday(), w.Start)
		}
		if !w.End.Equal(local(2024, 1, 22, 0, 0)) {
			t.Errorf("%s: end = %v", now.Weekday(), w.End)
		}
	}
}

func TestCurrentISOAcrossMonthAndYear(t *testing.T) {
	// 2025-01-01 is a Wednesday; its ISO week starts 2024-12-30.
	w := Current(local(2025, 1, 1, 0, 0), ISO)
	if !w.Start.Equal(local(2024, 12, 30, 0, 0)) {
		t.Errorf("start = %v", w.Start)
	}
}

func TestCurrentRolling(t *testing.T) {
	now := local(2024, 3, 3, 23, 59) // Sunday
	w := Current(now, Rolling)
	if !w.Start.Equal(local(2024, 2, 26, 0, 0)) {
		t.Errorf("start = %v", w.Start)
	}
	if !w.End.Equal(local(2024, 3, 4, 0, 0)) {
		t.Errorf("end = %v", w.End)
	}
}

func TestDays(t *testing.T) {
	days := Current(local(2024, 1, 17, 9, 0), ISO).Days()
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	for i, d := range days {
		if day.WeekdayIndex(d) != i {
			t.Errorf("day %d is %s", i, d.Weekday())
		}
	}
}

func TestISOWindowNeverLeavesReferenceWeek(t *testing.T) {
	for offset := 0; offset < 14; offset++ {
		now := local(2024, 5, 1, 7, 30).AddDate(0, 0, offset)
		monday := day.NormalizeDate(now).AddDate(0, 0, -day.WeekdayIndex(now))
		sunday := monday.AddDate(0, 0, 6)

		got := EntriesInWindow(entriesAround(now), now, ISO)
		if len(got) != 7 {
			t.Errorf("%s: expected 7 entries, got %d", now.Format("2006-01-02"), len(got))
		}
		for _, e := range got {
			d := day.NormalizeDate(e.Date)
			if d.Before(monday) || d.After(sunday) {
				t.Errorf("%s: entry on %s outside %s..%s", now.Format("2006-01-02"),
					d.Format("2006-01-02"), monday.Format("2006-01-02"), sunday.Format("2006-01-02"))
			}
		}
	}
}

func TestRollingWindowIsExactlyLastSevenDays(t *testing.T) {
	for offset := 0; offset < 10; offset++ {
		now := local(2024, 10, 20, 0, 5).AddDate(0, 0, offset)
		all := entriesAround(now)
		got := EntriesInWindow(all, now, Rolling)

		want := map[string]bool{}
		today := day.NormalizeDate(now)
		for _, e := range all {
			d := day.NormalizeDate(e.Date)
			if !d.After(today) && !d.Before(today.AddDate(0, 0, -6)) {
				want[e.ID] = true
			}
		}
		if len(got) != len(want) || len(got) != 7 {
			t.Fatalf("%s: got %d entries, want %d", now.Format("2006-01-02"), len(got), len(want))
		}
		for _, e := range got {
			if !want[e.ID] {
				t.Errorf("unexpected entry %s", e.ID)
			}
		}
	}
}

func TestContainsIgnoresTimeOfDay(t *testing.T) {
	w := Current(local(2024, 1, 17, 9, 0), ISO)
	if !w.Contains(local(2024, 1, 21, 23, 59)) {
		t.Error("Sunday 23:59 should be inside")
	}
	if !w.Contains(local(2024, 1, 15, 0, 0)) {
		t.Error("Monday 00:00 should be inside")
	}
	if w.Contains(local(2024, 1, 22, 0, 0)) {
		t.Error("next Monday should be outside")
	}
	if w.Contains(local(2024, 1, 14, 23, 59)) {
		t.Error("previous Sunday should be outside")
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	now := local(2024, 1, 17, 9, 0)
	entries := []entry.Entry{
		{ID: "b", Date: local(2024, 1, 16, 9, 0)},
		{ID: "old", Date: local(2023, 1, 16, 9, 0)},
		{ID: "a", Date: local(2024, 1, 15, 9, 0)},
	}
	got := EntriesInWindow(entries, now, ISO)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("got %v", got)
	}
}
