package stats

import (
	"math"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/entry"
)

// 2024-01-15 is a Monday.
func on(weekday, hour int, m string) entry.Entry {
	return entry.Entry{
		ID:      "x",
		Mood:    m,
		Content: "c",
		Date:    time.Date(2024, 1, 15+weekday, hour, 0, 0, 0, time.Local),
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateExample(t *testing.T) {
	s := AggregateByWeekday([]entry.Entry{on(0, 9, "😃"), on(2, 9, "😭")}, Mean)
	if !approx(s.Average, 3.0) {
		t.Errorf("Average = %v, want 3", s.Average)
	}
	if s.Best != 0 {
		t.Errorf("Best = %s, want Monday", WeekdayNames[s.Best])
	}
	if s.Worst != 2 {
		t.Errorf("Worst = %s, want Wednesday", WeekdayNames[s.Worst])
	}
	if s.PerWeekday[0] != 5 || s.PerWeekday[2] != 1 || s.PerWeekday[1] != 0 {
		t.Errorf("PerWeekday = %v", s.PerWeekday)
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := AggregateByWeekday(nil, Mean)
	if s.HasData() {
		t.Error("expected no data")
	}
	if s.Average != 0 || s.Best != 0 || s.Worst != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
	for i, v := range s.PerWeekday {
		if v != 0 {
			t.Errorf("bucket %d = %v", i, v)
		}
	}
}

func TestAggregateMeanVersusLatest(t *testing.T) {
	// Two Mondays a week apart: 😭 then 😃.
	early := on(0, 9, "😭")
	late := entry.Entry{ID: "y", Mood: "😃", Content: "c", Date: early.Date.AddDate(0, 0, 7)}
	entries := []entry.Entry{late, early}

	mean := AggregateByWeekday(entries, Mean)
	if !approx(mean.PerWeekday[0], 3.0) {
		t.Errorf("mean Monday = %v, want 3", mean.PerWeekday[0])
	}
	latest := AggregateByWeekday(entries, Latest)
	if latest.PerWeekday[0] != 5 {
		t.Errorf("latest Monday = %v, want 5", latest.PerWeekday[0])
	}
	if mean.Counts[0] != 2 || latest.Counts[0] != 2 {
		t.Error("counts should not depend on reduction")
	}
}

func TestAverageIsOverEntriesNotBuckets(t *testing.T) {
	// Monday: 5, 5, 5; Tuesday: 1. Bucket mean of means would be 3.
	entries := []entry.Entry{on(0, 8, "😃"), on(0, 9, "😃"), on(0, 10, "😃"), on(1, 9, "😭")}
	s := AggregateByWeekday(entries, Mean)
	if !approx(s.Average, 4.0) {
		t.Errorf("Average = %v, want 4", s.Average)
	}
}

func TestUnknownMoodIsNeutral(t *testing.T) {
	s := AggregateByWeekday([]entry.Entry{on(3, 9, "🤖")}, Mean)
	if s.PerWeekday[3] != 3 || s.Average != 3 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestTiesGoToEarliestWeekday(t *testing.T) {
	s := AggregateByWeekday([]entry.Entry{on(4, 9, "🙂"), on(1, 9, "🙂"), on(6, 9, "🙂")}, Mean)
	if s.Best != 1 || s.Worst != 1 {
		t.Errorf("Best=%d Worst=%d, want 1 and 1", s.Best, s.Worst)
	}
}

func TestEmptyBucketsNeverWorst(t *testing.T) {
	s := AggregateByWeekday([]entry.Entry{on(5, 9, "😔"), on(6, 9, "😐")}, Mean)
	if s.Worst != 5 {
		t.Errorf("Worst = %s, want Saturday", WeekdayNames[s.Worst])
	}
	if s.Best != 6 {
		t.Errorf("Best = %s, want Sunday", WeekdayNames[s.Best])
	}
}

func TestParseReduction(t *testing.T) {
	for in, want := range map[string]Reduction{"": Mean, "mean": Mean, "LATEST": Latest} {
		got, err := ParseReduction(in)
		if err != nil || got != want {
			t.Errorf("ParseReduction(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseReduction("median"); err == nil {
		t.Error("expected error")
	}
}
