// Package stats aggregates mood scale values by weekday.
//
// Weekdays are ordered Monday first (Mon=0 .. Sun=6). Each bucket is reduced
// with one of two policies:
//
//   - mean: arithmetic mean of the scale values in the bucket.
//   - latest: scale value of the most recent entry in the bucket.
//
// Empty buckets report 0 and never take part in best/worst selection.
package stats

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/mood"
)

// Reduction selects how a weekday bucket collapses to one value.
type Reduction string

const (
	Mean   Reduction = "mean"
	Latest Reduction = "latest"
)

// WeekdayLabels are the short names for bucket indexes.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayNames are the long names for bucket indexes.
var WeekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ParseReduction validates a reduction name. Empty means Mean.
func ParseReduction(s string) (Reduction, error) {
	switch Reduction(strings.ToLower(strings.TrimSpace(s))) {
	case "", Mean:
		return Mean, nil
	case Latest:
		return Latest, nil
	default:
		return "", fmt.Errorf("unknown reduction %q (use mean or latest)", s)
	}
}

// Summary is the result of AggregateByWeekday.
type Summary struct {
	PerWeekday [7]float64 `json:"per_weekday"`
	Counts     [7]int     `json:"counts"`
	Average    float64    `json:"average"`
	Best       int        `json:"best"`
	Worst      int        `json:"worst"`
	Total      int        `json:"total"`
}

// HasData reports whether any entry was aggregated.
func (s Summary) HasData() bool {
	return s.Total > 0
}

// AggregateByWeekday buckets entries by the local weekday of their date.
// Average is taken over every entry, not over bucket values.
func AggregateByWeekday(entries []entry.Entry, reduction Reduction) Summary {
	var s Summary
	var sums [7]int
	var latest [7]entry.Entry
	total := 0

	for _, e := range entries {
		idx := day.WeekdayIndex(e.Date)
		v := mood.Scale(e.Mood)
		sums[idx] += v
		if s.Counts[idx] == 0 || e.Date.After(latest[idx].Date) {
			latest[idx] = e
		}
		s.Counts[idx]++
		total += v
	}

	s.Total = len(entries)
	if s.Total > 0 {
		s.Average = float64(total) / float64(s.Total)
	}

	for i := range s.PerWeekday {
		if s.Counts[i] == 0 {
			continue
		}
		switch reduction {
		case Latest:
			s.PerWeekday[i] = float64(mood.Scale(latest[i].Mood))
		default:
			s.PerWeekday[i] = float64(sums[i]) / float64(s.Counts[i])
		}
	}

	s.Best, s.Worst = extremes(s)
	return s
}

// extremes returns argmax and argmin over non-empty buckets. Ties go to the
// earliest weekday. A weekday with no entries scores 0 but is skipped here,
// unlike a plain argmin over all seven values, so an unlogged day is never
// reported as the worst one.
func extremes(s Summary) (best, worst int) {
	seen := false
	for i, v := range s.PerWeekday {
		if s.Counts[i] == 0 {
			continue
		}
		if !seen {
			best, worst, seen = i, i, true
			continue
		}
		if v > s.PerWeekday[best] {
			best = i
		}
		if v < s.PerWeekday[worst] {
			worst = i
		}
	}
	return best, worst
}
