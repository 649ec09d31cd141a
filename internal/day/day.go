// Package day provides calendar-day helpers and the day-by-day layout of a
// week window. All comparisons are in local time at day granularity.
package day

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/entry"
)

// Day is one calendar date of a window together with its entry, if any.
type Day struct {
	// Date is the normalized date (midnight local time)
	Date time.Time

	// Entry is the journal entry logged on Date, or nil
	Entry *entry.Entry

	// Today marks the reference day the layout was built for
	Today bool

	// Missed marks a past day with no entry
	Missed bool
}

// NormalizeDate normalizes a time.Time to midnight (00:00:00) in the local timezone.
//
// Example:
//
//	input:  2024-01-15 14:30:45.123456789
//	output: 2024-01-15 00:00:00.0
func NormalizeDate(t time.Time) time.Time {
	year, month, d := t.Local().Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// WeekdayIndex returns the Monday-first index of t's weekday: Monday is 0,
// Sunday is 6.
func WeekdayIndex(t time.Time) int {
	wd := t.Local().Weekday()
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// Layout pairs each date with the entry logged on it. When several entries
// share a date (data written by an older tool), the most recent one is used.
func Layout(dates []time.Time, entries []entry.Entry, now time.Time) []Day {
	today := NormalizeDate(now)
	days := make([]Day, len(dates))
	for i, d := range dates {
		date := NormalizeDate(d)
		days[i] = Day{Date: date, Today: date.Equal(today)}
		for j := range entries {
			if !SameDay(entries[j].Date, date) {
				continue
			}
			if days[i].Entry == nil || entries[j].Date.After(days[i].Entry.Date) {
				days[i].Entry = &entries[j]
			}
		}
		days[i].Missed = days[i].Entry == nil && date.Before(today)
	}
	return days
}
