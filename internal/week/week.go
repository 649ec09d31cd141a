// Package week computes the "this week" window used by the weekly views.
//
// Two policies exist and are kept distinct:
//
//   - ISO: the calendar week containing the reference day, Monday 00:00
//     through the following Monday 00:00 (exclusive).
//   - Rolling: the seven calendar days ending with the reference day.
//
// Membership is decided at calendar-day granularity; the time of day of an
// entry never affects inclusion.
package week

import (
	"fmt"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/entry"
)

// Policy selects how the window is computed.
type Policy string

const (
	ISO     Policy = "iso"
	Rolling Policy = "rolling"
)

// ParsePolicy validates a policy name. Empty means ISO.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", ISO:
		return ISO, nil
	case Rolling:
		return Rolling, nil
	default:
		return "", fmt.Errorf("unknown week window %q (use iso or rolling)", s)
	}
}

// Window is a half-open range of local calendar days [Start, End).
type Window struct {
	Policy Policy
	Start  time.Time
	End    time.Time
}

// Current returns the window containing now under policy.
func Current(now time.Time, policy Policy) Window {
	today := day.NormalizeDate(now)
	var start time.Time
	switch policy {
	case Rolling:
		start = today.AddDate(0, 0, -6)
	default:
		policy = ISO
		start = today.AddDate(0, 0, -day.WeekdayIndex(today))
	}
	return Window{Policy: policy, Start: start, End: start.AddDate(0, 0, 7)}
}

// Contains reports whether t's calendar day lies inside the window.
func (w Window) Contains(t time.Time) bool {
	d := day.NormalizeDate(t)
	return !d.Before(w.Start) && d.Before(w.End)
}

// Days returns the seven dates of the window in order.
func (w Window) Days() []time.Time {
	days := make([]time.Time, 0, 7)
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Filter returns the entries inside the window, preserving order.
func (w Window) Filter(entries []entry.Entry) []entry.Entry {
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if w.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// EntriesInWindow filters entries to the window containing now.
func EntriesInWindow(entries []entry.Entry, now time.Time, policy Policy) []entry.Entry {
	return Current(now, policy).Filter(entries)
}
