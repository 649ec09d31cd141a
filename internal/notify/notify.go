// Package notify sends the daily "log your mood" desktop reminder.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/chris-regnier/moodctl/internal/config"
)

const appName = "moodctl"

// Sender delivers a notification.
type Sender func(title, message string) error

// Desktop sends through the platform notification service.
func Desktop(title, message string) error {
	return beeep.Notify(title, message, "")
}

// FormatReminder returns the reminder title and message for the current
// streak of logged days.
func FormatReminder(streak int) (string, string) {
	title := "How are you feeling today?"
	var msg string
	switch {
	case streak <= 0:
		msg = "You haven't logged your mood today. Take a moment to check in."
	case streak == 1:
		msg = "Keep it going: you logged yesterday. Log today's mood too."
	default:
		msg = fmt.Sprintf("You're on a %d-day streak. Log today's mood to keep it alive.", streak)
	}
	return appName + ": " + title, msg
}

// NextAt computes the next reminder time strictly after now that falls on
// a configured day. An unparseable time falls back to 20:00 and an empty
// day list means every day.
func NextAt(now time.Time, rc config.ReminderConfig) time.Time {
	loc := rc.Location()
	now = now.In(loc)

	hour, min := 20, 0
	if t, err := time.ParseInLocation("15:04", strings.TrimSpace(rc.Time), loc); err == nil {
		hour, min = t.Hour(), t.Minute()
	}

	days := map[time.Weekday]bool{}
	for _, d := range rc.Days {
		if wd, ok := parseWeekday(d); ok {
			days[wd] = true
		}
	}
	allowed := func(t time.Time) bool {
		return len(days) == 0 || days[t.Weekday()]
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	for i := 0; i < 7 && !allowed(cand); i++ {
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()[:3]) == s[:3] {
			return wd, true
		}
	}
	return 0, false
}

// Watch calls f at every configured reminder time until ctx is canceled.
func Watch(ctx context.Context, rc config.ReminderConfig, f func(now time.Time)) {
	next := NextAt(time.Now(), rc)
	t := time.NewTimer(time.Until(next))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			f(now)
			next = NextAt(time.Now(), rc)
			t.Reset(time.Until(next))
		}
	}
}
