package ui

import "time"

// Greeting returns the time-of-day salutation shown above the journal.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 7 && h < 12:
		return "Good Morning"
	case h >= 12 && h < 18:
		return "Good Afternoon"
	case h >= 18 && h < 21:
		return "Good Evening"
	default:
		return "Good Night"
	}
}
