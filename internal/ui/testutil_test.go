package ui

import "regexp"

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes color codes so assertions see plain text.
func stripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}
