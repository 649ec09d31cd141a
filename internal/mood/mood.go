// Package mood defines the closed set of mood tokens and their happiness scale.
package mood

import (
	"fmt"
	"strings"
)

// The five mood tokens, most positive first.
const (
	Great = "😃"
	Good  = "🙂"
	Okay  = "😐"
	Down  = "😔"
	Awful = "😭"
)

// NeutralScale is the scale value used for tokens outside the closed set.
const NeutralScale = 3

var all = []string{Great, Good, Okay, Down, Awful}

var scale = map[string]int{
	Great: 5,
	Good:  4,
	Okay:  3,
	Down:  2,
	Awful: 1,
}

var aliases = map[string]string{
	"great": Great,
	"good":  Good,
	"okay":  Okay,
	"ok":    Okay,
	"down":  Down,
	"awful": Awful,
}

var names = map[string]string{
	Great: "great",
	Good:  "good",
	Okay:  "okay",
	Down:  "down",
	Awful: "awful",
}

// All returns the mood tokens in display order.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// Scale maps a token to 1..5. Unknown tokens are neutral, not an error.
func Scale(token string) int {
	if v, ok := scale[token]; ok {
		return v
	}
	return NeutralScale
}

// Valid reports whether token is one of the five moods.
func Valid(token string) bool {
	_, ok := scale[token]
	return ok
}

// Name returns the word alias for a token, or the token itself if unknown.
func Name(token string) string {
	if n, ok := names[token]; ok {
		return n
	}
	return token
}

// Parse accepts an emoji token or its word alias and returns the emoji token.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if Valid(s) {
		return s, nil
	}
	if token, ok := aliases[strings.ToLower(s)]; ok {
		return token, nil
	}
	return "", fmt.Errorf("unknown mood %q (use one of %s or great, good, okay, down, awful)", s, strings.Join(all, " "))
}
