package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m pickerModel, keys ...tea.KeyMsg) pickerModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(pickerModel)
	}
	return m
}

var pickerNow = time.Date(2024, 1, 17, 19, 0, 0, 0, time.Local)

func TestPickerMoodOnly(t *testing.T) {
	m := newPickerModel(testTheme, pickerNow, "", false, "")
	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.done || m.moods[m.cursor] != "😐" {
		t.Errorf("done=%v mood=%s", m.done, m.moods[m.cursor])
	}
}

func TestPickerNumberKeys(t *testing.T) {
	m := press(newPickerModel(testTheme, pickerNow, "", false, ""), runes("5"))
	if !m.done || m.moods[m.cursor] != "😭" {
		t.Errorf("done=%v mood=%s", m.done, m.moods[m.cursor])
	}
}

func TestPickerPreselectsCurrent(t *testing.T) {
	m := newPickerModel(testTheme, pickerNow, "😔", false, "")
	if m.moods[m.cursor] != "😔" {
		t.Errorf("cursor on %s", m.moods[m.cursor])
	}
}

func TestPickerCursorBounds(t *testing.T) {
	m := press(newPickerModel(testTheme, pickerNow, "", false, ""), tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor != 0 {
		t.Errorf("cursor = %d", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cursor != 4 {
		t.Errorf("cursor = %d", m.cursor)
	}
}

func TestPickerWithText(t *testing.T) {
	m := newPickerModel(testTheme, pickerNow, "", true, "")
	m = press(m, runes("2"))
	if m.step != stepText || m.done {
		t.Fatalf("expected text step, got step=%d done=%v", m.step, m.done)
	}

	// Empty text is rejected with a message.
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done || m.errMsg == "" {
		t.Errorf("expected validation message, done=%v", m.done)
	}
	if !strings.Contains(stripANSI(m.View()), "Please write something") {
		t.Error("view should show the validation message")
	}

	m = press(m, runes("good day"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.done || m.input.Value() != "good day" || m.moods[m.cursor] != "🙂" {
		t.Errorf("done=%v value=%q mood=%s", m.done, m.input.Value(), m.moods[m.cursor])
	}
}

func TestPickerEscBackThenCancel(t *testing.T) {
	m := newPickerModel(testTheme, pickerNow, "", true, "draft")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.step != stepMood {
		t.Errorf("esc should go back to mood step")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.cancelled {
		t.Error("esc on mood step should cancel")
	}
	if m.View() != "" {
		t.Error("cancelled picker should render nothing")
	}
}

func TestPickerViewShowsGreeting(t *testing.T) {
	v := stripANSI(newPickerModel(testTheme, pickerNow, "", false, "").View())
	if !strings.Contains(v, "Good Evening") {
		t.Errorf("view = %q", v)
	}
	for _, m := range []string{"😃", "🙂", "😐", "😔", "😭"} {
		if !strings.Contains(v, m) {
			t.Errorf("view missing %s", m)
		}
	}
}

func TestConfirmModel(t *testing.T) {
	next, _ := confirmModel{prompt: "Wipe?"}.Update(runes("y"))
	if !next.(confirmModel).confirmed {
		t.Error("y should confirm")
	}
	next, _ = confirmModel{prompt: "Wipe?"}.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if c := next.(confirmModel); c.confirmed || !c.done {
		t.Error("enter should decline")
	}
}

func TestConfirmLine(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := ConfirmLine(strings.NewReader(tt.in), &out, "Wipe?"); got != tt.want {
			t.Errorf("ConfirmLine(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !strings.Contains(out.String(), "Wipe? [y/N]") {
			t.Errorf("prompt = %q", out.String())
		}
	}
}
