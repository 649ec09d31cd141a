package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/moodctl/internal/config"
)

func TestPagerViewPreservesContent(t *testing.T) {
	m := pagerModel{
		content: "This is the pager content",
		theme:   ResolveTheme(config.ThemeConfig{}),
	}

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = sized.(pagerModel)

	stripped := stripANSI(m.View())
	if !strings.Contains(stripped, "pager content") {
		t.Error("expected pager content in output")
	}
	if !strings.Contains(stripped, "scroll") {
		t.Error("expected footer help text in output")
	}
}

func TestPagerNotReady(t *testing.T) {
	m := pagerModel{content: "x"}
	if !strings.Contains(m.View(), "Loading") {
		t.Error("expected loading text before first resize")
	}
}

func TestPagerCentersWithMaxWidth(t *testing.T) {
	m := pagerModel{content: "centered", maxWidth: 40, theme: ResolveTheme(config.ThemeConfig{})}
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	m = sized.(pagerModel)

	first := strings.Split(stripANSI(m.View()), "\n")[0]
	if !strings.HasPrefix(first, strings.Repeat(" ", 30)+"centered") {
		t.Errorf("expected 30 columns of padding, got %q", first)
	}
}

func TestPagerQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := pagerModel{}.Update(k)
		if cmd == nil {
			t.Errorf("%s: expected quit command", k)
		}
	}
}

func TestOutputOrPageNonStdout(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputOrPage(&buf, "hello\n", false, Theme{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("got %q", buf.String())
	}
}
