package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// ErrCancelled is returned when the user leaves the picker without saving.
var ErrCancelled = errors.New("cancelled")

type pickerStep int

const (
	stepMood pickerStep = iota
	stepText
)

const maxJournalInputLength = 2000

// pickerModel asks for a mood and, optionally, a line of journal text.
type pickerModel struct {
	theme     Theme
	greeting  string
	moods     []string
	cursor    int
	step      pickerStep
	askText   bool
	input     textinput.Model
	done      bool
	cancelled bool
	errMsg    string
}

func newPickerModel(theme Theme, now time.Time, current string, askText bool, initialText string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "How was your day?"
	ti.CharLimit = maxJournalInputLength
	ti.Width = 60
	ti.SetValue(initialText)

	m := pickerModel{
		theme:    theme,
		greeting: Greeting(now),
		moods:    mood.All(),
		askText:  askText,
		input:    ti,
	}
	for i, t := range m.moods {
		if t == current {
			m.cursor = i
		}
	}
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.cancelled = true
		return m, tea.Quit
	}
	if m.step == stepText {
		return m.updateText(key)
	}
	return m.updateMood(key)
}

func (m pickerModel) updateMood(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "left", "h", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l", "down", "j", "tab":
		if m.cursor < len(m.moods)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4", "5":
		m.cursor = int(key.String()[0] - '1')
		return m.chooseMood()
	case "enter", " ":
		return m.chooseMood()
	case "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) chooseMood() (tea.Model, tea.Cmd) {
	if !m.askText {
		m.done = true
		return m, tea.Quit
	}
	m.step = stepText
	cmd := m.input.Focus()
	return m, cmd
}

func (m pickerModel) updateText(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.step = stepMood
		m.input.Blur()
		m.errMsg = ""
		return m, nil
	case "enter":
		if strings.TrimSpace(m.input.Value()) == "" {
			m.errMsg = "Please write something about your day."
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	m.errMsg = ""
	return m, cmd
}

func (m pickerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.HeaderStyle().Render(m.greeting + "! How are you feeling?"))
	b.WriteString("\n\n")

	for i, t := range m.moods {
		cell := fmt.Sprintf(" %s ", t)
		if i == m.cursor {
			cell = m.theme.AccentStyle().Render("[" + t + "]")
		}
		b.WriteString(cell)
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.HelpStyle().Render("  " + mood.Name(m.moods[m.cursor])))
	b.WriteString("\n\n")

	if m.step == stepText {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.errMsg != "" {
			b.WriteString(m.theme.DangerStyle().Render(m.errMsg))
			b.WriteString("\n")
		}
		b.WriteString(m.theme.HelpStyle().Render("enter save • esc back • ctrl+c quit"))
	} else {
		b.WriteString(m.theme.HelpStyle().Render("←/→ choose • 1-5 pick • enter select • esc quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// PickerResult is what the user chose.
type PickerResult struct {
	Mood    string
	Content string
}

// PickMood runs the interactive picker. When askText is false only the mood
// is asked for and Content is empty. current preselects a mood token.
func PickMood(theme Theme, now time.Time, current string, askText bool, initialText string) (PickerResult, error) {
	p := tea.NewProgram(newPickerModel(theme, now, current, askText, initialText))
	result, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}
	m := result.(pickerModel)
	if m.cancelled || !m.done {
		return PickerResult{}, ErrCancelled
	}
	return PickerResult{
		Mood:    m.moods[m.cursor],
		Content: strings.TrimSpace(m.input.Value()),
	}, nil
}
