package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/day"
	"github.com/chris-regnier/moodctl/internal/entry"
	"github.com/chris-regnier/moodctl/internal/habit"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/stats"
	"github.com/chris-regnier/moodctl/internal/week"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// FormatEntrySaved formats the confirmation after logging today's mood.
func FormatEntrySaved(w io.Writer, e entry.Entry, created bool) {
	verb := "Updated"
	if created {
		verb = "Logged"
	}
	fmt.Fprintf(w, "%s %s for %s (%s)\n", verb, e.Mood, e.Date.Local().Format(dateLayout), e.ID)
}

// FormatNoChanges formats a "no changes" message.
func FormatNoChanges(w io.Writer) {
	fmt.Fprintln(w, "No changes detected; nothing saved.")
}

// FormatEntryFull formats a full entry display with metadata header.
// The markdownStyle parameter controls glamour rendering (e.g. "dark", "light").
func FormatEntryFull(w io.Writer, e entry.Entry, markdownStyle string) {
	fmt.Fprintf(w, "Entry: %s\n", e.ID)
	fmt.Fprintf(w, "Date: %s\n", e.Date.Local().Format(dateTimeLayout))
	fmt.Fprintf(w, "Mood: %s %s\n", e.Mood, mood.Name(e.Mood))
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderMarkdownWithStyle(e.Content, 80, markdownStyle))
}

// FormatToday formats the greeting and today's entry, if any.
func FormatToday(w io.Writer, e entry.Entry, ok bool, now time.Time, markdownStyle string) {
	fmt.Fprintf(w, "%s! %s\n\n", Greeting(now), now.Format("Monday, January 2"))
	if !ok {
		fmt.Fprintln(w, "You haven't logged your mood today. Run `moodctl log` to check in.")
		return
	}
	FormatEntryFull(w, e, markdownStyle)
}

// FormatEntryList formats entries one per line, in stored order.
func FormatEntryList(w io.Writer, entries []entry.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No mood entries found.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			e.Date.Local().Format(dateLayout),
			e.Mood,
			e.ID,
			e.Preview(60),
		)
	}
}

// FormatIDs writes one entry ID per line.
func FormatIDs(w io.Writer, entries []entry.Entry) {
	for _, e := range entries {
		fmt.Fprintln(w, e.ID)
	}
}

// FormatWeek formats the day-by-day layout of a week window.
func FormatWeek(w io.Writer, win week.Window, days []day.Day, theme Theme) {
	last := win.End.AddDate(0, 0, -1)
	fmt.Fprintln(w, theme.HeaderStyle().Render(fmt.Sprintf("Week %s – %s (%s)",
		win.Start.Format("Jan 2"), last.Format("Jan 2"), win.Policy)))
	for _, d := range days {
		label := d.Date.Format("Mon 01-02")
		marker := "  "
		if d.Today {
			marker = theme.AccentStyle().Render("▸ ")
		}
		switch {
		case d.Entry != nil:
			fmt.Fprintf(w, "%s%s  %s  %s\n", marker, label,
				theme.MoodStyle(d.Entry.Mood).Render(d.Entry.Mood), d.Entry.Preview(50))
		case d.Missed:
			fmt.Fprintf(w, "%s%s  %s\n", marker, label,
				theme.HelpStyle().Render("·   you forgot to log your mood this day"))
		case d.Today:
			fmt.Fprintf(w, "%s%s  %s\n", marker, label,
				theme.HelpStyle().Render("?   not logged yet"))
		default:
			fmt.Fprintf(w, "%s%s\n", marker, label)
		}
	}
}

// FormatStats formats the weekday summary with a horizontal bar chart.
func FormatStats(w io.Writer, title string, s stats.Summary, theme Theme) {
	fmt.Fprintln(w, theme.HeaderStyle().Render(title))
	if !s.HasData() {
		fmt.Fprintln(w, "No mood entries found.")
		return
	}
	fmt.Fprint(w, RenderBarChart(s, theme, 25))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Average mood: %.2f over %d %s\n", s.Average, s.Total, plural(s.Total, "entry", "entries"))
	fmt.Fprintf(w, "Best day:     %s\n", stats.WeekdayNames[s.Best])
	fmt.Fprintf(w, "Worst day:    %s\n", stats.WeekdayNames[s.Worst])
}

// FormatHabits formats the habit checklist.
func FormatHabits(w io.Writer, habits []habit.Habit) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits yet. Add one with `moodctl habit add <title>`.")
		return
	}
	done := 0
	for _, h := range habits {
		box := "[ ]"
		if h.Completed {
			box = "[x]"
			done++
		}
		fmt.Fprintf(w, "%s %s  %s\n", box, h.ID, h.Title)
	}
	fmt.Fprintf(w, "\n%d/%d done\n", done, len(habits))
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveResult is the JSON form of a log confirmation.
type SaveResult struct {
	Entry   entry.Entry `json:"entry"`
	Created bool        `json:"created"`
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Scale   int    `json:"scale"`
	Preview string `json:"preview"`
}

// ToSummaries converts entries to summary format for JSON list output.
func ToSummaries(entries []entry.Entry) []EntrySummary {
	summaries := make([]EntrySummary, len(entries))
	for i, e := range entries {
		summaries[i] = EntrySummary{
			ID:      e.ID,
			Date:    e.Date.Local().Format(dateLayout),
			Mood:    e.Mood,
			Scale:   mood.Scale(e.Mood),
			Preview: e.Preview(60),
		}
	}
	return summaries
}

// DayJSON is the JSON representation of one day of a week layout.
type DayJSON struct {
	Date   string        `json:"date"`
	Today  bool          `json:"today"`
	Missed bool          `json:"missed"`
	Entry  *EntrySummary `json:"entry,omitempty"`
}

// WeekJSON is the JSON representation of a week layout.
type WeekJSON struct {
	Policy string    `json:"policy"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Days   []DayJSON `json:"days"`
}

// BuildWeek converts a layout to its JSON form. End is the last day
// inside the window.
func BuildWeek(win week.Window, days []day.Day) WeekJSON {
	out := WeekJSON{
		Policy: string(win.Policy),
		Start:  win.Start.Format(dateLayout),
		End:    win.End.AddDate(0, 0, -1).Format(dateLayout),
		Days:   make([]DayJSON, len(days)),
	}
	for i, d := range days {
		out.Days[i] = DayJSON{Date: d.Date.Format(dateLayout), Today: d.Today, Missed: d.Missed}
		if d.Entry != nil {
			s := ToSummaries([]entry.Entry{*d.Entry})[0]
			out.Days[i].Entry = &s
		}
	}
	return out
}

// StatsJSON is the JSON representation of a weekday summary.
type StatsJSON struct {
	Reduction string             `json:"reduction"`
	Weekdays  map[string]float64 `json:"weekdays"`
	Counts    map[string]int     `json:"counts"`
	Average   float64            `json:"average"`
	Best      string             `json:"best"`
	Worst     string             `json:"worst"`
	Total     int                `json:"total"`
}

// BuildStats converts a summary to its JSON form.
func BuildStats(s stats.Summary, r stats.Reduction) StatsJSON {
	out := StatsJSON{
		Reduction: string(r),
		Weekdays:  make(map[string]float64, 7),
		Counts:    make(map[string]int, 7),
		Average:   s.Average,
		Best:      stats.WeekdayNames[s.Best],
		Worst:     stats.WeekdayNames[s.Worst],
		Total:     s.Total,
	}
	for i, label := range stats.WeekdayLabels {
		out.Weekdays[label] = s.PerWeekday[i]
		out.Counts[label] = s.Counts[i]
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
