package presentation

import (
	"strings"

	"github.com/kcaldas/termfolio/pkg/session"
	"github.com/kcaldas/termfolio/pkg/terminal"
)

// EventFormatter turns output log entries into colored terminal text
type EventFormatter struct {
	theme  *Theme
	prompt string
}

func NewEventFormatter(theme *Theme, prompt string) *EventFormatter {
	return &EventFormatter{theme: theme, prompt: prompt}
}

// Format renders one event; clear events render nothing
func (f *EventFormatter) Format(e terminal.Event) string {
	switch e.Kind {
	case terminal.EventEcho:
		return Colorize(f.theme.Prompt, f.prompt) + " " + Colorize(f.theme.Command, e.Text)
	case terminal.EventError:
		return Colorize(f.theme.Error, "Error: "+e.Text)
	case terminal.EventLine:
		return f.formatLine(e.Text)
	case terminal.EventBlock:
		if e.Structured {
			return Colorize(f.theme.Accent, strings.TrimRight(e.Text, "\n"))
		}
		return Colorize(f.theme.Text, strings.TrimRight(e.Text, "\n"))
	default:
		return ""
	}
}

// [ OK ] markers are shown in the success color
func (f *EventFormatter) formatLine(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "[ OK ]") {
			lines[i] = Colorize(f.theme.Success, "[ OK ]") + Colorize(f.theme.Text, strings.TrimPrefix(line, "[ OK ]"))
			continue
		}
		lines[i] = Colorize(f.theme.Text, line)
	}
	return strings.Join(lines, "\n")
}

// FormatEntries renders a log snapshot one event per paragraph
func (f *EventFormatter) FormatEntries(entries []session.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		if e.Event.Kind == terminal.EventClearAll {
			continue
		}
		b.WriteString(f.Format(e.Event))
		b.WriteString("\n")
	}
	return b.String()
}

// PlainText renders entries without colors, as copied to the clipboard
func PlainText(prompt string, entries []session.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		switch e.Event.Kind {
		case terminal.EventEcho:
			b.WriteString(prompt + " " + e.Event.Text)
		case terminal.EventError:
			b.WriteString("Error: " + e.Event.Text)
		case terminal.EventClearAll:
			continue
		default:
			b.WriteString(strings.TrimRight(e.Event.Text, "\n"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
