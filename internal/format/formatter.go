// Package format renders match records as display lines: a bracketed
// location prefix followed by the matched line with the match span
// emphasized.
package format

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

// highlightStyle emphasizes the matched span. Bold red, the convention
// grep-alikes use for the hit itself.
var highlightStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("196"))

// Formatter renders match records for terminal display. With color disabled
// the output is plain text with the same layout.
type Formatter struct {
	color bool
}

// New creates a Formatter. color controls whether the match span is wrapped
// in terminal emphasis.
func New(color bool) *Formatter {
	return &Formatter{color: color}
}

// Format renders one record as a single display line: the location prefix,
// then the full matched line with the span emphasized and the remainder
// unmodified.
func (f *Formatter) Format(rec dbgrep.MatchRecord) string {
	line := rec.MatchedText()
	start, end := rec.Span()

	body := line
	if f.color && end > start {
		body = line[:start] + highlightStyle.Render(line[start:end]) + line[end:]
	}
	return Location(rec) + " " + body
}

// Render returns every display line for a record. Text matches carrying
// context expand to their surrounding lines (unemphasized, same prefix
// form) around the match line; everything else renders as one line.
func (f *Formatter) Render(rec dbgrep.MatchRecord) []string {
	tm, ok := rec.(dbgrep.TextMatch)
	if !ok || (len(tm.Before) == 0 && len(tm.After) == 0) {
		return []string{f.Format(rec)}
	}

	base := filepath.Base(tm.File)
	lines := make([]string, 0, len(tm.Before)+len(tm.After)+1)
	for _, c := range tm.Before {
		lines = append(lines, fmt.Sprintf("[%s:%d] %s", base, c.LineNum, c.Text))
	}
	lines = append(lines, f.Format(rec))
	for _, c := range tm.After {
		lines = append(lines, fmt.Sprintf("[%s:%d] %s", base, c.LineNum, c.Text))
	}
	return lines
}

// Location returns the bracketed source prefix for a record:
// [basename:line] for text matches, [basename:table.column:rowN] for
// database matches.
func Location(rec dbgrep.MatchRecord) string {
	switch m := rec.(type) {
	case dbgrep.TextMatch:
		return fmt.Sprintf("[%s:%d]", filepath.Base(m.File), m.LineNum)
	case dbgrep.DatabaseMatch:
		return fmt.Sprintf("[%s:%s.%s:row%d]", filepath.Base(m.File), m.Table, m.Column, m.Row)
	default:
		return fmt.Sprintf("[%s]", filepath.Base(rec.Source()))
	}
}
