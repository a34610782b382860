package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/emotionai/internal/analysis"
	"github.com/mattn/go-runewidth"
)

var (
	historyRowStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3d5a80")).
			PaddingLeft(1)

	historyTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8a8a8"))
)

// History renders the "Analysis History" section, or "" when the ledger is empty.
// Entries without a result are skipped.
func History(l analysis.Ledger, width int) string {
	if l.Len() == 0 {
		return ""
	}

	var rows []string
	for _, e := range l.Entries() {
		if row, ok := HistoryRow(e, width); ok {
			rows = append(rows, row)
		}
	}

	return sectionTitleStyle.Render("Analysis History") + "\n" + strings.Join(rows, "\n")
}

// HistoryRow renders one entry as two lines: truncated text with the capture
// time, then the glyph and label. ok is false for entries without a result.
func HistoryRow(e analysis.Entry, width int) (row string, ok bool) {
	if e.Result == nil {
		return "", false
	}

	p := For(e.Result.Emotion)
	clock := Clock(e.CapturedAt)

	textWidth := width - runewidth.StringWidth(clock) - 4
	if width <= 0 || textWidth < 10 {
		textWidth = 40
	}
	text := runewidth.Truncate(oneLine(e.Text), textWidth, "…")
	text = runewidth.FillRight(text, textWidth)

	top := historyTextStyle.Render(text) + "  " + mutedStyle.Render(clock)
	bottom := p.Glyph + "  " + lipgloss.NewStyle().Bold(true).Foreground(p.Color).Render(e.Result.Emotion.String())

	return historyRowStyle.Render(top + "\n" + bottom), true
}

// oneLine collapses runs of whitespace, including newlines, into single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
