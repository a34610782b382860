package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/emotionai/internal/emotion"
)

var (
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#f1faee"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a8dadc")).
			MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2)

	barTrackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3d5a80"))
)

const (
	minCardWidth = 30
	barWidth     = 20
)

// Options controls layout of the result section.
type Options struct {
	Width  int    // Available width; 0 means unconstrained
	Banner string // Optional pre-rendered art of the primary label
}

// Result renders the "Analysis Results" section, or "" when there is no result.
func Result(res *emotion.Result, opts Options) string {
	if res == nil {
		return ""
	}

	primary := Primary(*res, opts.Banner)
	secondary := Secondary(*res)

	var body string
	if opts.Width == 0 || opts.Width >= 2*(minCardWidth+3) {
		cardWidth := minCardWidth
		if opts.Width > 0 {
			cardWidth = opts.Width/2 - 3 // border plus the gap
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			cardStyle.Width(cardWidth).Render(primary),
			" ",
			cardStyle.Width(cardWidth).Render(secondary),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			cardStyle.Render(primary),
			cardStyle.Render(secondary),
		)
	}

	return sectionTitleStyle.Render("Analysis Results") + "\n" + body
}

// Primary renders the primary emotion card content: glyph, label and confidence.
func Primary(res emotion.Result, banner string) string {
	p := For(res.Emotion)
	label := lipgloss.NewStyle().Bold(true).Foreground(p.Color).Render(res.Emotion.String())

	var b strings.Builder
	b.WriteString(headingStyle.Render("Primary Emotion"))
	b.WriteString("\n")
	if banner != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Color).Render(banner))
		b.WriteString("\n")
	}
	b.WriteString(p.Glyph + "  " + label)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Confidence: " + Percent(res.Confidence)))
	return b.String()
}

// Secondary renders the secondary emotions in the order given, each with a score bar.
func Secondary(res emotion.Result) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Secondary Emotions"))

	if len(res.Secondary) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("none"))
		return b.String()
	}

	for _, s := range res.Secondary {
		p := For(s.Emotion)
		filled, empty := Bar(s.Score, barWidth)

		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			p.Glyph,
			lipgloss.NewStyle().Foreground(p.Color).Render(s.Emotion.String()),
			mutedStyle.Render(Percent(s.Score)),
		))
		b.WriteString("    ")
		b.WriteString(lipgloss.NewStyle().Foreground(p.Background).Render(filled))
		b.WriteString(barTrackStyle.Render(empty))
	}
	return b.String()
}

// Lines renders res as unstyled lines: the label, its confidence, then one
// line per secondary emotion in the order given.
func Lines(res emotion.Result) []string {
	lines := []string{
		res.Emotion.String(),
		"Confidence: " + Percent(res.Confidence),
	}
	for _, s := range res.Secondary {
		lines = append(lines, s.Emotion.String()+" "+Percent(s.Score))
	}
	return lines
}

// Summary renders res on one line, e.g. "happy 85.0% (surprise 10.0%, neutral 5.0%)".
func Summary(res emotion.Result) string {
	out := res.Emotion.String() + " " + Percent(res.Confidence)
	if len(res.Secondary) == 0 {
		return out
	}

	parts := make([]string, 0, len(res.Secondary))
	for _, s := range res.Secondary {
		parts = append(parts, s.Emotion.String()+" "+Percent(s.Score))
	}
	return out + " (" + strings.Join(parts, ", ") + ")"
}
