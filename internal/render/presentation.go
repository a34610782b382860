// Package render turns analysis results and history into terminal text.
// Everything here is a pure function of its arguments.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/emotionai/internal/emotion"
)

// Presentation is how a single emotion is drawn.
type Presentation struct {
	Color      lipgloss.Color // Label text
	Background lipgloss.Color // Card and bar fill
	Glyph      string
}

// presentations must have an entry for every emotion.Label.
var presentations = map[emotion.Label]Presentation{
	emotion.Happy:    {Color: "#CA8A04", Background: "#FEFCE8", Glyph: "😊"},
	emotion.Sad:      {Color: "#2563EB", Background: "#EFF6FF", Glyph: "😢"},
	emotion.Angry:    {Color: "#DC2626", Background: "#FEF2F2", Glyph: "😠"},
	emotion.Fear:     {Color: "#9333EA", Background: "#FAF5FF", Glyph: "😨"},
	emotion.Surprise: {Color: "#16A34A", Background: "#F0FDF4", Glyph: "😮"},
	emotion.Neutral:  {Color: "#4B5563", Background: "#F9FAFB", Glyph: "😐"},
}

// Lookup returns the presentation for l. Unknown labels fall back to the
// neutral presentation and ok is false.
func Lookup(l emotion.Label) (p Presentation, ok bool) {
	p, ok = presentations[l]
	if !ok {
		return presentations[emotion.Neutral], false
	}
	return p, true
}

// For is Lookup without the ok flag.
func For(l emotion.Label) Presentation {
	p, _ := Lookup(l)
	return p
}
