package render

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Percent formats a score in [0,1] as a percentage with one decimal, e.g. 0.85 -> "85.0%".
// Ties round away from zero, so 0.0125 is "1.3%".
func Percent(score float64) string {
	return fmt.Sprintf("%.1f%%", roundTenth(score*100))
}

// roundTenth rounds v to one decimal, halves away from zero.
func roundTenth(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*10+0.5) / 10
	}
	return math.Floor(v*10+0.5) / 10
}

// Bar draws a score bar of the given width. The filled part is proportional
// to the score, clamped to [0,1].
func Bar(score float64, width int) (filled, empty string) {
	if width <= 0 {
		return "", ""
	}
	score = math.Max(0, math.Min(1, score))
	n := int(math.Round(score * float64(width)))
	return strings.Repeat("█", n), strings.Repeat("░", width-n)
}

// Clock formats a capture time as a local wall clock time.
func Clock(t time.Time) string {
	return t.Local().Format("3:04:05 PM")
}
