// Package emotion provides the core types for emotion classification results.
package emotion

import (
	"fmt"
	"math"
	"strings"
)

// Label is one of the fixed set of emotions a classifier can report.
type Label string

const (
	Happy    Label = "happy"
	Sad      Label = "sad"
	Angry    Label = "angry"
	Fear     Label = "fear"
	Surprise Label = "surprise"
	Neutral  Label = "neutral"
)

// labels is the closed label set in display order.
var labels = []Label{Happy, Sad, Angry, Fear, Surprise, Neutral}

// Labels returns every known label in declaration order.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// Valid reports whether l belongs to the closed label set.
func (l Label) Valid() bool {
	for _, known := range labels {
		if l == known {
			return true
		}
	}
	return false
}

func (l Label) String() string {
	return string(l)
}

// ParseLabel converts user input such as " Happy " into a Label.
func ParseLabel(s string) (Label, error) {
	l := Label(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown emotion %q", s)
	}
	return l, nil
}

// UnmarshalText decodes config and JSON input through ParseLabel, so
// "Happy" and " happy " both decode to Happy.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Score pairs a label with a score in [0,1].
type Score struct {
	Emotion Label   `yaml:"emotion" json:"emotion"`
	Score   float64 `yaml:"score" json:"score"`
}

// Result is what a classifier returns for one piece of text.
type Result struct {
	Emotion    Label   `yaml:"emotion" json:"emotion"`                       // Primary emotion
	Confidence float64 `yaml:"confidence" json:"confidence"`                 // Confidence of the primary emotion
	Secondary  []Score `yaml:"secondary_emotions" json:"secondary_emotions"` // Remaining emotions, highest first
}

// sumTolerance absorbs float rounding when checking that scores add up to at most 1.
const sumTolerance = 1e-9

// Validate checks that r is a well-formed distribution: known labels, scores
// in [0,1], the primary not repeated, secondary scores non-increasing, and the
// total not exceeding 1.
func (r Result) Validate() error {
	if !r.Emotion.Valid() {
		return fmt.Errorf("unknown primary emotion %q", r.Emotion)
	}
	if !inUnitRange(r.Confidence) {
		return fmt.Errorf("confidence %v out of range [0,1]", r.Confidence)
	}

	total := r.Confidence
	prev := math.Inf(1)
	seen := map[Label]bool{r.Emotion: true}
	for i, s := range r.Secondary {
		if !s.Emotion.Valid() {
			return fmt.Errorf("secondary[%d]: unknown emotion %q", i, s.Emotion)
		}
		if seen[s.Emotion] {
			return fmt.Errorf("secondary[%d]: emotion %q repeated", i, s.Emotion)
		}
		seen[s.Emotion] = true
		if !inUnitRange(s.Score) {
			return fmt.Errorf("secondary[%d]: score %v out of range [0,1]", i, s.Score)
		}
		if s.Score > prev {
			return fmt.Errorf("secondary[%d]: score %v ranked above %v", i, s.Score, prev)
		}
		prev = s.Score
		total += s.Score
	}

	if total > 1+sumTolerance {
		return fmt.Errorf("scores sum to %v, more than 1", total)
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate shared secondary slices.
func (r Result) Clone() Result {
	out := r
	if r.Secondary != nil {
		out.Secondary = make([]Score, len(r.Secondary))
		copy(out.Secondary, r.Secondary)
	}
	return out
}

func inUnitRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
