package render

import (
	"strings"
	"testing"
	"time"

	"github.com/f3rmion/emotionai/internal/analysis"
	"github.com/f3rmion/emotionai/internal/emotion"
)

func happyResult() emotion.Result {
	return emotion.Result{
		Emotion:    emotion.Happy,
		Confidence: 0.85,
		Secondary: []emotion.Score{
			{Emotion: emotion.Surprise, Score: 0.10},
			{Emotion: emotion.Neutral, Score: 0.05},
		},
	}
}

func TestPresentationExhaustive(t *testing.T) {
	glyphs := map[string]emotion.Label{}
	for _, l := range emotion.Labels() {
		p, ok := Lookup(l)
		if !ok {
			t.Errorf("no presentation for %q", l)
			continue
		}
		if p.Color == "" || p.Background == "" || p.Glyph == "" {
			t.Errorf("incomplete presentation for %q: %+v", l, p)
		}
		if other, dup := glyphs[p.Glyph]; dup {
			t.Errorf("%q and %q share glyph %s", l, other, p.Glyph)
		}
		glyphs[p.Glyph] = l
	}

	if len(presentations) != len(emotion.Labels()) {
		t.Errorf("presentation table has %d entries for %d labels", len(presentations), len(emotion.Labels()))
	}
}

func TestLookupUnknownFallsBack(t *testing.T) {
	p, ok := Lookup("bored")
	if ok {
		t.Error("Lookup of unknown label should report ok=false")
	}
	if p != For(emotion.Neutral) {
		t.Error("unknown label should fall back to neutral")
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.85, "85.0%"},
		{0.10, "10.0%"},
		{0.05, "5.0%"},
		{0, "0.0%"},
		{1, "100.0%"},
		{0.1234, "12.3%"},
		{0.0125, "1.3%"},
		{0.2025, "20.3%"},
		{0.0625, "6.3%"},
		{0.999, "99.9%"},
	}
	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		score      float64
		width      int
		wantFilled int
	}{
		{0.5, 10, 5},
		{0, 10, 0},
		{1, 10, 10},
		{1.5, 10, 10},
		{-1, 10, 0},
		{0.05, 20, 1},
	}
	for _, tt := range tests {
		filled, empty := Bar(tt.score, tt.width)
		if n := strings.Count(filled, "█"); n != tt.wantFilled {
			t.Errorf("Bar(%v, %d) filled %d, want %d", tt.score, tt.width, n, tt.wantFilled)
		}
		if n := strings.Count(filled, "█") + strings.Count(empty, "░"); n != tt.width {
			t.Errorf("Bar(%v, %d) total %d cells", tt.score, tt.width, n)
		}
	}

	if f, e := Bar(0.5, 0); f != "" || e != "" {
		t.Error("zero width bar should be empty")
	}
}

func TestLinesScenario(t *testing.T) {
	got := Lines(happyResult())
	want := []string{"happy", "Confidence: 85.0%", "surprise 10.0%", "neutral 5.0%"}

	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesKeepsGivenOrder(t *testing.T) {
	res := emotion.Result{
		Emotion:    emotion.Sad,
		Confidence: 0.5,
		Secondary: []emotion.Score{
			{Emotion: emotion.Fear, Score: 0.1},
			{Emotion: emotion.Angry, Score: 0.3},
		},
	}

	got := Lines(res)
	if got[2] != "fear 10.0%" || got[3] != "angry 30.0%" {
		t.Errorf("renderer should not re-sort: %q", got)
	}
}

func TestSummary(t *testing.T) {
	if got, want := Summary(happyResult()), "happy 85.0% (surprise 10.0%, neutral 5.0%)"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	lone := emotion.Result{Emotion: emotion.Angry, Confidence: 1}
	if got, want := Summary(lone), "angry 100.0%"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestResultView(t *testing.T) {
	if Result(nil, Options{}) != "" {
		t.Error("no result should render nothing")
	}

	res := happyResult()
	for _, width := range []int{0, 40, 120} {
		out := Result(&res, Options{Width: width})

		for _, want := range []string{"Analysis Results", "Primary Emotion", "happy", "😊", "Confidence: 85.0%", "Secondary Emotions"} {
			if !strings.Contains(out, want) {
				t.Errorf("width %d: output missing %q:\n%s", width, want, out)
			}
		}

		surprise := strings.Index(out, "surprise")
		neutral := strings.Index(out, "neutral")
		if surprise < 0 || neutral < 0 || surprise > neutral {
			t.Errorf("width %d: secondary emotions out of order:\n%s", width, out)
		}
		if !strings.Contains(out, "10.0%") || !strings.Contains(out, "5.0%") {
			t.Errorf("width %d: missing secondary percentages:\n%s", width, out)
		}
	}
}

func TestPrimaryBanner(t *testing.T) {
	out := Primary(happyResult(), "BANNER")
	if !strings.Contains(out, "BANNER") {
		t.Errorf("banner not rendered:\n%s", out)
	}
}

func TestSecondaryEmpty(t *testing.T) {
	out := Secondary(emotion.Result{Emotion: emotion.Happy, Confidence: 1})
	if !strings.Contains(out, "none") {
		t.Errorf("empty secondary list should say none:\n%s", out)
	}
}

func TestHistoryView(t *testing.T) {
	var l analysis.Ledger
	if History(l, 80) != "" {
		t.Error("empty history should render nothing")
	}

	res := happyResult()
	at := time.Date(2026, 10, 14, 15, 4, 5, 0, time.Local)
	l = l.Push(entry("older, no result", nil, at))
	l = l.Push(entry("I love this!", &res, at))

	out := History(l, 80)
	if !strings.Contains(out, "Analysis History") || !strings.Contains(out, "I love this!") {
		t.Errorf("history missing entry:\n%s", out)
	}
	if strings.Contains(out, "older, no result") {
		t.Errorf("entry without result should be skipped:\n%s", out)
	}
	if !strings.Contains(out, "3:04:05 PM") {
		t.Errorf("history missing capture time:\n%s", out)
	}
}

func TestHistoryRowTruncates(t *testing.T) {
	res := happyResult()
	long := strings.Repeat("word ", 50)

	row, ok := HistoryRow(analysis.Entry{Text: long + "\nsecond line", Result: &res, CapturedAt: time.Now()}, 50)
	if !ok {
		t.Fatal("row with result should render")
	}
	if !strings.Contains(row, "…") {
		t.Errorf("long text should be truncated:\n%s", row)
	}
	if strings.Contains(row, "second line") {
		t.Errorf("text should be truncated before the second line:\n%s", row)
	}
}

func TestHistoryRowNilResult(t *testing.T) {
	if _, ok := HistoryRow(analysis.Entry{Text: "x"}, 80); ok {
		t.Error("row without result should be skipped")
	}
}

// entry builds a history entry for tests.
func entry(text string, res *emotion.Result, at time.Time) analysis.Entry {
	return analysis.Entry{Text: text, Result: res, CapturedAt: at}
}
