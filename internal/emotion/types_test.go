package emotion

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func sample() Result {
	return Result{
		Emotion:    Happy,
		Confidence: 0.85,
		Secondary: []Score{
			{Emotion: Surprise, Score: 0.10},
			{Emotion: Neutral, Score: 0.05},
		},
	}
}

func TestLabelsClosedSet(t *testing.T) {
	got := Labels()
	want := []Label{Happy, Sad, Angry, Fear, Surprise, Neutral}
	if len(got) != len(want) {
		t.Fatalf("Labels() returned %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], want[i])
		}
		if !got[i].Valid() {
			t.Errorf("%q should be valid", got[i])
		}
	}

	got[0] = "mutated"
	if Labels()[0] != Happy {
		t.Error("Labels() should return a copy")
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		wantErr bool
	}{
		{"happy", Happy, false},
		{"  Surprise ", Surprise, false},
		{"FEAR", Fear, false},
		{"joy", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseLabel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLabel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabelUnmarshalText(t *testing.T) {
	var got struct {
		Emotion Label `json:"emotion"`
	}
	if err := json.Unmarshal([]byte(`{"emotion":" Happy "}`), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Emotion != Happy {
		t.Errorf("emotion = %q, want happy", got.Emotion)
	}

	if err := json.Unmarshal([]byte(`{"emotion":"joy"}`), &got); err == nil {
		t.Error("unknown emotion should fail to decode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Result)
		wantErr string
	}{
		{"well formed", func(r *Result) {}, ""},
		{"no secondary", func(r *Result) { r.Secondary = nil }, ""},
		{"sums to exactly one", func(r *Result) { r.Confidence = 0.85; r.Secondary[0].Score = 0.1; r.Secondary[1].Score = 0.05 }, ""},
		{"unknown primary", func(r *Result) { r.Emotion = "joy" }, "unknown primary"},
		{"confidence above one", func(r *Result) { r.Confidence = 1.2 }, "out of range"},
		{"negative confidence", func(r *Result) { r.Confidence = -0.1 }, "out of range"},
		{"NaN confidence", func(r *Result) { r.Confidence = math.NaN() }, "out of range"},
		{"unknown secondary", func(r *Result) { r.Secondary[0].Emotion = "bored" }, "unknown emotion"},
		{"primary repeated", func(r *Result) { r.Secondary[1].Emotion = Happy }, "repeated"},
		{"secondary repeated", func(r *Result) { r.Secondary[1].Emotion = Surprise }, "repeated"},
		{"unsorted secondary", func(r *Result) { r.Secondary[0].Score = 0.01 }, "ranked above"},
		{"sum above one", func(r *Result) { r.Confidence = 0.9 }, "more than 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sample()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestClone(t *testing.T) {
	r := sample()
	c := r.Clone()
	c.Secondary[0].Score = 0.5

	if r.Secondary[0].Score != 0.10 {
		t.Error("Clone should not share the secondary slice")
	}
}
