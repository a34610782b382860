// Package classify defines the boundary to an emotion classifier and the
// simulated classifier used until a real backend exists.
package classify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/f3rmion/emotionai/internal/emotion"
)

// ErrUnavailable is returned for every classification failure.
var ErrUnavailable = errors.New("classification unavailable")

// Classifier turns non-empty text into an emotion result.
type Classifier interface {
	Classify(ctx context.Context, text string) (emotion.Result, error)
}

// Func adapts a plain function to the Classifier interface.
type Func func(ctx context.Context, text string) (emotion.Result, error)

// Classify calls f.
func (f Func) Classify(ctx context.Context, text string) (emotion.Result, error) {
	return f(ctx, text)
}

// DefaultDelay is how long the simulated classifier takes to answer.
const DefaultDelay = 1000 * time.Millisecond

// DefaultResult is the canned answer of the simulated classifier.
func DefaultResult() emotion.Result {
	return emotion.Result{
		Emotion:    emotion.Happy,
		Confidence: 0.85,
		Secondary: []emotion.Score{
			{Emotion: emotion.Surprise, Score: 0.10},
			{Emotion: emotion.Neutral, Score: 0.05},
		},
	}
}

// Simulated stands in for a real model. It waits Delay and then returns
// Result, or ErrUnavailable when Fail is set.
type Simulated struct {
	Delay  time.Duration
	Result emotion.Result
	Fail   bool
}

// NewSimulated creates a simulated classifier with the default delay and result.
func NewSimulated() *Simulated {
	return &Simulated{
		Delay:  DefaultDelay,
		Result: DefaultResult(),
	}
}

// Classify waits for the configured delay and returns the canned result.
func (s *Simulated) Classify(ctx context.Context, text string) (emotion.Result, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return emotion.Result{}, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		}
	}

	if s.Fail {
		return emotion.Result{}, fmt.Errorf("%w: simulated failure", ErrUnavailable)
	}

	return s.Result.Clone(), nil
}

// Validating wraps a classifier and rejects results that break the
// distribution invariant. Any error from the wrapped classifier is reported
// as ErrUnavailable.
type Validating struct {
	next Classifier
}

// NewValidating wraps next.
func NewValidating(next Classifier) *Validating {
	return &Validating{next: next}
}

// Classify forwards to the wrapped classifier and validates its answer.
func (v *Validating) Classify(ctx context.Context, text string) (emotion.Result, error) {
	res, err := v.next.Classify(ctx, text)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return emotion.Result{}, err
		}
		return emotion.Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := res.Validate(); err != nil {
		return emotion.Result{}, fmt.Errorf("%w: invalid result: %v", ErrUnavailable, err)
	}

	return res, nil
}
