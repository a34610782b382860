package analysis

import (
	"strings"
	"time"

	"github.com/f3rmion/emotionai/internal/emotion"
)

// Status is the trigger state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Session is the whole state of the analyze screen. All transitions go
// through its methods so that at most one request is ever in flight and the
// history never grows past MaxHistory.
type Session struct {
	input   string
	pending string // text of the in-flight request
	status  Status
	result  *emotion.Result
	history Ledger

	now func() time.Time
}

// NewSession creates an idle session with an empty history.
func NewSession() Session {
	return Session{now: time.Now}
}

// WithClock returns a copy of s that timestamps history entries with now.
func (s Session) WithClock(now func() time.Time) Session {
	s.now = now
	return s
}

// SetInput replaces the current input text. Editing is allowed while loading.
func (s *Session) SetInput(text string) {
	s.input = text
}

// Input returns the current input text.
func (s Session) Input() string {
	return s.input
}

// Status returns the current trigger state.
func (s Session) Status() Status {
	return s.status
}

// Loading reports whether a request is in flight.
func (s Session) Loading() bool {
	return s.status == StatusLoading
}

// CanSubmit reports whether the trigger is enabled.
func (s Session) CanSubmit() bool {
	return s.status == StatusIdle && strings.TrimSpace(s.input) != ""
}

// Submit moves the session to loading and returns the text to classify. It
// returns ok=false, leaving the session untouched, when the trigger is
// disabled. The displayed result is kept until a new one arrives.
func (s *Session) Submit() (text string, ok bool) {
	if !s.CanSubmit() {
		return "", false
	}
	s.status = StatusLoading
	s.pending = s.input
	return s.pending, true
}

// Pending returns the text of the in-flight request, if any.
func (s Session) Pending() string {
	return s.pending
}

// Resolve completes the in-flight request with res: it becomes the displayed
// result and is recorded at the head of the history. It returns false and
// does nothing if no request is in flight.
func (s *Session) Resolve(res emotion.Result) bool {
	if s.status != StatusLoading {
		return false
	}

	shown := res.Clone()
	recorded := res.Clone()
	s.result = &shown
	s.history = s.history.Push(Entry{
		Text:       s.pending,
		Result:     &recorded,
		CapturedAt: s.clock(),
	})
	s.finish()
	return true
}

// Fail completes the in-flight request without touching the result or the
// history. It returns false if no request is in flight.
func (s *Session) Fail() bool {
	if s.status != StatusLoading {
		return false
	}
	s.finish()
	return true
}

// Result returns the displayed result, or nil before the first success.
func (s Session) Result() *emotion.Result {
	if s.result == nil {
		return nil
	}
	r := s.result.Clone()
	return &r
}

// History returns the ledger of past analyses.
func (s Session) History() Ledger {
	return s.history
}

func (s *Session) finish() {
	s.status = StatusIdle
	s.pending = ""
}

func (s Session) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
