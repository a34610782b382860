// Package analysis holds the state of an interactive analysis session: the
// current input, the in-flight request, the displayed result and the history.
package analysis

import (
	"time"

	"github.com/f3rmion/emotionai/internal/emotion"
)

// MaxHistory is the number of past analyses kept in the ledger.
const MaxHistory = 5

// Entry is one past analysis.
type Entry struct {
	Text       string          // Text that was analyzed
	Result     *emotion.Result // May be nil; skipped when rendering
	CapturedAt time.Time
}

// Ledger is a bounded, newest-first list of entries. The zero value is empty.
type Ledger struct {
	entries []Entry
}

// Push returns a new ledger with e prepended, truncated to MaxHistory entries.
// The receiver is left untouched.
func (l Ledger) Push(e Entry) Ledger {
	n := len(l.entries) + 1
	if n > MaxHistory {
		n = MaxHistory
	}

	entries := make([]Entry, 0, n)
	entries = append(entries, e)
	entries = append(entries, l.entries[:n-1]...)
	return Ledger{entries: entries}
}

// Len returns the number of entries.
func (l Ledger) Len() int {
	return len(l.entries)
}

// At returns the i-th entry, newest first.
func (l Ledger) At(i int) Entry {
	return l.entries[i]
}

// Entries returns a copy of the entries, newest first.
func (l Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
