// Package history keeps a bounded, oldest-first log of lifecycle events on
// top of a fixed-capacity vector.
package history

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/staticvector"
)

// ErrUnknownKind is returned by ParseKind for names it does not recognise.
var ErrUnknownKind = errors.New("history: unknown event kind")

// Kind is the type of a lifecycle event.
type Kind int

const (
	Start Kind = iota
	Load
	Run
	Pause
	Resume
	Stop
	Exit
)

var kindNames = [...]string{
	Start:  "start",
	Load:   "load",
	Run:    "run",
	Pause:  "pause",
	Resume: "resume",
	Stop:   "stop",
	Exit:   "exit",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s, ignoring case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Event is one recorded occurrence of a Kind.
type Event struct {
	ID   uuid.UUID
	Kind Kind
}

// History retains the most recent Cap() events. Not goroutine-safe.
type History struct {
	events *staticvector.Vec[Event]
}

// New creates a history that keeps the last size events.
// It panics if size <= 0.
func New(size int) *History {
	return &History{events: staticvector.New[Event](size)}
}

// Record stamps a new event of kind k with a fresh ID and inserts it.
func (h *History) Record(k Kind) Event {
	e := Event{ID: uuid.New(), Kind: k}
	h.Insert(e)
	return e
}

// Insert appends e, evicting the oldest event when the history is full.
func (h *History) Insert(e Event) {
	if h.events.IsFull() {
		live := h.events.AsMutSlice()
		copy(live, live[1:])
		// The last slot now duplicates its neighbour.
		h.events.Pop()
	}
	// Cannot fail: there is at least one free slot.
	_ = h.events.Push(e)
}

// Events returns the retained events, oldest first. The slice aliases the
// history and is only valid until the next Insert.
func (h *History) Events() []Event {
	return h.events.AsSlice()
}

// Kinds returns the kinds of the retained events, oldest first.
func (h *History) Kinds() []Kind {
	kinds := make([]Kind, 0, h.events.Len())
	for e := range h.events.Values() {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// Latest returns the most recent event.
func (h *History) Latest() (Event, bool) {
	return h.events.Last()
}

// Len returns the number of retained events.
func (h *History) Len() int {
	return h.events.Len()
}

// Cap returns the maximum number of retained events.
func (h *History) Cap() int {
	return h.events.Cap()
}

// Reset forgets every event.
func (h *History) Reset() {
	h.events.Clear()
}
