// Package navigator defines the navigation provider the routing kernel
// consumes, plus an in-memory history implementation used by the live
// layer and by tests.
//
// The provider owns the current location string; the kernel only ever
// reads it and asks for transitions. Re-resolution of the active sibling
// happens in subscribers, keeping the active index a pure function of the
// location.
package navigator

import "sync"

// Provider is the narrow navigation interface the routing layer consumes.
// The location is an opaque "pathname[?query]" string.
type Provider interface {
	// Location returns the current location.
	Location() string

	// Push navigates to a new location, growing the history stack.
	Push(location string)

	// Replace swaps the current location without growing the stack.
	Replace(location string)

	// Back moves to the previous location. Returns false when there is
	// no previous entry; the current location is then unchanged.
	Back() bool

	// Subscribe registers a callback invoked after every location change.
	// The returned cancel func removes the subscription.
	Subscribe(fn func(location string)) (cancel func())
}

// History is an in-memory Provider backed by a location stack.
// The zero value is not usable; construct with NewHistory.
type History struct {
	mu      sync.Mutex
	stack   []string
	pos     int
	subs    map[int]func(string)
	nextSub int
}

// NewHistory creates a history positioned at the initial location.
// An empty initial location defaults to "/".
func NewHistory(initial string) *History {
	if initial == "" {
		initial = "/"
	}
	return &History{
		stack: []string{initial},
		subs:  make(map[int]func(string)),
	}
}

// Location returns the current location.
func (h *History) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stack[h.pos]
}

// Push navigates to a new location. Forward entries beyond the current
// position are discarded, matching browser history semantics.
func (h *History) Push(location string) {
	h.mu.Lock()
	h.stack = append(h.stack[:h.pos+1], location)
	h.pos = len(h.stack) - 1
	subs := h.snapshotSubs()
	h.mu.Unlock()

	notify(subs, location)
}

// Replace swaps the current location without growing the stack.
func (h *History) Replace(location string) {
	h.mu.Lock()
	h.stack[h.pos] = location
	subs := h.snapshotSubs()
	h.mu.Unlock()

	notify(subs, location)
}

// Back moves to the previous location, if any.
func (h *History) Back() bool {
	h.mu.Lock()
	if h.pos == 0 {
		h.mu.Unlock()
		return false
	}
	h.pos--
	location := h.stack[h.pos]
	subs := h.snapshotSubs()
	h.mu.Unlock()

	notify(subs, location)
	return true
}

// Subscribe registers a location-change callback.
func (h *History) Subscribe(fn func(string)) (cancel func()) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// snapshotSubs copies the subscriber list; callbacks run outside the lock
// so a subscriber may navigate or unsubscribe without deadlocking.
func (h *History) snapshotSubs() []func(string) {
	out := make([]func(string), 0, len(h.subs))
	for _, fn := range h.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(string), location string) {
	for _, fn := range subs {
		fn(location)
	}
}
