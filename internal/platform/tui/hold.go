package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat.
const DefaultHoldWindow = 180 * time.Millisecond

// HoldTracker turns key presses into held keys. Terminals report presses
// and auto-repeats but never releases, so a key counts as held until the
// window passes without another press.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// Press records a press or repeat of a at time now.
// Pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Held reports whether a is held at time now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	if !ok {
		return false
	}
	if now.Sub(t) > h.window {
		delete(h.last, a)
		return false
	}
	return true
}

// Apply sets every held action on frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a := range h.last {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
}

// Release forgets every held key.
func (h *HoldTracker) Release() {
	clear(h.last)
}
