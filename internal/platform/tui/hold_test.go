package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHoldTrackerWindow(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	if h.Held(core.ActionFire, t0) {
		t.Fatal("nothing pressed yet")
	}

	h.Press(core.ActionFire, t0)
	tests := []struct {
		after time.Duration
		held  bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{100 * time.Millisecond, true},
		{101 * time.Millisecond, false},
	}
	for _, tc := range tests {
		if got := h.Held(core.ActionFire, t0.Add(tc.after)); got != tc.held {
			t.Errorf("Held after %v = %v, expected %v", tc.after, got, tc.held)
		}
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	// Auto-repeat every 30ms keeps the key down
	for i := 0; i < 10; i++ {
		h.Press(core.ActionLeft, t0.Add(time.Duration(i*30)*time.Millisecond))
	}
	if !h.Held(core.ActionLeft, t0.Add(350*time.Millisecond)) {
		t.Error("key should still be held within the window of the last repeat")
	}
	if h.Held(core.ActionLeft, t0.Add(400*time.Millisecond)) {
		t.Error("key should be released after the window")
	}
}

func TestHoldTrackerOppositeDirections(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionFire, t0)
	h.Press(core.ActionRight, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.Held(core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, now) || !h.Held(core.ActionFire, now) {
		t.Error("right and fire should be held")
	}
}

func TestHoldTrackerApplyAndRelease(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionFire, t0)

	frame := core.NewInputFrame()
	h.Apply(&frame, t0)
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionFire) || frame.Has(core.ActionLeft) {
		t.Errorf("unexpected frame: %v", frame.Actions)
	}

	h.Release()
	frame.Clear()
	h.Apply(&frame, t0)
	if frame.Has(core.ActionRight) || frame.Has(core.ActionFire) {
		t.Error("Release() should drop every held key")
	}
}

func TestHoldTrackerDefaultWindow(t *testing.T) {
	if w := NewHoldTracker(0).window; w != DefaultHoldWindow {
		t.Errorf("window = %v, expected %v", w, DefaultHoldWindow)
	}
}
