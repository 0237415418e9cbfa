package animation

import (
	"testing"
	"time"
)

func TestDriverInitialState(t *testing.T) {
	d := NewDriver(150 * time.Millisecond)
	if d.Status() != StatusDismissed {
		t.Errorf("expected dismissed, got %v", d.Status())
	}
	if d.Value() != 0 {
		t.Errorf("expected value 0, got %v", d.Value())
	}
}

func TestDriverForwardCompletes(t *testing.T) {
	d := NewDriver(150 * time.Millisecond)
	d.Forward()

	if got := d.Advance(75 * time.Millisecond); got != 0.5 {
		t.Errorf("expected 0.5 at half duration, got %v", got)
	}
	if got := d.Advance(75 * time.Millisecond); got != 1 {
		t.Errorf("expected 1 at full duration, got %v", got)
	}
	if d.Status() != StatusCompleted {
		t.Errorf("expected completed, got %v", d.Status())
	}
}

func TestDriverOvershootClamps(t *testing.T) {
	d := NewDriver(150 * time.Millisecond)
	d.Forward()
	if got := d.Advance(time.Second); got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}
	// Settled: further advances are no-ops.
	if got := d.Advance(time.Second); got != 1 {
		t.Errorf("expected settled value 1, got %v", got)
	}
}

func TestDriverReverseResumesFromCurrentProgress(t *testing.T) {
	d := NewDriver(150 * time.Millisecond)
	d.Forward()
	d.Advance(90 * time.Millisecond) // progress 0.6

	d.Reverse()
	if d.Progress() != 0.6 {
		t.Errorf("reverse must not reset progress: got %v", d.Progress())
	}
	if got := d.Advance(30 * time.Millisecond); got < 0.399 || got > 0.401 {
		t.Errorf("expected ~0.4 after reversing 30ms, got %v", got)
	}
	d.Advance(time.Second)
	if d.Status() != StatusDismissed {
		t.Errorf("expected dismissed after full reverse, got %v", d.Status())
	}
}

func TestDriverForwardMonotonic(t *testing.T) {
	d := NewDriver(150 * time.Millisecond)
	d.Curve = EaseInOut
	d.Forward()

	prev := d.Value()
	for range 20 {
		got := d.Advance(10 * time.Millisecond)
		if got < prev {
			t.Fatalf("forward value decreased: %v -> %v", prev, got)
		}
		prev = got
	}
	if prev != 1 {
		t.Errorf("expected settled at 1, got %v", prev)
	}
}

func TestDriverReverseMonotonic(t *testing.T) {
	d := NewDriver(150 * time.Millisecond)
	d.Forward()
	d.Advance(150 * time.Millisecond)

	d.Reverse()
	prev := d.Value()
	for range 20 {
		got := d.Advance(10 * time.Millisecond)
		if got > prev {
			t.Fatalf("reverse value increased: %v -> %v", prev, got)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("expected settled at 0, got %v", prev)
	}
}

func TestDriverNonPositiveDurationIsInstant(t *testing.T) {
	d := NewDriver(time.Millisecond)
	d.Duration = -1
	d.Forward()
	if got := d.Advance(0); got != 1 {
		t.Errorf("expected instant jump to 1, got %v", got)
	}
	d.Reverse()
	if got := d.Advance(0); got != 0 {
		t.Errorf("expected instant jump to 0, got %v", got)
	}
}

func TestDriverZeroDurationSelectsDefault(t *testing.T) {
	d := NewDriver(0)
	if d.Duration != DefaultDuration {
		t.Errorf("expected default duration %v, got %v", DefaultDuration, d.Duration)
	}
}

func TestDriverForwardAtUpperBoundSettles(t *testing.T) {
	d := NewDriver(150 * time.Millisecond)
	d.Forward()
	d.Advance(time.Second)
	d.Forward()
	if d.Status() != StatusCompleted {
		t.Errorf("forward at 1 should stay completed, got %v", d.Status())
	}
	if d.IsAnimating() {
		t.Error("settled driver must not report animating")
	}
}

func TestDriverStatusStrings(t *testing.T) {
	pairs := map[Status]string{
		StatusDismissed: "dismissed",
		StatusForward:   "forward",
		StatusReverse:   "reverse",
		StatusCompleted: "completed",
	}
	for status, want := range pairs {
		if status.String() != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(status), status.String(), want)
		}
	}
}
