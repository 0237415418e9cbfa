// Package animation provides the time-driven primitives behind the spotlight
// overlay's fade: a sampled-time Driver producing normalized progress, easing
// curves, and generic tweens mapping progress onto domain values.
//
// The Driver never schedules itself. The caller samples elapsed time once per
// frame and pushes it in via [Driver.Advance]; tests drive it with synthetic
// deltas and never wait on the wall clock.
package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a driver.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is StatusForward or StatusReverse. When settled,
// status is StatusDismissed (at 0) or StatusCompleted (at 1).
type Status int

const (
	// StatusDismissed means the driver is settled at the lower bound (0.0).
	StatusDismissed Status = iota
	// StatusForward means the driver is advancing toward the upper bound (1.0).
	StatusForward
	// StatusReverse means the driver is advancing toward the lower bound (0.0).
	StatusReverse
	// StatusCompleted means the driver is settled at the upper bound (1.0).
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DefaultDuration is the fade duration used when a Driver is created
// with a zero duration.
const DefaultDuration = 150 * time.Millisecond

// Driver produces normalized animation progress from injected elapsed time.
//
// Progress runs 0→1 while the driver is in StatusForward and 1→0 in
// StatusReverse. Direction changes resume from the current progress, so a
// highlight deactivated mid-fade-in fades back out from where it stopped
// instead of snapping.
//
// Advance is the only way time passes; a settled driver ignores it.
type Driver struct {
	// Duration is the length of a full 0→1 sweep. Durations ≤ 0 settle
	// instantly on the next Advance.
	Duration time.Duration

	// Curve transforms linear progress into eased output (optional,
	// linear when nil). Must be monotonic so reversal stays smooth.
	Curve func(float64) float64

	progress float64
	status   Status
}

// NewDriver creates a driver with the given duration and a linear curve.
// A zero duration selects DefaultDuration.
func NewDriver(duration time.Duration) *Driver {
	if duration == 0 {
		duration = DefaultDuration
	}
	return &Driver{
		Duration: duration,
		Curve:    LinearCurve,
		status:   StatusDismissed,
	}
}

// Forward directs the driver toward the upper bound, resuming from the
// current progress. A driver already at 1 settles as StatusCompleted.
func (d *Driver) Forward() {
	if d.progress >= 1 {
		d.setStatus(StatusCompleted)
		return
	}
	d.setStatus(StatusForward)
}

// Reverse directs the driver toward the lower bound, resuming from the
// current progress. A driver already at 0 settles as StatusDismissed.
func (d *Driver) Reverse() {
	if d.progress <= 0 {
		d.setStatus(StatusDismissed)
		return
	}
	d.setStatus(StatusReverse)
}

// Advance moves progress by dt in the current direction and returns the new
// eased value. A settled driver returns its last value unchanged.
func (d *Driver) Advance(dt time.Duration) float64 {
	switch d.status {
	case StatusForward:
		if d.Duration <= 0 {
			d.progress = 1
		} else {
			d.progress += float64(dt) / float64(d.Duration)
		}
		if d.progress >= 1 {
			d.progress = 1
			d.setStatus(StatusCompleted)
		}
	case StatusReverse:
		if d.Duration <= 0 {
			d.progress = 0
		} else {
			d.progress -= float64(dt) / float64(d.Duration)
		}
		if d.progress <= 0 {
			d.progress = 0
			d.setStatus(StatusDismissed)
		}
	}
	return d.Value()
}

// Value returns the current eased progress in [0, 1].
func (d *Driver) Value() float64 {
	if d.Curve == nil {
		return d.progress
	}
	return d.Curve(d.progress)
}

// Progress returns the current linear (un-eased) progress in [0, 1].
func (d *Driver) Progress() float64 {
	return d.progress
}

// Status returns the current driver status.
func (d *Driver) Status() Status {
	return d.status
}

// IsAnimating returns true while the driver is moving in either direction.
func (d *Driver) IsAnimating() bool {
	return d.status == StatusForward || d.status == StatusReverse
}

// IsDismissed returns true when the driver is settled at the lower bound.
func (d *Driver) IsDismissed() bool {
	return d.status == StatusDismissed
}

// IsCompleted returns true when the driver is settled at the upper bound.
func (d *Driver) IsCompleted() bool {
	return d.status == StatusCompleted
}

func (d *Driver) setStatus(status Status) {
	d.status = status
}
