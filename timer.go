package wtree

import (
	"time"

	"golang.org/x/exp/slices"
)

// Timer is a callback scheduled on the DUI's loop.
type Timer struct {
	due       time.Time
	interval  time.Duration
	fn        func() bool
	owner     *Element
	cancelled bool
}

// Cancel stops the timer. Cancelling twice is harmless.
func (t *Timer) Cancel() {
	t.cancelled = true
}

// Active returns whether the timer will still run.
func (t *Timer) Active() bool {
	return !t.cancelled
}

type timers struct {
	now  func() time.Time
	list []*Timer
}

// Schedule runs fn after delay, on a later Tick. If fn returns true, it is
// scheduled again after the same delay. If owner is not nil, the timer is
// cancelled when owner is destroyed. Callbacks must return quickly.
func (d *DUI) Schedule(owner *Element, delay time.Duration, fn func() bool) *Timer {
	t := &Timer{
		due:      d.timers.now().Add(delay),
		interval: delay,
		fn:       fn,
		owner:    owner,
	}
	d.timers.list = append(d.timers.list, t)
	return t
}

// Tick runs the timers due at now. Timers scheduled by callbacks run at a
// later Tick at the earliest.
func (d *DUI) Tick(now time.Time) {
	var due []*Timer
	keep := d.timers.list[:0]
	for _, t := range d.timers.list {
		if t.cancelled {
			continue
		}
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	d.timers.list = keep
	slices.SortStableFunc(due, func(a, b *Timer) bool {
		return a.due.Before(b.due)
	})
	for _, t := range due {
		if t.cancelled {
			continue
		}
		if t.fn() && !t.cancelled {
			t.due = now.Add(t.interval)
			d.timers.list = append(d.timers.list, t)
		} else {
			t.cancelled = true
		}
	}
}

// NextTimer returns when the first timer is due, for the event loop to wait on.
func (d *DUI) NextTimer() (time.Time, bool) {
	var first time.Time
	ok := false
	for _, t := range d.timers.list {
		if t.cancelled {
			continue
		}
		if !ok || t.due.Before(first) {
			first = t.due
			ok = true
		}
	}
	return first, ok
}

func (ts *timers) cancelOwned(e *Element) {
	for _, t := range ts.list {
		if t.owner == e {
			t.cancelled = true
		}
	}
}

func (ts *timers) cancelAll() {
	for _, t := range ts.list {
		t.cancelled = true
	}
	ts.list = nil
}
