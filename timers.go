package showroom

import (
	"sort"
	"time"
)

type timer struct {
	due   time.Duration
	order uint64
	fn    func()
}

// Timers is a cooperative scheduler driven by the frame loop: callbacks registered with After run from within Update,
// on the goroutine calling Update, once enough time has been fed to it. Nothing ever runs in the background.
// The zero value is ready to use.
type Timers struct {
	now     time.Duration
	pending []*timer
	order   uint64
}

// NewTimers returns a new Timers instance starting at time zero.
func NewTimers() *Timers {
	return &Timers{}
}

// After schedules fn to run once the given delay has passed. A delay of zero or less runs on the next Update.
func (timers *Timers) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	timers.order++
	timers.pending = append(timers.pending, &timer{
		due:   timers.now + delay,
		order: timers.order,
		fn:    fn,
	})
}

// Update advances the clock by dt and runs every callback that has come due, earliest first (callbacks due at the same time run in the order
// they were scheduled). Callbacks that schedule further timers due within this same update see them run before Update returns.
func (timers *Timers) Update(dt time.Duration) {

	if dt > 0 {
		timers.now += dt
	}

	for {

		due := timers.popDue()
		if due == nil {
			return
		}

		if due.fn != nil {
			due.fn()
		}

	}

}

func (timers *Timers) popDue() *timer {

	if len(timers.pending) == 0 {
		return nil
	}

	sort.SliceStable(timers.pending, func(i, j int) bool {
		a, b := timers.pending[i], timers.pending[j]
		if a.due != b.due {
			return a.due < b.due
		}
		return a.order < b.order
	})

	next := timers.pending[0]
	if next.due > timers.now {
		return nil
	}

	timers.pending[0] = nil
	timers.pending = timers.pending[1:]
	return next

}

// Now returns how much time has been fed to the Timers through Update.
func (timers *Timers) Now() time.Duration {
	return timers.now
}

// Pending returns how many callbacks are still waiting to run.
func (timers *Timers) Pending() int {
	return len(timers.pending)
}
