package choreography

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"testing"
	"time"

	"github.com/solarlune/showroom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	calls     []string
	active    string
	control   map[string]bool
	positions map[string]showroom.Vector
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		active:  "camera1",
		control: map[string]bool{"camera1": true},
		positions: map[string]showroom.Vector{
			"camera1":  showroom.NewVector(100, 150, -170),
			"mesh_mm2": showroom.NewVector(0, 0, -100),
		},
	}
}

func (h *fakeHost) record(format string, args ...interface{}) {
	h.calls = append(h.calls, fmt.Sprintf(format, args...))
}

func (h *fakeHost) AddViewpoint(id string, position showroom.Vector) {
	h.record("AddViewpoint %s %s", id, position)
	h.positions[id] = position
}

func (h *fakeHost) SetActiveViewpoint(id string) {
	h.record("SetActiveViewpoint %s", id)
	h.active = id
}

func (h *fakeHost) AttachControl(id string) {
	h.record("AttachControl %s", id)
	h.control[id] = true
}

func (h *fakeHost) DetachControl(id string) {
	h.record("DetachControl %s", id)
	h.control[id] = false
}

func (h *fakeHost) SetPosition(id string, position showroom.Vector) {
	h.record("SetPosition %s %s", id, position)
	h.positions[id] = position
}

// Position isn't recorded; it's a read.
func (h *fakeHost) Position(id string) showroom.Vector {
	return h.positions[id]
}

func (h *fakeHost) count(call string) int {
	n := 0
	for _, c := range h.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeAnimator records every animation. Completion callbacks run only when asked to, unless synchronous is set.
type fakeAnimator struct {
	started     []showroom.AnimationSettings
	synchronous bool
	missing     map[string]bool
}

func (a *fakeAnimator) Animate(settings showroom.AnimationSettings) *showroom.Animation {
	if a.missing[settings.Target] {
		return nil
	}
	a.started = append(a.started, settings)
	if a.synchronous && settings.OnEnd != nil {
		settings.OnEnd()
	}
	return showroom.NewAnimation(settings, nil)
}

func (a *fakeAnimator) finish(t *testing.T, target string) {
	t.Helper()
	for _, s := range a.started {
		if s.Target == target {
			s.OnEnd()
			return
		}
	}
	t.Fatalf("no animation started for %q", target)
}

type fakeTimer struct {
	due   time.Duration
	order int
	fn    func()
}

// fakeClock is a virtual clock; time only passes on Advance.
type fakeClock struct {
	now    time.Duration
	timers []fakeTimer
	order  int
}

func (c *fakeClock) After(delay time.Duration, fn func()) {
	c.order++
	c.timers = append(c.timers, fakeTimer{due: c.now + delay, order: c.order, fn: fn})
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now += d
	for {
		sort.Slice(c.timers, func(i, j int) bool {
			if c.timers[i].due != c.timers[j].due {
				return c.timers[i].due < c.timers[j].due
			}
			return c.timers[i].order < c.timers[j].order
		})
		if len(c.timers) == 0 || c.timers[0].due > c.now {
			return
		}
		next := c.timers[0]
		c.timers = c.timers[1:]
		next.fn()
	}
}

type harness struct {
	host     *fakeHost
	animator *fakeAnimator
	clock    *fakeClock
	phases   []Phase
	ctrl     *Controller
}

func newHarness(t *testing.T, modify func(*Settings)) *harness {
	t.Helper()

	h := &harness{
		host:     newFakeHost(),
		animator: &fakeAnimator{missing: map[string]bool{}},
		clock:    &fakeClock{},
	}

	settings := DefaultSettings(DefaultTarget)
	if modify != nil {
		modify(&settings)
	}

	h.ctrl = New(Options{
		Host:      h.host,
		Animator:  h.animator,
		Scheduler: h.clock,
		Settings:  settings,
		OnPhase:   func(p Phase) { h.phases = append(h.phases, p) },
	})

	return h
}

var fullSequence = []Phase{PreDelay, SwitchToChase, Animating, PostDelay, Restore, Done}

func TestSingleTrigger(t *testing.T) {

	h := newHarness(t, nil)

	assert.Equal(t, Idle, h.ctrl.Phase())
	assert.False(t, h.ctrl.Triggered())

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})

	// Nothing happens to the scene until the pre delay is over
	assert.True(t, h.ctrl.Triggered())
	assert.Equal(t, PreDelay, h.ctrl.Phase())
	assert.Empty(t, h.host.calls)
	assert.Equal(t, "camera1", h.host.active)

	h.clock.Advance(499 * time.Millisecond)
	assert.Equal(t, PreDelay, h.ctrl.Phase())
	assert.Empty(t, h.host.calls)

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, Animating, h.ctrl.Phase())
	assert.Equal(t, "camera2", h.host.active)
	assert.True(t, h.host.control["camera2"])
	assert.False(t, h.host.control["camera1"])

	assert.Equal(t, []string{
		"DetachControl camera1",
		"AddViewpoint camera2 {1.50, 4.50, -100.00}",
		"AttachControl camera2",
		"SetActiveViewpoint camera2",
	}, h.host.calls)

	require.Len(t, h.animator.started, 2)

	car := h.animator.started[0]
	assert.Equal(t, "mesh_mm2", car.Target)
	assert.Equal(t, showroom.PropertyPosition, car.Property)
	assert.Equal(t, showroom.NewVector(0, 0, -100), car.From)
	assert.Equal(t, showroom.NewVector(0, 0, 50), car.To)
	assert.Equal(t, 100, car.Frames)
	assert.Equal(t, 30.0, car.FrameRate)
	assert.Equal(t, showroom.LoopModeConstant, car.LoopMode)

	cam := h.animator.started[1]
	assert.Equal(t, "camera2", cam.Target)
	assert.Equal(t, showroom.NewVector(1.5, 4.5, -100), cam.From)
	assert.Equal(t, showroom.NewVector(1.5, 4.5, 50), cam.To)
	assert.Equal(t, car.Duration(), cam.Duration())

	// The view stays on the chase camera however long the animation takes
	h.clock.Advance(time.Minute)
	assert.Equal(t, Animating, h.ctrl.Phase())
	assert.Equal(t, "camera2", h.host.active)

	h.animator.finish(t, "camera2")
	assert.Equal(t, PostDelay, h.ctrl.Phase())
	assert.Equal(t, "camera2", h.host.active)

	h.clock.Advance(499 * time.Millisecond)
	assert.Equal(t, PostDelay, h.ctrl.Phase())

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, Done, h.ctrl.Phase())
	assert.Equal(t, "camera1", h.host.active)
	assert.True(t, h.host.control["camera1"])
	assert.False(t, h.host.control["camera2"])
	assert.Equal(t, showroom.NewVector(25, 50, 0), h.host.positions["camera1"])

	assert.Equal(t, 1, h.host.count("DetachControl camera1"))
	assert.Equal(t, 1, h.host.count("AttachControl camera2"))
	assert.Equal(t, 1, h.host.count("DetachControl camera2"))
	assert.Equal(t, 1, h.host.count("SetPosition camera1 {25.00, 50.00, 0.00}"))
	assert.Equal(t, 1, h.host.count("AttachControl camera1"))
	assert.Len(t, h.host.calls, 8)

	assert.Equal(t, fullSequence, h.phases)
	assert.True(t, h.ctrl.Triggered())

}

func TestRepeatedTriggers(t *testing.T) {

	h := newHarness(t, nil)

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.ctrl.OnTrigger(Event{Picked: "wheel"})

	assert.Equal(t, 1, h.clock.order)

	h.clock.Advance(500 * time.Millisecond)
	callsAfterSwitch := len(h.host.calls)

	// Triggers while animating are ignored too
	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	assert.Len(t, h.host.calls, callsAfterSwitch)
	assert.Len(t, h.animator.started, 2)

	h.animator.finish(t, "camera2")
	h.clock.Advance(500 * time.Millisecond)

	// And after the end
	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(time.Hour)

	assert.Equal(t, Done, h.ctrl.Phase())
	assert.Len(t, h.host.calls, 8)
	assert.Len(t, h.animator.started, 2)
	assert.Equal(t, fullSequence, h.phases)

}

func TestTriggerFromPhaseObserver(t *testing.T) {

	h := newHarness(t, nil)

	h.ctrl.onPhase = func(p Phase) {
		h.phases = append(h.phases, p)
		h.ctrl.OnTrigger(Event{Picked: "again"})
	}

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(500 * time.Millisecond)
	h.animator.finish(t, "camera2")
	h.clock.Advance(500 * time.Millisecond)

	assert.Equal(t, fullSequence, h.phases)
	assert.Len(t, h.host.calls, 8)

}

func TestStallsWithoutChaseCompletion(t *testing.T) {

	h := newHarness(t, nil)

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(500 * time.Millisecond)

	// The target finishing doesn't move things along; only the chase viewpoint does
	h.animator.finish(t, "mesh_mm2")
	h.clock.Advance(24 * time.Hour)

	assert.Equal(t, Animating, h.ctrl.Phase())
	assert.Equal(t, "camera2", h.host.active)
	assert.Zero(t, h.host.count("DetachControl camera2"))
	assert.Zero(t, h.host.count("SetPosition camera1 {25.00, 50.00, 0.00}"))
	assert.Zero(t, h.host.count("AttachControl camera1"))
	assert.Equal(t, []Phase{PreDelay, SwitchToChase, Animating}, h.phases)

}

func TestSynchronousAnimator(t *testing.T) {

	h := newHarness(t, nil)
	h.animator.synchronous = true

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(500 * time.Millisecond)

	// Both animations were started before the completion was handled
	require.Len(t, h.animator.started, 2)
	assert.Equal(t, PostDelay, h.ctrl.Phase())

	h.clock.Advance(500 * time.Millisecond)
	assert.Equal(t, Done, h.ctrl.Phase())
	assert.Equal(t, fullSequence, h.phases)

}

func TestSynchronousScheduler(t *testing.T) {

	h := newHarness(t, nil)
	h.animator.synchronous = true
	h.ctrl.scheduler = schedulerFunc(func(delay time.Duration, fn func()) { fn() })

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})

	assert.Equal(t, Done, h.ctrl.Phase())
	assert.Equal(t, fullSequence, h.phases)
	assert.Len(t, h.host.calls, 8)

}

type schedulerFunc func(delay time.Duration, fn func())

func (f schedulerFunc) After(delay time.Duration, fn func()) {
	f(delay, fn)
}

func TestWaitForTarget(t *testing.T) {

	h := newHarness(t, func(s *Settings) { s.WaitForTarget = true })

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(500 * time.Millisecond)

	h.animator.finish(t, "camera2")
	assert.Equal(t, Animating, h.ctrl.Phase())

	h.animator.finish(t, "mesh_mm2")
	assert.Equal(t, PostDelay, h.ctrl.Phase())

	h.clock.Advance(500 * time.Millisecond)
	assert.Equal(t, Done, h.ctrl.Phase())

}

func TestAnimationTimeout(t *testing.T) {

	buf := &bytes.Buffer{}
	h := newHarness(t, func(s *Settings) { s.AnimationTimeout = 5 * time.Second })
	h.ctrl.logger = log.New(buf, "", 0)

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(500 * time.Millisecond)

	h.clock.Advance(4999 * time.Millisecond)
	assert.Equal(t, Animating, h.ctrl.Phase())

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, PostDelay, h.ctrl.Phase())
	assert.Contains(t, buf.String(), "did not finish")

	// A late completion changes nothing
	h.animator.finish(t, "camera2")
	h.clock.Advance(500 * time.Millisecond)

	assert.Equal(t, Done, h.ctrl.Phase())
	assert.Equal(t, fullSequence, h.phases)
	assert.Equal(t, 1, h.host.count("AttachControl camera1"))

}

func TestTimeoutAfterCompletion(t *testing.T) {

	h := newHarness(t, func(s *Settings) { s.AnimationTimeout = 5 * time.Second })

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(500 * time.Millisecond)
	h.animator.finish(t, "camera2")
	h.clock.Advance(time.Minute)

	assert.Equal(t, Done, h.ctrl.Phase())
	assert.Equal(t, fullSequence, h.phases)

}

func TestMissingTarget(t *testing.T) {

	h := newHarness(t, nil)
	h.animator.missing["mesh_mm2"] = true

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(500 * time.Millisecond)

	require.Len(t, h.animator.started, 1)
	h.animator.finish(t, "camera2")
	h.clock.Advance(500 * time.Millisecond)

	assert.Equal(t, Done, h.ctrl.Phase())

}

func TestMissingChaseStalls(t *testing.T) {

	h := newHarness(t, nil)
	h.animator.missing["camera2"] = true

	h.ctrl.OnTrigger(Event{Picked: "mesh_mm2"})
	h.clock.Advance(time.Hour)

	assert.Equal(t, Animating, h.ctrl.Phase())

}

func TestDefaultSettings(t *testing.T) {

	ctrl := New(Options{})

	s := ctrl.Settings()
	assert.Equal(t, "camera1", s.Primary)
	assert.Equal(t, "camera2", s.Chase)
	assert.Equal(t, DefaultTarget, s.Target)
	assert.Equal(t, 500*time.Millisecond, s.PreDelay)
	assert.Equal(t, 500*time.Millisecond, s.PostDelay)
	assert.Zero(t, s.AnimationTimeout)
	assert.False(t, s.WaitForTarget)

	assert.Equal(t, "switch-to-chase", SwitchToChase.String())

}
