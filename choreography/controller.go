package choreography

import (
	"io"
	"log"

	"github.com/solarlune/showroom"
)

// Phase is a step of the sequence. Phases only ever advance in declaration order.
type Phase int

const (
	Idle          Phase = iota // Waiting for the trigger.
	PreDelay                   // Triggered; pausing before the switch.
	SwitchToChase              // Handing control and view over to the chase viewpoint.
	Animating                  // The target and the chase viewpoint are moving.
	PostDelay                  // The chase animation ended; pausing before the switch back.
	Restore                    // Handing control and view back to the primary viewpoint.
	Done                       // Finished for good.
)

func (phase Phase) String() string {
	switch phase {
	case Idle:
		return "idle"
	case PreDelay:
		return "pre-delay"
	case SwitchToChase:
		return "switch-to-chase"
	case Animating:
		return "animating"
	case PostDelay:
		return "post-delay"
	case Restore:
		return "restore"
	case Done:
		return "done"
	}
	return "unknown"
}

type signal int

const (
	signalTrigger signal = iota
	signalDelayElapsed
	signalChaseFinished
	signalTargetFinished
	signalTimeout
)

func (s signal) String() string {
	switch s {
	case signalTrigger:
		return "trigger"
	case signalDelayElapsed:
		return "delay elapsed"
	case signalChaseFinished:
		return "chase finished"
	case signalTargetFinished:
		return "target finished"
	case signalTimeout:
		return "timeout"
	}
	return "unknown"
}

// Controller runs the sequence at most once. It's driven entirely by OnTrigger and the callbacks it hands to its
// collaborators, which post signals to an internal queue; a signal posted while another is being handled (say, an
// Animator completing synchronously from within Animate) is handled right after it. Signals that don't apply to the
// current Phase are dropped.
//
// A Controller is not safe for concurrent use; call it from the goroutine that drives the Scheduler and Animator.
type Controller struct {
	host      SceneHost
	animator  Animator
	scheduler Scheduler
	settings  Settings
	onPhase   func(Phase)
	logger    *log.Logger

	phase     Phase
	triggered bool

	queue       []signal
	dispatching bool

	chaseDone  bool
	targetDone bool
}

// New returns a new, idle Controller. A zero Options.Settings is replaced by DefaultSettings(DefaultTarget).
func New(opts Options) *Controller {

	settings := opts.Settings
	if settings == (Settings{}) {
		settings = DefaultSettings(DefaultTarget)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Controller{
		host:      opts.Host,
		animator:  opts.Animator,
		scheduler: opts.Scheduler,
		settings:  settings,
		onPhase:   opts.OnPhase,
		logger:    logger,
	}

}

// OnTrigger starts the sequence. Only the first call does anything; the Controller is marked as triggered before
// anything else happens, so every later call (including one made from within a collaborator) is ignored.
func (c *Controller) OnTrigger(event Event) {

	if c.triggered {
		return
	}

	c.triggered = true
	c.logger.Printf("choreography: triggered by %q", event.Picked)
	c.post(signalTrigger)

}

// Phase returns the Phase the Controller is in.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Triggered returns if OnTrigger has been called. Once true, it stays true.
func (c *Controller) Triggered() bool {
	return c.triggered
}

// Settings returns the Settings the Controller runs with.
func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) post(s signal) {

	c.queue = append(c.queue, s)

	if c.dispatching {
		return
	}

	c.dispatching = true
	defer func() { c.dispatching = false }()

	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.handle(next)
	}

}

func (c *Controller) handle(s signal) {

	switch {

	case c.phase == Idle && s == signalTrigger:
		c.startPreDelay()

	case c.phase == PreDelay && s == signalDelayElapsed:
		c.switchToChase()
		c.startAnimating()

	case c.phase == Animating && s == signalChaseFinished:
		c.chaseDone = true
		c.checkAnimationsDone()

	case c.phase == Animating && s == signalTargetFinished:
		c.targetDone = true
		c.checkAnimationsDone()

	case c.phase == Animating && s == signalTimeout:
		c.logger.Printf("choreography: animations did not finish within %s, moving on", c.settings.AnimationTimeout)
		c.startPostDelay()

	case c.phase == PostDelay && s == signalDelayElapsed:
		c.restore()

	default:
		c.logger.Printf("choreography: ignoring %s in phase %s", s, c.phase)

	}

}

func (c *Controller) setPhase(phase Phase) {
	c.phase = phase
	c.logger.Printf("choreography: %s", phase)
	if c.onPhase != nil {
		c.onPhase(phase)
	}
}

func (c *Controller) startPreDelay() {
	c.setPhase(PreDelay)
	c.scheduler.After(c.settings.PreDelay, func() { c.post(signalDelayElapsed) })
}

func (c *Controller) switchToChase() {

	c.setPhase(SwitchToChase)

	c.host.DetachControl(c.settings.Primary)
	c.host.AddViewpoint(c.settings.Chase, c.settings.ChaseStart)
	c.host.AttachControl(c.settings.Chase)
	c.host.SetActiveViewpoint(c.settings.Chase)

}

func (c *Controller) startAnimating() {

	c.setPhase(Animating)

	s := c.settings
	from := c.host.Position(s.Target)

	target := c.animator.Animate(showroom.AnimationSettings{
		Name:      "movecar",
		Target:    s.Target,
		Property:  showroom.PropertyPosition,
		FrameRate: s.FrameRate,
		Frames:    s.Frames,
		From:      from,
		To:        from.Add(s.Displacement),
		LoopMode:  s.LoopMode,
		OnEnd:     func() { c.post(signalTargetFinished) },
	})

	if target == nil {
		c.logger.Printf("choreography: could not animate target %q", s.Target)
	}

	chase := c.animator.Animate(showroom.AnimationSettings{
		Name:      "movecamera",
		Target:    s.Chase,
		Property:  showroom.PropertyPosition,
		FrameRate: s.FrameRate,
		Frames:    s.Frames,
		From:      s.ChaseStart,
		To:        s.ChaseStart.Add(s.Displacement),
		LoopMode:  s.LoopMode,
		OnEnd:     func() { c.post(signalChaseFinished) },
	})

	if chase == nil {
		c.logger.Printf("choreography: could not animate viewpoint %q", s.Chase)
	}

	if s.AnimationTimeout > 0 {
		c.scheduler.After(s.AnimationTimeout, func() { c.post(signalTimeout) })
	}

}

func (c *Controller) checkAnimationsDone() {

	if !c.chaseDone {
		return
	}

	if c.settings.WaitForTarget && !c.targetDone {
		return
	}

	c.startPostDelay()

}

func (c *Controller) startPostDelay() {
	c.setPhase(PostDelay)
	c.scheduler.After(c.settings.PostDelay, func() { c.post(signalDelayElapsed) })
}

func (c *Controller) restore() {

	c.setPhase(Restore)

	c.host.DetachControl(c.settings.Chase)
	c.host.SetPosition(c.settings.Primary, c.settings.Restore)
	c.host.AttachControl(c.settings.Primary)
	c.host.SetActiveViewpoint(c.settings.Primary)

	c.setPhase(Done)

}
