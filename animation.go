package showroom

import (
	"log"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationProperty names the Node property an Animation writes to.
type AnimationProperty string

const (
	PropertyPosition AnimationProperty = "position" // The Node's local position
	PropertyScaling  AnimationProperty = "scaling"  // The Node's local scale
)

// LoopMode indicates what an Animation does once it reaches its end.
type LoopMode int

const (
	LoopModeConstant LoopMode = iota // Stop at the end value and run OnEnd.
	LoopModeCycle                    // Start over from the beginning.
	LoopModeRelative                 // Start over, offset by the distance just traveled.
	LoopModeYoyo                     // Play back towards the start, then forwards again, and so on.
)

func (mode LoopMode) String() string {
	switch mode {
	case LoopModeConstant:
		return "constant"
	case LoopModeCycle:
		return "cycle"
	case LoopModeRelative:
		return "relative"
	case LoopModeYoyo:
		return "yoyo"
	}
	return "unknown"
}

// AnimationSettings describes an Animation: which Node property to move, between which values, and for how long.
// The length is expressed in frames at a frame rate, so 100 frames at 30 FPS take 3.33 seconds regardless of how
// fast the game itself updates.
type AnimationSettings struct {
	Name      string
	Target    string            // Name of the Node to animate
	Property  AnimationProperty // Defaults to PropertyPosition
	FrameRate float64           // Frames per second; defaults to 60
	Frames    int               // Total length of the animation in frames
	From, To  Vector
	LoopMode  LoopMode
	OnEnd     func() // Called once when a LoopModeConstant Animation ends; never called for looping ones
}

// Duration returns how long one pass of the animation takes.
func (settings AnimationSettings) Duration() time.Duration {
	fps := settings.FrameRate
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(settings.Frames) / fps * float64(time.Second))
}

// Animation interpolates a Vector property of a Node between two values over time. Each axis is driven by its own linear tween.
type Animation struct {
	Settings AnimationSettings
	target   INode
	from, to Vector
	tweens   [3]*gween.Tween
	value    Vector
	playing  bool
	finished bool
}

// NewAnimation creates a new, playing Animation for the target Node provided and writes the starting value to it immediately.
// A nil target is allowed; the Animation then only tracks its value.
func NewAnimation(settings AnimationSettings, target INode) *Animation {

	if settings.Property == "" {
		settings.Property = PropertyPosition
	}

	anim := &Animation{
		Settings: settings,
		target:   target,
		from:     settings.From,
		to:       settings.To,
		value:    settings.From,
		playing:  true,
	}

	anim.resetTweens()
	anim.apply()

	return anim

}

func (anim *Animation) resetTweens() {
	duration := float32(anim.Settings.Duration().Seconds())
	anim.tweens = [3]*gween.Tween{
		gween.New(float32(anim.from.X), float32(anim.to.X), duration, ease.Linear),
		gween.New(float32(anim.from.Y), float32(anim.to.Y), duration, ease.Linear),
		gween.New(float32(anim.from.Z), float32(anim.to.Z), duration, ease.Linear),
	}
}

func (anim *Animation) apply() {

	if anim.target == nil {
		return
	}

	switch anim.Settings.Property {
	case PropertyScaling:
		anim.target.SetLocalScaleVec(anim.value)
	default:
		anim.target.SetLocalPositionVec(anim.value)
	}

}

// Update advances the Animation by dt, writing the new value to the target Node.
func (anim *Animation) Update(dt time.Duration) {

	if !anim.playing {
		return
	}

	secs := float32(dt.Seconds())

	if anim.Settings.Duration() <= 0 {
		anim.end()
		return
	}

	x, done := anim.tweens[0].Update(secs)
	y, _ := anim.tweens[1].Update(secs)
	z, _ := anim.tweens[2].Update(secs)

	anim.value = NewVector(float64(x), float64(y), float64(z))

	if !done {
		anim.apply()
		return
	}

	anim.end()

}

func (anim *Animation) end() {

	switch anim.Settings.LoopMode {

	case LoopModeCycle:
		anim.value = anim.from
		anim.resetTweens()

	case LoopModeRelative:
		delta := anim.to.Sub(anim.from)
		anim.from = anim.to
		anim.to = anim.to.Add(delta)
		anim.value = anim.from
		anim.resetTweens()

	case LoopModeYoyo:
		anim.from, anim.to = anim.to, anim.from
		anim.value = anim.from
		anim.resetTweens()

	default:
		// Exact end value, regardless of float32 tween precision
		anim.value = anim.to
		anim.playing = false
		anim.finished = true
		anim.apply()
		if anim.Settings.OnEnd != nil {
			anim.Settings.OnEnd()
		}
		return

	}

	anim.apply()

}

// Stop stops the Animation where it is. OnEnd is not called.
func (anim *Animation) Stop() {
	anim.playing = false
}

// Playing returns if the Animation is still running.
func (anim *Animation) Playing() bool {
	return anim.playing
}

// Finished returns if the Animation ran all the way to its end (only possible with LoopModeConstant).
func (anim *Animation) Finished() bool {
	return anim.finished
}

// Value returns the Animation's current value.
func (anim *Animation) Value() Vector {
	return anim.value
}

// Target returns the Node the Animation writes to.
func (anim *Animation) Target() INode {
	return anim.target
}

type nodeFinder interface {
	FindNode(name string) INode
}

// Animator creates and advances Animations on the Nodes of a Scene.
type Animator struct {
	nodes      nodeFinder
	animations []*Animation
	logger     *log.Logger
}

// NewAnimator returns a new Animator resolving animation targets with the finder given (usually a Scene).
func NewAnimator(nodes nodeFinder, logger *log.Logger) *Animator {
	if logger == nil {
		logger = log.Default()
	}
	return &Animator{
		nodes:  nodes,
		logger: logger,
	}
}

// Animate creates and starts an Animation according to the settings provided. If the target Node can't be found,
// the problem is logged and nil is returned; no OnEnd callback will ever run for it.
func (animator *Animator) Animate(settings AnimationSettings) *Animation {

	target := animator.nodes.FindNode(settings.Target)

	if target == nil {
		animator.logger.Printf("animator: cannot find target node %q for animation %q", settings.Target, settings.Name)
		return nil
	}

	anim := NewAnimation(settings, target)
	animator.animations = append(animator.animations, anim)
	return anim

}

// Update advances every playing Animation by dt. Animations started from OnEnd callbacks begin advancing on the next Update.
func (animator *Animator) Update(dt time.Duration) {

	current := append([]*Animation(nil), animator.animations...)

	for _, anim := range current {
		anim.Update(dt)
	}

	playing := animator.animations[:0]
	for _, anim := range animator.animations {
		if anim.Playing() {
			playing = append(playing, anim)
		}
	}

	for i := len(playing); i < len(animator.animations); i++ {
		animator.animations[i] = nil
	}

	animator.animations = playing

}

// Playing returns how many Animations are currently running.
func (animator *Animator) Playing() int {
	return len(animator.animations)
}
