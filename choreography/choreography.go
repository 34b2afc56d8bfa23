// Package choreography runs the one-shot showroom sequence started by clicking the car: after a short pause the view
// switches to a chase camera, the car and the chase camera drive forward together, and after another pause the view
// returns to the primary camera at a new position.
//
// The Controller never owns cameras, timers or animations; it asks a SceneHost, an Animator and a Scheduler for them by
// name, and is advanced only by the callbacks those collaborators make.
package choreography

import (
	"log"
	"time"

	"github.com/solarlune/showroom"
)

// SceneHost owns the viewpoints (cameras) and objects the Controller moves around, addressing them by name.
type SceneHost interface {
	// AddViewpoint creates the viewpoint at the position given, or moves it there if it already exists.
	AddViewpoint(id string, position showroom.Vector)
	SetActiveViewpoint(id string)
	AttachControl(id string)
	DetachControl(id string)
	SetPosition(id string, position showroom.Vector)
	Position(id string) showroom.Vector
}

// Animator starts an interpolation described by the settings given. It returns nil if the animation can't be started;
// OnEnd is then never called.
type Animator interface {
	Animate(settings showroom.AnimationSettings) *showroom.Animation
}

// Scheduler runs fn once the delay has passed.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Settings holds the names, positions and timings of the sequence.
type Settings struct {
	Primary      string          // The viewpoint in use before and after the sequence.
	Chase        string          // The viewpoint that follows the target while it moves.
	Target       string          // The object that moves.
	ChaseStart   showroom.Vector // Where the chase viewpoint is placed.
	Displacement showroom.Vector // How far the target and the chase viewpoint move.
	Restore      showroom.Vector // Where the primary viewpoint is put once the sequence ends.

	Frames    int
	FrameRate float64
	LoopMode  showroom.LoopMode

	PreDelay  time.Duration // Pause between the trigger and the switch to the chase viewpoint.
	PostDelay time.Duration // Pause between the end of the chase animation and the switch back.

	// AnimationTimeout, when above zero, moves on to the post delay this long after the animations started, even if
	// they never report completion. Zero waits indefinitely.
	AnimationTimeout time.Duration
	// WaitForTarget makes the post delay wait for the target's animation as well as the chase viewpoint's.
	WaitForTarget bool
}

// DefaultTarget is the name of the car's root model in the showroom assets.
const DefaultTarget = "mesh_mm2"

// DefaultSettings returns the Settings of the showroom scene, moving the target named.
func DefaultSettings(target string) Settings {
	return Settings{
		Primary:      "camera1",
		Chase:        "camera2",
		Target:       target,
		ChaseStart:   showroom.NewVector(1.5, 4.5, -100),
		Displacement: showroom.NewVector(0, 0, 150),
		Restore:      showroom.NewVector(25, 50, 0),
		Frames:       100,
		FrameRate:    30,
		LoopMode:     showroom.LoopModeConstant,
		PreDelay:     500 * time.Millisecond,
		PostDelay:    500 * time.Millisecond,
	}
}

// Event is the occurrence that starts the sequence.
type Event struct {
	Picked string // Name of the object that was picked.
}

// Options configures a Controller.
type Options struct {
	Host      SceneHost
	Animator  Animator
	Scheduler Scheduler
	Settings  Settings

	// OnPhase, if set, is called every time the Controller enters a new Phase.
	OnPhase func(Phase)
	// Logger receives a line per transition; nil keeps the Controller quiet.
	Logger *log.Logger
}
