package showroom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraProjectsTargetToCenter(t *testing.T) {

	cam := NewCamera("camera1", 640, 360)
	cam.SetLocalPosition(100, 150, -170)
	cam.SetTarget(NewVectorZero())

	screen, ok := cam.WorldToScreenPixels(NewVectorZero())
	require.True(t, ok)

	assert.InDelta(t, 320, screen.X, 1e-6)
	assert.InDelta(t, 180, screen.Y, 1e-6)

	// The camera looks towards the origin
	forward := cam.Forward()
	assert.True(t, forward.Equals(NewVectorZero().Sub(cam.WorldPosition()).Unit()), forward.String())

}

func TestCameraBehind(t *testing.T) {

	cam := NewCamera("camera", 640, 360)
	cam.SetLocalPosition(0, 0, 10)

	// Cameras look down -Z, so something at +Z is behind it
	_, ok := cam.WorldToScreenPixels(NewVector(0, 0, 20))
	assert.False(t, ok)

	// Up is up on screen
	above, ok := cam.WorldToScreenPixels(NewVector(0, 1, 0))
	require.True(t, ok)
	assert.Less(t, above.Y, 180.0)

	right, ok := cam.WorldToScreenPixels(NewVector(1, 0, 0))
	require.True(t, ok)
	assert.Greater(t, right.X, 320.0)

}

func TestCameraMouseRay(t *testing.T) {

	cam := NewCamera("camera", 640, 360)
	cam.SetLocalPosition(0, 0, 10)

	from, to := cam.MouseRay(320, 180)

	assert.InDelta(t, 0, from.X, 1e-6)
	assert.InDelta(t, 0, from.Y, 1e-6)
	assert.InDelta(t, 10-cam.Near(), from.Z, 1e-6)
	assert.InDelta(t, 10-cam.Far(), to.Z, 1e-3)

}

func TestCameraRotate(t *testing.T) {

	cam := NewCamera("camera", 640, 360)

	cam.Rotate(math.Pi/2, 0)
	assert.True(t, cam.Forward().Equals(NewVector(-1, 0, 0)), cam.Forward().String())

	// Tilt is clamped short of looking straight up
	cam.Rotate(0, math.Pi)
	_, tilt := cam.YawTilt()
	assert.InDelta(t, math.Pi/2-0.1, tilt, 1e-9)

	cam.SetLocalPosition(0, 0, 0)
	cam.SetTarget(NewVector(0, 0, -5))
	cam.MoveLocal(0, 0, 2)
	assert.True(t, cam.WorldPosition().Equals(NewVector(0, 0, -2)), cam.WorldPosition().String())

}

func TestCameraControl(t *testing.T) {

	cam := NewCamera("camera", 640, 360)
	assert.False(t, cam.ControlAttached())

	cam.AttachControl()
	assert.True(t, cam.ControlAttached())

	cam.DetachControl()
	assert.False(t, cam.ControlAttached())

	cam.Resize(0, 100)
	w, h := cam.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)

}
