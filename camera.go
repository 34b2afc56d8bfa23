package showroom

import "math"

// Camera represents a camera (where you look from). Cameras look down their local -Z axis.
// A Camera with control attached is moved by user input (see the ebiten3d package); one without it stays where code puts it.
type Camera struct {
	*Node

	near, far   float64 // The near and far clipping plane.
	fieldOfView float64 // Vertical field of view in degrees
	width       int
	height      int

	yaw  float64 // Rotation around the Y axis, in radians
	tilt float64 // Rotation around the X axis, in radians

	controlAttached bool
}

// NewCamera creates a new Camera with the specified name and viewport width and height.
func NewCamera(name string, w, h int) *Camera {

	return &Camera{
		Node:        NewNode(name),
		near:        1,
		far:         10000,
		fieldOfView: 45.8,
		width:       w,
		height:      h,
	}

}

// Type returns the NodeType for this object.
func (camera *Camera) Type() NodeType {
	return NodeTypeCamera
}

// AddChildren parents the provided children Nodes to the Camera.
func (camera *Camera) AddChildren(children ...INode) {
	camera.addChildren(camera, children...)
}

// Unparent unparents the Camera from its parent, removing it from the scenegraph.
func (camera *Camera) Unparent() {
	if camera.parent != nil {
		camera.parent.RemoveChildren(camera)
	}
}

// Resize resizes the viewport of the Camera to the width and height provided.
func (camera *Camera) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	camera.width = w
	camera.height = h
}

// Size returns the width and height of the camera's viewport.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetFieldOfView sets the vertical field of view in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	camera.fieldOfView = fovY
}

// Near returns the near clipping plane distance.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the near clipping plane distance.
func (camera *Camera) SetNear(near float64) {
	camera.near = near
}

// Far returns the far clipping plane distance.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the far clipping plane distance.
func (camera *Camera) SetFar(far float64) {
	camera.far = far
}

// AttachControl lets user input move and rotate this Camera.
func (camera *Camera) AttachControl() {
	camera.controlAttached = true
}

// DetachControl stops user input from moving this Camera.
func (camera *Camera) DetachControl() {
	camera.controlAttached = false
}

// ControlAttached returns if user input currently moves this Camera.
func (camera *Camera) ControlAttached() bool {
	return camera.controlAttached
}

// ViewMatrix returns the Camera's view matrix (the inverse of its world transform).
func (camera *Camera) ViewMatrix() Matrix4 {
	return camera.Transform().Inverted()
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {
	return NewProjectionPerspective(camera.fieldOfView, camera.near, camera.far, float64(camera.width), float64(camera.height))
}

// ViewProjection returns the combined view and projection matrices; multiplying a world-space position by it gives a clip-space position.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.ViewMatrix().Mult(camera.Projection())
}

// SetTarget rotates the Camera to look at the world position provided.
func (camera *Camera) SetTarget(target Vector) {

	dir := target.Sub(camera.WorldPosition())

	if dir.IsZero() {
		return
	}

	dir = dir.Unit()

	camera.tilt = math.Asin(math.Max(-1, math.Min(1, dir.Y)))
	camera.yaw = math.Atan2(-dir.X, -dir.Z)
	camera.updateRotation()

}

// Rotate turns the Camera by the yaw and tilt provided (in radians). The tilt is clamped to keep the camera from flipping over.
func (camera *Camera) Rotate(yaw, tilt float64) {
	camera.yaw += yaw
	camera.tilt += tilt
	camera.tilt = math.Max(math.Min(camera.tilt, math.Pi/2-0.1), -math.Pi/2+0.1)
	camera.updateRotation()
}

// YawTilt returns the Camera's current yaw and tilt, in radians.
func (camera *Camera) YawTilt() (float64, float64) {
	return camera.yaw, camera.tilt
}

func (camera *Camera) updateRotation() {
	tilt := NewMatrix4Rotate(1, 0, 0, camera.tilt)
	rotate := NewMatrix4Rotate(0, 1, 0, camera.yaw)
	// Order of this is important - tilt * rotate works, rotate * tilt does not
	camera.SetLocalRotation(tilt.Mult(rotate))
}

// Forward returns the direction the Camera is looking in.
func (camera *Camera) Forward() Vector {
	// Cameras look down -Z, so the forward vector is inverted
	return camera.LocalRotation().Forward().Invert()
}

// MoveLocal moves the Camera relative to the direction it's facing.
func (camera *Camera) MoveLocal(right, up, forward float64) {
	rotation := camera.LocalRotation()
	move := rotation.Right().Scale(right).Add(rotation.Up().Scale(up)).Add(camera.Forward().Scale(forward))
	camera.Move(move.X, move.Y, move.Z)
}

// WorldToClip transforms a world-space position into clip space.
func (camera *Camera) WorldToClip(vert Vector) Vector {
	return camera.ViewProjection().MultVecW(vert)
}

// ClipToScreen remaps a clip-space position to screen pixels, with Z holding the normalized depth. The boolean
// is false if the position is behind the camera's near plane (and so can't be projected).
func (camera *Camera) ClipToScreen(clip Vector) (Vector, bool) {

	if clip.W < camera.near {
		return Vector{}, false
	}

	w := float64(camera.width)
	h := float64(camera.height)

	return Vector{
		X: (clip.X/clip.W*0.5 + 0.5) * w,
		Y: (1 - (clip.Y/clip.W*0.5 + 0.5)) * h,
		Z: clip.Z / clip.W,
		W: 1,
	}, true

}

// WorldToScreenPixels transforms a 3D position in the world to a position onscreen, with X and Y representing the pixels.
func (camera *Camera) WorldToScreenPixels(vert Vector) (Vector, bool) {
	return camera.ClipToScreen(camera.WorldToClip(vert))
}

// MouseRay returns the start and end points of a ray cast from the near plane to the far plane through the pixel provided.
func (camera *Camera) MouseRay(x, y int) (Vector, Vector) {

	ndcX := float64(x)/float64(camera.width)*2 - 1
	ndcY := 1 - float64(y)/float64(camera.height)*2

	inverse := camera.ViewProjection().Inverted()

	unproject := func(z float64) Vector {
		v := inverse.MultVecW(NewVector(ndcX, ndcY, z))
		return NewVector(v.X/v.W, v.Y/v.W, v.Z/v.W)
	}

	return unproject(-1), unproject(1)

}
