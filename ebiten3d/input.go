package ebiten3d

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/showroom"
)

// KeyName returns the name a released key is reported to Scene.KeyUp with: " " for the space bar, lower-case letters,
// and digits. Other keys return an empty string.
func KeyName(key ebiten.Key) string {
	switch {
	case key == ebiten.KeySpace:
		return " "
	case key >= ebiten.KeyA && key <= ebiten.KeyZ:
		return strings.ToLower(key.String())
	case key >= ebiten.KeyDigit0 && key <= ebiten.KeyDigit9:
		return strings.TrimPrefix(key.String(), "Digit")
	}
	return ""
}

// Input turns mouse and keyboard state into Scene picks, key-up actions and camera movement. Only a Camera with
// control attached is moved.
type Input struct {
	MoveSpeed   float64 // Units per update while a movement key is held.
	RotateSpeed float64 // Radians per pixel dragged with the right mouse button.

	prevX, prevY int

	// InspectorToggled is set by Update when the inspector shortcut (Ctrl+Alt+Shift+I) was pressed.
	InspectorToggled bool
}

func NewInput() *Input {
	return &Input{
		MoveSpeed:   1,
		RotateSpeed: 0.005,
	}
}

// Update reads this frame's input and applies it to the scene.
func (input *Input) Update(scene *showroom.Scene) {

	mx, my := ebiten.CursorPosition()
	dx, dy := mx-input.prevX, my-input.prevY
	input.prevX, input.prevY = mx, my

	input.InspectorToggled = ebiten.IsKeyPressed(ebiten.KeyControl) &&
		ebiten.IsKeyPressed(ebiten.KeyAlt) &&
		ebiten.IsKeyPressed(ebiten.KeyShift) &&
		inpututil.IsKeyJustPressed(ebiten.KeyI)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		scene.Pick(mx, my)
	}

	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		if name := KeyName(key); name != "" {
			scene.KeyUp(name)
		}
	}

	camera := scene.ActiveCamera()
	if camera == nil || !camera.ControlAttached() {
		return
	}

	var right, forward float64

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		forward += input.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		forward -= input.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		right += input.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		right -= input.MoveSpeed
	}

	if right != 0 || forward != 0 {
		camera.MoveLocal(right, 0, forward)
	}

	// Rotating the camera by dragging with the right mouse button
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		camera.Rotate(-float64(dx)*input.RotateSpeed, -float64(dy)*input.RotateSpeed)
	}

}
