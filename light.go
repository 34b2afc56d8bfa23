package showroom

import "math"

// HemisphericLight represents a light coming from a direction in the sky and bouncing back from the ground, lighting
// every surface to some degree. Faces pointing towards Direction receive the full Diffuse color, faces pointing away
// receive GroundColor.
type HemisphericLight struct {
	*Node
	Direction   Vector // The direction the light comes from (i.e. {0, 1, 0} lights upward-facing faces the most).
	Diffuse     Color  // Color of the light on faces pointing towards Direction.
	GroundColor Color  // Color of the light on faces pointing away from Direction.
	Energy      float32
	// Ambient is the light level used for every surface when the light is switched off, so the scene doesn't turn pitch black.
	Ambient Color
	on      bool
}

// NewHemisphericLight creates a new HemisphericLight pointing in the given direction.
func NewHemisphericLight(name string, direction Vector) *HemisphericLight {
	return &HemisphericLight{
		Node:        NewNode(name),
		Direction:   direction.Unit(),
		Diffuse:     NewColor(1, 1, 1, 1),
		GroundColor: NewColor(0, 0, 0, 1),
		Energy:      1,
		Ambient:     NewColor(0.1, 0.1, 0.1, 1),
		on:          true,
	}
}

// Type returns the NodeType for this object.
func (light *HemisphericLight) Type() NodeType {
	return NodeTypeHemisphericLight
}

// AddChildren parents the provided children Nodes to the light.
func (light *HemisphericLight) AddChildren(children ...INode) {
	light.addChildren(light, children...)
}

// Unparent unparents the HemisphericLight from its parent, removing it from the scenegraph.
func (light *HemisphericLight) Unparent() {
	if light.parent != nil {
		light.parent.RemoveChildren(light)
	}
}

// IsEnabled returns if the light is on.
func (light *HemisphericLight) IsEnabled() bool {
	return light.on
}

// SetEnabled turns the light on or off.
func (light *HemisphericLight) SetEnabled(on bool) {
	light.on = on
}

// Toggle flips the light on or off, returning the new state.
func (light *HemisphericLight) Toggle() bool {
	light.on = !light.on
	return light.on
}

// Light returns the color a face with the given world-space normal should be lit with.
func (light *HemisphericLight) Light(normal Vector) Color {

	if !light.on {
		return light.Ambient
	}

	t := float32(0.5 + 0.5*math.Max(-1, math.Min(1, normal.Unit().Dot(light.Direction))))

	return Color{
		R: (light.GroundColor.R + (light.Diffuse.R-light.GroundColor.R)*t) * light.Energy,
		G: (light.GroundColor.G + (light.Diffuse.G-light.GroundColor.G)*t) * light.Energy,
		B: (light.GroundColor.B + (light.Diffuse.B-light.GroundColor.B)*t) * light.Energy,
		A: 1,
	}

}
