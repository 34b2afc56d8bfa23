package showroom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayTestNearest(t *testing.T) {

	near := NewModel(NewCubeMesh(), "near")
	near.SetLocalPosition(0, 0, -5)

	far := NewModel(NewCubeMesh(), "far")
	far.SetLocalPosition(0, 0, -20)

	hit := RayTest(NewVectorZero(), NewVector(0, 0, -100), far, near)
	require.NotNil(t, hit)

	assert.Equal(t, near, hit.Object)
	assert.InDelta(t, 4, hit.Distance, 1e-9)
	assert.True(t, hit.Position.Equals(NewVector(0, 0, -4)), hit.Position.String())

}

func TestRayTestSkips(t *testing.T) {

	hidden := NewModel(NewCubeMesh(), "hidden")
	hidden.SetLocalPosition(0, 0, -5)
	hidden.SetVisible(false, false)

	unpickable := NewModel(NewCubeMesh(), "unpickable")
	unpickable.SetLocalPosition(0, 0, -10)
	unpickable.Pickable = false

	target := NewModel(NewCubeMesh(), "target")
	target.SetLocalPosition(0, 0, -15)

	hit := RayTest(NewVectorZero(), NewVector(0, 0, -100), hidden, unpickable, target)
	require.NotNil(t, hit)
	assert.Equal(t, target, hit.Object)

	// Too short to reach
	assert.Nil(t, RayTest(NewVectorZero(), NewVector(0, 0, -10), target))

	// Pointing the other way
	assert.Nil(t, RayTest(NewVectorZero(), NewVector(0, 0, 100), target))

	// Passing beside it
	assert.Nil(t, RayTest(NewVector(5, 0, 0), NewVector(5, 0, -100), target))

}

func TestRayTestScaledParent(t *testing.T) {

	root := NewModel(NewCubeMesh(), "mesh_mm2")
	root.SetLocalPosition(0, 0, -100)
	root.SetLocalScale(4, 4, 4)

	wheel := NewModel(NewCubeMesh(), "wheel")
	wheel.SetLocalPosition(3, 0, 0)
	root.AddChildren(wheel)

	// The wheel sits at x = 12 in the world, and is 8 units wide
	hit := RayTest(NewVector(12, 50, -100), NewVector(12, -50, -100), wheel)
	require.NotNil(t, hit)
	assert.InDelta(t, 46, hit.Distance, 1e-9)

	// Starting inside the box counts as a hit at distance zero
	inside := RayTest(NewVector(0, 0, -100), NewVector(0, 0, 0), root)
	require.NotNil(t, inside)
	assert.Zero(t, inside.Distance)

}
